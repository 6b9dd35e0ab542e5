package commands

import (
	"context"
	"log/slog"
	"time"

	"dentallab/internal/core/domain/model/order"
	"dentallab/internal/core/domain/model/stage"
	"dentallab/internal/core/domain/services"
	"dentallab/internal/pkg/clock"
	"dentallab/internal/pkg/errs"
)

// UpdateOrderStatusCommandResponse summarises the order after the request.
type UpdateOrderStatusCommandResponse struct {
	OrderID       int64
	Status        order.Status
	UpdatedByName string
	UpdatedAt     *time.Time
	Outcome       services.Outcome
	Note          string
}

// UpdateOrderStatusCommandHandler drives the order state machine. Moving an
// order to Producing also creates the production stages of every item, in the
// same transaction as the status change.
type UpdateOrderStatusCommandHandler struct {
	uowFactory  UoWFactory
	progression services.OrderProgression
	fanOut      services.StageFanOut
	clock       clock.Clock
	logger      *slog.Logger
}

func NewUpdateOrderStatusCommandHandler(
	uowFactory UoWFactory,
	progression services.OrderProgression,
	fanOut services.StageFanOut,
	clk clock.Clock,
	logger *slog.Logger,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory:  uowFactory,
		progression: progression,
		fanOut:      fanOut,
		clock:       clk,
		logger:      logger.With("component", "UpdateOrderStatusCommandHandler"),
	}
}

// Handle applies the requested transition. A rejected or unchanged request is
// not an error: the outcome and note are reported in the response and nothing
// is written.
func (h *UpdateOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateOrderStatusCommand,
) (UpdateOrderStatusCommandResponse, error) {
	if err := cmd.Validate(); err != nil {
		return UpdateOrderStatusCommandResponse{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return UpdateOrderStatusCommandResponse{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return UpdateOrderStatusCommandResponse{}, err
	}

	account, err := uow.DirectoryRepository().GetAccount(ctx, cmd.UpdatedBy())
	if err != nil {
		return UpdateOrderStatusCommandResponse{}, err
	}

	pending := 0
	if h.progression.CountsPendingStages(cmd.Status()) {
		pending, err = uow.StageRepository().CountByOrder(ctx, o.ID(), stage.StatusPending)
		if err != nil {
			return UpdateOrderStatusCommandResponse{}, err
		}
	}

	now := h.clock.Now()
	decision, err := h.progression.Apply(o, services.OrderChange{
		Status:    cmd.Status(),
		UpdatedBy: account.ID,
		Note:      cmd.Note(),
	}, pending, now)
	if err != nil {
		return UpdateOrderStatusCommandResponse{}, err
	}

	response := UpdateOrderStatusCommandResponse{
		OrderID:       o.ID(),
		Status:        o.Status(),
		UpdatedByName: account.FullName,
		UpdatedAt:     o.UpdatedAt(),
		Outcome:       decision.Outcome,
		Note:          decision.Note,
	}
	if !decision.Mutated() {
		h.logger.DebugContext(ctx, "order status not changed",
			"order_id", o.ID(),
			"target", cmd.Status().String(),
			"outcome", decision.Outcome.String(),
			"note", decision.Note,
		)
		return response, nil
	}

	created := 0
	if o.Status() == order.StatusProducing {
		created, err = h.createStages(ctx, uow, o, now)
		if err != nil {
			return UpdateOrderStatusCommandResponse{}, err
		}
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return UpdateOrderStatusCommandResponse{}, err
	}

	written, err := uow.Commit(ctx)
	if err != nil {
		return UpdateOrderStatusCommandResponse{}, err
	}
	if written == 0 {
		return UpdateOrderStatusCommandResponse{}, errs.NewNothingCommittedError("update order status")
	}

	h.logger.InfoContext(ctx, "order status changed",
		"order_id", o.ID(),
		"status", o.Status().String(),
		"updated_by", account.ID,
		"stages_created", created,
	)

	return response, nil
}

// createStages instantiates the stage templates of each item's product
// category. Categories shared by several items are loaded once.
func (h *UpdateOrderStatusCommandHandler) createStages(ctx context.Context, uow UoW, o *order.Order, now time.Time) (int, error) {
	categories, err := uow.OrderRepository().ListItemCategories(ctx, o.ID())
	if err != nil {
		return 0, err
	}

	catalog := uow.StageTemplateCatalog()
	byCategory := make(map[int64][]stage.Template, len(categories))
	items := make([]services.ItemTemplates, 0, len(categories))
	for _, c := range categories {
		templates, ok := byCategory[c.CategoryID]
		if !ok {
			templates, err = catalog.StagesForCategory(ctx, c.CategoryID)
			if err != nil {
				return 0, err
			}
			byCategory[c.CategoryID] = templates
		}
		items = append(items, services.ItemTemplates{OrderItemID: c.OrderItemID, Templates: templates})
	}

	stages, err := h.fanOut.FanOut(items, now)
	if err != nil {
		return 0, err
	}
	if len(stages) == 0 {
		return 0, nil
	}

	if err = uow.StageRepository().AddMany(ctx, stages); err != nil {
		return 0, err
	}
	return len(stages), nil
}
