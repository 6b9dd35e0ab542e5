package commands

import (
	"context"
	"errors"
	"log/slog"

	"dentallab/internal/core/domain/model/stage"
	"dentallab/internal/core/domain/services"
	"dentallab/internal/pkg/clock"
	"dentallab/internal/pkg/errs"
)

// UpdateStageCommandResponse is the addressed stage after the request, with
// the display name of its operator.
type UpdateStageCommandResponse struct {
	Stage        *stage.Stage
	OperatorName string
	Outcome      services.Outcome
	Note         string
}

type UpdateStageCommandHandler struct {
	uowFactory  StageUoWFactory
	progression services.StageProgression
	clock       clock.Clock
	logger      *slog.Logger
}

func NewUpdateStageCommandHandler(
	uowFactory StageUoWFactory,
	progression services.StageProgression,
	clk clock.Clock,
	logger *slog.Logger,
) UpdateStageCommandHandler {
	return UpdateStageCommandHandler{
		uowFactory:  uowFactory,
		progression: progression,
		clock:       clk,
		logger:      logger.With("component", "UpdateStageCommandHandler"),
	}
}

// Handle loads every stage of the item so the sequential gate can look at the
// predecessor, then writes the addressed stage when the gate lets it through.
func (h *UpdateStageCommandHandler) Handle(ctx context.Context, cmd UpdateStageCommand) (UpdateStageCommandResponse, error) {
	if err := cmd.Validate(); err != nil {
		return UpdateStageCommandResponse{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return UpdateStageCommandResponse{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	stageRepo := uow.StageRepository()
	st, err := stageRepo.Get(ctx, cmd.StageID())
	if err != nil {
		return UpdateStageCommandResponse{}, err
	}

	directory := uow.DirectoryRepository()
	if cmd.StaffID() != nil {
		if _, err = directory.GetAccount(ctx, *cmd.StaffID()); err != nil {
			return UpdateStageCommandResponse{}, err
		}
	}

	siblings, err := stageRepo.ListByItem(ctx, st.OrderItemID())
	if err != nil {
		return UpdateStageCommandResponse{}, err
	}
	seq, err := stage.NewSequence(siblings)
	if err != nil {
		return UpdateStageCommandResponse{}, err
	}

	target, decision, err := h.progression.Apply(seq, cmd.StageID(), services.StageChange{
		Status:  cmd.Status(),
		StaffID: cmd.StaffID(),
		Note:    cmd.Note(),
	}, h.clock.Now())
	if err != nil {
		return UpdateStageCommandResponse{}, err
	}

	operator, err := h.operatorName(ctx, uow, target)
	if err != nil {
		return UpdateStageCommandResponse{}, err
	}

	response := UpdateStageCommandResponse{
		Stage:        target,
		OperatorName: operator,
		Outcome:      decision.Outcome,
		Note:         decision.Note,
	}
	if !decision.Mutated() {
		h.logger.DebugContext(ctx, "stage not changed",
			"stage_id", target.ID(),
			"target", cmd.Status().String(),
			"outcome", decision.Outcome.String(),
			"note", decision.Note,
		)
		return response, nil
	}

	if err = stageRepo.Update(ctx, target); err != nil {
		return UpdateStageCommandResponse{}, err
	}

	written, err := uow.Commit(ctx)
	if err != nil {
		return UpdateStageCommandResponse{}, err
	}
	if written == 0 {
		return UpdateStageCommandResponse{}, errs.NewNothingCommittedError("update order item stage")
	}

	h.logger.InfoContext(ctx, "stage updated",
		"stage_id", target.ID(),
		"order_item_id", target.OrderItemID(),
		"index", target.Index(),
		"status", target.Status().String(),
	)

	return response, nil
}

// operatorName resolves the stage's staff member. A stage may still point at
// an account removed since; it then has no display name.
func (h *UpdateStageCommandHandler) operatorName(ctx context.Context, uow StageUoW, st *stage.Stage) (string, error) {
	if st.StaffID() == nil {
		return "", nil
	}
	account, err := uow.DirectoryRepository().GetAccount(ctx, *st.StaffID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return account.FullName, nil
}
