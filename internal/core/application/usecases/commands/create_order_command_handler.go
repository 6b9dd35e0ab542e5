package commands

import (
	"context"
	"log/slog"

	"dentallab/internal/core/domain/model/directory"
	"dentallab/internal/core/domain/model/kernel"
	"dentallab/internal/core/domain/model/order"
	"dentallab/internal/pkg/clock"
	"dentallab/internal/pkg/errs"
)

// CreateOrderCommandResponse is the created order with its clinic.
type CreateOrderCommandResponse struct {
	Order        *order.Order
	DentalClinic directory.DentalClinic
}

// CreateOrderCommandHandler opens new orders.
//
// The order, its items and the derived invoice id are written in one
// transaction: insert (ids assigned), issue the invoice, update, commit.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      clock.Clock
	logger     *slog.Logger
}

func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, clk clock.Clock, logger *slog.Logger) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clk,
		logger:     logger.With("component", "CreateOrderCommandHandler"),
	}
}

// Handle persists the order. Returns errs.ObjectNotFoundError when the dental
// clinic does not exist and errs.NothingCommittedError when the commit wrote nothing.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (CreateOrderCommandResponse, error) {
	if err := cmd.Validate(); err != nil {
		return CreateOrderCommandResponse{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CreateOrderCommandResponse{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	clinic, err := uow.DirectoryRepository().GetDentalClinic(ctx, cmd.Details().DentalClinicID)
	if err != nil {
		return CreateOrderCommandResponse{}, err
	}

	items := make([]*order.Item, 0, len(cmd.Items()))
	for _, req := range cmd.Items() {
		price, priceErr := kernel.NewMoney(req.SellingPrice)
		if priceErr != nil {
			return CreateOrderCommandResponse{}, priceErr
		}
		item, itemErr := order.NewItem(req.ProductID, req.TeethPositionID, price, req.Quantity, req.Note)
		if itemErr != nil {
			return CreateOrderCommandResponse{}, itemErr
		}
		items = append(items, item)
	}

	o, err := order.NewOrder(cmd.Details(), cmd.TotalAmount(), cmd.Discount(), items, h.clock.Now())
	if err != nil {
		return CreateOrderCommandResponse{}, err
	}

	orderRepo := uow.OrderRepository()
	if err = orderRepo.Add(ctx, o); err != nil {
		return CreateOrderCommandResponse{}, err
	}

	if err = o.IssueInvoice(); err != nil {
		return CreateOrderCommandResponse{}, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return CreateOrderCommandResponse{}, err
	}

	written, err := uow.Commit(ctx)
	if err != nil {
		return CreateOrderCommandResponse{}, err
	}
	if written == 0 {
		return CreateOrderCommandResponse{}, errs.NewNothingCommittedError("create order")
	}

	h.logger.InfoContext(ctx, "order created",
		"order_id", o.ID(),
		"invoice_id", o.InvoiceID().String(),
		"items", len(items),
	)

	return CreateOrderCommandResponse{Order: o, DentalClinic: clinic}, nil
}
