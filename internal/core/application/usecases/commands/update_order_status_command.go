package commands

import (
	"errors"
	"strings"

	"dentallab/internal/core/domain/model/kernel"
	"dentallab/internal/core/domain/model/order"
	"dentallab/internal/pkg/guard"
)

var (
	ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
		"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
	)
)

// UpdateOrderStatusCommand requests an order status transition on behalf of
// an account. The target status is not checked here: an unknown or New
// target is answered with an Unchanged outcome by the handler.
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID   int64
	status    order.Status
	updatedBy int64
	note      string

	guard guard.ConstructorGuard
}

func NewUpdateOrderStatusCommand(orderID int64, status order.Status, updatedBy int64, note string) (UpdateOrderStatusCommand, error) {
	if err := kernel.ValidateID("order id", orderID); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return UpdateOrderStatusCommand{
		orderID:   orderID,
		status:    status,
		updatedBy: updatedBy,
		note:      strings.TrimSpace(note),
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

func (c UpdateOrderStatusCommand) OrderID() int64       { return c.orderID }
func (c UpdateOrderStatusCommand) Status() order.Status { return c.status }
func (c UpdateOrderStatusCommand) UpdatedBy() int64     { return c.updatedBy }
func (c UpdateOrderStatusCommand) Note() string         { return c.note }
