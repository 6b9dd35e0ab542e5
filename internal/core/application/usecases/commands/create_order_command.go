package commands

import (
	"errors"
	"fmt"

	"dentallab/internal/core/domain/model/kernel"
	"dentallab/internal/core/domain/model/order"
	"dentallab/internal/pkg/errs"
	"dentallab/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderItem is one requested product line.
type CreateOrderItem struct {
	ProductID       int64
	TeethPositionID int64
	SellingPrice    decimal.Decimal
	Quantity        int
	Note            string
}

// CreateOrderCommand represents a request to open a new lab order for a clinic.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(order.Details{
//	    DentalClinicID: 1,
//	    DentistName:    "Dr. Lan",
//	    PatientName:    "Minh",
//	    PatientGender:  order.GenderMale,
//	    Mode:           order.ModeNew,
//	}, decimal.RequireFromString("240"), decimal.Zero, []CreateOrderItem{
//	    {ProductID: 3, TeethPositionID: 11, SellingPrice: decimal.RequireFromString("120"), Quantity: 2},
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, clock, logger)
//	res, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	details     order.Details
	totalAmount kernel.Money
	discount    kernel.Money
	items       []CreateOrderItem

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the request. Every violation is reported,
// joined into one error.
func NewCreateOrderCommand(
	details order.Details,
	totalAmount, discount decimal.Decimal,
	items []CreateOrderItem,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		details: details,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		kernel.ValidateID("dental clinic id", details.DentalClinicID),
		details.PatientGender.Validate(),
		details.Mode.Validate(),
		cmd.setAmounts(totalAmount, discount),
		cmd.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) Details() order.Details    { return c.details }
func (c CreateOrderCommand) TotalAmount() kernel.Money { return c.totalAmount }
func (c CreateOrderCommand) Discount() kernel.Money    { return c.discount }
func (c CreateOrderCommand) Items() []CreateOrderItem  { return c.items }

func (c *CreateOrderCommand) setAmounts(totalAmount, discount decimal.Decimal) error {
	total, totalErr := kernel.NewMoney(totalAmount)
	disc, discErr := kernel.NewMoney(discount)
	if err := errors.Join(totalErr, discErr); err != nil {
		return err
	}
	if _, err := total.Minus(disc); err != nil {
		return err
	}

	c.totalAmount = total
	c.discount = disc
	return nil
}

func (c *CreateOrderCommand) setItems(items []CreateOrderItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("order items")
	}

	var itemErrs []error
	for i, item := range items {
		if item.SellingPrice.IsNegative() {
			itemErrs = append(itemErrs, errs.NewValueIsOutOfRangeErrorWithCause(
				"selling price", item.SellingPrice.String(), 0, "unbounded", fmt.Errorf("item %d", i+1)))
		}
		if item.Quantity < 1 {
			itemErrs = append(itemErrs, errs.NewValueIsOutOfRangeErrorWithCause(
				"quantity", item.Quantity, 1, "unbounded", fmt.Errorf("item %d", i+1)))
		}
		if item.ProductID < 1 || item.TeethPositionID < 1 {
			itemErrs = append(itemErrs, errs.NewValueIsInvalidErrorWithCause(
				"order item", fmt.Errorf("item %d: product and teeth position ids must be positive", i+1)))
		}
	}
	if err := errors.Join(itemErrs...); err != nil {
		return err
	}

	c.items = items
	return nil
}
