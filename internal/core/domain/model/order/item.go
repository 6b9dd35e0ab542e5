package order

import (
	"errors"
	"fmt"

	"dentallab/internal/core/domain/model/kernel"
	"dentallab/internal/pkg/errs"
)

var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is one tooth product line of an order. Its total is fixed at
// construction: sellingPrice × quantity.
type Item struct {
	id              int64
	orderID         int64
	productID       int64
	teethPositionID int64
	sellingPrice    kernel.Money
	quantity        int
	note            string
	totalAmount     kernel.Money

	isConstructed bool
}

// NewItem validates references and quantity and computes the line total.
func NewItem(productID, teethPositionID int64, sellingPrice kernel.Money, quantity int, note string) (*Item, error) {
	item := &Item{
		productID:       productID,
		teethPositionID: teethPositionID,
		sellingPrice:    sellingPrice,
		note:            note,
		isConstructed:   true,
	}

	if err := errors.Join(
		kernel.ValidateID("product id", productID),
		kernel.ValidateID("teeth position id", teethPositionID),
		item.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	item.totalAmount = sellingPrice.Times(quantity)
	return item, nil
}

// RestoreItem rebuilds a persisted item. The stored total is kept as is.
func RestoreItem(
	id, orderID, productID, teethPositionID int64,
	sellingPrice kernel.Money,
	quantity int,
	note string,
	totalAmount kernel.Money,
) (*Item, error) {
	if err := errors.Join(
		kernel.ValidateID("order item id", id),
		kernel.ValidateID("order id", orderID),
	); err != nil {
		return nil, err
	}

	return &Item{
		id:              id,
		orderID:         orderID,
		productID:       productID,
		teethPositionID: teethPositionID,
		sellingPrice:    sellingPrice,
		quantity:        quantity,
		note:            note,
		totalAmount:     totalAmount,
		isConstructed:   true,
	}, nil
}

func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

func (i *Item) ID() int64                  { return i.id }
func (i *Item) OrderID() int64             { return i.orderID }
func (i *Item) ProductID() int64           { return i.productID }
func (i *Item) TeethPositionID() int64     { return i.teethPositionID }
func (i *Item) SellingPrice() kernel.Money { return i.sellingPrice }
func (i *Item) Quantity() int              { return i.quantity }
func (i *Item) Note() string               { return i.note }
func (i *Item) TotalAmount() kernel.Money  { return i.totalAmount }

// AttachID records the storage-assigned id. It can be called once.
func (i *Item) AttachID(id int64) error {
	if i.id != 0 {
		return errs.NewValueIsInvalidErrorWithCause("order item id", fmt.Errorf("item already has id %d", i.id))
	}
	if err := kernel.ValidateID("order item id", id); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid", fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}
