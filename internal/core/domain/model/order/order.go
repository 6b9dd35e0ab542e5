package order

import (
	"errors"
	"fmt"
	"time"

	"dentallab/internal/core/domain/model/kernel"
	"dentallab/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Details carries the clinic, dentist and patient data of a new order.
type Details struct {
	DentalClinicID int64
	DentistName    string
	DentistNote    string
	PatientName    string
	PatientGender  Gender
	Mode           Mode
}

// Order is the aggregate root of one lab production job. It owns its items.
//
// Order follows these invariants:
//   - finalAmount = totalAmount − discount, computed once in NewOrder
//   - teethQuantity equals the number of items submitted at creation
//   - the invoice id is issued once, after the storage id is known
//   - Completed and Canceled orders accept no further transitions
type Order struct {
	id             int64
	invoiceID      kernel.InvoiceID
	dentalClinicID int64
	dentistName    string
	dentistNote    string
	patientName    string
	patientGender  Gender
	status         Status
	mode           Mode
	teethQuantity  int
	totalAmount    kernel.Money
	discount       kernel.Money
	finalAmount    kernel.Money
	createdDate    time.Time
	updatedBy      *int64
	updatedAt      *time.Time
	statusNote     string
	version        int
	items          []*Item

	isConstructed bool
}

// NewOrder creates an order in New status.
//
// Example:
//
//	item, _ := order.NewItem(productID, positionID, kernel.MustMoney("120"), 1, "")
//	o, err := order.NewOrder(order.Details{DentalClinicID: 1, ...},
//	    kernel.MustMoney("120"), kernel.MustMoney("20"), []*order.Item{item}, clock.Now())
func NewOrder(details Details, totalAmount, discount kernel.Money, items []*Item, createdDate time.Time) (*Order, error) {
	o := &Order{
		dentalClinicID: details.DentalClinicID,
		dentistName:    details.DentistName,
		dentistNote:    details.DentistNote,
		patientName:    details.PatientName,
		patientGender:  details.PatientGender,
		mode:           details.Mode,
		status:         StatusNew,
		totalAmount:    totalAmount,
		discount:       discount,
		createdDate:    createdDate,
		version:        1,
		isConstructed:  true,
	}

	if err := errors.Join(
		kernel.ValidateID("dental clinic id", details.DentalClinicID),
		details.PatientGender.Validate(),
		details.Mode.Validate(),
		o.setItems(items),
		o.setFinalAmount(),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Snapshot is the persisted state of an order, used by RestoreOrder.
type Snapshot struct {
	ID             int64
	InvoiceID      kernel.InvoiceID
	DentalClinicID int64
	DentistName    string
	DentistNote    string
	PatientName    string
	PatientGender  Gender
	Status         Status
	Mode           Mode
	TeethQuantity  int
	TotalAmount    kernel.Money
	Discount       kernel.Money
	FinalAmount    kernel.Money
	CreatedDate    time.Time
	UpdatedBy      *int64
	UpdatedAt      *time.Time
	StatusNote     string
	Version        int
}

// RestoreOrder rehydrates a stored order. Amounts are taken as stored and not recomputed.
func RestoreOrder(s Snapshot, items []*Item) (*Order, error) {
	if err := errors.Join(
		kernel.ValidateID("order id", s.ID),
		kernel.ValidateID("dental clinic id", s.DentalClinicID),
		s.Status.Validate(),
		s.Mode.Validate(),
		s.PatientGender.Validate(),
	); err != nil {
		return nil, err
	}

	return &Order{
		id:             s.ID,
		invoiceID:      s.InvoiceID,
		dentalClinicID: s.DentalClinicID,
		dentistName:    s.DentistName,
		dentistNote:    s.DentistNote,
		patientName:    s.PatientName,
		patientGender:  s.PatientGender,
		status:         s.Status,
		mode:           s.Mode,
		teethQuantity:  s.TeethQuantity,
		totalAmount:    s.TotalAmount,
		discount:       s.Discount,
		finalAmount:    s.FinalAmount,
		createdDate:    s.CreatedDate,
		updatedBy:      s.UpdatedBy,
		updatedAt:      s.UpdatedAt,
		statusNote:     s.StatusNote,
		version:        s.Version,
		items:          items,
		isConstructed:  true,
	}, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) ID() int64                   { return o.id }
func (o *Order) InvoiceID() kernel.InvoiceID { return o.invoiceID }
func (o *Order) DentalClinicID() int64       { return o.dentalClinicID }
func (o *Order) DentistName() string         { return o.dentistName }
func (o *Order) DentistNote() string         { return o.dentistNote }
func (o *Order) PatientName() string         { return o.patientName }
func (o *Order) PatientGender() Gender       { return o.patientGender }
func (o *Order) Status() Status              { return o.status }
func (o *Order) Mode() Mode                  { return o.mode }
func (o *Order) TeethQuantity() int          { return o.teethQuantity }
func (o *Order) TotalAmount() kernel.Money   { return o.totalAmount }
func (o *Order) Discount() kernel.Money      { return o.discount }
func (o *Order) FinalAmount() kernel.Money   { return o.finalAmount }
func (o *Order) CreatedDate() time.Time      { return o.createdDate }
func (o *Order) UpdatedBy() *int64           { return o.updatedBy }
func (o *Order) UpdatedAt() *time.Time       { return o.updatedAt }
func (o *Order) StatusNote() string          { return o.statusNote }
func (o *Order) Version() int                { return o.version }

// Items returns the order lines in submission order.
func (o *Order) Items() []*Item {
	return o.items
}

// AttachID records the storage-assigned id and propagates it to the items.
func (o *Order) AttachID(id int64) error {
	if o.id != 0 {
		return errs.NewValueIsInvalidErrorWithCause("order id", fmt.Errorf("order already has id %d", o.id))
	}
	if err := kernel.ValidateID("order id", id); err != nil {
		return err
	}

	o.id = id
	for _, item := range o.items {
		item.orderID = id
	}
	return nil
}

// IssueInvoice derives the invoice id from the clinic and order ids.
// The order must have its storage id and no invoice yet.
func (o *Order) IssueInvoice() error {
	if !o.invoiceID.IsZero() {
		return errs.NewValueIsInvalidErrorWithCause("invoice id", fmt.Errorf("order %d already has invoice %s", o.id, o.invoiceID))
	}

	invoiceID, err := kernel.NewInvoiceID(o.dentalClinicID, o.id)
	if err != nil {
		return err
	}

	o.invoiceID = invoiceID
	return nil
}

// SyncVersion records the version persisted by the last successful write.
func (o *Order) SyncVersion(version int) {
	o.version = version
}

// StartProducing moves a New order to Producing.
func (o *Order) StartProducing(updatedBy int64, note string, at time.Time) error {
	next, err := o.status.StartProducing()
	if err != nil {
		return err
	}
	return o.stamp(next, updatedBy, note, at)
}

// Complete moves a New or Producing order to Completed.
func (o *Order) Complete(updatedBy int64, note string, at time.Time) error {
	next, err := o.status.Complete()
	if err != nil {
		return err
	}
	return o.stamp(next, updatedBy, note, at)
}

// Cancel moves a New, Producing or Completed order to Canceled.
func (o *Order) Cancel(updatedBy int64, note string, at time.Time) error {
	next, err := o.status.Cancel()
	if err != nil {
		return err
	}
	return o.stamp(next, updatedBy, note, at)
}

func (o *Order) stamp(next Status, updatedBy int64, note string, at time.Time) error {
	if err := kernel.ValidateID("updated by", updatedBy); err != nil {
		return err
	}

	o.status = next
	o.updatedBy = &updatedBy
	o.updatedAt = &at
	o.statusNote = note
	return nil
}

func (o *Order) setItems(items []*Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("order items")
	}
	for idx, item := range items {
		if err := item.Validate(); err != nil {
			return fmt.Errorf("item %d: %w", idx, err)
		}
	}

	o.items = items
	o.teethQuantity = len(items)
	return nil
}

func (o *Order) setFinalAmount() error {
	final, err := o.totalAmount.Minus(o.discount)
	if err != nil {
		return err
	}
	o.finalAmount = final
	return nil
}
