// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"dentallab/internal/core/domain/model/kernel"
	"dentallab/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Enumerations are stored as their display strings.
type OrderDTO struct {
	ID            int64           `gorm:"primaryKey;autoIncrement"`
	InvoiceID     string          `gorm:"type:varchar(20);index"`
	DentalID      int64           `gorm:"not null;index"`
	DentistName   string          `gorm:"type:varchar(255)"`
	DentistNote   string          `gorm:"type:text"`
	PatientName   string          `gorm:"type:varchar(255)"`
	PatientGender string          `gorm:"type:varchar(10);not null"`
	Status        string          `gorm:"type:varchar(20);not null;index"`
	Mode          string          `gorm:"type:varchar(20);not null;index"`
	TeethQuantity int             `gorm:"not null"`
	TotalAmount   decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Discount      decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	FinalAmount   decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	CreatedDate   time.Time       `gorm:"not null"`
	UpdatedBy     *int64          `gorm:"index"`
	UpdatedAt     *time.Time      `gorm:"autoUpdateTime:false"`
	StatusNote    string          `gorm:"type:text"`
	Version       int             `gorm:"not null;default:1"`
	Items         []OrderItemDTO  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one product line of an order.
type OrderItemDTO struct {
	ID              int64           `gorm:"primaryKey;autoIncrement"`
	OrderID         int64           `gorm:"not null;index"`
	ProductID       int64           `gorm:"not null;index"`
	TeethPositionID int64           `gorm:"not null"`
	SellingPrice    decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Quantity        int             `gorm:"not null"`
	Note            string          `gorm:"type:text"`
	TotalAmount     decimal.Decimal `gorm:"type:numeric(14,2);not null"`
}

// TableName specifies the database table name for order item entities.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order aggregate with its items to its database representation.
func fromDomain(o *order.Order) OrderDTO {
	items := make([]OrderItemDTO, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, itemFromDomain(item))
	}

	return OrderDTO{
		ID:            o.ID(),
		InvoiceID:     o.InvoiceID().String(),
		DentalID:      o.DentalClinicID(),
		DentistName:   o.DentistName(),
		DentistNote:   o.DentistNote(),
		PatientName:   o.PatientName(),
		PatientGender: o.PatientGender().String(),
		Status:        o.Status().String(),
		Mode:          o.Mode().String(),
		TeethQuantity: o.TeethQuantity(),
		TotalAmount:   o.TotalAmount().Decimal(),
		Discount:      o.Discount().Decimal(),
		FinalAmount:   o.FinalAmount().Decimal(),
		CreatedDate:   o.CreatedDate(),
		UpdatedBy:     o.UpdatedBy(),
		UpdatedAt:     o.UpdatedAt(),
		StatusNote:    o.StatusNote(),
		Version:       o.Version(),
		Items:         items,
	}
}

func itemFromDomain(item *order.Item) OrderItemDTO {
	return OrderItemDTO{
		ID:              item.ID(),
		OrderID:         item.OrderID(),
		ProductID:       item.ProductID(),
		TeethPositionID: item.TeethPositionID(),
		SellingPrice:    item.SellingPrice().Decimal(),
		Quantity:        item.Quantity(),
		Note:            item.Note(),
		TotalAmount:     item.TotalAmount().Decimal(),
	}
}

// toDomain converts a database DTO to an order aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}
	mode, err := order.ParseMode(dto.Mode)
	if err != nil {
		return nil, err
	}
	gender, err := order.ParseGender(dto.PatientGender)
	if err != nil {
		return nil, err
	}

	amounts, err := moneys(dto.TotalAmount, dto.Discount, dto.FinalAmount)
	if err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(order.Snapshot{
		ID:             dto.ID,
		InvoiceID:      kernel.InvoiceID(dto.InvoiceID),
		DentalClinicID: dto.DentalID,
		DentistName:    dto.DentistName,
		DentistNote:    dto.DentistNote,
		PatientName:    dto.PatientName,
		PatientGender:  gender,
		Status:         status,
		Mode:           mode,
		TeethQuantity:  dto.TeethQuantity,
		TotalAmount:    amounts[0],
		Discount:       amounts[1],
		FinalAmount:    amounts[2],
		CreatedDate:    dto.CreatedDate,
		UpdatedBy:      dto.UpdatedBy,
		UpdatedAt:      dto.UpdatedAt,
		StatusNote:     dto.StatusNote,
		Version:        dto.Version,
	}, items)
}

func itemToDomain(dto OrderItemDTO) (*order.Item, error) {
	amounts, err := moneys(dto.SellingPrice, dto.TotalAmount)
	if err != nil {
		return nil, err
	}

	return order.RestoreItem(dto.ID, dto.OrderID, dto.ProductID, dto.TeethPositionID,
		amounts[0], dto.Quantity, dto.Note, amounts[1])
}

func moneys(values ...decimal.Decimal) ([]kernel.Money, error) {
	out := make([]kernel.Money, 0, len(values))
	for _, v := range values {
		m, err := kernel.NewMoney(v)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}
