package queries

import (
	"context"
	"fmt"
	"time"

	"dentallab/internal/core/domain/model/directory"
	"dentallab/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// orderRow is the scan target of order listings. Clinic and account names
// come from LEFT JOINs and may be missing.
type orderRow struct {
	ID            int64
	InvoiceID     string
	DentalID      int64
	DentalName    *string
	DentistName   string
	DentistNote   string
	PatientName   string
	PatientGender string
	Status        string
	Mode          string
	TeethQuantity int
	TotalAmount   decimal.Decimal
	Discount      decimal.Decimal
	FinalAmount   decimal.Decimal
	CreatedDate   time.Time
	UpdatedBy     *int64
	UpdatedByName *string
	UpdatedAt     *time.Time
	StatusNote    string
}

type orderItemRow struct {
	ID                  int64
	OrderID             int64
	ProductID           int64
	ProductName         string
	ProductDescription  string
	CostPrice           decimal.Decimal
	CategoryID          int64
	TeethPositionID     int64
	ToothArch           int
	PositionName        string
	PositionDescription string
	SellingPrice        decimal.Decimal
	Quantity            int
	TotalAmount         decimal.Decimal
	Note                string
}

func (r orderItemRow) view() (OrderItemView, error) {
	costPrice, err := kernel.NewMoney(r.CostPrice)
	if err != nil {
		return OrderItemView{}, fmt.Errorf("product %d: %w", r.ProductID, err)
	}

	return OrderItemView{
		ID: r.ID,
		Product: directory.Product{
			ID:          r.ProductID,
			Name:        r.ProductName,
			Description: r.ProductDescription,
			CostPrice:   costPrice,
			CategoryID:  r.CategoryID,
		},
		TeethPosition: directory.TeethPosition{
			ID:           r.TeethPositionID,
			ToothArch:    r.ToothArch,
			PositionName: r.PositionName,
			Description:  r.PositionDescription,
		},
		SellingPrice: r.SellingPrice,
		Quantity:     r.Quantity,
		TotalAmount:  r.TotalAmount,
		Note:         r.Note,
	}, nil
}

// ordersWithDisplayNames selects orders joined with their clinic and last updater.
func ordersWithDisplayNames(db *gorm.DB) *gorm.DB {
	return db.Table("orders").
		Select("orders.*, dentals.name AS dental_name, accounts.full_name AS updated_by_name").
		Joins("LEFT JOIN dentals ON dentals.id = orders.dental_id").
		Joins("LEFT JOIN accounts ON accounts.id = orders.updated_by")
}

// loadItems resolves the items of the given orders, keyed by order id.
func loadItems(ctx context.Context, db *gorm.DB, orderIDs []int64) (map[int64][]OrderItemView, error) {
	byOrder := make(map[int64][]OrderItemView, len(orderIDs))
	if len(orderIDs) == 0 {
		return byOrder, nil
	}

	var rows []orderItemRow
	err := db.WithContext(ctx).Table("order_items").
		Select(`order_items.id, order_items.order_id, order_items.product_id,
			COALESCE(products.name, '') AS product_name,
			COALESCE(products.description, '') AS product_description,
			COALESCE(products.cost_price, 0) AS cost_price,
			COALESCE(products.category_id, 0) AS category_id,
			order_items.teeth_position_id,
			COALESCE(teeth_positions.tooth_arch, 0) AS tooth_arch,
			COALESCE(teeth_positions.position_name, '') AS position_name,
			COALESCE(teeth_positions.description, '') AS position_description,
			order_items.selling_price, order_items.quantity, order_items.total_amount, order_items.note`).
		Joins("LEFT JOIN products ON products.id = order_items.product_id").
		Joins("LEFT JOIN teeth_positions ON teeth_positions.id = order_items.teeth_position_id").
		Where("order_items.order_id IN ?", orderIDs).
		Order("order_items.id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, r := range rows {
		item, err := r.view()
		if err != nil {
			return nil, err
		}
		byOrder[r.OrderID] = append(byOrder[r.OrderID], item)
	}
	return byOrder, nil
}

func (r orderRow) view(items []OrderItemView) OrderView {
	if items == nil {
		items = []OrderItemView{}
	}
	return OrderView{
		ID:               r.ID,
		InvoiceID:        r.InvoiceID,
		DentalClinicID:   r.DentalID,
		DentalClinicName: deref(r.DentalName),
		DentistName:      r.DentistName,
		DentistNote:      r.DentistNote,
		PatientName:      r.PatientName,
		PatientGender:    r.PatientGender,
		Status:           r.Status,
		Mode:             r.Mode,
		TeethQuantity:    r.TeethQuantity,
		TotalAmount:      r.TotalAmount,
		Discount:         r.Discount,
		FinalAmount:      r.FinalAmount,
		CreatedDate:      r.CreatedDate,
		UpdatedBy:        r.UpdatedBy,
		UpdatedByName:    deref(r.UpdatedByName),
		UpdatedAt:        r.UpdatedAt,
		StatusNote:       r.StatusNote,
		Items:            items,
	}
}
