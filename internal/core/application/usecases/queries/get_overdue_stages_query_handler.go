package queries

import (
	"cmp"
	"context"
	"slices"
	"time"

	"dentallab/internal/core/domain/model/order"
	"dentallab/internal/core/domain/model/stage"

	"gorm.io/gorm"
)

// overdueRow lists its columns flat: gorm does not scan into unexported
// embedded structs.
type overdueRow struct {
	ID            int64
	OrderItemID   int64
	IndexStage    int
	StaffID       *int64
	StaffName     *string
	StageName     string
	Description   string
	ExecutionTime float64
	Status        string
	StartDate     time.Time
	EndDate       *time.Time
	Note          string
	Image         string
	OrderID       int64
	InvoiceID     string
}

func (r overdueRow) stage() stageRow {
	return stageRow{
		ID:            r.ID,
		OrderItemID:   r.OrderItemID,
		IndexStage:    r.IndexStage,
		StaffID:       r.StaffID,
		StaffName:     r.StaffName,
		StageName:     r.StageName,
		Description:   r.Description,
		ExecutionTime: r.ExecutionTime,
		Status:        r.Status,
		StartDate:     r.StartDate,
		EndDate:       r.EndDate,
		Note:          r.Note,
		Image:         r.Image,
	}
}

// GetOverdueStagesQueryHandler only considers orders in production. It
// compares due times in Go: the stored
// execution time is in hours and date arithmetic differs between databases.
type GetOverdueStagesQueryHandler struct {
	db *gorm.DB
}

func NewGetOverdueStagesQueryHandler(db *gorm.DB) GetOverdueStagesQueryHandler {
	return GetOverdueStagesQueryHandler{db: db}
}

// Handle returns the overdue stages, most overdue first.
func (h GetOverdueStagesQueryHandler) Handle(ctx context.Context, query GetOverdueStagesQuery) ([]OverdueStage, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var rows []overdueRow
	err := h.db.WithContext(ctx).Table("order_item_stages").
		Select(stageColumns+", order_items.order_id, orders.invoice_id").
		Joins("JOIN order_items ON order_items.id = order_item_stages.order_item_id").
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Joins("LEFT JOIN accounts ON accounts.id = order_item_stages.staff_id").
		Where("order_item_stages.status = ?", stage.StatusPending.String()).
		Where("orders.status = ?", order.StatusProducing.String()).
		Order("order_item_stages.start_date, order_item_stages.id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	overdue := make([]OverdueStage, 0)
	for _, r := range rows {
		v := r.stage().view()
		due := v.StartDate.Add(v.ExecutionTime)
		if !query.At().After(due) {
			continue
		}
		overdue = append(overdue, OverdueStage{
			StageView: v,
			OrderID:   r.OrderID,
			InvoiceID: r.InvoiceID,
			DueAt:     due,
			OverdueBy: query.At().Sub(due),
		})
	}

	slices.SortStableFunc(overdue, func(a, b OverdueStage) int {
		return cmp.Compare(b.OverdueBy, a.OverdueBy)
	})
	return overdue, nil
}
