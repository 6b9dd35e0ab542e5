package queries

import (
	"context"

	"dentallab/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetOrderDetailQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderDetailQueryHandler(db *gorm.DB) GetOrderDetailQueryHandler {
	return GetOrderDetailQueryHandler{db: db}
}

// Handle returns the order with its clinic and items. An order whose dental
// clinic no longer resolves is reported as not found.
func (h GetOrderDetailQueryHandler) Handle(ctx context.Context, query GetOrderDetailQuery) (OrderView, error) {
	if err := query.Validate(); err != nil {
		return OrderView{}, err
	}

	var rows []orderRow
	err := ordersWithDisplayNames(h.db.WithContext(ctx)).
		Where("orders.id = ?", query.OrderID()).
		Limit(1).
		Scan(&rows).Error
	if err != nil {
		return OrderView{}, err
	}
	if len(rows) == 0 {
		return OrderView{}, errs.NewObjectNotFoundError("order", query.OrderID())
	}

	row := rows[0]
	if row.DentalName == nil {
		return OrderView{}, errs.NewObjectNotFoundError("dental clinic", row.DentalID)
	}

	items, err := loadItems(ctx, h.db, []int64{row.ID})
	if err != nil {
		return OrderView{}, err
	}
	return row.view(items[row.ID]), nil
}
