package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetOrdersQueryHandler pages through orders ordered by invoice id, each with
// its resolved items.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

func (h GetOrdersQueryHandler) Handle(ctx context.Context, query GetOrdersQuery) (Page[OrderView], error) {
	if err := query.Validate(); err != nil {
		return Page[OrderView]{}, err
	}

	scopes := query.Filter().scopes()

	var total int64
	if err := h.db.WithContext(ctx).Table("orders").Scopes(scopes...).Count(&total).Error; err != nil {
		return Page[OrderView]{}, err
	}

	var rows []orderRow
	err := ordersWithDisplayNames(h.db.WithContext(ctx)).
		Scopes(scopes...).
		Scopes(paginate(query.Page())).
		Order("orders.invoice_id, orders.id").
		Scan(&rows).Error
	if err != nil {
		return Page[OrderView]{}, err
	}

	ids := make([]int64, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.ID)
	}
	items, err := loadItems(ctx, h.db, ids)
	if err != nil {
		return Page[OrderView]{}, err
	}

	views := make([]OrderView, 0, len(rows))
	for _, r := range rows {
		views = append(views, r.view(items[r.ID]))
	}
	return newPage(views, query.Page(), total), nil
}
