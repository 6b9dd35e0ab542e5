package queries

import (
	"context"

	"gorm.io/gorm"
)

// ListStagesQueryHandler pages through stages ordered by item, position and id.
type ListStagesQueryHandler struct {
	db *gorm.DB
}

func NewListStagesQueryHandler(db *gorm.DB) ListStagesQueryHandler {
	return ListStagesQueryHandler{db: db}
}

func (h ListStagesQueryHandler) Handle(ctx context.Context, query ListStagesQuery) (Page[StageView], error) {
	if err := query.Validate(); err != nil {
		return Page[StageView]{}, err
	}

	scopes := query.Filter().scopes()

	var total int64
	if err := h.db.WithContext(ctx).Table("order_item_stages").Scopes(scopes...).Count(&total).Error; err != nil {
		return Page[StageView]{}, err
	}

	var rows []stageRow
	err := h.db.WithContext(ctx).Table("order_item_stages").
		Select(stageColumns).
		Joins("LEFT JOIN accounts ON accounts.id = order_item_stages.staff_id").
		Scopes(scopes...).
		Scopes(paginate(query.Page())).
		Order("order_item_stages.order_item_id, order_item_stages.index_stage, order_item_stages.id").
		Scan(&rows).Error
	if err != nil {
		return Page[StageView]{}, err
	}

	views := make([]StageView, 0, len(rows))
	for _, r := range rows {
		views = append(views, r.view())
	}
	return newPage(views, query.Page(), total), nil
}
