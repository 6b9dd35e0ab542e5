package queries

import (
	"errors"

	"dentallab/internal/core/domain/model/kernel"
	"dentallab/internal/core/domain/model/stage"
	"dentallab/internal/pkg/errs"
	"dentallab/internal/pkg/guard"

	"gorm.io/gorm"
)

var (
	ErrListStagesQueryIsNotConstructed = errors.New(
		"ListStagesQuery must be created via NewListStagesQuery constructor",
	)
)

// StageFilter narrows a stage listing. Absent fields do not filter.
type StageFilter struct {
	OrderItemID *int64
	StaffID     *int64
	IndexStage  *int
	Status      *stage.Status
}

func (f StageFilter) Validate() error {
	var indexErr, statusErr error
	if f.IndexStage != nil && *f.IndexStage < 1 {
		indexErr = errs.NewValueIsOutOfRangeError("index stage", *f.IndexStage, 1, "unbounded")
	}
	if f.Status != nil {
		statusErr = f.Status.Validate()
	}
	return errors.Join(
		kernel.ValidateOptionalID("order item id", f.OrderItemID),
		kernel.ValidateOptionalID("staff id", f.StaffID),
		indexErr,
		statusErr,
	)
}

func (f StageFilter) scopes() []func(*gorm.DB) *gorm.DB {
	var out []func(*gorm.DB) *gorm.DB
	if f.OrderItemID != nil {
		id := *f.OrderItemID
		out = append(out, func(db *gorm.DB) *gorm.DB {
			return db.Where("order_item_stages.order_item_id = ?", id)
		})
	}
	if f.StaffID != nil {
		id := *f.StaffID
		out = append(out, func(db *gorm.DB) *gorm.DB {
			return db.Where("order_item_stages.staff_id = ?", id)
		})
	}
	if f.IndexStage != nil {
		index := *f.IndexStage
		out = append(out, func(db *gorm.DB) *gorm.DB {
			return db.Where("order_item_stages.index_stage = ?", index)
		})
	}
	if f.Status != nil {
		status := f.Status.String()
		out = append(out, func(db *gorm.DB) *gorm.DB {
			return db.Where("order_item_stages.status = ?", status)
		})
	}
	return out
}

type ListStagesQuery struct {
	filter StageFilter
	page   PageRequest

	guard guard.ConstructorGuard
}

func NewListStagesQuery(filter StageFilter, page PageRequest) (ListStagesQuery, error) {
	if err := errors.Join(filter.Validate(), page.Validate()); err != nil {
		return ListStagesQuery{}, err
	}
	return ListStagesQuery{filter: filter, page: page, guard: guard.NewConstructorGuard()}, nil
}

func (q ListStagesQuery) Validate() error {
	return q.guard.Validate(ErrListStagesQueryIsNotConstructed)
}

func (q ListStagesQuery) Filter() StageFilter { return q.filter }
func (q ListStagesQuery) Page() PageRequest   { return q.page }
