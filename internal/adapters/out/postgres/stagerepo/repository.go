package stagerepo

import (
	"context"
	"errors"

	"dentallab/internal/core/domain/model/stage"
	"dentallab/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormStageRepository implements StageRepository using GORM.
type GormStageRepository struct {
	db      *gorm.DB
	tracker rowTracker
}

type rowTracker interface {
	Track(rows int64, aggregate any)
}

func NewGormStageRepository(db *gorm.DB, tracker rowTracker) *GormStageRepository {
	return &GormStageRepository{
		db:      db,
		tracker: tracker,
	}
}

// AddMany inserts all stages with a single batched statement.
func (r *GormStageRepository) AddMany(ctx context.Context, stages []*stage.Stage) error {
	if len(stages) == 0 {
		return nil
	}

	dtos := make([]StageDTO, 0, len(stages))
	for _, st := range stages {
		if err := st.Validate(); err != nil {
			return err
		}
		dtos = append(dtos, fromDomain(st))
	}

	result := r.db.WithContext(ctx).Create(&dtos)
	if result.Error != nil {
		return result.Error
	}

	for i, st := range stages {
		if err := st.AttachID(dtos[i].ID); err != nil {
			return err
		}
	}

	r.tracker.Track(result.RowsAffected, stages)
	return nil
}

// Update writes the mutable fields of a stage if its version is current.
func (r *GormStageRepository) Update(ctx context.Context, st *stage.Stage) error {
	if err := st.Validate(); err != nil {
		return err
	}

	next := st.Version() + 1
	result := r.db.WithContext(ctx).
		Model(&StageDTO{}).
		Where("id = ? AND version = ?", st.ID(), st.Version()).
		Updates(map[string]any{
			"staff_id": st.StaffID(),
			"status":   st.Status().String(),
			"note":     st.Note(),
			"end_date": st.EndDate(),
			"version":  next,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&StageDTO{}).Where("id = ?", st.ID()).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("order item stage", st.ID())
		}
		return errs.NewVersionIsInvalidError("order item stage", st.ID(), st.Version())
	}

	st.SyncVersion(next)
	r.tracker.Track(result.RowsAffected, st)
	return nil
}

func (r *GormStageRepository) Get(ctx context.Context, id int64) (*stage.Stage, error) {
	var dto StageDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order item stage", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// ListByItem loads the full stage sequence of an order item in one query.
func (r *GormStageRepository) ListByItem(ctx context.Context, orderItemID int64) ([]*stage.Stage, error) {
	var dtos []StageDTO
	if err := r.db.WithContext(ctx).
		Where("order_item_id = ?", orderItemID).
		Order("index_stage, id").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	stages := make([]*stage.Stage, 0, len(dtos))
	for _, dto := range dtos {
		st, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		stages = append(stages, st)
	}

	return stages, nil
}

// CountByOrder counts the stages of an order's items in the given status.
func (r *GormStageRepository) CountByOrder(ctx context.Context, orderID int64, status stage.Status) (int, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&StageDTO{}).
		Joins("JOIN order_items ON order_items.id = order_item_stages.order_item_id").
		Where("order_items.order_id = ? AND order_item_stages.status = ?", orderID, status.String()).
		Count(&count).Error; err != nil {
		return 0, err
	}

	return int(count), nil
}
