package ports

import (
	"context"

	"dentallab/internal/core/domain/model/stage"
)

// StageRepository defines the persistence contract for order item stages.
type StageRepository interface {
	// AddMany inserts the stages in one batch and attaches their ids.
	AddMany(ctx context.Context, stages []*stage.Stage) error

	// Update writes status, operator, note and end date under the same
	// version check as OrderRepository.Update.
	Update(ctx context.Context, st *stage.Stage) error

	Get(ctx context.Context, id int64) (*stage.Stage, error)

	// ListByItem returns every stage of an order item ordered by indexStage.
	ListByItem(ctx context.Context, orderItemID int64) ([]*stage.Stage, error)

	// CountByOrder counts the stages of all items of an order in the given status.
	CountByOrder(ctx context.Context, orderID int64, status stage.Status) (int, error)
}
