package queries

import (
	"errors"
	"time"

	"dentallab/internal/pkg/errs"
	"dentallab/internal/pkg/guard"
)

var (
	ErrGetOverdueStagesQueryIsNotConstructed = errors.New(
		"GetOverdueStagesQuery must be created via NewGetOverdueStagesQuery constructor",
	)
)

// GetOverdueStagesQuery finds Pending stages that have run past their
// execution time as of At.
type GetOverdueStagesQuery struct {
	at time.Time

	guard guard.ConstructorGuard
}

func NewGetOverdueStagesQuery(at time.Time) (GetOverdueStagesQuery, error) {
	if at.IsZero() {
		return GetOverdueStagesQuery{}, errs.NewValueIsRequiredError("at")
	}
	return GetOverdueStagesQuery{at: at, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOverdueStagesQuery) Validate() error {
	return q.guard.Validate(ErrGetOverdueStagesQueryIsNotConstructed)
}

func (q GetOverdueStagesQuery) At() time.Time { return q.at }

// OverdueStage is a late stage with the invoice of its order.
type OverdueStage struct {
	StageView
	OrderID   int64
	InvoiceID string
	DueAt     time.Time
	OverdueBy time.Duration
}
