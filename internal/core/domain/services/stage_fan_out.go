package services

import (
	"fmt"
	"time"

	"dentallab/internal/core/domain/model/stage"
)

// ItemTemplates pairs an order item with the stage templates of its product category.
type ItemTemplates struct {
	OrderItemID int64
	Templates   []stage.Template
}

// StageFanOut materializes the production stages of an order.
//
// Business rules:
//   - one Pending stage per template, per item
//   - indexStage follows template order and is contiguous from 1
//   - all stages share the transition time as startDate
//   - no operator is assigned
type StageFanOut struct{}

func NewStageFanOut() StageFanOut {
	return StageFanOut{}
}

// FanOut returns the new stages item by item, in template order. An item whose
// category has no templates contributes no stages.
func (StageFanOut) FanOut(items []ItemTemplates, now time.Time) ([]*stage.Stage, error) {
	total := 0
	for _, it := range items {
		total += len(it.Templates)
	}

	stages := make([]*stage.Stage, 0, total)
	for _, it := range items {
		if err := stage.ValidateTemplates(it.Templates); err != nil {
			return nil, fmt.Errorf("order item %d: %w", it.OrderItemID, err)
		}
		for _, tpl := range it.Templates {
			st, err := stage.NewStage(it.OrderItemID, tpl, now)
			if err != nil {
				return nil, fmt.Errorf("order item %d: %w", it.OrderItemID, err)
			}
			stages = append(stages, st)
		}
	}

	return stages, nil
}
