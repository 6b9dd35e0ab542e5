// Package ports defines the storage contracts of the order and stage domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"dentallab/internal/core/domain/model/order"
)

// ItemCategory resolves an order item to the product category whose stage
// templates it follows.
type ItemCategory struct {
	OrderItemID int64
	ProductID   int64
	CategoryID  int64
}

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add inserts the order and all of its items in one batch and attaches the
	// storage-assigned ids to the aggregate.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update writes the mutable order fields when the stored version matches
	// aggregate.Version(), then bumps the version.
	// Returns errs.VersionIsInvalidError when the row changed in between.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with its items.
	Get(ctx context.Context, id int64) (*order.Order, error)

	// ListItemCategories returns the items of an order in insertion order,
	// each with its product category.
	ListItemCategories(ctx context.Context, orderID int64) ([]ItemCategory, error)
}
