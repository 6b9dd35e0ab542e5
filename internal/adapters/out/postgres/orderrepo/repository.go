package orderrepo

import (
	"context"
	"errors"
	"fmt"

	"dentallab/internal/core/domain/model/order"
	"dentallab/internal/core/ports"
	"dentallab/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker rowTracker
}

// rowTracker collects the rows written inside a unit of work.
type rowTracker interface {
	Track(rows int64, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker rowTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order and its items. Both ids are read back into the aggregate.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if aggregate.ID() != 0 {
		return errs.NewValueIsInvalidErrorWithCause("order id", fmt.Errorf("order %d is already stored", aggregate.ID()))
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Create(&dto)
	if result.Error != nil {
		return result.Error
	}

	if err := aggregate.AttachID(dto.ID); err != nil {
		return err
	}
	for i, item := range aggregate.Items() {
		if err := item.AttachID(dto.Items[i].ID); err != nil {
			return err
		}
	}

	r.tracker.Track(result.RowsAffected+int64(len(dto.Items)), aggregate)
	return nil
}

// Update writes the mutable fields of an order if its version is current.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	next := aggregate.Version() + 1
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND version = ?", aggregate.ID(), aggregate.Version()).
		Updates(map[string]any{
			"invoice_id":  aggregate.InvoiceID().String(),
			"status":      aggregate.Status().String(),
			"updated_by":  aggregate.UpdatedBy(),
			"updated_at":  aggregate.UpdatedAt(),
			"status_note": aggregate.StatusNote(),
			"version":     next,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return r.missingOrStale(ctx, aggregate)
	}

	aggregate.SyncVersion(next)
	r.tracker.Track(result.RowsAffected, aggregate)
	return nil
}

func (r *GormOrderRepository) missingOrStale(ctx context.Context, aggregate *order.Order) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", aggregate.ID()).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID())
	}
	return errs.NewVersionIsInvalidError("order", aggregate.ID(), aggregate.Version())
}

// Get retrieves an order with its items by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		First(&dto, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// ListItemCategories joins the order items with their products.
func (r *GormOrderRepository) ListItemCategories(ctx context.Context, orderID int64) ([]ports.ItemCategory, error) {
	categories := make([]ports.ItemCategory, 0)

	rows, err := r.db.WithContext(ctx).Raw(`
		SELECT
			order_items.id,
			order_items.product_id,
			products.category_id
		FROM order_items
		JOIN products ON products.id = order_items.product_id
		WHERE order_items.order_id = ?
		ORDER BY order_items.id
	`, orderID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var c ports.ItemCategory
		if err = rows.Scan(&c.OrderItemID, &c.ProductID, &c.CategoryID); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return categories, nil
}
