// Package queries contains the read side: filtered, paged views over orders
// and stages built directly on the database with joined display data.
package queries

import (
	"errors"

	"dentallab/internal/pkg/errs"

	"gorm.io/gorm"
)

// Page is one page of a filtered, ordered result set.
type Page[T any] struct {
	Items      []T
	Page       int
	Size       int
	Total      int64
	TotalPages int
}

// PageRequest selects page Page (1-based) of Size rows.
type PageRequest struct {
	Page int
	Size int
}

func (r PageRequest) Validate() error {
	var pageErr, sizeErr error
	if r.Page < 1 {
		pageErr = errs.NewValueIsOutOfRangeError("page", r.Page, 1, "unbounded")
	}
	if r.Size < 1 {
		sizeErr = errs.NewValueIsOutOfRangeError("size", r.Size, 1, "unbounded")
	}
	return errors.Join(pageErr, sizeErr)
}

func (r PageRequest) offset() int {
	return (r.Page - 1) * r.Size
}

// paginate is a gorm scope limiting the statement to the requested page.
func paginate(r PageRequest) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(r.offset()).Limit(r.Size)
	}
}

func newPage[T any](items []T, r PageRequest, total int64) Page[T] {
	pages := int(total / int64(r.Size))
	if total%int64(r.Size) != 0 {
		pages++
	}
	if items == nil {
		items = []T{}
	}
	return Page[T]{
		Items:      items,
		Page:       r.Page,
		Size:       r.Size,
		Total:      total,
		TotalPages: pages,
	}
}
