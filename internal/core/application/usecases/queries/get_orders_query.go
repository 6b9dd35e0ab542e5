package queries

import (
	"errors"
	"strings"

	"dentallab/internal/core/domain/model/order"
	"dentallab/internal/pkg/guard"

	"gorm.io/gorm"
)

var (
	ErrGetOrdersQueryIsNotConstructed = errors.New(
		"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
	)
)

// OrderFilter narrows an order listing. Absent fields do not filter.
type OrderFilter struct {
	// InvoiceID matches as a case-insensitive substring after trimming.
	InvoiceID string
	Mode      *order.Mode
	Status    *order.Status
}

func (f OrderFilter) Validate() error {
	var modeErr, statusErr error
	if f.Mode != nil {
		modeErr = f.Mode.Validate()
	}
	if f.Status != nil {
		statusErr = f.Status.Validate()
	}
	return errors.Join(modeErr, statusErr)
}

// likeEscaper makes LIKE wildcards in user input match literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// scopes renders the filter as gorm Where scopes over the orders table.
func (f OrderFilter) scopes() []func(*gorm.DB) *gorm.DB {
	var out []func(*gorm.DB) *gorm.DB
	if invoice := strings.ToLower(strings.TrimSpace(f.InvoiceID)); invoice != "" {
		out = append(out, func(db *gorm.DB) *gorm.DB {
			return db.Where(`LOWER(orders.invoice_id) LIKE ? ESCAPE '\'`, "%"+likeEscaper.Replace(invoice)+"%")
		})
	}
	if f.Mode != nil {
		mode := f.Mode.String()
		out = append(out, func(db *gorm.DB) *gorm.DB {
			return db.Where("orders.mode = ?", mode)
		})
	}
	if f.Status != nil {
		status := f.Status.String()
		out = append(out, func(db *gorm.DB) *gorm.DB {
			return db.Where("orders.status = ?", status)
		})
	}
	return out
}

// GetOrdersQuery lists orders by invoice id.
//
// Example:
//
//	producing := order.StatusProducing
//	query, err := NewGetOrdersQuery(OrderFilter{Status: &producing}, PageRequest{Page: 1, Size: 20})
//	if err != nil {
//	    return err
//	}
//	page, err := handler.Handle(ctx, query)
type GetOrdersQuery struct {
	filter OrderFilter
	page   PageRequest

	guard guard.ConstructorGuard
}

func NewGetOrdersQuery(filter OrderFilter, page PageRequest) (GetOrdersQuery, error) {
	if err := errors.Join(filter.Validate(), page.Validate()); err != nil {
		return GetOrdersQuery{}, err
	}
	return GetOrdersQuery{filter: filter, page: page, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

func (q GetOrdersQuery) Filter() OrderFilter { return q.filter }
func (q GetOrdersQuery) Page() PageRequest   { return q.page }
