package queries

import (
	"math"
	"time"

	"dentallab/internal/core/domain/model/directory"

	"github.com/shopspring/decimal"
)

// OrderItemView is an order line with its product and tooth position resolved.
// A product or position missing from the directory leaves only its ID set.
type OrderItemView struct {
	ID            int64
	Product       directory.Product
	TeethPosition directory.TeethPosition
	SellingPrice  decimal.Decimal
	Quantity      int
	TotalAmount   decimal.Decimal
	Note          string
}

// OrderView is the detail shape shared by order listing and lookup.
// Enumerations carry their display strings.
type OrderView struct {
	ID               int64
	InvoiceID        string
	DentalClinicID   int64
	DentalClinicName string
	DentistName      string
	DentistNote      string
	PatientName      string
	PatientGender    string
	Status           string
	Mode             string
	TeethQuantity    int
	TotalAmount      decimal.Decimal
	Discount         decimal.Decimal
	FinalAmount      decimal.Decimal
	CreatedDate      time.Time
	UpdatedBy        *int64
	UpdatedByName    string
	UpdatedAt        *time.Time
	StatusNote       string
	Items            []OrderItemView
}

// StageView is a production stage with its operator's display name.
type StageView struct {
	ID            int64
	OrderItemID   int64
	IndexStage    int
	StaffID       *int64
	StaffName     string
	StageName     string
	Description   string
	ExecutionTime time.Duration
	Status        string
	StartDate     time.Time
	EndDate       *time.Time
	Note          string
	Image         string
}

// stageRow is the scan target of stage listings.
type stageRow struct {
	ID            int64
	OrderItemID   int64
	IndexStage    int
	StaffID       *int64
	StaffName     *string
	StageName     string
	Description   string
	ExecutionTime float64
	Status        string
	StartDate     time.Time
	EndDate       *time.Time
	Note          string
	Image         string
}

const stageColumns = `order_item_stages.id, order_item_stages.order_item_id, order_item_stages.index_stage,
	order_item_stages.staff_id, accounts.full_name AS staff_name, order_item_stages.stage_name,
	order_item_stages.description, order_item_stages.execution_time, order_item_stages.status,
	order_item_stages.start_date, order_item_stages.end_date, order_item_stages.note, order_item_stages.image`

func (r stageRow) view() StageView {
	return StageView{
		ID:            r.ID,
		OrderItemID:   r.OrderItemID,
		IndexStage:    r.IndexStage,
		StaffID:       r.StaffID,
		StaffName:     deref(r.StaffName),
		StageName:     r.StageName,
		Description:   r.Description,
		ExecutionTime: time.Duration(math.Round(r.ExecutionTime*3600)) * time.Second,
		Status:        r.Status,
		StartDate:     r.StartDate,
		EndDate:       r.EndDate,
		Note:          r.Note,
		Image:         r.Image,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
