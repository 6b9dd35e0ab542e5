// Package servers holds the wire models and route bindings of the lab API
// described by openapi.json.
package servers

import "time"

type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type NewOrderItem struct {
	ProductId       int64   `json:"productId"`
	TeethPositionId int64   `json:"teethPositionId"`
	SellingPrice    float64 `json:"sellingPrice"`
	Quantity        int     `json:"quantity"`
	Note            *string `json:"note,omitempty"`
}

type NewOrder struct {
	DentalClinicId int64          `json:"dentalClinicId"`
	DentistName    string         `json:"dentistName"`
	DentistNote    *string        `json:"dentistNote,omitempty"`
	PatientName    string         `json:"patientName"`
	PatientGender  string         `json:"patientGender"`
	Mode           string         `json:"mode"`
	TotalAmount    float64        `json:"totalAmount"`
	Discount       float64        `json:"discount"`
	Items          []NewOrderItem `json:"items"`
}

type Product struct {
	Id          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	CostPrice   float64 `json:"costPrice"`
	CategoryId  int64   `json:"categoryId"`
}

type TeethPosition struct {
	Id           int64  `json:"id"`
	ToothArch    int    `json:"toothArch"`
	PositionName string `json:"positionName"`
	Description  string `json:"description"`
}

type OrderItem struct {
	Id              int64         `json:"id"`
	ProductId       int64         `json:"productId"`
	Product         Product       `json:"product"`
	TeethPositionId int64         `json:"teethPositionId"`
	TeethPosition   TeethPosition `json:"teethPosition"`
	SellingPrice    float64       `json:"sellingPrice"`
	Quantity        int           `json:"quantity"`
	TotalAmount     float64       `json:"totalAmount"`
	Note            string        `json:"note"`
}

type Order struct {
	Id               int64       `json:"id"`
	InvoiceId        string      `json:"invoiceId"`
	DentalClinicId   int64       `json:"dentalClinicId"`
	DentalClinicName string      `json:"dentalClinicName"`
	DentistName      string      `json:"dentistName"`
	DentistNote      string      `json:"dentistNote"`
	PatientName      string      `json:"patientName"`
	PatientGender    string      `json:"patientGender"`
	Status           string      `json:"status"`
	Mode             string      `json:"mode"`
	TeethQuantity    int         `json:"teethQuantity"`
	TotalAmount      float64     `json:"totalAmount"`
	Discount         float64     `json:"discount"`
	FinalAmount      float64     `json:"finalAmount"`
	CreatedDate      time.Time   `json:"createdDate"`
	UpdatedBy        *int64      `json:"updatedBy"`
	UpdatedByName    string      `json:"updatedByName"`
	UpdatedAt        *time.Time  `json:"updatedAt"`
	StatusNote       string      `json:"statusNote"`
	Items            []OrderItem `json:"items"`
}

type OrderPage struct {
	Items      []Order `json:"items"`
	Page       int     `json:"page"`
	Size       int     `json:"size"`
	Total      int64   `json:"total"`
	TotalPages int     `json:"totalPages"`
}

type UpdateOrderStatus struct {
	Status    string  `json:"status"`
	UpdatedBy int64   `json:"updatedBy"`
	Note      *string `json:"note,omitempty"`
}

type OrderStatusResult struct {
	OrderId       int64      `json:"orderId"`
	Status        string     `json:"status"`
	UpdatedByName string     `json:"updatedByName"`
	UpdatedAt     *time.Time `json:"updatedAt"`
	Outcome       string     `json:"outcome"`
	Note          string     `json:"note"`
}

type Stage struct {
	Id            int64      `json:"id"`
	OrderItemId   int64      `json:"orderItemId"`
	IndexStage    int        `json:"indexStage"`
	StaffId       *int64     `json:"staffId"`
	StaffName     string     `json:"staffName"`
	StageName     string     `json:"stageName"`
	Description   string     `json:"description"`
	ExecutionTime float64    `json:"executionTime"`
	Status        string     `json:"status"`
	StartDate     time.Time  `json:"startDate"`
	EndDate       *time.Time `json:"endDate"`
	Note          string     `json:"note"`
	Image         string     `json:"image"`
}

type StagePage struct {
	Items      []Stage `json:"items"`
	Page       int     `json:"page"`
	Size       int     `json:"size"`
	Total      int64   `json:"total"`
	TotalPages int     `json:"totalPages"`
}

type UpdateStage struct {
	Status  string  `json:"status"`
	StaffId *int64  `json:"staffId,omitempty"`
	Note    *string `json:"note,omitempty"`
}

type StageResult struct {
	Stage        Stage  `json:"stage"`
	OperatorName string `json:"operatorName"`
	Outcome      string `json:"outcome"`
	Note         string `json:"note"`
}

// ListOrdersParams defines parameters for ListOrders.
type ListOrdersParams struct {
	InvoiceId *string `form:"invoiceId,omitempty" json:"invoiceId,omitempty"`
	Mode      *string `form:"mode,omitempty" json:"mode,omitempty"`
	Status    *string `form:"status,omitempty" json:"status,omitempty"`
	Page      *int    `form:"page,omitempty" json:"page,omitempty"`
	Size      *int    `form:"size,omitempty" json:"size,omitempty"`
}

// ListOrderItemStagesParams defines parameters for ListOrderItemStages.
type ListOrderItemStagesParams struct {
	OrderItemId *int64  `form:"orderItemId,omitempty" json:"orderItemId,omitempty"`
	StaffId     *int64  `form:"staffId,omitempty" json:"staffId,omitempty"`
	IndexStage  *int    `form:"indexStage,omitempty" json:"indexStage,omitempty"`
	Status      *string `form:"status,omitempty" json:"status,omitempty"`
	Page        *int    `form:"page,omitempty" json:"page,omitempty"`
	Size        *int    `form:"size,omitempty" json:"size,omitempty"`
}
