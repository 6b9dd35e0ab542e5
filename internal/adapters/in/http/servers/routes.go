package servers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// Create an order with its items
	// (POST /orders)
	CreateOrder(ctx echo.Context) error
	// Page through orders
	// (GET /orders)
	ListOrders(ctx echo.Context, params ListOrdersParams) error
	// (GET /orders/{orderId})
	GetOrder(ctx echo.Context, orderId int64) error
	// (PATCH /orders/{orderId}/status)
	UpdateOrderStatus(ctx echo.Context, orderId int64) error
	// Page through production stages
	// (GET /order-item-stages)
	ListOrderItemStages(ctx echo.Context, params ListOrderItemStagesParams) error
	// (PATCH /order-item-stages/{stageId})
	UpdateOrderItemStage(ctx echo.Context, stageId int64) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func pathID(ctx echo.Context, name string) (int64, error) {
	var id int64
	err := runtime.BindStyledParameterWithOptions("simple", name, ctx.Param(name), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
	}
	return id, nil
}

func queryParam(ctx echo.Context, name string, dest any) error {
	if err := runtime.BindQueryParameter("form", true, false, name, ctx.QueryParams(), dest); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
	}
	return nil
}

// CreateOrder converts echo context to params.
func (w *ServerInterfaceWrapper) CreateOrder(ctx echo.Context) error {
	return w.Handler.CreateOrder(ctx)
}

// ListOrders converts echo context to params.
func (w *ServerInterfaceWrapper) ListOrders(ctx echo.Context) error {
	var params ListOrdersParams
	for name, dest := range map[string]any{
		"invoiceId": &params.InvoiceId,
		"mode":      &params.Mode,
		"status":    &params.Status,
		"page":      &params.Page,
		"size":      &params.Size,
	} {
		if err := queryParam(ctx, name, dest); err != nil {
			return err
		}
	}
	return w.Handler.ListOrders(ctx, params)
}

// GetOrder converts echo context to params.
func (w *ServerInterfaceWrapper) GetOrder(ctx echo.Context) error {
	orderID, err := pathID(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.GetOrder(ctx, orderID)
}

// UpdateOrderStatus converts echo context to params.
func (w *ServerInterfaceWrapper) UpdateOrderStatus(ctx echo.Context) error {
	orderID, err := pathID(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.UpdateOrderStatus(ctx, orderID)
}

// ListOrderItemStages converts echo context to params.
func (w *ServerInterfaceWrapper) ListOrderItemStages(ctx echo.Context) error {
	var params ListOrderItemStagesParams
	for name, dest := range map[string]any{
		"orderItemId": &params.OrderItemId,
		"staffId":     &params.StaffId,
		"indexStage":  &params.IndexStage,
		"status":      &params.Status,
		"page":        &params.Page,
		"size":        &params.Size,
	} {
		if err := queryParam(ctx, name, dest); err != nil {
			return err
		}
	}
	return w.Handler.ListOrderItemStages(ctx, params)
}

// UpdateOrderItemStage converts echo context to params.
func (w *ServerInterfaceWrapper) UpdateOrderItemStage(ctx echo.Context) error {
	stageID, err := pathID(ctx, "stageId")
	if err != nil {
		return err
	}
	return w.Handler.UpdateOrderItemStage(ctx, stageID)
}

// EchoRouter is the subset of echo.Echo and echo.Group used for registration.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlersWithBaseURL adds each server route to the router under baseURL.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{Handler: si}

	router.POST(baseURL+"/orders", wrapper.CreateOrder)
	router.GET(baseURL+"/orders", wrapper.ListOrders)
	router.GET(baseURL+"/orders/:orderId", wrapper.GetOrder)
	router.PATCH(baseURL+"/orders/:orderId/status", wrapper.UpdateOrderStatus)
	router.GET(baseURL+"/order-item-stages", wrapper.ListOrderItemStages)
	router.PATCH(baseURL+"/order-item-stages/:stageId", wrapper.UpdateOrderItemStage)
}
