package http

import (
	"log/slog"
	"net/http"

	"dentallab/internal/adapters/in/http/servers"
	"dentallab/internal/core/application/usecases/commands"
	"dentallab/internal/core/application/usecases/queries"
	"dentallab/internal/core/domain/model/order"
	"dentallab/internal/core/domain/model/stage"
	"dentallab/internal/core/domain/services"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

const (
	defaultPage = 1
	defaultSize = 20
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler
	updateStageHandler       commands.UpdateStageCommandHandler

	// Query handlers
	getOrdersHandler      queries.GetOrdersQueryHandler
	getOrderDetailHandler queries.GetOrderDetailQueryHandler
	listStagesHandler     queries.ListStagesQueryHandler

	logger *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	updateStageHandler commands.UpdateStageCommandHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
	getOrderDetailHandler queries.GetOrderDetailQueryHandler,
	listStagesHandler queries.ListStagesQueryHandler,
	logger *slog.Logger,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		updateOrderStatusHandler: updateOrderStatusHandler,
		updateStageHandler:       updateStageHandler,
		getOrdersHandler:         getOrdersHandler,
		getOrderDetailHandler:    getOrderDetailHandler,
		listStagesHandler:        listStagesHandler,
		logger:                   logger.With("component", "http.Server"),
	}
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body servers.NewOrder
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	gender, err := order.ParseGender(body.PatientGender)
	if err != nil {
		return s.fail(ctx, err)
	}
	mode, err := order.ParseMode(body.Mode)
	if err != nil {
		return s.fail(ctx, err)
	}

	items := make([]commands.CreateOrderItem, 0, len(body.Items))
	for _, it := range body.Items {
		items = append(items, commands.CreateOrderItem{
			ProductID:       it.ProductId,
			TeethPositionID: it.TeethPositionId,
			SellingPrice:    amount(it.SellingPrice),
			Quantity:        it.Quantity,
			Note:            value(it.Note),
		})
	}

	cmd, err := commands.NewCreateOrderCommand(order.Details{
		DentalClinicID: body.DentalClinicId,
		DentistName:    body.DentistName,
		DentistNote:    value(body.DentistNote),
		PatientName:    body.PatientName,
		PatientGender:  gender,
		Mode:           mode,
	}, amount(body.TotalAmount), amount(body.Discount), items)
	if err != nil {
		return s.fail(ctx, err)
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	// The read model resolves product and tooth names. The order is already
	// committed, so a failed lookup falls back to the aggregate.
	detail, err := s.orderDetail(ctx, created.Order.ID())
	if err != nil {
		s.logger.WarnContext(ctx.Request().Context(), "created order not readable",
			"order_id", created.Order.ID(), "error", err)
		return ctx.JSON(http.StatusCreated, orderFromAggregate(created))
	}
	return ctx.JSON(http.StatusCreated, detail)
}

// ListOrders handles GET /api/v1/orders.
func (s *Server) ListOrders(ctx echo.Context, params servers.ListOrdersParams) error {
	filter := queries.OrderFilter{InvoiceID: value(params.InvoiceId)}
	if params.Mode != nil {
		mode, err := order.ParseMode(*params.Mode)
		if err != nil {
			return s.fail(ctx, err)
		}
		filter.Mode = &mode
	}
	if params.Status != nil {
		status, err := order.ParseStatus(*params.Status)
		if err != nil {
			return s.fail(ctx, err)
		}
		filter.Status = &status
	}

	query, err := queries.NewGetOrdersQuery(filter, pageRequest(params.Page, params.Size))
	if err != nil {
		return s.fail(ctx, err)
	}

	page, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := servers.OrderPage{
		Items:      make([]servers.Order, 0, len(page.Items)),
		Page:       page.Page,
		Size:       page.Size,
		Total:      page.Total,
		TotalPages: page.TotalPages,
	}
	for _, v := range page.Items {
		response.Items = append(response.Items, orderFromView(v))
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/{orderId}.
func (s *Server) GetOrder(ctx echo.Context, orderID int64) error {
	detail, err := s.orderDetail(ctx, orderID)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, detail)
}

func (s *Server) orderDetail(ctx echo.Context, orderID int64) (servers.Order, error) {
	query, err := queries.NewGetOrderDetailQuery(orderID)
	if err != nil {
		return servers.Order{}, err
	}
	view, err := s.getOrderDetailHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return servers.Order{}, err
	}
	return orderFromView(view), nil
}

// UpdateOrderStatus handles PATCH /api/v1/orders/{orderId}/status.
// An unrecognised target status is passed through as unknown and answered
// with an Unchanged outcome.
func (s *Server) UpdateOrderStatus(ctx echo.Context, orderID int64) error {
	var body servers.UpdateOrderStatus
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	status, _ := order.ParseStatus(body.Status)
	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, status, body.UpdatedBy, value(body.Note))
	if err != nil {
		return s.fail(ctx, err)
	}

	res, err := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(outcomeStatus(res.Outcome), servers.OrderStatusResult{
		OrderId:       res.OrderID,
		Status:        res.Status.String(),
		UpdatedByName: res.UpdatedByName,
		UpdatedAt:     res.UpdatedAt,
		Outcome:       res.Outcome.String(),
		Note:          res.Note,
	})
}

// ListOrderItemStages handles GET /api/v1/order-item-stages.
func (s *Server) ListOrderItemStages(ctx echo.Context, params servers.ListOrderItemStagesParams) error {
	filter := queries.StageFilter{
		OrderItemID: params.OrderItemId,
		StaffID:     params.StaffId,
		IndexStage:  params.IndexStage,
	}
	if params.Status != nil {
		status, err := stage.ParseStatus(*params.Status)
		if err != nil {
			return s.fail(ctx, err)
		}
		filter.Status = &status
	}

	query, err := queries.NewListStagesQuery(filter, pageRequest(params.Page, params.Size))
	if err != nil {
		return s.fail(ctx, err)
	}

	page, err := s.listStagesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := servers.StagePage{
		Items:      make([]servers.Stage, 0, len(page.Items)),
		Page:       page.Page,
		Size:       page.Size,
		Total:      page.Total,
		TotalPages: page.TotalPages,
	}
	for _, v := range page.Items {
		response.Items = append(response.Items, stageFromView(v))
	}
	return ctx.JSON(http.StatusOK, response)
}

// UpdateOrderItemStage handles PATCH /api/v1/order-item-stages/{stageId}.
func (s *Server) UpdateOrderItemStage(ctx echo.Context, stageID int64) error {
	var body servers.UpdateStage
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	status, _ := stage.ParseStatus(body.Status)
	cmd, err := commands.NewUpdateStageCommand(stageID, status, body.StaffId, value(body.Note))
	if err != nil {
		return s.fail(ctx, err)
	}

	res, err := s.updateStageHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	st := stageFromAggregate(res.Stage)
	st.StaffName = res.OperatorName
	return ctx.JSON(outcomeStatus(res.Outcome), servers.StageResult{
		Stage:        st,
		OperatorName: res.OperatorName,
		Outcome:      res.Outcome.String(),
		Note:         res.Note,
	})
}

func outcomeStatus(o services.Outcome) int {
	if o == services.OutcomeRejected {
		return http.StatusConflict
	}
	return http.StatusOK
}

func pageRequest(page, size *int) queries.PageRequest {
	r := queries.PageRequest{Page: defaultPage, Size: defaultSize}
	if page != nil {
		r.Page = *page
	}
	if size != nil {
		r.Size = *size
	}
	return r
}

func amount(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f).Round(2)
}

func value(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
