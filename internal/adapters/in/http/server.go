// Package http exposes the framing shop workflow over a thin echo surface.
// Handlers translate between wire DTOs and application commands/queries; no
// business rules live here.
package http

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"frameshop/internal/core/application/usecases/commands"
	"frameshop/internal/core/application/usecases/queries"
	"frameshop/internal/core/domain/model/kernel"
	"frameshop/internal/core/domain/model/order"
	"frameshop/internal/pkg/errs"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createCustomerHandler commands.CreateCustomerCommandHandler
	createOrderHandler    commands.CreateOrderCommandHandler
	changeStatusHandler   commands.ChangeOrderStatusCommandHandler
	orderMaterialsHandler commands.OrderMaterialsCommandHandler

	// Query handlers
	getOrderHistoryHandler   queries.GetOrderHistoryQueryHandler
	getOrdersByStatusHandler queries.GetOrdersByStatusQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createCustomerHandler commands.CreateCustomerCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	changeStatusHandler commands.ChangeOrderStatusCommandHandler,
	orderMaterialsHandler commands.OrderMaterialsCommandHandler,
	getOrderHistoryHandler queries.GetOrderHistoryQueryHandler,
	getOrdersByStatusHandler queries.GetOrdersByStatusQueryHandler,
) *Server {
	return &Server{
		createCustomerHandler:    createCustomerHandler,
		createOrderHandler:       createOrderHandler,
		changeStatusHandler:      changeStatusHandler,
		orderMaterialsHandler:    orderMaterialsHandler,
		getOrderHistoryHandler:   getOrderHistoryHandler,
		getOrdersByStatusHandler: getOrdersByStatusHandler,
	}
}

// RegisterRoutes attaches all endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	v1 := e.Group("/api/v1")
	v1.POST("/customers", s.CreateCustomer)
	v1.POST("/orders", s.CreateOrder)
	v1.POST("/orders/:id/status", s.ChangeOrderStatus)
	v1.GET("/orders/:id/history", s.GetOrderHistory)
	v1.GET("/orders", s.GetOrdersByStatus)
	v1.POST("/material-orders", s.OrderMaterials)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}

// CreateCustomer handles POST /api/v1/customers.
func (s *Server) CreateCustomer(ctx echo.Context) error {
	var req CreateCustomerRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	customerID := kernel.NewUUID()
	cmd, err := commands.NewCreateCustomerCommand(customerID, req.Name, req.Phone, req.Email)
	if err != nil {
		return badRequest(ctx, "Invalid customer data: "+err.Error())
	}

	if err = s.createCustomerHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return internalError(ctx, "Failed to create customer")
	}

	return ctx.JSON(http.StatusCreated, CreateCustomerResponse{ID: customerID.Bytes()})
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	customerID, err := kernel.UUIDFromBytes(req.CustomerID[:])
	if err != nil {
		return badRequest(ctx, "Invalid customer id")
	}

	priority, err := order.PriorityFromString(req.Priority)
	if err != nil {
		return badRequest(ctx, "Invalid priority: "+req.Priority)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID, customerID, req.Description, req.Notes,
		priority, req.TotalCents, req.DepositCents, req.CreatedBy,
	)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return notFound(ctx, "Customer not found")
		}
		return internalError(ctx, "Failed to create order")
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{ID: orderID.Bytes()})
}

// ChangeOrderStatus handles POST /api/v1/orders/:id/status.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req ChangeStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	status, err := order.StatusFromString(req.Status)
	if err != nil {
		return badRequest(ctx, "Invalid status: "+req.Status)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, status, req.ChangedBy, req.Reason)
	if err != nil {
		return badRequest(ctx, "Invalid status change: "+err.Error())
	}

	if err = s.changeStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return notFound(ctx, "Order not found")
		}
		return internalError(ctx, "Failed to change order status")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrderHistory handles GET /api/v1/orders/:id/history.
func (s *Server) GetOrderHistory(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetOrderHistoryQuery(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid history query: "+err.Error())
	}

	entries, err := s.getOrderHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve order history")
	}

	response := make([]HistoryEntryResponse, len(entries))
	for i, entry := range entries {
		response[i] = HistoryEntryResponse{
			FromStatus: entry.FromStatus,
			ToStatus:   entry.ToStatus,
			ChangedBy:  entry.ChangedBy,
			Reason:     entry.Reason,
			At:         entry.At,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrdersByStatus handles GET /api/v1/orders?status=.
func (s *Server) GetOrdersByStatus(ctx echo.Context) error {
	status, err := order.StatusFromString(ctx.QueryParam("status"))
	if err != nil {
		return badRequest(ctx, "Invalid status filter")
	}

	query, err := queries.NewGetOrdersByStatusQuery(status)
	if err != nil {
		return badRequest(ctx, "Invalid workboard query: "+err.Error())
	}

	rows, err := s.getOrdersByStatusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve orders")
	}

	response := make([]OrderSummaryResponse, len(rows))
	for i, row := range rows {
		response[i] = OrderSummaryResponse{
			ID:              row.ID.Bytes(),
			TrackingCode:    row.TrackingCode,
			CustomerID:      row.CustomerID.Bytes(),
			Description:     row.Description,
			Priority:        row.Priority,
			Status:          row.Status,
			TotalCents:      row.TotalCents,
			DepositCents:    row.DepositCents,
			CreatedAt:       row.CreatedAt,
			StatusChangedAt: row.StatusChangedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// OrderMaterials handles POST /api/v1/material-orders.
// The caller always receives a decision object: a success summary, an
// override-required prompt, or a denial. A blocked batch answers 409.
func (s *Server) OrderMaterials(ctx echo.Context) error {
	var req OrderMaterialsRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderIDs := make([]kernel.UUID, 0, len(req.OrderIDs))
	for _, raw := range req.OrderIDs {
		id, err := kernel.UUIDFromBytes(raw[:])
		if err != nil {
			return badRequest(ctx, "Invalid order id in batch")
		}
		orderIDs = append(orderIDs, id)
	}

	cmd, err := commands.NewOrderMaterialsCommand(orderIDs, req.OrderedBy, req.OverrideCode, req.OverrideReason)
	if err != nil {
		return badRequest(ctx, "Invalid material order: "+err.Error())
	}

	result, err := s.orderMaterialsHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return badRequest(ctx, "Invalid material order: "+err.Error())
	}

	response := toOrderMaterialsResponse(result)
	if !result.Success && result.RequiresOverride {
		return ctx.JSON(http.StatusConflict, response)
	}

	return ctx.JSON(http.StatusOK, response)
}

func toOrderMaterialsResponse(result commands.OrderMaterialsResult) OrderMaterialsResponse {
	existing := make([]uuid.UUID, 0, len(result.Check.ExistingOrders))
	for i := range result.Check.ExistingOrders {
		existing = append(existing, result.Check.ExistingOrders[i].OrderID().Bytes())
	}

	items := make([]MaterialOrderItemResponse, 0, len(result.Items))
	for _, item := range result.Items {
		items = append(items, MaterialOrderItemResponse{
			OrderID: item.OrderID.Bytes(),
			Success: item.Success,
			Message: item.Message,
		})
	}

	return OrderMaterialsResponse{
		Success:          result.Success,
		Message:          result.Message,
		RequiresOverride: result.RequiresOverride,
		Overridden:       result.Overridden,
		DuplicateCheck: DuplicateCheckResponse{
			IsDuplicate:      result.Check.IsDuplicate,
			RequiresOverride: result.Check.RequiresOverride,
			RiskLevel:        result.Check.RiskLevel.String(),
			ExistingOrders:   existing,
		},
		Items:     items,
		Succeeded: result.Succeeded,
		Failed:    result.Failed,
	}
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func notFound(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusNotFound, ErrorResponse{
		Code:    http.StatusNotFound,
		Message: message,
	})
}

func internalError(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
		Code:    http.StatusInternalServerError,
		Message: message,
	})
}
