package http

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/menu"
	"foodorder/internal/core/domain/model/order"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	placeOrderHandler          commands.PlaceOrderCommandHandler
	fulfillNextOrderHandler    commands.FulfillNextOrderCommandHandler
	undoLastDeliveryHandler    commands.UndoLastDeliveryCommandHandler
	addMenuItemHandler         commands.AddMenuItemCommandHandler
	setItemAvailabilityHandler commands.SetItemAvailabilityCommandHandler

	// Query handlers
	getMenuHandler            queries.GetMenuQueryHandler
	getPendingOrdersHandler   queries.GetPendingOrdersQueryHandler
	getDeliveredOrdersHandler queries.GetDeliveredOrdersQueryHandler
	// nil when no event log database is configured
	getOrderEventsHandler *queries.GetOrderEventsQueryHandler

	logger *slog.Logger
}

// Handlers groups the use case handlers the server dispatches to.
type Handlers struct {
	PlaceOrder          commands.PlaceOrderCommandHandler
	FulfillNextOrder    commands.FulfillNextOrderCommandHandler
	UndoLastDelivery    commands.UndoLastDeliveryCommandHandler
	AddMenuItem         commands.AddMenuItemCommandHandler
	SetItemAvailability commands.SetItemAvailabilityCommandHandler

	GetMenu            queries.GetMenuQueryHandler
	GetPendingOrders   queries.GetPendingOrdersQueryHandler
	GetDeliveredOrders queries.GetDeliveredOrdersQueryHandler
	GetOrderEvents     *queries.GetOrderEventsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(h Handlers, logger *slog.Logger) *Server {
	return &Server{
		placeOrderHandler:          h.PlaceOrder,
		fulfillNextOrderHandler:    h.FulfillNextOrder,
		undoLastDeliveryHandler:    h.UndoLastDelivery,
		addMenuItemHandler:         h.AddMenuItem,
		setItemAvailabilityHandler: h.SetItemAvailability,
		getMenuHandler:             h.GetMenu,
		getPendingOrdersHandler:    h.GetPendingOrders,
		getDeliveredOrdersHandler:  h.GetDeliveredOrders,
		getOrderEventsHandler:      h.GetOrderEvents,
		logger:                     logger.With("component", "http_server"),
	}
}

// GetMenu handles GET /api/v1/menu - lists the menu.
func (s *Server) GetMenu(ctx echo.Context, params GetMenuParams) error {
	onlyAvailable := params.Available != nil && *params.Available

	items, err := s.getMenuHandler.Handle(ctx.Request().Context(), queries.NewGetMenuQuery(onlyAvailable))
	if err != nil {
		return writeError(ctx, err, "Failed to retrieve menu")
	}

	response := make([]MenuItem, len(items))
	for i, item := range items {
		response[i] = toMenuItem(item)
	}

	return ctx.JSON(http.StatusOK, response)
}

// AddMenuItem handles POST /api/v1/menu - appends an item to the menu.
func (s *Server) AddMenuItem(ctx echo.Context) error {
	var body NewMenuItem
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	available := body.Available == nil || *body.Available
	cmd, err := commands.NewAddMenuItemCommand(body.ID, body.Name, body.Category, body.Price, available)
	if err != nil {
		return writeError(ctx, err, "Invalid menu item")
	}

	item, err := s.addMenuItemHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		s.logger.ErrorContext(ctx.Request().Context(), "Failed to add menu item", "error", err)
		return writeError(ctx, err, "Failed to add menu item")
	}

	return ctx.JSON(http.StatusCreated, toMenuItem(item))
}

// SetItemAvailability handles PUT /api/v1/menu/{id}/availability.
func (s *Server) SetItemAvailability(ctx echo.Context, id int) error {
	var body Availability
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewSetItemAvailabilityCommand(id, body.Available)
	if err != nil {
		return writeError(ctx, err, "Invalid availability change")
	}

	item, err := s.setItemAvailabilityHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err, "Failed to change availability")
	}

	return ctx.JSON(http.StatusOK, toMenuItem(item))
}

// PlaceOrder handles POST /api/v1/orders - places an order and returns it with its bill.
// Repeated item ids in the request are summed.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var body NewOrder
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	quantities := make(map[menu.ItemID]int, len(body.Items))
	for _, item := range body.Items {
		quantities[menu.ItemID(item.ItemID)] += item.Quantity
	}

	cmd, err := commands.NewPlaceOrderCommand(body.CustomerName, quantities)
	if err != nil {
		return writeError(ctx, err, "Invalid order")
	}

	placed, err := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err, "Failed to place order")
	}

	return ctx.JSON(http.StatusCreated, toOrderWithBill(placed))
}

// GetPendingOrders handles GET /api/v1/orders/pending.
func (s *Server) GetPendingOrders(ctx echo.Context) error {
	orders, err := s.getPendingOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetPendingOrdersQuery())
	if err != nil {
		return writeError(ctx, err, "Failed to retrieve pending orders")
	}
	return ctx.JSON(http.StatusOK, toOrders(orders))
}

// GetDeliveredOrders handles GET /api/v1/orders/delivered.
func (s *Server) GetDeliveredOrders(ctx echo.Context) error {
	orders, err := s.getDeliveredOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetDeliveredOrdersQuery())
	if err != nil {
		return writeError(ctx, err, "Failed to retrieve delivered orders")
	}
	return ctx.JSON(http.StatusOK, toOrders(orders))
}

// FulfillNextOrder handles POST /api/v1/orders/fulfill.
func (s *Server) FulfillNextOrder(ctx echo.Context) error {
	delivered, err := s.fulfillNextOrderHandler.Handle(ctx.Request().Context(), commands.NewFulfillNextOrderCommand())
	if err != nil {
		return writeError(ctx, err, "Failed to fulfill order")
	}
	return ctx.JSON(http.StatusOK, toOrderWithBill(delivered))
}

// UndoLastDelivery handles POST /api/v1/orders/undo.
func (s *Server) UndoLastDelivery(ctx echo.Context) error {
	restored, err := s.undoLastDeliveryHandler.Handle(ctx.Request().Context(), commands.NewUndoLastDeliveryCommand())
	if err != nil {
		return writeError(ctx, err, "Failed to undo delivery")
	}
	return ctx.JSON(http.StatusOK, toOrder(restored))
}

// GetOrderEvents handles GET /api/v1/orders/events.
func (s *Server) GetOrderEvents(ctx echo.Context, params GetOrderEventsParams) error {
	if s.getOrderEventsHandler == nil {
		return ctx.JSON(http.StatusServiceUnavailable, Error{
			Code:    http.StatusServiceUnavailable,
			Message: "Order event log is not configured",
		})
	}

	var orderID order.ID
	if params.OrderID != nil {
		orderID = order.ID(*params.OrderID)
	}
	limit := 0
	if params.Limit != nil {
		limit = *params.Limit
	}

	query, err := queries.NewGetOrderEventsQuery(orderID, limit)
	if err != nil {
		return writeError(ctx, err, "Invalid query")
	}

	events, err := s.getOrderEventsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		s.logger.ErrorContext(ctx.Request().Context(), "Failed to read order events", "error", err)
		return writeError(ctx, err, "Failed to retrieve order events")
	}

	response := make([]OrderEvent, len(events))
	for i, e := range events {
		response[i] = toOrderEvent(e)
	}
	return ctx.JSON(http.StatusOK, response)
}
