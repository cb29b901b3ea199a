package http

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// ServerInterface represents all server handlers of the /api/v1 surface.
type ServerInterface interface {
	// List menu items in catalog order
	// (GET /api/v1/menu)
	GetMenu(ctx echo.Context, params GetMenuParams) error
	// Add a menu item
	// (POST /api/v1/menu)
	AddMenuItem(ctx echo.Context) error
	// Mark a menu item available or unavailable
	// (PUT /api/v1/menu/{id}/availability)
	SetItemAvailability(ctx echo.Context, id int) error
	// Place an order
	// (POST /api/v1/orders)
	PlaceOrder(ctx echo.Context) error
	// List pending orders, front of the queue first
	// (GET /api/v1/orders/pending)
	GetPendingOrders(ctx echo.Context) error
	// List delivered orders, most recent first
	// (GET /api/v1/orders/delivered)
	GetDeliveredOrders(ctx echo.Context) error
	// Deliver the oldest pending order
	// (POST /api/v1/orders/fulfill)
	FulfillNextOrder(ctx echo.Context) error
	// Return the most recent delivery to the pending queue
	// (POST /api/v1/orders/undo)
	UndoLastDelivery(ctx echo.Context) error
	// List recorded order events, newest first
	// (GET /api/v1/orders/events)
	GetOrderEvents(ctx echo.Context, params GetOrderEventsParams) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// GetMenu converts echo context to params.
func (w *ServerInterfaceWrapper) GetMenu(ctx echo.Context) error {
	var params GetMenuParams

	err := runtime.BindQueryParameter("form", true, false, "available", ctx.QueryParams(), &params.Available)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter available: %s", err))
	}

	return w.Handler.GetMenu(ctx, params)
}

func (w *ServerInterfaceWrapper) AddMenuItem(ctx echo.Context) error {
	return w.Handler.AddMenuItem(ctx)
}

// SetItemAvailability converts echo context to params.
func (w *ServerInterfaceWrapper) SetItemAvailability(ctx echo.Context) error {
	var id int

	err := runtime.BindStyledParameterWithLocation("simple", false, "id", runtime.ParamLocationPath, ctx.Param("id"), &id)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	return w.Handler.SetItemAvailability(ctx, id)
}

func (w *ServerInterfaceWrapper) PlaceOrder(ctx echo.Context) error {
	return w.Handler.PlaceOrder(ctx)
}

func (w *ServerInterfaceWrapper) GetPendingOrders(ctx echo.Context) error {
	return w.Handler.GetPendingOrders(ctx)
}

func (w *ServerInterfaceWrapper) GetDeliveredOrders(ctx echo.Context) error {
	return w.Handler.GetDeliveredOrders(ctx)
}

func (w *ServerInterfaceWrapper) FulfillNextOrder(ctx echo.Context) error {
	return w.Handler.FulfillNextOrder(ctx)
}

func (w *ServerInterfaceWrapper) UndoLastDelivery(ctx echo.Context) error {
	return w.Handler.UndoLastDelivery(ctx)
}

// GetOrderEvents converts echo context to params.
func (w *ServerInterfaceWrapper) GetOrderEvents(ctx echo.Context) error {
	var params GetOrderEventsParams

	err := runtime.BindQueryParameter("form", true, false, "order_id", ctx.QueryParams(), &params.OrderID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter order_id: %s", err))
	}

	err = runtime.BindQueryParameter("form", true, false, "limit", ctx.QueryParams(), &params.Limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter limit: %s", err))
	}

	return w.Handler.GetOrderEvents(ctx, params)
}

// EchoRouter is the subset of echo used to register routes.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.GET("/api/v1/menu", wrapper.GetMenu)
	router.POST("/api/v1/menu", wrapper.AddMenuItem)
	router.PUT("/api/v1/menu/:id/availability", wrapper.SetItemAvailability)
	router.POST("/api/v1/orders", wrapper.PlaceOrder)
	router.GET("/api/v1/orders/pending", wrapper.GetPendingOrders)
	router.GET("/api/v1/orders/delivered", wrapper.GetDeliveredOrders)
	router.POST("/api/v1/orders/fulfill", wrapper.FulfillNextOrder)
	router.POST("/api/v1/orders/undo", wrapper.UndoLastDelivery)
	router.GET("/api/v1/orders/events", wrapper.GetOrderEvents)
}
