package commands

import (
	"context"
	"errors"
	"log/slog"

	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/services"
)

// PlaceOrderCommandHandler places orders and records them in the order event sink.
//
// Example:
//
//	recorder := NewEventRecorder(sink, observer, logger)
//	handler := NewPlaceOrderCommandHandler(lifecycle, recorder, observer, logger)
//	cmd, _ := NewPlaceOrderCommand("Alice", map[menu.ItemID]int{1: 2})
//
//	placed, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order placement failed: %w", err)
//	}
//	fmt.Println(order.RenderBill(placed))
type PlaceOrderCommandHandler struct {
	placer   OrderPlacer
	recorder *EventRecorder
	observer TransitionObserver
	logger   *slog.Logger
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
// recorder and observer may be nil.
func NewPlaceOrderCommandHandler(
	placer OrderPlacer,
	recorder *EventRecorder,
	observer TransitionObserver,
	logger *slog.Logger,
) PlaceOrderCommandHandler {
	observer = observerOrNop(observer)
	logger = logger.With("component", "place_order_handler")
	return PlaceOrderCommandHandler{
		placer:   placer,
		recorder: recorder,
		observer: observer,
		logger:   logger,
	}
}

// Handle places the order and appends a Pending record to the sink.
// Returns services.ErrNoItemsSelected when nothing orderable was requested.
// A sink failure does not fail the placement.
func (h PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (order.Snapshot, error) {
	if err := cmd.Validate(); err != nil {
		return order.Snapshot{}, err
	}

	placed, err := h.recorder.Record(ctx, TransitionPlace, func() (order.Snapshot, error) {
		return h.placer.Place(cmd.CustomerName(), cmd.Quantities())
	})
	if err != nil {
		reason := "invalid"
		if errors.Is(err, services.ErrNoItemsSelected) {
			reason = "no_items_selected"
		}
		h.observer.TransitionRejected(TransitionPlace, reason)
		return order.Snapshot{}, err
	}

	h.observer.TransitionCommitted(TransitionPlace)
	h.logger.InfoContext(ctx, "Order placed",
		"order_id", int64(placed.ID),
		"customer", placed.CustomerName,
		"total", placed.Total.String(),
		"lines", len(placed.Lines),
	)

	return placed, nil
}
