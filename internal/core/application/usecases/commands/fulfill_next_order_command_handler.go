package commands

import (
	"context"
	"errors"
	"log/slog"

	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/services"
)

// FulfillNextOrderCommandHandler moves the oldest pending order to the delivery history
// and records the delivery in the order event sink.
//
// Example:
//
//	handler := NewFulfillNextOrderCommandHandler(lifecycle, recorder, observer, logger)
//	delivered, err := handler.Handle(ctx, NewFulfillNextOrderCommand())
//	switch {
//	case errors.Is(err, services.ErrQueueEmpty):
//	    log.Println("No pending orders")
//	case err != nil:
//	    log.Printf("Fulfillment failed: %v", err)
//	default:
//	    log.Printf("Order #%d delivered", delivered.ID)
//	}
type FulfillNextOrderCommandHandler struct {
	fulfiller OrderFulfiller
	recorder  *EventRecorder
	observer  TransitionObserver
	logger    *slog.Logger
}

// NewFulfillNextOrderCommandHandler creates a handler for order fulfillment.
// recorder and observer may be nil.
func NewFulfillNextOrderCommandHandler(
	fulfiller OrderFulfiller,
	recorder *EventRecorder,
	observer TransitionObserver,
	logger *slog.Logger,
) FulfillNextOrderCommandHandler {
	observer = observerOrNop(observer)
	logger = logger.With("component", "fulfill_next_order_handler")
	return FulfillNextOrderCommandHandler{
		fulfiller: fulfiller,
		recorder:  recorder,
		observer:  observer,
		logger:    logger,
	}
}

// Handle delivers the next order and appends a Delivered record to the sink.
// Returns services.ErrQueueEmpty when there is nothing to deliver.
func (h FulfillNextOrderCommandHandler) Handle(ctx context.Context, cmd FulfillNextOrderCommand) (order.Snapshot, error) {
	if err := cmd.Validate(); err != nil {
		return order.Snapshot{}, err
	}

	delivered, err := h.recorder.Record(ctx, TransitionFulfill, h.fulfiller.FulfillNext)
	if err != nil {
		reason := "invalid"
		if errors.Is(err, services.ErrQueueEmpty) {
			reason = "queue_empty"
		}
		h.observer.TransitionRejected(TransitionFulfill, reason)
		return order.Snapshot{}, err
	}

	h.observer.TransitionCommitted(TransitionFulfill)
	h.logger.InfoContext(ctx, "Order delivered", "order_id", int64(delivered.ID))

	return delivered, nil
}
