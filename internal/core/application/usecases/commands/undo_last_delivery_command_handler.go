package commands

import (
	"context"
	"errors"
	"log/slog"

	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/services"
)

// UndoLastDeliveryCommandHandler undoes the most recent delivery. The restored order
// joins the rear of the pending queue.
//
// The undo is not written to the order event sink: the sink is an append-only log of
// placements and deliveries, so an undone delivery keeps its Delivered record.
type UndoLastDeliveryCommandHandler struct {
	reverter DeliveryReverter
	observer TransitionObserver
	logger   *slog.Logger
}

// NewUndoLastDeliveryCommandHandler creates a handler for undoing deliveries.
// observer may be nil.
func NewUndoLastDeliveryCommandHandler(
	reverter DeliveryReverter,
	observer TransitionObserver,
	logger *slog.Logger,
) UndoLastDeliveryCommandHandler {
	return UndoLastDeliveryCommandHandler{
		reverter: reverter,
		observer: observerOrNop(observer),
		logger:   logger.With("component", "undo_last_delivery_handler"),
	}
}

// Handle undoes the last delivery.
// Returns services.ErrHistoryEmpty when there is nothing to undo.
func (h UndoLastDeliveryCommandHandler) Handle(ctx context.Context, cmd UndoLastDeliveryCommand) (order.Snapshot, error) {
	if err := cmd.Validate(); err != nil {
		return order.Snapshot{}, err
	}

	restored, err := h.reverter.UndoLast()
	if err != nil {
		reason := "invalid"
		if errors.Is(err, services.ErrHistoryEmpty) {
			reason = "history_empty"
		}
		h.observer.TransitionRejected(TransitionUndo, reason)
		return order.Snapshot{}, err
	}

	h.observer.TransitionCommitted(TransitionUndo)
	h.logger.InfoContext(ctx, "Delivery undone, order restored to queue", "order_id", int64(restored.ID))

	return restored, nil
}
