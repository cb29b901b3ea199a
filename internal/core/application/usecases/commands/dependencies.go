// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations: every command is built by a
// validating constructor and executed by a dedicated handler.
package commands

import (
	"context"
	"log/slog"
	"sync"

	"foodorder/internal/core/domain/model/menu"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/ports"
)

// Lifecycle and menu abstractions consumed by the handlers.
// *services.OrderLifecycle and *menu.Catalog satisfy them.
type (
	// OrderPlacer places new orders into the pending queue.
	OrderPlacer interface {
		Place(customerName string, quantities map[menu.ItemID]int) (order.Snapshot, error)
	}

	// OrderFulfiller delivers the next pending order.
	OrderFulfiller interface {
		FulfillNext() (order.Snapshot, error)
	}

	// DeliveryReverter undoes the most recent delivery.
	DeliveryReverter interface {
		UndoLast() (order.Snapshot, error)
	}

	// MenuEditor is the admin view of the catalog.
	MenuEditor interface {
		Add(item menu.Item) error
		SetAvailability(id menu.ItemID, available bool) (menu.Item, error)
		Items() []menu.Item
	}

	// TransitionObserver is told about every lifecycle transition attempt.
	// Transition names are "place", "fulfill" and "undo".
	TransitionObserver interface {
		TransitionCommitted(transition string)
		TransitionRejected(transition string, reason string)
		EventSinkFailed(transition string)
	}
)

const (
	TransitionPlace   = "place"
	TransitionFulfill = "fulfill"
	TransitionUndo    = "undo"
)

type nopObserver struct{}

func (nopObserver) TransitionCommitted(string)       {}
func (nopObserver) TransitionRejected(string, string) {}
func (nopObserver) EventSinkFailed(string)            {}

func observerOrNop(o TransitionObserver) TransitionObserver {
	if o == nil {
		return nopObserver{}
	}
	return o
}

// EventRecorder runs persisted transitions and appends their snapshots to the order event
// sink. Transitions run through the same recorder are appended in the order they committed,
// so a Delivered record never precedes the Pending record of the same order.
//
// A sink failure is logged as a warning and counted; it is never returned, because the
// transition already committed. The append does not inherit the caller's cancellation:
// a client that disconnects after the commit still gets its record written.
type EventRecorder struct {
	mu       sync.Mutex
	sink     ports.OrderEventSink
	observer TransitionObserver
	logger   *slog.Logger
}

// NewEventRecorder creates a recorder for sink. sink and observer may be nil.
func NewEventRecorder(sink ports.OrderEventSink, observer TransitionObserver, logger *slog.Logger) *EventRecorder {
	return &EventRecorder{
		sink:     sink,
		observer: observerOrNop(observer),
		logger:   logger.With("component", "event_recorder"),
	}
}

// Record runs commit and appends the snapshot it returns. No other transition run
// through r can commit or append in between. Errors from commit are returned as is and
// nothing is appended. A nil recorder only runs commit.
func (r *EventRecorder) Record(
	ctx context.Context,
	transition string,
	commit func() (order.Snapshot, error),
) (order.Snapshot, error) {
	if r == nil || r.sink == nil {
		return commit()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	snapshot, err := commit()
	if err != nil {
		return order.Snapshot{}, err
	}

	ctx = context.WithoutCancel(ctx)
	if err = r.sink.Append(ctx, snapshot); err != nil {
		r.observer.EventSinkFailed(transition)
		r.logger.WarnContext(ctx, "Order event was not recorded",
			"transition", transition,
			"order_id", int64(snapshot.ID),
			"error", err,
		)
	}
	return snapshot, nil
}
