package services

import (
	"errors"
	"fmt"
	"sync"

	"foodorder/internal/core/domain/model/fulfillment"
	"foodorder/internal/core/domain/model/menu"
	"foodorder/internal/core/domain/model/order"
)

var (
	// ErrNoItemsSelected is returned by Place when no requested item is both available
	// and requested with a positive quantity. No order identifier is consumed.
	ErrNoItemsSelected = errors.New("no items selected, order not created")

	// ErrQueueEmpty is returned by FulfillNext when there are no pending orders.
	ErrQueueEmpty = errors.New("no pending orders in queue")

	// ErrHistoryEmpty is returned by UndoLast when no delivery can be undone.
	ErrHistoryEmpty = errors.New("no delivery history to undo")
)

// firstOrderID is the identifier given to the first order placed.
const firstOrderID order.ID = 1

// OrderLifecycle owns the pending queue, the delivery history and the identifier
// counter, and moves orders between them.
//
// Example usage:
//
//	lifecycle := services.NewOrderLifecycle(catalog)
//
//	placed, err := lifecycle.Place("Alice", map[menu.ItemID]int{1: 2})
//	if errors.Is(err, services.ErrNoItemsSelected) {
//	    // nothing orderable was requested
//	}
//
//	delivered, err := lifecycle.FulfillNext()
//	if errors.Is(err, services.ErrQueueEmpty) {
//	    // nothing to deliver
//	}
//
//	restored, err := lifecycle.UndoLast()
//	if errors.Is(err, services.ErrHistoryEmpty) {
//	    // nothing to undo
//	}
type OrderLifecycle struct {
	mu      sync.Mutex
	catalog order.ItemSource
	pending *fulfillment.PendingQueue
	history *fulfillment.DeliveryHistory
	nextID  order.ID
}

// NewOrderLifecycle creates an orchestrator with an empty pipeline reading items from catalog.
func NewOrderLifecycle(catalog order.ItemSource) *OrderLifecycle {
	return &OrderLifecycle{
		catalog: catalog,
		pending: fulfillment.NewPendingQueue(),
		history: fulfillment.NewDeliveryHistory(),
		nextID:  firstOrderID,
	}
}

// Place builds an order for customerName from the requested quantities and appends it
// to the pending queue.
//
// Lines are selected in catalog order; zero quantities, unknown identifiers and
// unavailable items are skipped. The next identifier is consumed only when an order
// is actually created.
//
// Returns:
//   - order.Snapshot: the placed order, status Pending
//   - ErrNoItemsSelected: nothing orderable was requested
//   - validation error: the customer name is blank
func (l *OrderLifecycle) Place(customerName string, quantities map[menu.ItemID]int) (order.Snapshot, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	lines := order.SelectLines(l.catalog, quantities)
	if len(lines) == 0 {
		return order.Snapshot{}, ErrNoItemsSelected
	}

	o, err := order.NewOrder(l.nextID, customerName, lines)
	if err != nil {
		return order.Snapshot{}, err
	}
	l.nextID++

	l.pending.Enqueue(o)
	return o.Snapshot(), nil
}

// FulfillNext delivers the order at the front of the pending queue and pushes it onto
// the delivery history.
//
// Returns:
//   - order.Snapshot: the delivered order, status Delivered
//   - ErrQueueEmpty: the pending queue is empty; nothing changes
func (l *OrderLifecycle) FulfillNext() (order.Snapshot, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	o, ok := l.pending.Peek()
	if !ok {
		return order.Snapshot{}, ErrQueueEmpty
	}
	if err := o.Deliver(); err != nil {
		return order.Snapshot{}, fmt.Errorf("deliver order %d: %w", o.ID(), err)
	}

	_, _ = l.pending.Dequeue()
	l.history.Push(o)
	return o.Snapshot(), nil
}

// UndoLast reverts the most recent delivery: the order leaves the top of the history,
// returns to Pending and joins the REAR of the pending queue, behind orders that are
// already waiting.
//
// Returns:
//   - order.Snapshot: the restored order, status Pending
//   - ErrHistoryEmpty: there is nothing to undo; nothing changes
func (l *OrderLifecycle) UndoLast() (order.Snapshot, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	o, ok := l.history.Peek()
	if !ok {
		return order.Snapshot{}, ErrHistoryEmpty
	}
	if err := o.ReturnToPending(); err != nil {
		return order.Snapshot{}, fmt.Errorf("undo delivery of order %d: %w", o.ID(), err)
	}

	_, _ = l.history.Pop()
	l.pending.Enqueue(o)
	return o.Snapshot(), nil
}

// PendingOrders lists pending orders front-to-rear.
func (l *OrderLifecycle) PendingOrders() []order.Snapshot {
	l.mu.Lock()
	defer l.mu.Unlock()

	return snapshots(l.pending.Snapshot())
}

// DeliveredOrders lists delivered orders, most recently delivered first.
func (l *OrderLifecycle) DeliveredOrders() []order.Snapshot {
	l.mu.Lock()
	defer l.mu.Unlock()

	return snapshots(l.history.Snapshot())
}

// Counts returns the number of pending and delivered orders.
func (l *OrderLifecycle) Counts() (int, int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.pending.Len(), l.history.Len()
}

// NextOrderID returns the identifier the next successful Place will use.
func (l *OrderLifecycle) NextOrderID() order.ID {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.nextID
}

func snapshots(orders []*order.Order) []order.Snapshot {
	out := make([]order.Snapshot, 0, len(orders))
	for _, o := range orders {
		out = append(out, o.Snapshot())
	}
	return out
}
