package fulfillment

import "foodorder/internal/core/domain/model/order"

// compactThreshold is the number of consumed head slots after which the backing
// slice is compacted, keeping Dequeue amortized O(1) without unbounded growth.
const compactThreshold = 32

// PendingQueue is a FIFO of orders awaiting fulfillment.
// The zero value is an empty queue ready to use.
type PendingQueue struct {
	orders []*order.Order
	head   int
}

// NewPendingQueue creates an empty queue.
func NewPendingQueue() *PendingQueue {
	return &PendingQueue{}
}

// Enqueue appends the order at the rear.
func (q *PendingQueue) Enqueue(o *order.Order) {
	q.orders = append(q.orders, o)
}

// Dequeue removes and returns the order at the front.
// The boolean is false when the queue is empty.
func (q *PendingQueue) Dequeue() (*order.Order, bool) {
	if q.head == len(q.orders) {
		return nil, false
	}

	o := q.orders[q.head]
	q.orders[q.head] = nil
	q.head++

	switch {
	case q.head == len(q.orders):
		q.orders = q.orders[:0]
		q.head = 0
	case q.head >= compactThreshold && q.head*2 >= len(q.orders):
		n := copy(q.orders, q.orders[q.head:])
		clear(q.orders[n:])
		q.orders = q.orders[:n]
		q.head = 0
	}

	return o, true
}

// Peek returns the order at the front without removing it.
func (q *PendingQueue) Peek() (*order.Order, bool) {
	if q.head == len(q.orders) {
		return nil, false
	}
	return q.orders[q.head], true
}

// Len returns the number of queued orders.
func (q *PendingQueue) Len() int {
	return len(q.orders) - q.head
}

// Snapshot returns the queued orders front-to-rear as a fresh slice.
// Later Enqueue or Dequeue calls do not affect a returned snapshot.
func (q *PendingQueue) Snapshot() []*order.Order {
	out := make([]*order.Order, q.Len())
	copy(out, q.orders[q.head:])
	return out
}
