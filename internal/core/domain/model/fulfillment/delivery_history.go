package fulfillment

import "foodorder/internal/core/domain/model/order"

// DeliveryHistory is a LIFO of delivered orders. Orders are stored in delivery
// order; Snapshot reverses them for display.
// The zero value is an empty history ready to use.
type DeliveryHistory struct {
	orders []*order.Order
}

// NewDeliveryHistory creates an empty history.
func NewDeliveryHistory() *DeliveryHistory {
	return &DeliveryHistory{}
}

// Push places the order on top.
func (h *DeliveryHistory) Push(o *order.Order) {
	h.orders = append(h.orders, o)
}

// Pop removes and returns the most recently pushed order.
// The boolean is false when the history is empty.
func (h *DeliveryHistory) Pop() (*order.Order, bool) {
	n := len(h.orders)
	if n == 0 {
		return nil, false
	}

	o := h.orders[n-1]
	h.orders[n-1] = nil
	h.orders = h.orders[:n-1]
	return o, true
}

// Peek returns the top order without removing it.
func (h *DeliveryHistory) Peek() (*order.Order, bool) {
	if len(h.orders) == 0 {
		return nil, false
	}
	return h.orders[len(h.orders)-1], true
}

// Len returns the number of delivered orders held.
func (h *DeliveryHistory) Len() int {
	return len(h.orders)
}

// Snapshot returns the held orders top-first, most recently delivered first.
func (h *DeliveryHistory) Snapshot() []*order.Order {
	out := make([]*order.Order, len(h.orders))
	for i, o := range h.orders {
		out[len(h.orders)-1-i] = o
	}
	return out
}
