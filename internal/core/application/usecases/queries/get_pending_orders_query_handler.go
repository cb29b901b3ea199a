package queries

import (
	"context"

	"foodorder/internal/core/domain/model/order"
)

// GetPendingOrdersQueryHandler reads the pending queue of the lifecycle.
type GetPendingOrdersQueryHandler struct {
	board OrderBoard
}

func NewGetPendingOrdersQueryHandler(board OrderBoard) GetPendingOrdersQueryHandler {
	return GetPendingOrdersQueryHandler{board: board}
}

// Handle returns a detached copy of the queue, front to rear. An empty queue yields an
// empty, non-nil slice.
func (h GetPendingOrdersQueryHandler) Handle(_ context.Context, query GetPendingOrdersQuery) ([]order.Snapshot, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return nonNil(h.board.PendingOrders()), nil
}

func nonNil(orders []order.Snapshot) []order.Snapshot {
	if orders == nil {
		return []order.Snapshot{}
	}
	return orders
}
