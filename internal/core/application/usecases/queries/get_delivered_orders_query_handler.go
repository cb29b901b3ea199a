package queries

import (
	"context"

	"foodorder/internal/core/domain/model/order"
)

// GetDeliveredOrdersQueryHandler reads the delivery history of the lifecycle.
type GetDeliveredOrdersQueryHandler struct {
	board OrderBoard
}

func NewGetDeliveredOrdersQueryHandler(board OrderBoard) GetDeliveredOrdersQueryHandler {
	return GetDeliveredOrdersQueryHandler{board: board}
}

// Handle returns the history top first, the order the next undo would pick.
func (h GetDeliveredOrdersQueryHandler) Handle(
	_ context.Context,
	query GetDeliveredOrdersQuery,
) ([]order.Snapshot, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return nonNil(h.board.DeliveredOrders()), nil
}
