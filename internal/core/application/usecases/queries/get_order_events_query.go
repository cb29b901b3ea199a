package queries

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

const (
	DefaultOrderEventsLimit = 50
	MaxOrderEventsLimit     = 1000
)

var ErrGetOrderEventsQueryIsNotConstructed = errors.New(
	"GetOrderEventsQuery must be created via NewGetOrderEventsQuery constructor",
)

// GetOrderEventsQuery reads the recorded order events, newest first.
// A zero order id lists events of all orders; a zero limit means DefaultOrderEventsLimit.
//
// Example:
//
//	query, err := NewGetOrderEventsQuery(0, 20)
//	if err != nil {
//	    return err
//	}
//	events, err := handler.Handle(ctx, query)
type GetOrderEventsQuery struct { //nolint:recvcheck //using for validation
	orderID order.ID
	limit   int

	guard guard.ConstructorGuard
}

func NewGetOrderEventsQuery(orderID order.ID, limit int) (GetOrderEventsQuery, error) {
	query := GetOrderEventsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setOrderID(orderID),
		query.setLimit(limit),
	); err != nil {
		return GetOrderEventsQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderEventsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderEventsQueryIsNotConstructed)
}

func (q GetOrderEventsQuery) OrderID() order.ID {
	return q.orderID
}

func (q GetOrderEventsQuery) Limit() int {
	return q.limit
}

func (q *GetOrderEventsQuery) setOrderID(id order.ID) error {
	if id < 0 {
		return errs.NewValueIsOutOfRangeError("order id", int64(id), 0, "max int64")
	}
	q.orderID = id
	return nil
}

func (q *GetOrderEventsQuery) setLimit(limit int) error {
	if limit == 0 {
		limit = DefaultOrderEventsLimit
	}
	if limit < 0 || limit > MaxOrderEventsLimit {
		return errs.NewValueIsOutOfRangeError("limit", limit, 1, MaxOrderEventsLimit)
	}
	q.limit = limit
	return nil
}

// GetOrderEventsQueryResponse is one recorded transition.
type GetOrderEventsQueryResponse struct {
	EventID      uuid.UUID
	OrderID      order.ID
	CustomerName string
	Total        kernel.Money
	Status       string
	RecordedAt   time.Time
}
