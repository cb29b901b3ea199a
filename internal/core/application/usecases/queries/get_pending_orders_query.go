package queries

import (
	"errors"

	"foodorder/internal/pkg/guard"
)

var ErrGetPendingOrdersQueryIsNotConstructed = errors.New(
	"GetPendingOrdersQuery must be created via NewGetPendingOrdersQuery constructor",
)

// GetPendingOrdersQuery lists orders awaiting fulfillment, front of the queue first.
//
// Example:
//
//	handler := NewGetPendingOrdersQueryHandler(lifecycle)
//	pending, err := handler.Handle(ctx, NewGetPendingOrdersQuery())
//	if err != nil {
//	    return err
//	}
//	for _, o := range pending {
//	    fmt.Printf("#%d %s %s\n", o.ID, o.CustomerName, o.Total)
//	}
type GetPendingOrdersQuery struct {
	guard guard.ConstructorGuard
}

func NewGetPendingOrdersQuery() GetPendingOrdersQuery {
	return GetPendingOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetPendingOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingOrdersQueryIsNotConstructed)
}
