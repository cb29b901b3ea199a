package queries

import (
	"errors"

	"foodorder/internal/pkg/guard"
)

var ErrGetDeliveredOrdersQueryIsNotConstructed = errors.New(
	"GetDeliveredOrdersQuery must be created via NewGetDeliveredOrdersQuery constructor",
)

// GetDeliveredOrdersQuery lists delivered orders, most recent delivery first.
type GetDeliveredOrdersQuery struct {
	guard guard.ConstructorGuard
}

func NewGetDeliveredOrdersQuery() GetDeliveredOrdersQuery {
	return GetDeliveredOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetDeliveredOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveredOrdersQueryIsNotConstructed)
}
