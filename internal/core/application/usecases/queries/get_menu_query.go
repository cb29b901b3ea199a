package queries

import (
	"errors"

	"foodorder/internal/pkg/guard"
)

var ErrGetMenuQueryIsNotConstructed = errors.New(
	"GetMenuQuery must be created via NewGetMenuQuery constructor",
)

// GetMenuQuery lists the menu in catalog order, optionally only available items.
type GetMenuQuery struct {
	onlyAvailable bool

	guard guard.ConstructorGuard
}

func NewGetMenuQuery(onlyAvailable bool) GetMenuQuery {
	return GetMenuQuery{
		onlyAvailable: onlyAvailable,
		guard:         guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetMenuQuery) Validate() error {
	return q.guard.Validate(ErrGetMenuQueryIsNotConstructed)
}

func (q GetMenuQuery) OnlyAvailable() bool {
	return q.onlyAvailable
}
