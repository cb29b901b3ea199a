package order

import (
	"errors"
	"fmt"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/menu"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

// ErrLineIsNotConstructed is returned when a Line was not created through NewLine.
var ErrLineIsNotConstructed = errors.New("Line must be created via NewLine constructor")

// Line is one ordered menu item with its quantity. The item is a copy of the catalog
// entry taken at order time, so later availability changes do not touch placed orders.
type Line struct { //nolint:recvcheck //using for validation
	item     menu.Item
	quantity int

	guard guard.ConstructorGuard
}

// NewLine creates a line for an available item with a positive quantity.
func NewLine(item menu.Item, quantity int) (Line, error) {
	if err := item.Validate(); err != nil {
		return Line{}, err
	}
	if !item.IsAvailable() {
		return Line{}, errs.NewValueIsInvalidErrorWithCause(
			"menu item is invalid", fmt.Errorf("%s is not available", item.Name()))
	}
	if quantity <= 0 {
		return Line{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid", fmt.Errorf("%d is not greater than 0", quantity))
	}

	return Line{item: item, quantity: quantity, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the Line was created through NewLine.
func (l Line) Validate() error {
	return l.guard.Validate(ErrLineIsNotConstructed)
}

// Item returns the ordered menu item.
func (l Line) Item() menu.Item {
	return l.item
}

// Quantity returns the ordered quantity.
func (l Line) Quantity() int {
	return l.quantity
}

// Subtotal returns unit price × quantity.
func (l Line) Subtotal() kernel.Money {
	return l.item.Price().Multiply(l.quantity)
}
