package commands

import (
	"errors"
	"fmt"
	"maps"
	"strings"

	"foodorder/internal/core/domain/model/menu"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
	ErrCustomerNameIsRequired = errs.NewValueIsRequiredError("customer name")
	ErrCustomerNameIsInvalid  = errs.NewValueIsInvalidError("customer name contains a comma or line break")
)

// PlaceOrderCommand represents a customer's request to order menu items.
// Quantities map item identifiers to requested quantities; zero entries are allowed
// and ignored, negative entries are rejected.
//
// Example:
//
//	cmd, err := NewPlaceOrderCommand("Alice", map[menu.ItemID]int{1: 2, 2: 3})
//	if err != nil {
//	    return fmt.Errorf("invalid order request: %w", err)
//	}
//
//	placed, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, services.ErrNoItemsSelected) {
//	    // nothing orderable was requested
//	}
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	customerName string
	quantities   map[menu.ItemID]int

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place an order.
// Validates that the customer name is not blank, holds no comma or line break, and that
// no quantity is negative.
func NewPlaceOrderCommand(customerName string, quantities map[menu.ItemID]int) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerName(customerName),
		cmd.setQuantities(quantities),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// CustomerName returns the name the order is placed under.
func (c PlaceOrderCommand) CustomerName() string {
	return c.customerName
}

// Quantities returns a copy of the requested quantities.
func (c PlaceOrderCommand) Quantities() map[menu.ItemID]int {
	return maps.Clone(c.quantities)
}

func (c *PlaceOrderCommand) setCustomerName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrCustomerNameIsRequired
	}
	if hasRecordSeparator(name) {
		return ErrCustomerNameIsInvalid
	}
	c.customerName = name
	return nil
}

func (c *PlaceOrderCommand) setQuantities(quantities map[menu.ItemID]int) error {
	var errList []error
	for id, qty := range quantities {
		if qty < 0 {
			errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
				"quantity", fmt.Errorf("%d requested for item %d is negative", qty, id)))
		}
	}
	if err := errors.Join(errList...); err != nil {
		return err
	}

	c.quantities = maps.Clone(quantities)
	if c.quantities == nil {
		c.quantities = map[menu.ItemID]int{}
	}
	return nil
}
