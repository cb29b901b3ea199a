package commands

import (
	"errors"

	"foodorder/internal/pkg/guard"
)

var ErrFulfillNextOrderCommandIsNotConstructed = errors.New(
	"FulfillNextOrderCommand must be created via NewFulfillNextOrderCommand constructor",
)

// FulfillNextOrderCommand delivers the order at the front of the pending queue.
// It is a parameterless command; the queue decides which order goes next.
type FulfillNextOrderCommand struct {
	guard guard.ConstructorGuard
}

// NewFulfillNextOrderCommand creates a new command to deliver the next pending order.
func NewFulfillNextOrderCommand() FulfillNextOrderCommand {
	return FulfillNextOrderCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c FulfillNextOrderCommand) Validate() error {
	return c.guard.Validate(ErrFulfillNextOrderCommandIsNotConstructed)
}
