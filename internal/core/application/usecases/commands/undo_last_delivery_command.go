package commands

import (
	"errors"

	"foodorder/internal/pkg/guard"
)

var ErrUndoLastDeliveryCommandIsNotConstructed = errors.New(
	"UndoLastDeliveryCommand must be created via NewUndoLastDeliveryCommand constructor",
)

// UndoLastDeliveryCommand returns the most recently delivered order to the pending queue.
type UndoLastDeliveryCommand struct {
	guard guard.ConstructorGuard
}

// NewUndoLastDeliveryCommand creates a new command to undo the last delivery.
func NewUndoLastDeliveryCommand() UndoLastDeliveryCommand {
	return UndoLastDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c UndoLastDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrUndoLastDeliveryCommandIsNotConstructed)
}
