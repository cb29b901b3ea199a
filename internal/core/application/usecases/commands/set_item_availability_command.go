package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/menu"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrSetItemAvailabilityCommandIsNotConstructed = errors.New(
	"SetItemAvailabilityCommand must be created via NewSetItemAvailabilityCommand constructor",
)

// SetItemAvailabilityCommand marks a menu item as available or unavailable.
// Orders placed afterwards skip unavailable items; existing orders keep their lines.
type SetItemAvailabilityCommand struct { //nolint:recvcheck //using for validation
	id        menu.ItemID
	available bool

	guard guard.ConstructorGuard
}

func NewSetItemAvailabilityCommand(id int, available bool) (SetItemAvailabilityCommand, error) {
	cmd := SetItemAvailabilityCommand{
		available: available,
		guard:     guard.NewConstructorGuard(),
	}

	if err := cmd.setID(id); err != nil {
		return SetItemAvailabilityCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SetItemAvailabilityCommand) Validate() error {
	return c.guard.Validate(ErrSetItemAvailabilityCommandIsNotConstructed)
}

func (c SetItemAvailabilityCommand) ID() menu.ItemID {
	return c.id
}

func (c SetItemAvailabilityCommand) Available() bool {
	return c.available
}

func (c *SetItemAvailabilityCommand) setID(id int) error {
	if id <= 0 {
		return errs.NewValueIsOutOfRangeError("menu item id", id, 1, "max int")
	}
	c.id = menu.ItemID(id)
	return nil
}
