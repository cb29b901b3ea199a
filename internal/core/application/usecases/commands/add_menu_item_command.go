package commands

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"foodorder/internal/core/domain/model/menu"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrAddMenuItemCommandIsNotConstructed = errors.New(
	"AddMenuItemCommand must be created via NewAddMenuItemCommand constructor",
)

// AddMenuItemCommand represents an admin request to append an item to the menu.
// Names and categories end up in the comma separated menu file, so they may contain
// neither commas nor line breaks.
type AddMenuItemCommand struct { //nolint:recvcheck //using for validation
	id        menu.ItemID
	name      string
	category  string
	price     decimal.Decimal
	available bool

	guard guard.ConstructorGuard
}

// NewAddMenuItemCommand creates a command to add a menu item.
func NewAddMenuItemCommand(
	id int,
	name string,
	category string,
	price decimal.Decimal,
	available bool,
) (AddMenuItemCommand, error) {
	cmd := AddMenuItemCommand{
		available: available,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setID(id),
		cmd.setName(name),
		cmd.setCategory(category),
		cmd.setPrice(price),
	); err != nil {
		return AddMenuItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrAddMenuItemCommandIsNotConstructed)
}

func (c AddMenuItemCommand) ID() menu.ItemID        { return c.id }
func (c AddMenuItemCommand) Name() string           { return c.name }
func (c AddMenuItemCommand) Category() string       { return c.category }
func (c AddMenuItemCommand) Price() decimal.Decimal { return c.price }
func (c AddMenuItemCommand) Available() bool        { return c.available }

func (c *AddMenuItemCommand) setID(id int) error {
	if id <= 0 {
		return errs.NewValueIsOutOfRangeError("menu item id", id, 1, "max int")
	}
	c.id = menu.ItemID(id)
	return nil
}

func (c *AddMenuItemCommand) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("menu item name")
	}
	if hasRecordSeparator(name) {
		return errs.NewValueIsInvalidError("menu item name contains a comma or line break")
	}
	c.name = name
	return nil
}

func (c *AddMenuItemCommand) setCategory(category string) error {
	category = strings.TrimSpace(category)
	if hasRecordSeparator(category) {
		return errs.NewValueIsInvalidError("menu item category contains a comma or line break")
	}
	c.category = category
	return nil
}

func (c *AddMenuItemCommand) setPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewValueIsInvalidError("menu item price is negative")
	}
	c.price = price
	return nil
}

func hasRecordSeparator(s string) bool {
	return strings.ContainsAny(s, ",\r\n")
}
