package menu

import (
	"errors"
	"fmt"
	"strings"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned when an Item was not created through NewItem.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// ItemID identifies a menu item. Valid identifiers are positive.
type ItemID int

// Item is a menu entry. It is a value object: copies handed out by the Catalog are
// snapshots, and the only attribute that ever changes is availability, which the
// Catalog replaces through WithAvailability.
//
// Example:
//
//	price, _ := kernel.MoneyFromString("5.00")
//	burger, err := menu.NewItem(1, "Burger", "Mains", price, true)
//	if err != nil {
//	    // Handle validation error
//	}
type Item struct { //nolint:recvcheck //using for validation
	id        ItemID
	name      string
	category  string
	price     kernel.Money
	available bool

	guard guard.ConstructorGuard
}

// NewItem validates and creates a menu item.
//
// Parameters:
//   - id: positive identifier
//   - name: display name, must not be blank
//   - category: free-form grouping such as "Drinks", may be empty
//   - price: unit price, must be a constructed Money
//   - available: whether the item can currently be ordered
//
// Returns:
//   - Item: the created item when all validations pass
//   - error: every validation failure joined together
func NewItem(id ItemID, name string, category string, price kernel.Money, available bool) (Item, error) {
	item := Item{
		category:  strings.TrimSpace(category),
		available: available,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setID(id),
		item.setName(name),
		item.setPrice(price),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

// Validate ensures the Item was created through NewItem.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// ID returns the item identifier.
func (i Item) ID() ItemID {
	return i.id
}

// Name returns the display name.
func (i Item) Name() string {
	return i.name
}

// Category returns the item category.
func (i Item) Category() string {
	return i.category
}

// Price returns the unit price.
func (i Item) Price() kernel.Money {
	return i.price
}

// IsAvailable reports whether the item can be ordered.
func (i Item) IsAvailable() bool {
	return i.available
}

// WithAvailability returns a copy of the item with the availability flag replaced.
func (i Item) WithAvailability(available bool) Item {
	i.available = available
	return i
}

func (i *Item) setID(id ItemID) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("item id is invalid", fmt.Errorf("%d is not greater than 0", id))
	}
	i.id = id
	return nil
}

func (i *Item) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("item name")
	}
	i.name = name
	return nil
}

func (i *Item) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	i.price = price
	return nil
}
