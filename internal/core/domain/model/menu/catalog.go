package menu

import (
	"fmt"
	"sync"

	"foodorder/internal/pkg/errs"
)

// Catalog holds the menu in catalog order and answers lookups by identifier.
// It is safe for concurrent use: lookups from order placement may run while the
// admin collaborator toggles availability.
type Catalog struct {
	mu    sync.RWMutex
	items []Item
	index map[ItemID]int
}

// NewCatalog builds a catalog from items, keeping their order.
// Every item must be constructed and identifiers must be unique.
func NewCatalog(items []Item) (*Catalog, error) {
	c := &Catalog{
		items: make([]Item, 0, len(items)),
		index: make(map[ItemID]int, len(items)),
	}
	for _, item := range items {
		if err := c.add(item); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Lookup returns the item with the given identifier and whether it exists.
func (c *Catalog) Lookup(id ItemID) (Item, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	pos, ok := c.index[id]
	if !ok {
		return Item{}, false
	}
	return c.items[pos], true
}

// Items returns a copy of all items in catalog order.
func (c *Catalog) Items() []Item {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of items.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.items)
}

// Add appends a new item at the end of the catalog.
// Returns ValueIsInvalidError when the identifier is already taken.
func (c *Catalog) Add(item Item) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.add(item)
}

// SetAvailability changes the availability of an existing item.
// Returns ObjectNotFoundError when no item has the identifier.
func (c *Catalog) SetAvailability(id ItemID, available bool) (Item, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	pos, ok := c.index[id]
	if !ok {
		return Item{}, errs.NewObjectNotFoundError("menu item", int(id))
	}
	c.items[pos] = c.items[pos].WithAvailability(available)
	return c.items[pos], nil
}

func (c *Catalog) add(item Item) error {
	if err := item.Validate(); err != nil {
		return err
	}
	if _, exists := c.index[item.ID()]; exists {
		return errs.NewValueIsInvalidErrorWithCause(
			"item id is invalid", fmt.Errorf("%d is already in the catalog", item.ID()))
	}
	c.index[item.ID()] = len(c.items)
	c.items = append(c.items, item)
	return nil
}
