package ports

import (
	"context"

	"foodorder/internal/core/domain/model/menu"
)

// MenuRepository loads and stores the whole menu. The admin collaborator saves the full
// item list after every change; there is no per-item update.
type MenuRepository interface {
	// Load returns all stored items in catalog order. Malformed records are skipped.
	Load(ctx context.Context) ([]menu.Item, error)

	// Save replaces the stored menu with items, keeping their order.
	Save(ctx context.Context, items []menu.Item) error
}
