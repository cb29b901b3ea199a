package commands

import (
	"context"
	"fmt"
	"log/slog"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/menu"
	"foodorder/internal/core/ports"
)

// AddMenuItemCommandHandler appends an item to the live catalog and saves the whole menu.
//
// Example:
//
//	cmd, _ := NewAddMenuItemCommand(7, "Samosa", "Snacks", decimal.RequireFromString("1.25"), true)
//	item, err := handler.Handle(ctx, cmd)
type AddMenuItemCommandHandler struct {
	editor     MenuEditor
	repository ports.MenuRepository
	logger     *slog.Logger
}

func NewAddMenuItemCommandHandler(
	editor MenuEditor,
	repository ports.MenuRepository,
	logger *slog.Logger,
) AddMenuItemCommandHandler {
	return AddMenuItemCommandHandler{
		editor:     editor,
		repository: repository,
		logger:     logger.With("component", "add_menu_item_handler"),
	}
}

// Handle adds the item. A duplicate id is rejected before anything is saved.
// When saving fails the item stays in the live catalog and the error is returned.
func (h AddMenuItemCommandHandler) Handle(ctx context.Context, cmd AddMenuItemCommand) (menu.Item, error) {
	if err := cmd.Validate(); err != nil {
		return menu.Item{}, err
	}

	price, err := kernel.NewMoney(cmd.Price())
	if err != nil {
		return menu.Item{}, err
	}

	item, err := menu.NewItem(cmd.ID(), cmd.Name(), cmd.Category(), price, cmd.Available())
	if err != nil {
		return menu.Item{}, err
	}

	if err := h.editor.Add(item); err != nil {
		return menu.Item{}, err
	}

	if err := h.repository.Save(ctx, h.editor.Items()); err != nil {
		return item, fmt.Errorf("save menu: %w", err)
	}

	h.logger.InfoContext(ctx, "Menu item added",
		"item_id", int(item.ID()),
		"name", item.Name(),
		"price", item.Price().String(),
	)

	return item, nil
}
