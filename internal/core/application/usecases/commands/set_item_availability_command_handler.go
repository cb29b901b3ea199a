package commands

import (
	"context"
	"fmt"
	"log/slog"

	"foodorder/internal/core/domain/model/menu"
	"foodorder/internal/core/ports"
)

// SetItemAvailabilityCommandHandler toggles availability in the live catalog and saves
// the whole menu. An unknown id yields errs.ObjectNotFoundError.
type SetItemAvailabilityCommandHandler struct {
	editor     MenuEditor
	repository ports.MenuRepository
	logger     *slog.Logger
}

func NewSetItemAvailabilityCommandHandler(
	editor MenuEditor,
	repository ports.MenuRepository,
	logger *slog.Logger,
) SetItemAvailabilityCommandHandler {
	return SetItemAvailabilityCommandHandler{
		editor:     editor,
		repository: repository,
		logger:     logger.With("component", "set_item_availability_handler"),
	}
}

func (h SetItemAvailabilityCommandHandler) Handle(
	ctx context.Context,
	cmd SetItemAvailabilityCommand,
) (menu.Item, error) {
	if err := cmd.Validate(); err != nil {
		return menu.Item{}, err
	}

	item, err := h.editor.SetAvailability(cmd.ID(), cmd.Available())
	if err != nil {
		return menu.Item{}, err
	}

	if err := h.repository.Save(ctx, h.editor.Items()); err != nil {
		return item, fmt.Errorf("save menu: %w", err)
	}

	h.logger.InfoContext(ctx, "Menu item availability changed",
		"item_id", int(item.ID()),
		"available", item.IsAvailable(),
	)

	return item, nil
}
