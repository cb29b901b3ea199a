package queries

import (
	"context"

	"foodorder/internal/core/domain/model/menu"
)

type GetMenuQueryHandler struct {
	menu MenuReader
}

func NewGetMenuQueryHandler(reader MenuReader) GetMenuQueryHandler {
	return GetMenuQueryHandler{menu: reader}
}

func (h GetMenuQueryHandler) Handle(_ context.Context, query GetMenuQuery) ([]menu.Item, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	items := h.menu.Items()
	out := make([]menu.Item, 0, len(items))
	for _, item := range items {
		if query.OnlyAvailable() && !item.IsAvailable() {
			continue
		}
		out = append(out, item)
	}
	return out, nil
}
