package order

import "foodorder/internal/core/domain/model/menu"

// ItemSource lists menu items in catalog order. *menu.Catalog satisfies it.
type ItemSource interface {
	Items() []menu.Item
}

// SelectLines turns requested quantities into order lines.
//
// Items are visited in catalog order rather than map order, so the resulting line order is
// deterministic. An item yields a line only if its requested quantity is positive and it
// is available; identifiers missing from the catalog are ignored. An empty result means
// nothing orderable was requested.
func SelectLines(source ItemSource, quantities map[menu.ItemID]int) []Line {
	lines := make([]Line, 0, len(quantities))
	for _, item := range source.Items() {
		qty := quantities[item.ID()]
		if qty <= 0 || !item.IsAvailable() {
			continue
		}
		line, err := NewLine(item, qty)
		if err != nil {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}
