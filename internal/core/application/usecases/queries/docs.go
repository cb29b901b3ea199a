// Package queries contains read-only operations over the order lifecycle, the menu and
// the recorded order events. Every query is built by a constructor and executed by a
// dedicated handler; none of them changes state.
package queries

import (
	"foodorder/internal/core/domain/model/menu"
	"foodorder/internal/core/domain/model/order"
)

type (
	// OrderBoard exposes read-only listings of the lifecycle.
	// *services.OrderLifecycle satisfies it.
	OrderBoard interface {
		PendingOrders() []order.Snapshot
		DeliveredOrders() []order.Snapshot
	}

	// MenuReader lists catalog items in catalog order.
	MenuReader interface {
		Items() []menu.Item
	}
)
