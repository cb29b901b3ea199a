package http

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/menu"
	"foodorder/internal/core/domain/model/order"
)

// Error is the body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type MenuItem struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	Price     string `json:"price"`
	Available bool   `json:"available"`
}

type NewMenuItem struct {
	ID        int             `json:"id"`
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	Price     decimal.Decimal `json:"price"`
	Available *bool           `json:"available,omitempty"`
}

type Availability struct {
	Available bool `json:"available"`
}

type NewOrder struct {
	CustomerName string         `json:"customer_name"`
	Items        []NewOrderItem `json:"items"`
}

type NewOrderItem struct {
	ItemID   int `json:"item_id"`
	Quantity int `json:"quantity"`
}

type OrderLine struct {
	ItemID   int    `json:"item_id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Price    string `json:"price"`
	Subtotal string `json:"subtotal"`
}

type Order struct {
	ID           int64       `json:"id"`
	CustomerName string      `json:"customer_name"`
	Status       string      `json:"status"`
	Total        string      `json:"total"`
	Lines        []OrderLine `json:"lines"`
}

type OrderWithBill struct {
	Order Order  `json:"order"`
	Bill  string `json:"bill"`
}

type OrderEvent struct {
	EventID      uuid.UUID `json:"event_id"`
	OrderID      int64     `json:"order_id"`
	CustomerName string    `json:"customer_name"`
	Total        string    `json:"total"`
	Status       string    `json:"status"`
	RecordedAt   time.Time `json:"recorded_at"`
}

// GetMenuParams defines parameters for GetMenu.
type GetMenuParams struct {
	Available *bool `form:"available,omitempty" json:"available,omitempty"`
}

// GetOrderEventsParams defines parameters for GetOrderEvents.
type GetOrderEventsParams struct {
	OrderID *int64 `form:"order_id,omitempty" json:"order_id,omitempty"`
	Limit   *int   `form:"limit,omitempty" json:"limit,omitempty"`
}

func toMenuItem(item menu.Item) MenuItem {
	return MenuItem{
		ID:        int(item.ID()),
		Name:      item.Name(),
		Category:  item.Category(),
		Price:     item.Price().String(),
		Available: item.IsAvailable(),
	}
}

func toOrder(s order.Snapshot) Order {
	lines := make([]OrderLine, len(s.Lines))
	for i, line := range s.Lines {
		lines[i] = OrderLine{
			ItemID:   int(line.Item().ID()),
			Name:     line.Item().Name(),
			Quantity: line.Quantity(),
			Price:    line.Item().Price().String(),
			Subtotal: line.Subtotal().String(),
		}
	}

	return Order{
		ID:           int64(s.ID),
		CustomerName: s.CustomerName,
		Status:       s.Status.String(),
		Total:        s.Total.String(),
		Lines:        lines,
	}
}

func toOrders(snapshots []order.Snapshot) []Order {
	out := make([]Order, len(snapshots))
	for i, s := range snapshots {
		out[i] = toOrder(s)
	}
	return out
}

func toOrderWithBill(s order.Snapshot) OrderWithBill {
	return OrderWithBill{
		Order: toOrder(s),
		Bill:  order.RenderBill(s),
	}
}

func toOrderEvent(e queries.GetOrderEventsQueryResponse) OrderEvent {
	return OrderEvent{
		EventID:      e.EventID,
		OrderID:      int64(e.OrderID),
		CustomerName: e.CustomerName,
		Total:        e.Total.String(),
		Status:       e.Status,
		RecordedAt:   e.RecordedAt,
	}
}
