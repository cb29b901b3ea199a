package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
)

// GetOrderEventsQueryHandler reads the order event log written by the Postgres sink.
//
// Example:
//
//	handler := NewGetOrderEventsQueryHandler(db)
//	query, _ := NewGetOrderEventsQuery(order.ID(3), 0)
//
//	events, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to read order events: %v", err)
//	    return err
//	}
//	for _, e := range events {
//	    fmt.Printf("%s order #%d %s\n", e.RecordedAt.Format(time.RFC3339), e.OrderID, e.Status)
//	}
type GetOrderEventsQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderEventsQueryHandler creates a handler over the event log database.
func NewGetOrderEventsQueryHandler(db *gorm.DB) GetOrderEventsQueryHandler {
	return GetOrderEventsQueryHandler{db: db}
}

// Handle returns at most query.Limit() events, newest first.
func (h GetOrderEventsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderEventsQuery,
) ([]GetOrderEventsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	tx := h.db.WithContext(ctx).
		Table("order_events").
		Select("id, order_id, customer_name, total, status, recorded_at")
	if query.OrderID() != 0 {
		tx = tx.Where("order_id = ?", int64(query.OrderID()))
	}

	rows, err := tx.Order("recorded_at DESC").Order("seq DESC").Limit(query.Limit()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]GetOrderEventsQueryResponse, 0)
	for rows.Next() {
		var (
			id         uuid.UUID
			orderID    int64
			customer   string
			total      decimal.Decimal
			status     string
			recordedAt time.Time
		)
		if err = rows.Scan(&id, &orderID, &customer, &total, &status, &recordedAt); err != nil {
			return nil, err
		}

		money, moneyErr := kernel.NewMoney(total)
		if moneyErr != nil {
			return nil, moneyErr
		}

		events = append(events, GetOrderEventsQueryResponse{
			EventID:      id,
			OrderID:      order.ID(orderID),
			CustomerName: customer,
			Total:        money,
			Status:       status,
			RecordedAt:   recordedAt,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}
