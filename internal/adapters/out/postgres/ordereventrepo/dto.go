// Package ordereventrepo records committed order transitions in PostgreSQL.
// Every placed or delivered order becomes one immutable row; rows are never updated.
package ordereventrepo

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"foodorder/internal/core/domain/model/order"
)

// OrderEventDTO represents one recorded transition.
// Seq gives a stable insertion order for events recorded within the same instant.
type OrderEventDTO struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Seq          int64           `gorm:"autoIncrement;not null;uniqueIndex"`
	OrderID      int64           `gorm:"not null;index"`
	CustomerName string          `gorm:"not null"`
	Total        decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Status       string          `gorm:"type:varchar(16);not null"`
	RecordedAt   time.Time       `gorm:"not null;index"`
}

// TableName specifies the database table name for order events.
func (OrderEventDTO) TableName() string {
	return "order_events"
}

// fromSnapshot converts an order snapshot to an event row recorded at the given time.
func fromSnapshot(snapshot order.Snapshot, id uuid.UUID, recordedAt time.Time) OrderEventDTO {
	return OrderEventDTO{
		ID:           id,
		OrderID:      int64(snapshot.ID),
		CustomerName: snapshot.CustomerName,
		Total:        snapshot.Total.Amount().Round(2),
		Status:       snapshot.Status.String(),
		RecordedAt:   recordedAt.UTC(),
	}
}
