package ordereventrepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"
)

// GormOrderEventRepository implements ports.OrderEventSink using GORM.
type GormOrderEventRepository struct {
	db  *gorm.DB
	now func() time.Time
}

// NewGormOrderEventRepository creates a new GORM order event repository.
func NewGormOrderEventRepository(db *gorm.DB) *GormOrderEventRepository {
	return &GormOrderEventRepository{
		db:  db,
		now: time.Now,
	}
}

// Migrate creates or updates the order_events table.
func (r *GormOrderEventRepository) Migrate(ctx context.Context) error {
	return r.db.WithContext(ctx).AutoMigrate(&OrderEventDTO{})
}

// Name identifies the sink in logs and metrics.
func (r *GormOrderEventRepository) Name() string {
	return "postgres"
}

// Append inserts one event row for the snapshot.
func (r *GormOrderEventRepository) Append(ctx context.Context, snapshot order.Snapshot) error {
	if snapshot.ID <= 0 {
		return errs.NewValueIsOutOfRangeError("order id", int64(snapshot.ID), 1, "max int64")
	}
	if err := snapshot.Status.Validate(); err != nil {
		return err
	}

	dto := fromSnapshot(snapshot, uuid.New(), r.now())
	return r.db.WithContext(ctx).Create(&dto).Error
}
