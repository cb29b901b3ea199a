package jobs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/robfig/cron/v3"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/services"
)

// DefaultFulfillmentSchedule delivers one order every ten seconds.
const DefaultFulfillmentSchedule = "*/10 * * * * *"

type fulfillNextHandler interface {
	Handle(ctx context.Context, cmd commands.FulfillNextOrderCommand) (order.Snapshot, error)
}

// OrderFulfillmentJob delivers the next pending order on a cron schedule.
type OrderFulfillmentJob struct {
	handler  fulfillNextHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewOrderFulfillmentJob creates the job. schedule is a cron spec with a seconds field,
// or a descriptor such as "@every 30s".
func NewOrderFulfillmentJob(handler fulfillNextHandler, schedule string, logger *slog.Logger) *OrderFulfillmentJob {
	if schedule == "" {
		schedule = DefaultFulfillmentSchedule
	}
	return &OrderFulfillmentJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "order_fulfillment_job"),
	}
}

// Start schedules the job and starts the cron runner.
func (j *OrderFulfillmentJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.RunOnce(context.Background()) }); err != nil {
		return fmt.Errorf("invalid schedule %q: %w", j.schedule, err)
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order fulfillment job started", "schedule", j.schedule)
	return nil
}

// RunOnce delivers at most one order. An empty queue is not an error.
func (j *OrderFulfillmentJob) RunOnce(ctx context.Context) {
	delivered, err := j.handler.Handle(ctx, commands.NewFulfillNextOrderCommand())
	switch {
	case errors.Is(err, services.ErrQueueEmpty):
		return
	case err != nil:
		j.logger.ErrorContext(ctx, "Order fulfillment job failed", "error", err)
	default:
		j.logger.DebugContext(ctx, "Order fulfilled on schedule", "order_id", int64(delivered.ID))
	}
}

// Stop stops the scheduler and waits for a running delivery to finish.
func (j *OrderFulfillmentJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Order fulfillment job stopped")
}
