package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	httpin "foodorder/internal/adapters/in/http"
	"foodorder/internal/adapters/out/eventsink"
	"foodorder/internal/adapters/out/menufile"
	"foodorder/internal/adapters/out/orderlog"
	"foodorder/internal/adapters/out/postgres/ordereventrepo"
	"foodorder/internal/adapters/out/webhook"
	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/menu"
	"foodorder/internal/core/domain/services"
	"foodorder/internal/jobs"
	"foodorder/internal/metrics"
)

// CompositionRoot owns the single order lifecycle of the process and everything wired
// around it.
type CompositionRoot struct {
	config Config
	logger *slog.Logger

	gormDB    *gorm.DB
	catalog   *menu.Catalog
	lifecycle *services.OrderLifecycle
	menuRepo  *menufile.Repository
	sink      *eventsink.Fanout
	recorder  *commands.EventRecorder

	registry *prometheus.Registry
	metrics  *metrics.Metrics
}

// NewCompositionRoot loads the menu, connects the optional event log database and
// assembles the event sinks.
func NewCompositionRoot(ctx context.Context, config Config, logger *slog.Logger) (*CompositionRoot, error) {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	c := &CompositionRoot{
		config:   config,
		logger:   logger,
		menuRepo: menufile.NewRepository(config.MenuFile, logger),
		registry: registry,
		metrics:  metrics.New(registry),
	}

	items, err := c.menuRepo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load menu: %w", err)
	}
	c.catalog, err = menu.NewCatalog(items)
	if err != nil {
		return nil, fmt.Errorf("build catalog: %w", err)
	}
	logger.InfoContext(ctx, "Menu loaded", "items", c.catalog.Len(), "path", config.MenuFile)

	c.lifecycle = services.NewOrderLifecycle(c.catalog)
	c.metrics.TrackQueueDepth(c.lifecycle.Counts)

	if config.HasDatabase() {
		if c.gormDB, err = openDatabase(ctx, config); err != nil {
			return nil, err
		}
	}

	c.sink = c.buildSinks()
	c.recorder = commands.NewEventRecorder(c.sink, c.metrics, logger)
	return c, nil
}

func openDatabase(ctx context.Context, config Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(config.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if err = ordereventrepo.NewGormOrderEventRepository(db).Migrate(ctx); err != nil {
		return nil, fmt.Errorf("migrate order events: %w", err)
	}
	return db, nil
}

func (c *CompositionRoot) buildSinks() *eventsink.Fanout {
	sinks := []eventsink.NamedSink{orderlog.NewFileSink(c.config.OrderLogFile)}

	if c.gormDB != nil {
		sinks = append(sinks, eventsink.NewBreaker(
			ordereventrepo.NewGormOrderEventRepository(c.gormDB),
			eventsink.DefaultBreakerSettings(),
			c.metrics,
			c.logger,
		))
	}
	if c.config.OrderWebhookURL != "" {
		sinks = append(sinks, eventsink.NewBreaker(
			webhook.NewSink(c.config.OrderWebhookURL, webhook.DefaultTimeout),
			eventsink.DefaultBreakerSettings(),
			c.metrics,
			c.logger,
		))
	}

	return eventsink.NewFanout(c.metrics, sinks...)
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	return commands.NewPlaceOrderCommandHandler(c.lifecycle, c.recorder, c.metrics, c.logger)
}

func (c *CompositionRoot) CreateFulfillNextOrderCommandHandler() commands.FulfillNextOrderCommandHandler {
	return commands.NewFulfillNextOrderCommandHandler(c.lifecycle, c.recorder, c.metrics, c.logger)
}

func (c *CompositionRoot) CreateUndoLastDeliveryCommandHandler() commands.UndoLastDeliveryCommandHandler {
	return commands.NewUndoLastDeliveryCommandHandler(c.lifecycle, c.metrics, c.logger)
}

func (c *CompositionRoot) CreateAddMenuItemCommandHandler() commands.AddMenuItemCommandHandler {
	return commands.NewAddMenuItemCommandHandler(c.catalog, c.menuRepo, c.logger)
}

func (c *CompositionRoot) CreateSetItemAvailabilityCommandHandler() commands.SetItemAvailabilityCommandHandler {
	return commands.NewSetItemAvailabilityCommandHandler(c.catalog, c.menuRepo, c.logger)
}

func (c *CompositionRoot) CreateGetMenuQueryHandler() queries.GetMenuQueryHandler {
	return queries.NewGetMenuQueryHandler(c.catalog)
}

func (c *CompositionRoot) CreateGetPendingOrdersQueryHandler() queries.GetPendingOrdersQueryHandler {
	return queries.NewGetPendingOrdersQueryHandler(c.lifecycle)
}

func (c *CompositionRoot) CreateGetDeliveredOrdersQueryHandler() queries.GetDeliveredOrdersQueryHandler {
	return queries.NewGetDeliveredOrdersQueryHandler(c.lifecycle)
}

// CreateGetOrderEventsQueryHandler returns nil when no database is configured.
func (c *CompositionRoot) CreateGetOrderEventsQueryHandler() *queries.GetOrderEventsQueryHandler {
	if c.gormDB == nil {
		return nil
	}
	h := queries.NewGetOrderEventsQueryHandler(c.gormDB)
	return &h
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateFulfillNextOrderCommandHandler(), c.config.AutoFulfillSchedule, c.logger)
}

// CreateHTTPServer builds the echo instance with every API route registered.
func (c *CompositionRoot) CreateHTTPServer() (*echo.Echo, error) {
	doc, err := httpin.LoadSpec()
	if err != nil {
		return nil, err
	}

	server := httpin.NewServer(httpin.Handlers{
		PlaceOrder:          c.CreatePlaceOrderCommandHandler(),
		FulfillNextOrder:    c.CreateFulfillNextOrderCommandHandler(),
		UndoLastDelivery:    c.CreateUndoLastDeliveryCommandHandler(),
		AddMenuItem:         c.CreateAddMenuItemCommandHandler(),
		SetItemAvailability: c.CreateSetItemAvailabilityCommandHandler(),
		GetMenu:             c.CreateGetMenuQueryHandler(),
		GetPendingOrders:    c.CreateGetPendingOrdersQueryHandler(),
		GetDeliveredOrders:  c.CreateGetDeliveredOrdersQueryHandler(),
		GetOrderEvents:      c.CreateGetOrderEventsQueryHandler(),
	}, c.logger)

	return httpin.NewRouter(server, doc, httpin.RouterOptions{
		Metrics:  c.metrics,
		Gatherer: c.registry,
	})
}

// Close releases the database connection, if any.
func (c *CompositionRoot) Close() error {
	if c.gormDB == nil {
		return nil
	}
	sqlDB, err := c.gormDB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
