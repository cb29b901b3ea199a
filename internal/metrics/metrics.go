// Package metrics exposes Prometheus instruments for the order lifecycle, its event sinks
// and the HTTP API.
package metrics

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "foodorder"

// Circuit breaker states as exported by the breaker state gauge.
const (
	BreakerClosed   = 0
	BreakerOpen     = 1
	BreakerHalfOpen = 2
)

// Metrics holds every instrument of the service. All of them are registered on the
// registerer passed to New.
type Metrics struct {
	transitions       *prometheus.CounterVec
	rejections        *prometheus.CounterVec
	eventSinkFailures *prometheus.CounterVec
	sinkErrors        *prometheus.CounterVec
	breakerState      *prometheus.GaugeVec
	requestsTotal     *prometheus.CounterVec
	requestDuration   *prometheus.HistogramVec

	factory promauto.Factory
}

func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		factory: factory,

		// transitions tracks committed lifecycle transitions
		transitions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "order_transitions_total",
				Help:      "Total number of committed order transitions",
			},
			[]string{"transition"},
		),

		// rejections tracks transitions that did not happen
		rejections: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "order_transition_rejections_total",
				Help:      "Total number of rejected order transitions",
			},
			[]string{"transition", "reason"},
		),

		eventSinkFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "order_event_sink_failures_total",
				Help:      "Total number of committed transitions that were not recorded",
			},
			[]string{"transition"},
		),

		sinkErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "event_sink_errors_total",
				Help:      "Total number of failed appends per sink",
			},
			[]string{"sink"},
		),

		// breakerState tracks circuit breaker state (0=closed, 1=open, 2=half-open)
		breakerState: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "circuit_breaker_state",
				Help:      "Circuit breaker state (0=closed, 1=open, 2=half-open)",
			},
			[]string{"circuit_name"},
		),

		requestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "endpoint", "status"},
		),

		requestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "endpoint"},
		),
	}
}

// TransitionCommitted counts a committed transition.
func (m *Metrics) TransitionCommitted(transition string) {
	m.transitions.WithLabelValues(transition).Inc()
}

// TransitionRejected counts a transition that failed, e.g. fulfill on an empty queue.
func (m *Metrics) TransitionRejected(transition string, reason string) {
	m.rejections.WithLabelValues(transition, reason).Inc()
}

// EventSinkFailed counts a committed transition the event sink could not record.
func (m *Metrics) EventSinkFailed(transition string) {
	m.eventSinkFailures.WithLabelValues(transition).Inc()
}

// SinkFailed counts a failed append on one named sink.
func (m *Metrics) SinkFailed(sink string) {
	m.sinkErrors.WithLabelValues(sink).Inc()
}

// BreakerStateChanged records the new state of a circuit breaker.
func (m *Metrics) BreakerStateChanged(name string, state int) {
	m.breakerState.WithLabelValues(name).Set(float64(state))
}

// TrackQueueDepth exports the pending and delivered counts as gauges read on scrape.
func (m *Metrics) TrackQueueDepth(counts func() (pending int, delivered int)) {
	m.factory.NewGaugeFunc(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "pending_orders",
			Help:      "Number of orders waiting in the pending queue",
		},
		func() float64 {
			pending, _ := counts()
			return float64(pending)
		},
	)
	m.factory.NewGaugeFunc(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "delivered_orders",
			Help:      "Number of orders in the delivery history",
		},
		func() float64 {
			_, delivered := counts()
			return float64(delivered)
		},
	)
}

// Middleware records request counts and durations by route template.
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			duration := time.Since(start).Seconds()
			status := strconv.Itoa(c.Response().Status)

			m.requestsTotal.WithLabelValues(c.Request().Method, c.Path(), status).Inc()
			m.requestDuration.WithLabelValues(c.Request().Method, c.Path()).Observe(duration)

			return nil
		}
	}
}
