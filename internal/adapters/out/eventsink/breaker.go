package eventsink

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/sony/gobreaker"

	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/metrics"
)

// ErrSinkUnavailable is returned while the breaker is open or probing.
var ErrSinkUnavailable = errors.New("event sink unavailable")

// BreakerSettings tunes when the breaker trips and how long it stays open.
type BreakerSettings struct {
	// MaxRequests allowed through while half-open.
	MaxRequests uint32
	// Interval is the window over which failures are counted while closed.
	Interval time.Duration
	// Timeout is how long the breaker stays open before probing.
	Timeout time.Duration
	// MinRequests and FailureRatio decide when to trip.
	MinRequests  uint32
	FailureRatio float64
}

func DefaultBreakerSettings() BreakerSettings {
	return BreakerSettings{
		MaxRequests:  3,
		Interval:     15 * time.Second,
		Timeout:      30 * time.Second,
		MinRequests:  3,
		FailureRatio: 0.6,
	}
}

// StateObserver is told about breaker state changes, as metrics.Breaker* values.
type StateObserver interface {
	BreakerStateChanged(name string, state int)
}

// Breaker guards a sink with a circuit breaker so that an unreachable remote system
// fails fast instead of slowing every transition down.
type Breaker struct {
	sink NamedSink
	cb   *gobreaker.CircuitBreaker
}

// NewBreaker wraps sink. observer may be nil.
func NewBreaker(sink NamedSink, settings BreakerSettings, observer StateObserver, logger *slog.Logger) *Breaker {
	logger = logger.With("component", "event_sink_breaker", "sink", sink.Name())

	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        sink.Name(),
		MaxRequests: settings.MaxRequests,
		Interval:    settings.Interval,
		Timeout:     settings.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < settings.MinRequests {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return failureRatio >= settings.FailureRatio
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			if observer != nil {
				observer.BreakerStateChanged(name, stateValue(to))
			}
			logger.Info("Circuit breaker state changed", "from", from.String(), "to", to.String())
		},
	})

	if observer != nil {
		observer.BreakerStateChanged(sink.Name(), metrics.BreakerClosed)
	}

	return &Breaker{sink: sink, cb: cb}
}

func (b *Breaker) Name() string {
	return b.sink.Name()
}

// State returns the breaker state, e.g. "closed" or "open".
func (b *Breaker) State() string {
	return b.cb.State().String()
}

func (b *Breaker) Append(ctx context.Context, snapshot order.Snapshot) error {
	_, err := b.cb.Execute(func() (any, error) {
		return nil, b.sink.Append(ctx, snapshot)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return fmt.Errorf("%w: %s breaker is %s", ErrSinkUnavailable, b.sink.Name(), b.cb.State())
	}
	return err
}

func stateValue(state gobreaker.State) int {
	switch state {
	case gobreaker.StateOpen:
		return metrics.BreakerOpen
	case gobreaker.StateHalfOpen:
		return metrics.BreakerHalfOpen
	default:
		return metrics.BreakerClosed
	}
}
