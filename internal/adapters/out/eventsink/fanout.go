// Package eventsink composes order event sinks: a fan-out over several sinks and a
// circuit breaker for sinks that talk to remote systems.
package eventsink

import (
	"context"
	"errors"
	"fmt"

	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/ports"
)

// NamedSink is an order event sink that can identify itself in logs and metrics.
type NamedSink interface {
	ports.OrderEventSink
	Name() string
}

// FailureCounter is told about every failed append, by sink name.
type FailureCounter interface {
	SinkFailed(sink string)
}

// Fanout appends every snapshot to all of its sinks in order. A failing sink does not
// stop the others; the failures are joined into the returned error.
type Fanout struct {
	sinks    []NamedSink
	failures FailureCounter
}

// NewFanout creates a fan-out over sinks. failures may be nil.
func NewFanout(failures FailureCounter, sinks ...NamedSink) *Fanout {
	return &Fanout{
		sinks:    sinks,
		failures: failures,
	}
}

func (f *Fanout) Name() string {
	return "fanout"
}

// Len returns the number of sinks.
func (f *Fanout) Len() int {
	return len(f.sinks)
}

func (f *Fanout) Append(ctx context.Context, snapshot order.Snapshot) error {
	var errList []error
	for _, sink := range f.sinks {
		if err := sink.Append(ctx, snapshot); err != nil {
			if f.failures != nil {
				f.failures.SinkFailed(sink.Name())
			}
			errList = append(errList, fmt.Errorf("%s sink: %w", sink.Name(), err))
		}
	}
	return errors.Join(errList...)
}
