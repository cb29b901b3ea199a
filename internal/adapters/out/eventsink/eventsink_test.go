package eventsink_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"foodorder/internal/adapters/out/eventsink"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/metrics"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSink struct {
	mock.Mock
	name string
}

func (m *MockSink) Name() string { return m.name }

func (m *MockSink) Append(ctx context.Context, snapshot order.Snapshot) error {
	args := m.Called(ctx, snapshot)
	return args.Error(0)
}

type MockFailureCounter struct{ mock.Mock }

func (m *MockFailureCounter) SinkFailed(sink string) { m.Called(sink) }

type recordingObserver struct {
	states []int
}

func (o *recordingObserver) BreakerStateChanged(_ string, state int) {
	o.states = append(o.states, state)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestFanout_Append(t *testing.T) {
	t.Run("should append to every sink", func(t *testing.T) {
		ctx := t.Context()
		snapshot := order.Snapshot{ID: 1}
		first := &MockSink{name: "file"}
		second := &MockSink{name: "postgres"}
		first.On("Append", ctx, snapshot).Return(nil).Once()
		second.On("Append", ctx, snapshot).Return(nil).Once()

		fanout := eventsink.NewFanout(nil, first, second)

		require.NoError(t, fanout.Append(ctx, snapshot))
		assert.Equal(t, 2, fanout.Len())
		first.AssertExpectations(t)
		second.AssertExpectations(t)
	})

	t.Run("should keep going after a failure and join errors", func(t *testing.T) {
		ctx := t.Context()
		snapshot := order.Snapshot{ID: 1}
		boom := errors.New("boom")
		first := &MockSink{name: "file"}
		second := &MockSink{name: "webhook"}
		first.On("Append", ctx, snapshot).Return(boom).Once()
		second.On("Append", ctx, snapshot).Return(nil).Once()
		counter := new(MockFailureCounter)
		counter.On("SinkFailed", "file").Return().Once()

		err := eventsink.NewFanout(counter, first, second).Append(ctx, snapshot)

		require.ErrorIs(t, err, boom)
		assert.Contains(t, err.Error(), "file sink")
		second.AssertExpectations(t)
		counter.AssertExpectations(t)
	})
}

func TestBreaker_Append(t *testing.T) {
	t.Run("should pass through while closed", func(t *testing.T) {
		ctx := t.Context()
		sink := &MockSink{name: "webhook"}
		sink.On("Append", ctx, mock.Anything).Return(nil).Once()

		b := eventsink.NewBreaker(sink, eventsink.DefaultBreakerSettings(), nil, discardLogger())

		require.NoError(t, b.Append(ctx, order.Snapshot{ID: 1}))
		assert.Equal(t, "webhook", b.Name())
		assert.Equal(t, "closed", b.State())
	})

	t.Run("should open after repeated failures and fail fast", func(t *testing.T) {
		ctx := t.Context()
		boom := errors.New("connection refused")
		sink := &MockSink{name: "webhook"}
		sink.On("Append", ctx, mock.Anything).Return(boom).Times(3)
		observer := &recordingObserver{}

		settings := eventsink.DefaultBreakerSettings()
		settings.Timeout = time.Minute
		b := eventsink.NewBreaker(sink, settings, observer, discardLogger())

		for range 3 {
			require.ErrorIs(t, b.Append(ctx, order.Snapshot{ID: 1}), boom)
		}
		err := b.Append(ctx, order.Snapshot{ID: 1})

		require.ErrorIs(t, err, eventsink.ErrSinkUnavailable)
		assert.Equal(t, "open", b.State())
		assert.Equal(t, []int{metrics.BreakerClosed, metrics.BreakerOpen}, observer.states)
		sink.AssertNumberOfCalls(t, "Append", 3)
	})
}
