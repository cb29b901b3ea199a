package commands_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"foodorder/internal/adapters/out/orderlog"
	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/model/menu"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// gatedSink holds its first append until release is closed.
type gatedSink struct {
	entered chan struct{}
	release chan struct{}

	mu      sync.Mutex
	records []order.Status
}

func newGatedSink() *gatedSink {
	return &gatedSink{entered: make(chan struct{}), release: make(chan struct{})}
}

func (s *gatedSink) Append(_ context.Context, snapshot order.Snapshot) error {
	s.mu.Lock()
	first := len(s.records) == 0
	s.records = append(s.records, snapshot.Status)
	s.mu.Unlock()

	if first {
		close(s.entered)
		<-s.release
	}
	return nil
}

func (s *gatedSink) statuses() []order.Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]order.Status(nil), s.records...)
}

func TestEventRecorder_AppendsInCommitOrder(t *testing.T) {
	lifecycle := services.NewOrderLifecycle(newTestCatalog(t))
	sink := newGatedSink()
	recorder := commands.NewEventRecorder(sink, nil, discardLogger())
	place := commands.NewPlaceOrderCommandHandler(lifecycle, recorder, nil, discardLogger())
	fulfill := commands.NewFulfillNextOrderCommandHandler(lifecycle, recorder, nil, discardLogger())

	cmd, err := commands.NewPlaceOrderCommand("Alice", map[menu.ItemID]int{1: 1})
	require.NoError(t, err)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, placeErr := place.Handle(t.Context(), cmd)
		assert.NoError(t, placeErr)
	}()
	<-sink.entered

	go func() {
		defer wg.Done()
		_, fulfillErr := fulfill.Handle(t.Context(), commands.NewFulfillNextOrderCommand())
		assert.NoError(t, fulfillErr)
	}()

	require.Never(t, func() bool {
		_, delivered := lifecycle.Counts()
		return delivered > 0 || len(sink.statuses()) > 1
	}, 100*time.Millisecond, 5*time.Millisecond)

	close(sink.release)
	wg.Wait()

	assert.Equal(t, []order.Status{order.Pending, order.Delivered}, sink.statuses())
}

func TestEventRecorder_AppendsAfterCallerCancels(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orders.txt")
	lifecycle := services.NewOrderLifecycle(newTestCatalog(t))
	recorder := commands.NewEventRecorder(orderlog.NewFileSink(path), nil, discardLogger())
	h := commands.NewPlaceOrderCommandHandler(lifecycle, recorder, nil, discardLogger())

	cmd, err := commands.NewPlaceOrderCommand("Alice", map[menu.ItemID]int{1: 1})
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	placed, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.ID(1), placed.ID)
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "OrderID:1,Name:Alice,Total:5.00,Status:Pending\n", string(raw))
}

func TestEventRecorder_RejectedTransitionIsNotAppended(t *testing.T) {
	sink := new(MockEventSink)
	recorder := commands.NewEventRecorder(sink, nil, discardLogger())

	_, err := recorder.Record(t.Context(), commands.TransitionFulfill, func() (order.Snapshot, error) {
		return order.Snapshot{}, services.ErrQueueEmpty
	})

	require.ErrorIs(t, err, services.ErrQueueEmpty)
	sink.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
}

func TestEventRecorder_NilRecorderOnlyCommits(t *testing.T) {
	var recorder *commands.EventRecorder
	placed := placedSnapshot(t, order.Pending)

	got, err := recorder.Record(t.Context(), commands.TransitionPlace, func() (order.Snapshot, error) {
		return placed, nil
	})
	require.NoError(t, err)
	assert.Equal(t, placed, got)

	_, err = recorder.Record(t.Context(), commands.TransitionPlace, func() (order.Snapshot, error) {
		return order.Snapshot{}, errors.New("boom")
	})
	require.Error(t, err)
}
