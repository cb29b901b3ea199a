package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/menu"
	"foodorder/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type MockLifecycle struct{ mock.Mock }

func (m *MockLifecycle) Place(customerName string, quantities map[menu.ItemID]int) (order.Snapshot, error) {
	args := m.Called(customerName, quantities)
	return args.Get(0).(order.Snapshot), args.Error(1)
}

func (m *MockLifecycle) FulfillNext() (order.Snapshot, error) {
	args := m.Called()
	return args.Get(0).(order.Snapshot), args.Error(1)
}

func (m *MockLifecycle) UndoLast() (order.Snapshot, error) {
	args := m.Called()
	return args.Get(0).(order.Snapshot), args.Error(1)
}

// liveContext matches any context that has not been cancelled.
var liveContext = mock.MatchedBy(func(ctx context.Context) bool { return ctx.Err() == nil })

type MockEventSink struct{ mock.Mock }

func (m *MockEventSink) Append(ctx context.Context, snapshot order.Snapshot) error {
	args := m.Called(ctx, snapshot)
	return args.Error(0)
}

type MockObserver struct{ mock.Mock }

func (m *MockObserver) TransitionCommitted(transition string) {
	m.Called(transition)
}

func (m *MockObserver) TransitionRejected(transition string, reason string) {
	m.Called(transition, reason)
}

func (m *MockObserver) EventSinkFailed(transition string) {
	m.Called(transition)
}

type MockMenuRepository struct{ mock.Mock }

func (m *MockMenuRepository) Load(ctx context.Context) ([]menu.Item, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]menu.Item)
	return items, args.Error(1)
}

func (m *MockMenuRepository) Save(ctx context.Context, items []menu.Item) error {
	args := m.Called(ctx, items)
	return args.Error(0)
}

func newTestCatalog(t *testing.T) *menu.Catalog {
	t.Helper()
	price, err := kernel.MoneyFromString("5.00")
	require.NoError(t, err)
	burger, err := menu.NewItem(1, "Burger", "Mains", price, true)
	require.NoError(t, err)
	catalog, err := menu.NewCatalog([]menu.Item{burger})
	require.NoError(t, err)
	return catalog
}

func placedSnapshot(t *testing.T, status order.Status) order.Snapshot {
	t.Helper()
	catalog := newTestCatalog(t)
	lines := order.SelectLines(catalog, map[menu.ItemID]int{1: 2})
	o, err := order.NewOrder(1, "Alice", lines)
	require.NoError(t, err)
	if status == order.Delivered {
		require.NoError(t, o.Deliver())
	}
	return o.Snapshot()
}
