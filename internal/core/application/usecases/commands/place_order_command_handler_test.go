package commands_test

import (
	"errors"
	"testing"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/model/menu"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPlaceOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	quantities := map[menu.ItemID]int{1: 2}
	cmd, err := commands.NewPlaceOrderCommand("Alice", quantities)
	require.NoError(t, err)
	placed := placedSnapshot(t, order.Pending)

	lifecycle := new(MockLifecycle)
	sink := new(MockEventSink)
	observer := new(MockObserver)
	mock.InOrder(
		lifecycle.On("Place", "Alice", quantities).Return(placed, nil).Once(),
		sink.On("Append", liveContext, placed).Return(nil).Once(),
		observer.On("TransitionCommitted", commands.TransitionPlace).Return().Once(),
	)

	recorder := commands.NewEventRecorder(sink, observer, discardLogger())
	h := commands.NewPlaceOrderCommandHandler(lifecycle, recorder, observer, discardLogger())
	got, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, placed, got)
	lifecycle.AssertExpectations(t)
	sink.AssertExpectations(t)
	observer.AssertExpectations(t)
}

func TestPlaceOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	lifecycle := new(MockLifecycle)
	h := commands.NewPlaceOrderCommandHandler(lifecycle, nil, nil, discardLogger())

	_, err := h.Handle(t.Context(), commands.PlaceOrderCommand{})

	require.ErrorIs(t, err, commands.ErrPlaceOrderCommandIsNotConstructed)
	lifecycle.AssertNotCalled(t, "Place", mock.Anything, mock.Anything)
}

func TestPlaceOrderCommandHandler_Handle_NoItemsSelected(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewPlaceOrderCommand("Bob", map[menu.ItemID]int{2: 1})
	require.NoError(t, err)

	lifecycle := new(MockLifecycle)
	lifecycle.On("Place", "Bob", mock.Anything).Return(order.Snapshot{}, services.ErrNoItemsSelected).Once()
	sink := new(MockEventSink)
	observer := new(MockObserver)
	observer.On("TransitionRejected", commands.TransitionPlace, "no_items_selected").Return().Once()

	recorder := commands.NewEventRecorder(sink, observer, discardLogger())
	h := commands.NewPlaceOrderCommandHandler(lifecycle, recorder, observer, discardLogger())
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, services.ErrNoItemsSelected)
	sink.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
	observer.AssertExpectations(t)
}

func TestPlaceOrderCommandHandler_Handle_SinkFailureKeepsOrder(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewPlaceOrderCommand("Alice", map[menu.ItemID]int{1: 2})
	require.NoError(t, err)
	placed := placedSnapshot(t, order.Pending)

	lifecycle := new(MockLifecycle)
	lifecycle.On("Place", "Alice", mock.Anything).Return(placed, nil).Once()
	sink := new(MockEventSink)
	sink.On("Append", liveContext, placed).Return(errors.New("disk full")).Once()
	observer := new(MockObserver)
	observer.On("TransitionCommitted", commands.TransitionPlace).Return().Once()
	observer.On("EventSinkFailed", commands.TransitionPlace).Return().Once()

	recorder := commands.NewEventRecorder(sink, observer, discardLogger())
	h := commands.NewPlaceOrderCommandHandler(lifecycle, recorder, observer, discardLogger())
	got, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, placed, got)
	observer.AssertExpectations(t)
}

func TestPlaceOrderCommandHandler_Handle_WithRealLifecycle(t *testing.T) {
	lifecycle := services.NewOrderLifecycle(newTestCatalog(t))
	h := commands.NewPlaceOrderCommandHandler(lifecycle, nil, nil, discardLogger())
	cmd, err := commands.NewPlaceOrderCommand("Alice", map[menu.ItemID]int{1: 3})
	require.NoError(t, err)

	got, err := h.Handle(t.Context(), cmd)

	require.NoError(t, err)
	assert.Equal(t, order.ID(1), got.ID)
	assert.Equal(t, "15.00", got.Total.String())
	pending, delivered := lifecycle.Counts()
	assert.Equal(t, 1, pending)
	assert.Equal(t, 0, delivered)
}
