package commands_test

import (
	"errors"
	"testing"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/model/menu"
	"foodorder/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAddMenuItemCommandHandler_Handle(t *testing.T) {
	t.Run("should add the item and save the whole menu", func(t *testing.T) {
		ctx := t.Context()
		catalog := newTestCatalog(t)
		repo := new(MockMenuRepository)
		repo.On("Save", ctx, mock.MatchedBy(func(items []menu.Item) bool {
			return len(items) == 2 && items[1].Name() == "Samosa"
		})).Return(nil).Once()

		cmd, err := commands.NewAddMenuItemCommand(7, "Samosa", "Snacks", decimal.RequireFromString("1.25"), true)
		require.NoError(t, err)

		h := commands.NewAddMenuItemCommandHandler(catalog, repo, discardLogger())
		item, err := h.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, menu.ItemID(7), item.ID())
		assert.Equal(t, "1.25", item.Price().String())
		_, found := catalog.Lookup(7)
		assert.True(t, found)
		repo.AssertExpectations(t)
	})

	t.Run("should reject a duplicate id without saving", func(t *testing.T) {
		catalog := newTestCatalog(t)
		repo := new(MockMenuRepository)
		cmd, err := commands.NewAddMenuItemCommand(1, "Another burger", "Mains", decimal.NewFromInt(3), true)
		require.NoError(t, err)

		h := commands.NewAddMenuItemCommandHandler(catalog, repo, discardLogger())
		_, err = h.Handle(t.Context(), cmd)

		require.Error(t, err)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
		assert.Equal(t, 1, catalog.Len())
	})

	t.Run("should report a save failure", func(t *testing.T) {
		catalog := newTestCatalog(t)
		repo := new(MockMenuRepository)
		repo.On("Save", mock.Anything, mock.Anything).Return(errors.New("read-only file system")).Once()
		cmd, err := commands.NewAddMenuItemCommand(7, "Samosa", "Snacks", decimal.NewFromInt(1), true)
		require.NoError(t, err)

		h := commands.NewAddMenuItemCommandHandler(catalog, repo, discardLogger())
		_, err = h.Handle(t.Context(), cmd)

		require.ErrorContains(t, err, "save menu")
	})

	t.Run("should reject a command built without the constructor", func(t *testing.T) {
		h := commands.NewAddMenuItemCommandHandler(newTestCatalog(t), new(MockMenuRepository), discardLogger())
		_, err := h.Handle(t.Context(), commands.AddMenuItemCommand{})
		require.ErrorIs(t, err, commands.ErrAddMenuItemCommandIsNotConstructed)
	})
}

func TestSetItemAvailabilityCommandHandler_Handle(t *testing.T) {
	t.Run("should toggle availability and save", func(t *testing.T) {
		ctx := t.Context()
		catalog := newTestCatalog(t)
		repo := new(MockMenuRepository)
		repo.On("Save", ctx, mock.MatchedBy(func(items []menu.Item) bool {
			return len(items) == 1 && !items[0].IsAvailable()
		})).Return(nil).Once()
		cmd, err := commands.NewSetItemAvailabilityCommand(1, false)
		require.NoError(t, err)

		h := commands.NewSetItemAvailabilityCommandHandler(catalog, repo, discardLogger())
		item, err := h.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.False(t, item.IsAvailable())
		repo.AssertExpectations(t)
	})

	t.Run("should return item not found for an unknown id", func(t *testing.T) {
		catalog := newTestCatalog(t)
		repo := new(MockMenuRepository)
		cmd, err := commands.NewSetItemAvailabilityCommand(42, true)
		require.NoError(t, err)

		h := commands.NewSetItemAvailabilityCommandHandler(catalog, repo, discardLogger())
		_, err = h.Handle(t.Context(), cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		var notFound *errs.ObjectNotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, 42, notFound.ID)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}
