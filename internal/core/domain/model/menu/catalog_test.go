package menu_test

import (
	"sync"
	"testing"

	"foodorder/internal/core/domain/model/menu"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCatalog(t *testing.T) *menu.Catalog {
	t.Helper()
	burger, err := menu.NewItem(1, "Burger", "Mains", mustMoney(t, "5.00"), true)
	require.NoError(t, err)
	fries, err := menu.NewItem(2, "Fries", "Sides", mustMoney(t, "2.00"), false)
	require.NoError(t, err)
	cola, err := menu.NewItem(3, "Cola", "Drinks", mustMoney(t, "1.50"), true)
	require.NoError(t, err)

	catalog, err := menu.NewCatalog([]menu.Item{burger, fries, cola})
	require.NoError(t, err)
	return catalog
}

func TestNewCatalog(t *testing.T) {
	t.Run("should keep catalog order", func(t *testing.T) {
		catalog := newTestCatalog(t)

		items := catalog.Items()
		require.Len(t, items, 3)
		assert.Equal(t, []menu.ItemID{1, 2, 3}, []menu.ItemID{items[0].ID(), items[1].ID(), items[2].ID()})
		assert.Equal(t, 3, catalog.Len())
	})

	t.Run("should reject duplicate identifiers", func(t *testing.T) {
		a, _ := menu.NewItem(1, "Burger", "Mains", mustMoney(t, "5"), true)
		b, _ := menu.NewItem(1, "Veggie Burger", "Mains", mustMoney(t, "6"), true)

		_, err := menu.NewCatalog([]menu.Item{a, b})

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "already in the catalog")
	})

	t.Run("should reject unconstructed items", func(t *testing.T) {
		_, err := menu.NewCatalog([]menu.Item{{}})

		assert.ErrorIs(t, err, menu.ErrItemIsNotConstructed)
	})
}

func TestCatalog_Lookup(t *testing.T) {
	catalog := newTestCatalog(t)

	item, ok := catalog.Lookup(2)
	require.True(t, ok)
	assert.Equal(t, "Fries", item.Name())

	_, ok = catalog.Lookup(99)
	assert.False(t, ok)
}

func TestCatalog_Add(t *testing.T) {
	catalog := newTestCatalog(t)
	shake, _ := menu.NewItem(4, "Shake", "Drinks", mustMoney(t, "3.25"), true)

	require.NoError(t, catalog.Add(shake))
	items := catalog.Items()
	assert.Equal(t, menu.ItemID(4), items[len(items)-1].ID())

	assert.ErrorIs(t, catalog.Add(shake), errs.ErrValueIsInvalid)
}

func TestCatalog_SetAvailability(t *testing.T) {
	t.Run("should toggle existing item", func(t *testing.T) {
		catalog := newTestCatalog(t)

		updated, err := catalog.SetAvailability(2, true)

		require.NoError(t, err)
		assert.True(t, updated.IsAvailable())
		item, _ := catalog.Lookup(2)
		assert.True(t, item.IsAvailable())
	})

	t.Run("should report missing item", func(t *testing.T) {
		catalog := newTestCatalog(t)

		_, err := catalog.SetAvailability(42, true)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		assert.Contains(t, err.Error(), "menu item 42")
	})

	t.Run("handed out copies are not affected", func(t *testing.T) {
		catalog := newTestCatalog(t)
		before := catalog.Items()

		_, err := catalog.SetAvailability(1, false)

		require.NoError(t, err)
		assert.True(t, before[0].IsAvailable())
	})
}

func TestCatalog_ConcurrentAccess(t *testing.T) {
	catalog := newTestCatalog(t)
	var wg sync.WaitGroup

	for i := range 50 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, _ = catalog.SetAvailability(2, i%2 == 0)
		}()
		go func() {
			defer wg.Done()
			_ = catalog.Items()
			_, _ = catalog.Lookup(2)
		}()
	}
	wg.Wait()

	assert.Equal(t, 3, catalog.Len())
}
