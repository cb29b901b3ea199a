package menufile_test

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"foodorder/internal/adapters/out/menufile"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/menu"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepository(t *testing.T, content string) (*menufile.Repository, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "menu.txt")
	if content != "" {
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	}
	return menufile.NewRepository(path, slog.New(slog.NewTextHandler(io.Discard, nil))), path
}

func TestRepository_Load(t *testing.T) {
	t.Run("should skip malformed and blank lines", func(t *testing.T) {
		content := "1,Burger,Mains,5.75,1\n" +
			"\n" +
			"2,Fries,Sides\n" +
			"x,Soda,Drinks,1.00,1\n" +
			"3,Soda,Drinks,abc,1\n" +
			"4,Shake,Drinks,2.5,0\n" +
			"5,Tea,Drinks,1,yes\n"
		repo, _ := newRepository(t, content)

		items, err := repo.Load(t.Context())

		require.NoError(t, err)
		require.Len(t, items, 3)
		assert.Equal(t, menu.ItemID(1), items[0].ID())
		assert.Equal(t, "Burger", items[0].Name())
		assert.Equal(t, "Mains", items[0].Category())
		assert.Equal(t, "5.75", items[0].Price().String())
		assert.True(t, items[0].IsAvailable())
		assert.Equal(t, menu.ItemID(4), items[1].ID())
		assert.False(t, items[1].IsAvailable())
		assert.False(t, items[2].IsAvailable())
	})

	t.Run("should skip negative prices and repeated ids", func(t *testing.T) {
		repo, _ := newRepository(t, "1,Burger,Mains,-1,1\n2,Fries,Sides,2,1\n2,Chips,Sides,3,1\n")

		items, err := repo.Load(t.Context())

		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "Fries", items[0].Name())
	})

	t.Run("should return an empty menu when the file is missing", func(t *testing.T) {
		repo, _ := newRepository(t, "")

		items, err := repo.Load(t.Context())

		require.NoError(t, err)
		assert.Empty(t, items)
	})
}

func TestRepository_SaveThenLoad(t *testing.T) {
	repo, path := newRepository(t, "")
	price, err := kernel.MoneyFromString("2.50")
	require.NoError(t, err)
	fries, err := menu.NewItem(2, "Fries", "Sides", price, false)
	require.NoError(t, err)
	burger, err := menu.NewItem(1, "Burger", "Mains", kernel.ZeroMoney(), true)
	require.NoError(t, err)

	require.NoError(t, repo.Save(t.Context(), []menu.Item{fries, burger}))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "2,Fries,Sides,2.5,0\n1,Burger,Mains,0,1\n", string(raw))

	items, err := repo.Load(t.Context())
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, menu.ItemID(2), items[0].ID())
	assert.True(t, items[0].Price().IsEqual(price))

	matches, err := filepath.Glob(filepath.Join(filepath.Dir(path), "*.tmp"))
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestParseLine(t *testing.T) {
	item, err := menufile.ParseLine("7, Samosa ,Snacks, 1.25 ,1,extra")
	require.NoError(t, err)
	assert.Equal(t, "Samosa", item.Name())
	assert.Equal(t, "1.25", item.Price().String())
	assert.Equal(t, "7,Samosa,Snacks,1.25,1", menufile.FormatLine(item))

	_, err = menufile.ParseLine("0,Nothing,None,1,1")
	require.Error(t, err)
}
