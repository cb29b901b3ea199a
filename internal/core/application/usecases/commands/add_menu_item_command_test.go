package commands_test

import (
	"testing"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/model/menu"
	"foodorder/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddMenuItemCommand(t *testing.T) {
	t.Run("should trim and keep valid input", func(t *testing.T) {
		cmd, err := commands.NewAddMenuItemCommand(7, " Samosa ", " Snacks ", decimal.RequireFromString("1.25"), true)
		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, menu.ItemID(7), cmd.ID())
		assert.Equal(t, "Samosa", cmd.Name())
		assert.Equal(t, "Snacks", cmd.Category())
		assert.Equal(t, "1.25", cmd.Price().String())
		assert.True(t, cmd.Available())
	})

	t.Run("should reject a non positive id", func(t *testing.T) {
		_, err := commands.NewAddMenuItemCommand(0, "Samosa", "Snacks", decimal.Zero, true)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should reject a blank name", func(t *testing.T) {
		_, err := commands.NewAddMenuItemCommand(7, " ", "Snacks", decimal.Zero, true)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject commas in the name and category", func(t *testing.T) {
		_, err := commands.NewAddMenuItemCommand(7, "Fish, chips", "Mains\nSides", decimal.Zero, true)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject a negative price", func(t *testing.T) {
		_, err := commands.NewAddMenuItemCommand(7, "Samosa", "Snacks", decimal.RequireFromString("-0.01"), true)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestAddMenuItemCommand_Validate_ZeroValue(t *testing.T) {
	var cmd commands.AddMenuItemCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrAddMenuItemCommandIsNotConstructed)
}

func TestNewSetItemAvailabilityCommand(t *testing.T) {
	cmd, err := commands.NewSetItemAvailabilityCommand(3, false)
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, menu.ItemID(3), cmd.ID())
	assert.False(t, cmd.Available())

	_, err = commands.NewSetItemAvailabilityCommand(-1, true)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	var zero commands.SetItemAvailabilityCommand
	require.ErrorIs(t, zero.Validate(), commands.ErrSetItemAvailabilityCommandIsNotConstructed)
}
