package order_test

import (
	"testing"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/menu"
	"foodorder/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

func mustItem(t *testing.T, id menu.ItemID, name string, price string, available bool) menu.Item {
	t.Helper()
	m, err := kernel.MoneyFromString(price)
	require.NoError(t, err)
	item, err := menu.NewItem(id, name, "Food", m, available)
	require.NoError(t, err)
	return item
}

func mustLine(t *testing.T, item menu.Item, qty int) order.Line {
	t.Helper()
	line, err := order.NewLine(item, qty)
	require.NoError(t, err)
	return line
}

func mustMoney(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromString(s)
	require.NoError(t, err)
	return m
}
