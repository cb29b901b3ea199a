package cmd_test

import (
	"testing"

	"foodorder/cmd"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Validate(t *testing.T) {
	t.Run("should accept a file only setup", func(t *testing.T) {
		cfg := cmd.Config{HTTPPort: "8080", MenuFile: "menu.txt", OrderLogFile: "orders.txt"}
		require.NoError(t, cfg.Validate())
		assert.False(t, cfg.HasDatabase())
	})

	t.Run("should require the database settings once a host is given", func(t *testing.T) {
		cfg := cmd.Config{HTTPPort: "8080", MenuFile: "menu.txt", OrderLogFile: "orders.txt", DBHost: "localhost"}
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "DB_USER")
	})

	t.Run("should report every missing key", func(t *testing.T) {
		err := cmd.Config{}.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "HTTP_PORT")
		assert.Contains(t, err.Error(), "MENU_FILE")
	})
}

func TestConfig_DSN(t *testing.T) {
	cfg := cmd.Config{DBHost: "db", DBPort: "5432", DBUser: "app", DBPassword: "secret", DBName: "orders"}
	assert.Equal(t, "host=db port=5432 user=app password=secret dbname=orders sslmode=disable", cfg.DSN())
}
