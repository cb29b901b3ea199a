package cmd

import (
	"fmt"
	"strings"
)

type Config struct {
	HTTPPort     string
	MenuFile     string
	OrderLogFile string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	OrderWebhookURL     string
	AutoFulfillSchedule string
	LogLevel            string
}

// HasDatabase reports whether the Postgres order event log is configured.
func (c Config) HasDatabase() bool {
	return c.DBHost != ""
}

// DSN returns the Postgres connection string.
func (c Config) DSN() string {
	sslMode := c.DBSslMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, sslMode)
}

// Validate checks the settings that have no usable default.
func (c Config) Validate() error {
	var missing []string
	if c.HTTPPort == "" {
		missing = append(missing, "HTTP_PORT")
	}
	if c.MenuFile == "" {
		missing = append(missing, "MENU_FILE")
	}
	if c.OrderLogFile == "" {
		missing = append(missing, "ORDER_LOG_FILE")
	}
	if c.HasDatabase() {
		for _, kv := range [][2]string{
			{"DB_PORT", c.DBPort},
			{"DB_USER", c.DBUser},
			{"DB_NAME", c.DBName},
		} {
			if kv[1] == "" {
				missing = append(missing, kv[0])
			}
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing configuration: %s", strings.Join(missing, ", "))
	}
	return nil
}
