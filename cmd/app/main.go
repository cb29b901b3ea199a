package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"

	"foodorder/cmd"
)

const shutdownTimeout = 10 * time.Second

func main() {
	loadDotEnv()
	configs := getConfigs()
	if err := configs.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := newLogger(configs.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := cmd.NewCompositionRoot(ctx, configs, logger)
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
	defer app.Close() //nolint:errcheck // process is exiting

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(ctx, app, configs.HTTPPort, logger)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:            goDotEnvVariable("HTTP_PORT", "8080"),
		MenuFile:            goDotEnvVariable("MENU_FILE", "menu.txt"),
		OrderLogFile:        goDotEnvVariable("ORDER_LOG_FILE", "orders.txt"),
		DBHost:              goDotEnvVariable("DB_HOST", ""),
		DBPort:              goDotEnvVariable("DB_PORT", "5432"),
		DBUser:              goDotEnvVariable("DB_USER", ""),
		DBPassword:          goDotEnvVariable("DB_PASSWORD", ""),
		DBName:              goDotEnvVariable("DB_NAME", ""),
		DBSslMode:           goDotEnvVariable("DB_SSLMODE", "disable"),
		OrderWebhookURL:     goDotEnvVariable("ORDER_WEBHOOK_URL", ""),
		AutoFulfillSchedule: goDotEnvVariable("AUTO_FULFILL_SCHEDULE", ""),
		LogLevel:            goDotEnvVariable("LOG_LEVEL", "info"),
	}
	return config
}

// loadDotEnv reads .env into the environment when the file exists. Variables that are
// already set win over the file.
func loadDotEnv() {
	err := godotenv.Load(".env")
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}
}

func goDotEnvVariable(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}

func startWebServer(ctx context.Context, app *cmd.CompositionRoot, port string, logger *slog.Logger) {
	e, err := app.CreateHTTPServer()
	if err != nil {
		log.Fatalf("Failed to build HTTP server: %v", err)
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if shutdownErr := e.Shutdown(shutdownCtx); shutdownErr != nil {
			logger.Error("HTTP server shutdown failed", "error", shutdownErr)
		}
	}()

	logger.Info("HTTP server starting", "port", port)
	if err = e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
		e.Logger.Fatal(err)
	}
}
