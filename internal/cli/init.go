// Package cli provides common initialization for the gastos command.
package cli

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"gastos/internal/log"
)

// LoadEnvFile loads the .env file for local development. Errors are
// ignored silently as the file is optional.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// SetupLogger initializes structured logging at the given level.
func SetupLogger(level string) *log.Logger {
	return log.New(log.Config{Level: log.ParseLevel(level)})
}

// RootContext returns a context cancelled on SIGINT/SIGTERM, so an
// in-flight command unwinds cleanly on Ctrl-C.
func RootContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}
