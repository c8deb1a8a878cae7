package app

import (
	"log/slog"

	"github.com/thenoetrevino/todo/internal/models"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	clock  models.Clock
	logger *slog.Logger
}

// WithClock sets the clock used for created_at/updated_at
func WithClock(clock models.Clock) Option {
	return func(cfg *appConfig) {
		cfg.clock = clock
	}
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		cfg.logger = logger
	}
}
