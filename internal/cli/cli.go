package cli

import (
	"context"
	"errors"

	"github.com/thenoetrevino/todo/internal/app"
)

type contextKey string

const appKey contextKey = "app"

// ErrNoApp is returned when a command runs without an initialized App
var ErrNoApp = errors.New("application not initialized")

// WithApp stores the application container on ctx for commands to pick up
func WithApp(ctx context.Context, a *app.App) context.Context {
	return context.WithValue(ctx, appKey, a)
}

// AppFromContext returns the App stored by WithApp
func AppFromContext(ctx context.Context) (*app.App, error) {
	if ctx == nil {
		return nil, ErrNoApp
	}
	a, ok := ctx.Value(appKey).(*app.App)
	if !ok || a == nil {
		return nil, ErrNoApp
	}
	return a, nil
}
