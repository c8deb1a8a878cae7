package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/todo/internal/database"
	taskservice "github.com/thenoetrevino/todo/internal/services/task"
	workspaceservice "github.com/thenoetrevino/todo/internal/services/workspace"
)

// App holds all application services and provides dependency injection.
// It owns the database handle: create one at process start and Close it at teardown.
type App struct {
	db *sql.DB

	// Service layer (business logic)
	WorkspaceService workspaceservice.Service
	TaskService      taskservice.Service
}

// Open initializes the database at path, migrates it and builds the services.
func Open(ctx context.Context, path string, opts ...Option) (*App, error) {
	db, err := database.InitDB(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return New(db, opts...), nil
}

// New creates a new App over an already migrated database.
func New(db *sql.DB, opts ...Option) *App {
	cfg := &appConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(cfg)
	}

	repo := database.NewRepository(db)

	workspaceOpts := []workspaceservice.Option{workspaceservice.WithLogger(cfg.logger)}
	taskOpts := []taskservice.Option{taskservice.WithLogger(cfg.logger)}
	if cfg.clock != nil {
		workspaceOpts = append(workspaceOpts, workspaceservice.WithClock(cfg.clock))
		taskOpts = append(taskOpts, taskservice.WithClock(cfg.clock))
	}

	return &App{
		db:               db,
		WorkspaceService: workspaceservice.NewService(repo, workspaceOpts...),
		TaskService:      taskservice.NewService(repo, taskOpts...),
	}
}

// DB exposes the underlying handle for schema inspection (migrate command, tests).
func (a *App) DB() *sql.DB {
	return a.db
}

// Close releases the database handle.
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}
