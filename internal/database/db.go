// Package database handles the connection to the SQLite db and all queries against it
package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// MemoryPath opens a private in-memory database, mostly useful in tests
const MemoryPath = ":memory:"

// InitDB opens the database at path, applies connection pragmas and runs pending migrations.
func InitDB(ctx context.Context, path string) (*sql.DB, error) {
	db, err := Open(ctx, path)
	if err != nil {
		return nil, err
	}

	if _, err := RunMigrations(ctx, db); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			slog.Error("error closing db", "error", closeErr)
		}
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, nil
}

// Open opens the database without touching the schema.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	if path != MemoryPath {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dsn(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if path == MemoryPath {
		// every new connection would get its own empty database
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
		db.SetConnMaxLifetime(0)
	}

	if err := db.PingContext(ctx); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			slog.Error("error closing db", "error", closeErr)
		}
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	var foreignKeys int
	if err := db.QueryRowContext(ctx, "PRAGMA foreign_keys").Scan(&foreignKeys); err != nil || foreignKeys != 1 {
		slog.Error("Failed to enable foreign keys", "error", err, "foreign_keys", foreignKeys)
		if closeErr := db.Close(); closeErr != nil {
			slog.Error("error closing db", "error", closeErr)
		}
		if err == nil {
			err = fmt.Errorf("foreign keys are disabled")
		}
		return nil, err
	}

	return db, nil
}

// dsn builds the connection string. Pragmas go in the DSN so that every pooled
// connection gets them, not just the first one.
func dsn(path string) string {
	params := url.Values{}
	params.Add("_pragma", "foreign_keys(1)")
	params.Add("_pragma", "busy_timeout(5000)")
	if path != MemoryPath {
		params.Add("_pragma", "journal_mode(WAL)")
	}
	// take the write lock when the transaction starts rather than on first write
	params.Set("_txlock", "immediate")
	return "file:" + path + "?" + params.Encode()
}
