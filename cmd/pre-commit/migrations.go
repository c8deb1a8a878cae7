package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/thenoetrevino/todo/internal/database"
)

// MigrationCheck applies every schema migration to a scratch database, rolls
// them all back and applies them again, so a broken Up or Down never lands.
type MigrationCheck struct{}

func (m *MigrationCheck) Name() string {
	return "migrations"
}

func (m *MigrationCheck) Wants(file string) bool {
	return strings.HasPrefix(file, "internal/database/migrations/") && strings.HasSuffix(file, ".sql")
}

func (m *MigrationCheck) Run(ctx context.Context, files []string) (int, error) {
	if err := database.VerifyMigrations(ctx); err != nil {
		return 0, fmt.Errorf("migration round trip failed: %w", err)
	}
	return len(files), nil
}
