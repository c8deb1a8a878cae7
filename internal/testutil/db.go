// Package testutil holds helpers shared by package tests
package testutil

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/thenoetrevino/todo/internal/database"
	"github.com/thenoetrevino/todo/internal/models"
)

// SetupTestDB creates an in-memory database with the full schema migrated.
// It is closed when the test ends.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := database.InitDB(context.Background(), database.MemoryPath)
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})

	return db
}

// SetupTestFileDB creates a migrated database file in a temp dir, for tests
// that need more than one connection
func SetupTestFileDB(t *testing.T) (*sql.DB, string) {
	t.Helper()

	path := t.TempDir() + "/todo.db"
	db, err := database.InitDB(context.Background(), path)
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})

	return db, path
}

// CreateTestWorkspace inserts a workspace directly, bypassing the services
func CreateTestWorkspace(t *testing.T, db *sql.DB, name string) *models.Workspace {
	t.Helper()

	now := time.Now().UTC()
	ws, err := database.NewRepository(db).CreateWorkspaceRecord(context.Background(), name, now)
	if err != nil {
		t.Fatalf("Failed to create test workspace: %v", err)
	}
	return ws
}

// CreateTestTask inserts an open top-level task directly, bypassing the services
func CreateTestTask(t *testing.T, db *sql.DB, workspaceID int, title string) *models.Task {
	t.Helper()

	now := time.Now().UTC()
	task, err := database.NewRepository(db).CreateTaskRecord(context.Background(), &models.Task{
		Title:       title,
		WorkspaceID: workspaceID,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		t.Fatalf("Failed to create test task: %v", err)
	}
	return task
}
