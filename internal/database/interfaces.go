package database

import (
	"context"
	"time"

	"github.com/thenoetrevino/todo/internal/models"
)

// WorkspaceReader defines read operations for workspaces.
type WorkspaceReader interface {
	GetWorkspaceByID(ctx context.Context, id int) (*models.Workspace, error)
	GetAllWorkspaces(ctx context.Context) ([]*models.Workspace, error)
}

// WorkspaceWriter defines write operations for workspaces.
type WorkspaceWriter interface {
	CreateWorkspaceRecord(ctx context.Context, name string, now time.Time) (*models.Workspace, error)
	UpdateWorkspaceName(ctx context.Context, id int, name string, updatedAt time.Time) error
	DeleteWorkspaceRecord(ctx context.Context, id int) error
}

// WorkspaceRepository combines all workspace-related operations.
type WorkspaceRepository interface {
	WorkspaceReader
	WorkspaceWriter
}

// TaskReader defines read operations for tasks.
type TaskReader interface {
	GetTaskByID(ctx context.Context, id int) (*models.Task, error)
	ListTasks(ctx context.Context, filter models.TaskFilter) ([]*models.Task, error)
	CountTasksByWorkspace(ctx context.Context, workspaceID int) (models.TaskCounts, error)
}

// TaskWriter defines write operations for tasks.
type TaskWriter interface {
	CreateTaskRecord(ctx context.Context, task *models.Task) (*models.Task, error)
	SaveTask(ctx context.Context, task *models.Task) error
	DeleteTaskRecord(ctx context.Context, id int) error
	DetachSubtasks(ctx context.Context, parentID int, updatedAt time.Time) (int, error)
}

// TaskRepository combines all task-related operations.
type TaskRepository interface {
	TaskReader
	TaskWriter
}

// Store is every query the services run, either directly or inside a transaction.
type Store interface {
	WorkspaceRepository
	TaskRepository
}

// DataStore is a Store that can also open write transactions.
// Writes issued through WithTx are serialized: at most one is in flight at a time.
type DataStore interface {
	Store
	WithTx(ctx context.Context, fn func(tx Store) error) error
}
