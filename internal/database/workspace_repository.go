package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/thenoetrevino/todo/internal/models"
)

const workspaceColumns = `id, name, created_at, updated_at`

// WorkspaceRepo handles all workspace-related database operations.
type WorkspaceRepo struct {
	db querier
}

// CreateWorkspaceRecord inserts a workspace with both timestamps set to now
func (r *WorkspaceRepo) CreateWorkspaceRecord(ctx context.Context, name string, now time.Time) (*models.Workspace, error) {
	stamp := formatTime(now)
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO workspaces (name, created_at, updated_at) VALUES (?, ?, ?)`,
		name, stamp, stamp,
	)
	if err != nil {
		return nil, models.NewStorageError(fmt.Sprintf("insert workspace %q", name), err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, models.NewStorageError("read workspace id after insert", err)
	}

	return r.GetWorkspaceByID(ctx, int(id))
}

// GetWorkspaceByID retrieves a workspace by its ID
func (r *WorkspaceRepo) GetWorkspaceByID(ctx context.Context, id int) (*models.Workspace, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+workspaceColumns+` FROM workspaces WHERE id = ?`,
		id,
	)
	workspace, err := scanWorkspace(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("workspace %d: %w", id, models.ErrWorkspaceNotFound)
	}
	if err != nil {
		return nil, models.NewStorageError(fmt.Sprintf("get workspace %d", id), err)
	}
	return workspace, nil
}

// GetAllWorkspaces retrieves all workspaces, oldest first
func (r *WorkspaceRepo) GetAllWorkspaces(ctx context.Context) ([]*models.Workspace, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+workspaceColumns+` FROM workspaces ORDER BY created_at, id`,
	)
	if err != nil {
		return nil, models.NewStorageError("query workspaces", err)
	}
	defer closeRows(rows)

	workspaces := make([]*models.Workspace, 0, 10)
	for rows.Next() {
		workspace, err := scanWorkspace(rows)
		if err != nil {
			return nil, models.NewStorageError("scan workspace row", err)
		}
		workspaces = append(workspaces, workspace)
	}

	if err := rows.Err(); err != nil {
		return nil, models.NewStorageError("iterate workspace rows", err)
	}
	return workspaces, nil
}

// UpdateWorkspaceName renames a workspace and stamps updated_at
func (r *WorkspaceRepo) UpdateWorkspaceName(ctx context.Context, id int, name string, updatedAt time.Time) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE workspaces SET name = ?, updated_at = ? WHERE id = ?`,
		name, formatTime(updatedAt), id,
	)
	if err != nil {
		return models.NewStorageError(fmt.Sprintf("update workspace %d", id), err)
	}
	return expectOneRow(result, fmt.Sprintf("workspace %d", id), models.ErrWorkspaceNotFound)
}

// DeleteWorkspaceRecord removes a single workspace row. Owned tasks are not
// touched here; the schema restricts deleting a workspace that still has tasks.
func (r *WorkspaceRepo) DeleteWorkspaceRecord(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM workspaces WHERE id = ?`, id)
	if err != nil {
		return models.NewStorageError(fmt.Sprintf("delete workspace %d", id), err)
	}
	return expectOneRow(result, fmt.Sprintf("workspace %d", id), models.ErrWorkspaceNotFound)
}

// rowScanner is satisfied by *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

func scanWorkspace(s rowScanner) (*models.Workspace, error) {
	var (
		workspace            models.Workspace
		createdAt, updatedAt string
	)
	if err := s.Scan(&workspace.ID, &workspace.Name, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	var err error
	if workspace.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	if workspace.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, err
	}
	return &workspace, nil
}

// expectOneRow turns "zero rows affected" into notFound
func expectOneRow(result sql.Result, what string, notFound error) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return models.NewStorageError("read affected rows for "+what, err)
	}
	if affected == 0 {
		return fmt.Errorf("%s: %w", what, notFound)
	}
	return nil
}
