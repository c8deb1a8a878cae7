package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/thenoetrevino/todo/internal/models"
)

const taskColumns = `id, title, description, completed, workspace_id, parent_task_id, created_at, updated_at`

// TaskRepo handles all task-related database operations.
type TaskRepo struct {
	db querier
}

// CreateTaskRecord inserts task as given and returns the stored row.
// ID is ignored; the database assigns it.
func (r *TaskRepo) CreateTaskRecord(ctx context.Context, task *models.Task) (*models.Task, error) {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO tasks (title, description, completed, workspace_id, parent_task_id, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		task.Title,
		stringToNullString(task.Description),
		task.Completed,
		task.WorkspaceID,
		ptrToNullInt(task.ParentID),
		formatTime(task.CreatedAt),
		formatTime(task.UpdatedAt),
	)
	if err != nil {
		return nil, models.NewStorageError(fmt.Sprintf("insert task %q", task.Title), err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, models.NewStorageError("read task id after insert", err)
	}

	return r.GetTaskByID(ctx, int(id))
}

// GetTaskByID retrieves a task by its ID
func (r *TaskRepo) GetTaskByID(ctx context.Context, id int) (*models.Task, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+taskColumns+` FROM tasks WHERE id = ?`, id)
	task, err := scanTask(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("task %d: %w", id, models.ErrTaskNotFound)
	}
	if err != nil {
		return nil, models.NewStorageError(fmt.Sprintf("get task %d", id), err)
	}
	return task, nil
}

// ListTasks returns the tasks matching filter ordered by creation time.
// The whole result is read by one statement, so it is a consistent snapshot.
func (r *TaskRepo) ListTasks(ctx context.Context, filter models.TaskFilter) ([]*models.Task, error) {
	where, args := buildTaskFilter(filter)

	query := `SELECT ` + taskColumns + ` FROM tasks` + where + ` ORDER BY created_at, id`
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, models.NewStorageError("query tasks", err)
	}
	defer closeRows(rows)

	tasks := make([]*models.Task, 0, 16)
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, models.NewStorageError("scan task row", err)
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		return nil, models.NewStorageError("iterate task rows", err)
	}
	return tasks, nil
}

// CountTasksByWorkspace returns total and completed task counts for a workspace
func (r *TaskRepo) CountTasksByWorkspace(ctx context.Context, workspaceID int) (models.TaskCounts, error) {
	counts := models.TaskCounts{WorkspaceID: workspaceID}
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COALESCE(SUM(CASE WHEN completed THEN 1 ELSE 0 END), 0)
		 FROM tasks WHERE workspace_id = ?`,
		workspaceID,
	).Scan(&counts.Total, &counts.Completed)
	if err != nil {
		return counts, models.NewStorageError(fmt.Sprintf("count tasks for workspace %d", workspaceID), err)
	}
	return counts, nil
}

// SaveTask writes every mutable field of task back to its row
func (r *TaskRepo) SaveTask(ctx context.Context, task *models.Task) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE tasks
		 SET title = ?, description = ?, completed = ?, parent_task_id = ?, updated_at = ?
		 WHERE id = ?`,
		task.Title,
		stringToNullString(task.Description),
		task.Completed,
		ptrToNullInt(task.ParentID),
		formatTime(task.UpdatedAt),
		task.ID,
	)
	if err != nil {
		return models.NewStorageError(fmt.Sprintf("update task %d", task.ID), err)
	}
	return expectOneRow(result, fmt.Sprintf("task %d", task.ID), models.ErrTaskNotFound)
}

// DeleteTaskRecord removes a single task row
func (r *TaskRepo) DeleteTaskRecord(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return models.NewStorageError(fmt.Sprintf("delete task %d", id), err)
	}
	return expectOneRow(result, fmt.Sprintf("task %d", id), models.ErrTaskNotFound)
}

// DetachSubtasks promotes the children of parentID to top-level tasks and
// reports how many were changed.
func (r *TaskRepo) DetachSubtasks(ctx context.Context, parentID int, updatedAt time.Time) (int, error) {
	result, err := r.db.ExecContext(ctx,
		`UPDATE tasks
		 SET parent_task_id = NULL,
		     updated_at = CASE WHEN updated_at > ? THEN updated_at ELSE ? END
		 WHERE parent_task_id = ?`,
		formatTime(updatedAt), formatTime(updatedAt), parentID,
	)
	if err != nil {
		return 0, models.NewStorageError(fmt.Sprintf("detach subtasks of task %d", parentID), err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, models.NewStorageError("read affected rows for subtasks", err)
	}
	return int(affected), nil
}

// buildTaskFilter turns a filter into a WHERE clause with positional args.
// Returns an empty clause when the filter is empty.
func buildTaskFilter(filter models.TaskFilter) (string, []any) {
	var (
		conds []string
		args  []any
	)

	if filter.WorkspaceID != nil {
		conds = append(conds, "workspace_id = ?")
		args = append(args, *filter.WorkspaceID)
	}
	if filter.Completed != nil {
		conds = append(conds, "completed = ?")
		args = append(args, *filter.Completed)
	}
	if filter.ParentID != nil {
		conds = append(conds, "parent_task_id = ?")
		args = append(args, *filter.ParentID)
	}
	// Bounds past either end of the storable range are resolved here rather
	// than compared as text.
	if from := filter.CreatedFrom; !from.IsZero() {
		switch {
		case from.After(maxStoredTime):
			conds = append(conds, "1 = 0")
		case from.Before(minStoredTime):
		default:
			conds = append(conds, "created_at >= ?")
			args = append(args, formatTime(from))
		}
	}
	if to := filter.CreatedTo; !to.IsZero() {
		switch {
		case to.After(maxStoredTime):
		case !to.After(minStoredTime):
			conds = append(conds, "1 = 0")
		default:
			conds = append(conds, "created_at < ?")
			args = append(args, formatTime(to))
		}
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func scanTask(s rowScanner) (*models.Task, error) {
	var (
		task                 models.Task
		description          sql.NullString
		parentID             sql.NullInt64
		createdAt, updatedAt string
	)
	err := s.Scan(
		&task.ID,
		&task.Title,
		&description,
		&task.Completed,
		&task.WorkspaceID,
		&parentID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	task.Description = nullStringToString(description)
	task.ParentID = nullIntToPtr(parentID)
	if task.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	if task.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, err
	}
	return &task, nil
}
