package task

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/thenoetrevino/todo/internal/database"
	"github.com/thenoetrevino/todo/internal/models"
)

// MaxTitleLength is the longest task title accepted, in characters
const MaxTitleLength = 255

// Service defines all task-related business operations
type Service interface {
	// Read operations
	GetTaskByID(ctx context.Context, id int) (*models.Task, error)
	ListTasks(ctx context.Context, filter models.TaskFilter) ([]*models.Task, error)

	// Write operations
	CreateTask(ctx context.Context, req CreateTaskRequest) (*models.Task, error)
	CreateSubtask(ctx context.Context, req CreateSubtaskRequest) (*models.Task, error)
	UpdateTask(ctx context.Context, req UpdateTaskRequest) (*models.Task, error)
	SetCompleted(ctx context.Context, id int, completed bool) (*models.Task, error)
	ToggleCompleted(ctx context.Context, id int) (*models.Task, error)
	DeleteTask(ctx context.Context, id int) error
}

// CreateTaskRequest encapsulates data for creating a task
type CreateTaskRequest struct {
	Title       string
	Description string
	WorkspaceID int
	ParentID    *int
}

// CreateSubtaskRequest creates a task under ParentID, in the parent's workspace
type CreateSubtaskRequest struct {
	Title       string
	Description string
	ParentID    int
}

// UpdateTaskRequest encapsulates data for updating a task.
// Nil fields are left unchanged; updated_at is refreshed regardless.
type UpdateTaskRequest struct {
	ID          int
	Title       *string
	Description *string
	Completed   *bool
}

// Option customizes a service
type Option func(*service)

// WithClock replaces the wall clock used for timestamps
func WithClock(clock models.Clock) Option {
	return func(s *service) {
		s.now = clock
	}
}

// WithLogger sets the logger used for mutation logs
func WithLogger(logger *slog.Logger) Option {
	return func(s *service) {
		s.logger = logger
	}
}

// service implements Service interface
type service struct {
	repo   database.DataStore
	now    models.Clock
	logger *slog.Logger
}

// NewService creates a new task service
func NewService(repo database.DataStore, opts ...Option) Service {
	s := &service{
		repo:   repo,
		now:    models.SystemClock,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetTaskByID retrieves a specific task
func (s *service) GetTaskByID(ctx context.Context, id int) (*models.Task, error) {
	return s.repo.GetTaskByID(ctx, id)
}

// ListTasks returns a fresh snapshot of the tasks matching filter, oldest first
func (s *service) ListTasks(ctx context.Context, filter models.TaskFilter) ([]*models.Task, error) {
	if !filter.CreatedFrom.IsZero() && !filter.CreatedTo.IsZero() && !filter.CreatedTo.After(filter.CreatedFrom) {
		return nil, ErrInvalidCreatedRange
	}
	return s.repo.ListTasks(ctx, filter)
}

// CreateTask creates a new, not yet completed task in an existing workspace
func (s *service) CreateTask(ctx context.Context, req CreateTaskRequest) (*models.Task, error) {
	title, err := validateTitle(req.Title)
	if err != nil {
		return nil, err
	}

	var task *models.Task
	err = s.repo.WithTx(ctx, func(tx database.Store) error {
		// checked inside the transaction so the workspace cannot vanish before insert
		if _, err := tx.GetWorkspaceByID(ctx, req.WorkspaceID); err != nil {
			return err
		}

		if req.ParentID != nil {
			parent, err := getParent(ctx, tx, *req.ParentID)
			if err != nil {
				return err
			}
			if parent.WorkspaceID != req.WorkspaceID {
				return ErrWorkspaceMismatch
			}
		}

		now := s.now()
		task, err = tx.CreateTaskRecord(ctx, &models.Task{
			Title:       title,
			Description: req.Description,
			WorkspaceID: req.WorkspaceID,
			ParentID:    req.ParentID,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	s.logger.Debug("created task", "task_id", task.ID, "workspace_id", task.WorkspaceID)
	return task, nil
}

// CreateSubtask creates a task under an existing parent task
func (s *service) CreateSubtask(ctx context.Context, req CreateSubtaskRequest) (*models.Task, error) {
	parent, err := getParent(ctx, s.repo, req.ParentID)
	if err != nil {
		return nil, fmt.Errorf("failed to create subtask: %w", err)
	}

	parentID := parent.ID
	return s.CreateTask(ctx, CreateTaskRequest{
		Title:       req.Title,
		Description: req.Description,
		WorkspaceID: parent.WorkspaceID,
		ParentID:    &parentID,
	})
}

// UpdateTask changes only the provided fields and refreshes updated_at
func (s *service) UpdateTask(ctx context.Context, req UpdateTaskRequest) (*models.Task, error) {
	var title *string
	if req.Title != nil {
		validated, err := validateTitle(*req.Title)
		if err != nil {
			return nil, err
		}
		title = &validated
	}

	task, err := s.mutate(ctx, req.ID, func(task *models.Task) {
		if title != nil {
			task.Title = *title
		}
		if req.Description != nil {
			task.Description = *req.Description
		}
		if req.Completed != nil {
			task.Completed = *req.Completed
		}
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update task %d: %w", req.ID, err)
	}

	s.logger.Debug("updated task", "task_id", task.ID)
	return task, nil
}

// SetCompleted marks a task done or not done
func (s *service) SetCompleted(ctx context.Context, id int, completed bool) (*models.Task, error) {
	return s.UpdateTask(ctx, UpdateTaskRequest{ID: id, Completed: &completed})
}

// ToggleCompleted flips the completion state of a task
func (s *service) ToggleCompleted(ctx context.Context, id int) (*models.Task, error) {
	task, err := s.mutate(ctx, id, func(task *models.Task) {
		task.Completed = !task.Completed
	})
	if err != nil {
		return nil, fmt.Errorf("failed to toggle task %d: %w", id, err)
	}

	s.logger.Debug("toggled task", "task_id", task.ID, "completed", task.Completed)
	return task, nil
}

// DeleteTask removes a task. Its subtasks are kept and become top-level tasks.
func (s *service) DeleteTask(ctx context.Context, id int) error {
	var detached int
	err := s.repo.WithTx(ctx, func(tx database.Store) error {
		if _, err := tx.GetTaskByID(ctx, id); err != nil {
			return err
		}

		var err error
		detached, err = tx.DetachSubtasks(ctx, id, s.now())
		if err != nil {
			return err
		}

		return tx.DeleteTaskRecord(ctx, id)
	})
	if err != nil {
		return fmt.Errorf("failed to delete task %d: %w", id, err)
	}

	s.logger.Debug("deleted task", "task_id", id, "detached_subtasks", detached)
	return nil
}

// mutate loads a task inside a write transaction, applies fn and saves it
func (s *service) mutate(ctx context.Context, id int, fn func(*models.Task)) (*models.Task, error) {
	var task *models.Task
	err := s.repo.WithTx(ctx, func(tx database.Store) error {
		existing, err := tx.GetTaskByID(ctx, id)
		if err != nil {
			return err
		}

		fn(existing)
		existing.UpdatedAt = models.NextUpdate(existing.UpdatedAt, s.now())
		if err := tx.SaveTask(ctx, existing); err != nil {
			return err
		}

		task, err = tx.GetTaskByID(ctx, id)
		return err
	})
	return task, err
}

// getParent looks up a parent task, reporting a miss as ErrParentTaskNotFound
func getParent(ctx context.Context, store database.TaskReader, id int) (*models.Task, error) {
	parent, err := store.GetTaskByID(ctx, id)
	if errors.Is(err, models.ErrTaskNotFound) {
		return nil, fmt.Errorf("task %d: %w", id, ErrParentTaskNotFound)
	}
	return parent, err
}

// validateTitle trims the title and checks it against the task rules
func validateTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", ErrEmptyTitle
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return "", ErrTitleTooLong
	}
	return title, nil
}
