package workspace

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/thenoetrevino/todo/internal/database"
	"github.com/thenoetrevino/todo/internal/models"
)

// MaxNameLength is the longest workspace name accepted, in characters
const MaxNameLength = 100

// Service defines all workspace-related business operations
type Service interface {
	// Read operations
	GetAllWorkspaces(ctx context.Context) ([]*models.Workspace, error)
	GetWorkspaceByID(ctx context.Context, id int) (*models.Workspace, error)
	GetTaskCounts(ctx context.Context, id int) (models.TaskCounts, error)

	// Write operations
	CreateWorkspace(ctx context.Context, req CreateWorkspaceRequest) (*models.Workspace, error)
	UpdateWorkspace(ctx context.Context, req UpdateWorkspaceRequest) (*models.Workspace, error)
	DeleteWorkspace(ctx context.Context, id int) error
}

// CreateWorkspaceRequest encapsulates data for creating a workspace
type CreateWorkspaceRequest struct {
	Name string
}

// UpdateWorkspaceRequest encapsulates data for updating a workspace.
// Nil fields are left unchanged.
type UpdateWorkspaceRequest struct {
	ID   int
	Name *string
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

// NewService creates a new workspace service
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

// GetAllWorkspaces retrieves all workspaces, oldest first
func (s *service) GetAllWorkspaces(ctx context.Context) ([]*models.Workspace, error) {
	return s.repo.GetAllWorkspaces(ctx)
}

// GetWorkspaceByID retrieves a specific workspace
func (s *service) GetWorkspaceByID(ctx context.Context, id int) (*models.Workspace, error) {
	return s.repo.GetWorkspaceByID(ctx, id)
}

// GetTaskCounts returns how many tasks the workspace holds and how many are done
func (s *service) GetTaskCounts(ctx context.Context, id int) (models.TaskCounts, error) {
	if _, err := s.repo.GetWorkspaceByID(ctx, id); err != nil {
		return models.TaskCounts{}, err
	}
	return s.repo.CountTasksByWorkspace(ctx, id)
}

// CreateWorkspace creates a new workspace with validation
func (s *service) CreateWorkspace(ctx context.Context, req CreateWorkspaceRequest) (*models.Workspace, error) {
	name, err := validateName(req.Name)
	if err != nil {
		return nil, err
	}

	var workspace *models.Workspace
	err = s.repo.WithTx(ctx, func(tx database.Store) error {
		workspace, err = tx.CreateWorkspaceRecord(ctx, name, s.now())
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create workspace: %w", err)
	}

	s.logger.Debug("created workspace", "workspace_id", workspace.ID, "name", workspace.Name)
	return workspace, nil
}

// UpdateWorkspace applies the provided fields and refreshes updated_at
func (s *service) UpdateWorkspace(ctx context.Context, req UpdateWorkspaceRequest) (*models.Workspace, error) {
	var name *string
	if req.Name != nil {
		validated, err := validateName(*req.Name)
		if err != nil {
			return nil, err
		}
		name = &validated
	}

	var workspace *models.Workspace
	err := s.repo.WithTx(ctx, func(tx database.Store) error {
		existing, err := tx.GetWorkspaceByID(ctx, req.ID)
		if err != nil {
			return err
		}

		newName := existing.Name
		if name != nil {
			newName = *name
		}

		updatedAt := models.NextUpdate(existing.UpdatedAt, s.now())
		if err := tx.UpdateWorkspaceName(ctx, req.ID, newName, updatedAt); err != nil {
			return err
		}

		workspace, err = tx.GetWorkspaceByID(ctx, req.ID)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update workspace %d: %w", req.ID, err)
	}

	s.logger.Debug("updated workspace", "workspace_id", workspace.ID, "name", workspace.Name)
	return workspace, nil
}

// DeleteWorkspace deletes a workspace (business rule: must not own any tasks)
func (s *service) DeleteWorkspace(ctx context.Context, id int) error {
	err := s.repo.WithTx(ctx, func(tx database.Store) error {
		if _, err := tx.GetWorkspaceByID(ctx, id); err != nil {
			return err
		}

		counts, err := tx.CountTasksByWorkspace(ctx, id)
		if err != nil {
			return err
		}
		if counts.Total > 0 {
			return fmt.Errorf("workspace %d owns %d tasks: %w", id, counts.Total, ErrWorkspaceHasTasks)
		}

		return tx.DeleteWorkspaceRecord(ctx, id)
	})
	if err != nil {
		return fmt.Errorf("failed to delete workspace %d: %w", id, err)
	}

	s.logger.Debug("deleted workspace", "workspace_id", id)
	return nil
}

// validateName trims the name and checks it against the workspace rules
func validateName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrEmptyName
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return "", ErrNameTooLong
	}
	return name, nil
}
