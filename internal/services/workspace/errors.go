package workspace

import (
	"fmt"

	"github.com/thenoetrevino/todo/internal/models"
)

// Domain errors for workspace service
var (
	// Validation errors
	ErrEmptyName   = fmt.Errorf("%w: workspace name cannot be empty", models.ErrValidation)
	ErrNameTooLong = fmt.Errorf("%w: workspace name cannot exceed %d characters", models.ErrValidation, MaxNameLength)

	// Business logic errors
	ErrWorkspaceNotFound = models.ErrWorkspaceNotFound
	ErrWorkspaceHasTasks = fmt.Errorf("%w: cannot delete workspace with tasks", models.ErrConflict)
)
