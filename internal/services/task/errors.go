package task

import (
	"fmt"

	"github.com/thenoetrevino/todo/internal/models"
)

// Task-related errors
var (
	// Validation errors
	ErrEmptyTitle          = fmt.Errorf("%w: task title cannot be empty", models.ErrValidation)
	ErrTitleTooLong        = fmt.Errorf("%w: task title cannot exceed %d characters", models.ErrValidation, MaxTitleLength)
	ErrWorkspaceMismatch   = fmt.Errorf("%w: subtask must live in its parent's workspace", models.ErrValidation)
	ErrInvalidCreatedRange = fmt.Errorf("%w: created-to must be after created-from", models.ErrValidation)

	// Business logic errors
	ErrTaskNotFound       = models.ErrTaskNotFound
	ErrWorkspaceNotFound  = models.ErrWorkspaceNotFound
	ErrParentTaskNotFound = models.ErrParentTaskNotFound
)
