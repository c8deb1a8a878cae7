package cli

import (
	"errors"

	"github.com/thenoetrevino/todo/internal/models"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: Database errors, unexpected failures,
	// or any error that doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing required flags, malformed ids or dates.
	ExitUsage = 2

	// ExitNotFound indicates a requested workspace or task was not found.
	ExitNotFound = 3

	// ExitValidation indicates input failed validation, such as an empty title.
	ExitValidation = 5

	// ExitConflict indicates the change would orphan records,
	// such as deleting a workspace that still has tasks.
	ExitConflict = 6
)

// ExitCode maps an error returned by a command to the process exit code
func ExitCode(err error) int {
	var usage *UsageError
	switch {
	case err == nil:
		return ExitSuccess
	case errors.As(err, &usage):
		return ExitUsage
	case errors.Is(err, models.ErrNotFound):
		return ExitNotFound
	case errors.Is(err, models.ErrValidation):
		return ExitValidation
	case errors.Is(err, models.ErrConflict):
		return ExitConflict
	default:
		return ExitError
	}
}

// ErrorCode maps an error to the machine-readable code used in JSON output
func ErrorCode(err error) string {
	var usage *UsageError
	switch {
	case errors.As(err, &usage):
		return "USAGE_ERROR"
	case errors.Is(err, models.ErrNotFound):
		return "NOT_FOUND"
	case errors.Is(err, models.ErrValidation):
		return "VALIDATION_ERROR"
	case errors.Is(err, models.ErrConflict):
		return "CONFLICT"
	case errors.Is(err, models.ErrStorage):
		return "STORAGE_ERROR"
	case errors.Is(err, ErrNoApp):
		return "INITIALIZATION_ERROR"
	default:
		return "ERROR"
	}
}

// UsageError marks a problem with how the command was invoked
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string {
	return e.Err.Error()
}

func (e *UsageError) Unwrap() error {
	return e.Err
}
