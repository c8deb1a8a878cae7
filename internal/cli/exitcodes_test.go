package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/thenoetrevino/todo/internal/models"
)

func TestExitCodeAndErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantExit int
		wantCode string
	}{
		{"usage", &UsageError{Err: errors.New("bad flag")}, ExitUsage, "USAGE_ERROR"},
		{"not found", fmt.Errorf("x: %w", models.ErrTaskNotFound), ExitNotFound, "NOT_FOUND"},
		{"validation", fmt.Errorf("%w: empty", models.ErrValidation), ExitValidation, "VALIDATION_ERROR"},
		{"conflict", fmt.Errorf("%w: has tasks", models.ErrConflict), ExitConflict, "CONFLICT"},
		{"storage", models.NewStorageError("insert", errors.New("disk full")), ExitError, "STORAGE_ERROR"},
		{"no app", ErrNoApp, ExitError, "INITIALIZATION_ERROR"},
		{"other", errors.New("weird"), ExitError, "ERROR"},
		{"reported wrapper", &ReportedError{Err: fmt.Errorf("y: %w", models.ErrConflict)}, ExitConflict, "CONFLICT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantExit, ExitCode(tt.err))
			assert.Equal(t, tt.wantCode, ErrorCode(tt.err))
		})
	}

	assert.Equal(t, ExitSuccess, ExitCode(nil))
}
