package models

import (
	"errors"
	"fmt"
)

// Error kinds shared by every layer. Specific errors wrap one of these,
// so callers can branch with errors.Is on the kind alone.
var (
	// ErrValidation indicates malformed input such as empty required text
	ErrValidation = errors.New("validation error")

	// ErrNotFound indicates a reference to an id that does not exist
	ErrNotFound = errors.New("not found")

	// ErrConflict indicates the operation would break a relationship between records
	ErrConflict = errors.New("conflict")

	// ErrStorage indicates the underlying database failed
	ErrStorage = errors.New("storage error")
)

// Lookups that miss. Each wraps ErrNotFound.
var (
	ErrWorkspaceNotFound  = fmt.Errorf("workspace %w", ErrNotFound)
	ErrTaskNotFound       = fmt.Errorf("task %w", ErrNotFound)
	ErrParentTaskNotFound = fmt.Errorf("parent task %w", ErrNotFound)
)

// StorageError carries a driver or I/O failure up to the caller untouched.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// Is matches ErrStorage in addition to whatever the wrapped error matches.
func (e *StorageError) Is(target error) bool {
	return target == ErrStorage
}

// NewStorageError wraps err, returning nil when err is nil.
func NewStorageError(op string, err error) error {
	if err == nil {
		return nil
	}
	var se *StorageError
	if errors.As(err, &se) {
		return err
	}
	return &StorageError{Op: op, Err: err}
}
