package models

import "time"

// Task represents a single trackable unit of work inside a workspace
type Task struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Completed   bool      `json:"completed"`
	WorkspaceID int       `json:"workspace_id"`
	ParentID    *int      `json:"parent_task_id,omitempty"` // nil for top-level tasks
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// GetID lets output formatters print just the identifier in quiet mode
func (t *Task) GetID() int {
	return t.ID
}

// IsSubtask reports whether the task hangs off another task
func (t *Task) IsSubtask() bool {
	return t.ParentID != nil
}

// TaskFilter narrows a task listing. Nil pointers and zero times mean "no constraint".
// The creation range is half-open: CreatedFrom <= created_at < CreatedTo.
type TaskFilter struct {
	WorkspaceID *int
	Completed   *bool
	ParentID    *int
	CreatedFrom time.Time
	CreatedTo   time.Time
}
