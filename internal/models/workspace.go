package models

import "time"

// Workspace is a named container grouping related tasks
type Workspace struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// GetID lets output formatters print just the identifier in quiet mode
func (w *Workspace) GetID() int {
	return w.ID
}

// TaskCounts summarizes the tasks owned by a workspace
type TaskCounts struct {
	WorkspaceID int `json:"workspace_id"`
	Total       int `json:"total"`
	Completed   int `json:"completed"`
}

// Open returns the number of tasks not yet completed
func (c TaskCounts) Open() int {
	return c.Total - c.Completed
}
