package styles

import (
	"fmt"
	"time"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/todo/internal/config"
	"github.com/thenoetrevino/todo/internal/models"
)

var (
	// Text styles
	TitleStyle  lipgloss.Style
	HeaderStyle lipgloss.Style
	LabelStyle  lipgloss.Style // For field labels like "Created:", "Workspace:"
	ValueStyle  lipgloss.Style
	SubtleStyle lipgloss.Style

	// Status styles
	DoneStyle  lipgloss.Style
	ErrorStyle lipgloss.Style
)

// Init initializes all CLI styles with the given color scheme
func Init(colors config.ColorScheme) {
	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Title))

	HeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Underline(true).
		Foreground(lipgloss.Color(colors.Accent))

	LabelStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Accent))

	ValueStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Normal))

	SubtleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Subtle))

	DoneStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Done))

	ErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Error))
}

// Checkbox renders the completion marker for a task
func Checkbox(completed bool) string {
	if completed {
		return DoneStyle.Render("[x]")
	}
	return ValueStyle.Render("[ ]")
}

// Timestamp renders a time in the local zone, muted
func Timestamp(t time.Time) string {
	return SubtleStyle.Render(t.Local().Format("2006-01-02 15:04"))
}

// Field renders a "Label: value" line
func Field(label, value string) string {
	return LabelStyle.Render(label+":") + " " + ValueStyle.Render(value)
}

// RenderWorkspaceLine renders a workspace as a single list row
func RenderWorkspaceLine(w *models.Workspace) string {
	return fmt.Sprintf("%s %s %s",
		SubtleStyle.Render(fmt.Sprintf("#%d", w.ID)),
		TitleStyle.Render(w.Name),
		Timestamp(w.CreatedAt),
	)
}

// RenderTaskLine renders a task as a single list row; subtasks are indented
func RenderTaskLine(t *models.Task) string {
	indent := ""
	if t.IsSubtask() {
		indent = "  "
	}
	return fmt.Sprintf("%s%s %s %s",
		indent,
		Checkbox(t.Completed),
		SubtleStyle.Render(fmt.Sprintf("#%d", t.ID)),
		ValueStyle.Render(t.Title),
	)
}
