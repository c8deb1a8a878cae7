package task

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todo/internal/cli"
	"github.com/thenoetrevino/todo/internal/cli/styles"
	"github.com/thenoetrevino/todo/internal/models"
	taskservice "github.com/thenoetrevino/todo/internal/services/task"
)

// CreateCmd returns the task create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new task",
		Long: `Create a new task in a workspace, or a subtask under another task.

Examples:
  # Simple task (human-readable output)
  todo task create --title="Buy milk" --workspace=1

  # JSON output for agents
  todo task create --title="Buy milk" --workspace=1 --json

  # Quiet mode for bash capture
  TASK_ID=$(todo task create --title="Buy milk" --workspace=1 --quiet)

  # Subtask: the workspace is taken from the parent
  todo task create --title="Check the fridge" --parent=3

  # Description from stdin
  echo "two litres" | todo task create --title="Buy milk" --workspace=1 --description=-
`,
		Args: cli.ExactArgs(0),
		RunE: runCreate,
	}

	// Required flags
	cmd.Flags().String("title", "", "Task title (required)")
	if err := cmd.MarkFlagRequired("title"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	// Optional flags
	cmd.Flags().Int("workspace", 0, "Workspace ID (required unless --parent is given)")
	cmd.Flags().String("description", "", "Task description (use - for stdin)")
	cmd.Flags().Int("parent", 0, "Parent task ID (creates a subtask)")
	cmd.MarkFlagsOneRequired("workspace", "parent")

	cli.AddOutputFlags(cmd)
	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	formatter := cli.NewFormatter(cmd)

	title, _ := cmd.Flags().GetString("title")
	workspaceID, _ := cmd.Flags().GetInt("workspace")
	hasWorkspace := cmd.Flags().Changed("workspace")
	parentID, _ := cmd.Flags().GetInt("parent")
	rawDescription, _ := cmd.Flags().GetString("description")

	description, err := cli.ReadDescription(cmd, rawDescription)
	if err != nil {
		return formatter.Fail(err)
	}

	a, err := cli.AppFromContext(cmd.Context())
	if err != nil {
		return formatter.Fail(err)
	}

	var task *models.Task
	switch {
	case parentID != 0 && !hasWorkspace:
		task, err = a.TaskService.CreateSubtask(cmd.Context(), taskservice.CreateSubtaskRequest{
			Title:       title,
			Description: description,
			ParentID:    parentID,
		})
	case parentID != 0:
		task, err = a.TaskService.CreateTask(cmd.Context(), taskservice.CreateTaskRequest{
			Title:       title,
			Description: description,
			WorkspaceID: workspaceID,
			ParentID:    &parentID,
		})
	default:
		task, err = a.TaskService.CreateTask(cmd.Context(), taskservice.CreateTaskRequest{
			Title:       title,
			Description: description,
			WorkspaceID: workspaceID,
		})
	}
	if err != nil {
		return formatter.Fail(err)
	}

	return formatter.Success(task, func() []string {
		return []string{styles.DoneStyle.Render("Created task") + " " + styles.RenderTaskLine(task)}
	})
}
