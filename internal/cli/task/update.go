package task

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todo/internal/cli"
	"github.com/thenoetrevino/todo/internal/cli/styles"
	taskservice "github.com/thenoetrevino/todo/internal/services/task"
)

// UpdateCmd returns the task update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <task_id>",
		Short: "Update fields of a task",
		Long: `Update the title, description or completion of a task.
Only the flags you pass are changed.

Examples:
  todo task update 42 --title="Buy oat milk"
  todo task update 42 --description=""
  todo task update 42 --completed=false
`,
		Args: cli.ExactArgs(1),
		RunE: runUpdate,
	}

	cmd.Flags().String("title", "", "New title")
	cmd.Flags().String("description", "", "New description (use - for stdin, empty to clear)")
	cmd.Flags().Bool("completed", false, "Completion state")

	cli.AddOutputFlags(cmd)
	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
	formatter := cli.NewFormatter(cmd)

	id, err := cli.ParseID("task", args[0])
	if err != nil {
		return formatter.Fail(err)
	}

	req := taskservice.UpdateTaskRequest{ID: id}
	flags := cmd.Flags()
	if flags.Changed("title") {
		title, _ := flags.GetString("title")
		req.Title = &title
	}
	if flags.Changed("description") {
		raw, _ := flags.GetString("description")
		description, err := cli.ReadDescription(cmd, raw)
		if err != nil {
			return formatter.Fail(err)
		}
		req.Description = &description
	}
	if flags.Changed("completed") {
		completed, _ := flags.GetBool("completed")
		req.Completed = &completed
	}

	a, err := cli.AppFromContext(cmd.Context())
	if err != nil {
		return formatter.Fail(err)
	}

	task, err := a.TaskService.UpdateTask(cmd.Context(), req)
	if err != nil {
		return formatter.Fail(err)
	}

	return formatter.Success(task, func() []string {
		return []string{styles.DoneStyle.Render("Updated task") + " " + styles.RenderTaskLine(task)}
	})
}
