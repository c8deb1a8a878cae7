package task

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todo/internal/cli"
	"github.com/thenoetrevino/todo/internal/cli/styles"
)

// ShowCmd returns the task show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <task_id>",
		Short: "Show all fields of a task",
		Args:  cli.ExactArgs(1),
		RunE:  runShow,
	}

	cli.AddOutputFlags(cmd)
	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	formatter := cli.NewFormatter(cmd)

	id, err := cli.ParseID("task", args[0])
	if err != nil {
		return formatter.Fail(err)
	}

	a, err := cli.AppFromContext(cmd.Context())
	if err != nil {
		return formatter.Fail(err)
	}

	task, err := a.TaskService.GetTaskByID(cmd.Context(), id)
	if err != nil {
		return formatter.Fail(err)
	}

	return formatter.Success(task, func() []string {
		lines := []string{
			styles.Checkbox(task.Completed) + " " + styles.TitleStyle.Render(task.Title),
			styles.Field("ID", strconv.Itoa(task.ID)),
			styles.Field("Workspace", strconv.Itoa(task.WorkspaceID)),
		}
		if task.ParentID != nil {
			lines = append(lines, styles.Field("Parent", fmt.Sprintf("#%d", *task.ParentID)))
		}
		lines = append(lines,
			styles.Field("Created", styles.Timestamp(task.CreatedAt)),
			styles.Field("Updated", styles.Timestamp(task.UpdatedAt)),
		)
		if task.Description != "" {
			lines = append(lines, "", task.Description)
		}
		return lines
	})
}
