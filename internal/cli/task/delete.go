package task

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todo/internal/cli"
	"github.com/thenoetrevino/todo/internal/cli/styles"
)

// DeleteCmd returns the task delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <task_id>",
		Short: "Delete a task",
		Long: `Delete a task. Its subtasks are kept and become top-level tasks.
`,
		Args: cli.ExactArgs(1),
		RunE: runDelete,
	}

	cli.AddOutputFlags(cmd)
	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	formatter := cli.NewFormatter(cmd)

	id, err := cli.ParseID("task", args[0])
	if err != nil {
		return formatter.Fail(err)
	}

	a, err := cli.AppFromContext(cmd.Context())
	if err != nil {
		return formatter.Fail(err)
	}

	if err := a.TaskService.DeleteTask(cmd.Context(), id); err != nil {
		return formatter.Fail(err)
	}

	return formatter.Success(id, func() []string {
		return []string{styles.DoneStyle.Render(fmt.Sprintf("Deleted task #%d", id))}
	})
}
