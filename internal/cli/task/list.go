package task

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todo/internal/cli"
	"github.com/thenoetrevino/todo/internal/cli/styles"
	"github.com/thenoetrevino/todo/internal/models"
)

// ListCmd returns the task list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks, oldest first",
		Long: `List tasks ordered by creation time.

Examples:
  # Everything
  todo task list

  # Open tasks of one workspace
  todo task list --workspace=1 --open

  # Done this week
  todo task list --completed --created-after=2026-10-12
`,
		Args: cli.ExactArgs(0),
		RunE: runList,
	}

	cmd.Flags().Int("workspace", 0, "Only tasks in this workspace")
	cmd.Flags().Int("parent", 0, "Only subtasks of this task")
	cmd.Flags().Bool("completed", false, "Only completed tasks")
	cmd.Flags().Bool("open", false, "Only tasks not yet completed")
	cmd.Flags().String("created-after", "", "Only tasks created at or after this time")
	cmd.Flags().String("created-before", "", "Only tasks created before this time")
	cmd.MarkFlagsMutuallyExclusive("completed", "open")

	cli.AddOutputFlags(cmd)
	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	formatter := cli.NewFormatter(cmd)

	filter, err := filterFromFlags(cmd)
	if err != nil {
		return formatter.Fail(err)
	}

	a, err := cli.AppFromContext(cmd.Context())
	if err != nil {
		return formatter.Fail(err)
	}

	tasks, err := a.TaskService.ListTasks(cmd.Context(), filter)
	if err != nil {
		return formatter.Fail(err)
	}

	return formatter.Success(tasks, func() []string {
		if len(tasks) == 0 {
			return []string{styles.SubtleStyle.Render("No tasks found")}
		}
		lines := []string{styles.HeaderStyle.Render(fmt.Sprintf("Tasks (%d)", len(tasks)))}
		for _, t := range tasks {
			lines = append(lines, styles.RenderTaskLine(t))
		}
		return lines
	})
}

// filterFromFlags builds a TaskFilter from the flags the user actually set
func filterFromFlags(cmd *cobra.Command) (models.TaskFilter, error) {
	var filter models.TaskFilter
	flags := cmd.Flags()

	if flags.Changed("workspace") {
		id, _ := flags.GetInt("workspace")
		filter.WorkspaceID = &id
	}
	if flags.Changed("parent") {
		id, _ := flags.GetInt("parent")
		if id <= 0 {
			return filter, &cli.UsageError{Err: fmt.Errorf("invalid parent task ID: %d", id)}
		}
		filter.ParentID = &id
	}
	if completed, _ := flags.GetBool("completed"); completed {
		filter.Completed = &completed
	}
	if open, _ := flags.GetBool("open"); open {
		completed := false
		filter.Completed = &completed
	}

	after, _ := flags.GetString("created-after")
	from, err := cli.ParseTime("created-after", after)
	if err != nil {
		return filter, err
	}
	before, _ := flags.GetString("created-before")
	to, err := cli.ParseTime("created-before", before)
	if err != nil {
		return filter, err
	}
	filter.CreatedFrom = from
	filter.CreatedTo = to

	return filter, nil
}
