package task

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todo/internal/cli"
	"github.com/thenoetrevino/todo/internal/cli/styles"
	"github.com/thenoetrevino/todo/internal/models"
	taskservice "github.com/thenoetrevino/todo/internal/services/task"
)

// completionChange applies one kind of completion change to a task
type completionChange func(ctx context.Context, svc taskservice.Service, id int) (*models.Task, error)

// DoneCmd returns the task done subcommand
func DoneCmd() *cobra.Command {
	return completionCmd("done <task_id>", "Mark a task as completed",
		func(ctx context.Context, svc taskservice.Service, id int) (*models.Task, error) {
			return svc.SetCompleted(ctx, id, true)
		})
}

// UndoneCmd returns the task undone subcommand
func UndoneCmd() *cobra.Command {
	return completionCmd("undone <task_id>", "Mark a task as not completed",
		func(ctx context.Context, svc taskservice.Service, id int) (*models.Task, error) {
			return svc.SetCompleted(ctx, id, false)
		})
}

// ToggleCmd returns the task toggle subcommand
func ToggleCmd() *cobra.Command {
	return completionCmd("toggle <task_id>", "Flip the completion state of a task",
		func(ctx context.Context, svc taskservice.Service, id int) (*models.Task, error) {
			return svc.ToggleCompleted(ctx, id)
		})
}

func completionCmd(use, short string, change completionChange) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cli.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := cli.NewFormatter(cmd)

			id, err := cli.ParseID("task", args[0])
			if err != nil {
				return formatter.Fail(err)
			}

			a, err := cli.AppFromContext(cmd.Context())
			if err != nil {
				return formatter.Fail(err)
			}

			task, err := change(cmd.Context(), a.TaskService, id)
			if err != nil {
				return formatter.Fail(err)
			}

			return formatter.Success(task, func() []string {
				return []string{styles.RenderTaskLine(task)}
			})
		},
	}

	cli.AddOutputFlags(cmd)
	return cmd
}
