// Package task holds all cli commands related to tasks
//
// e.g., todo task ...
package task

import (
	"github.com/spf13/cobra"
)

// TaskCmd returns the task parent command
func TaskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}

	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(UpdateCmd())
	cmd.AddCommand(DoneCmd())
	cmd.AddCommand(UndoneCmd())
	cmd.AddCommand(ToggleCmd())
	cmd.AddCommand(DeleteCmd())

	return cmd
}
