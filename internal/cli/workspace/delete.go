package workspace

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todo/internal/cli"
	"github.com/thenoetrevino/todo/internal/cli/styles"
)

// DeleteCmd returns the workspace delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <workspace_id>",
		Short: "Delete an empty workspace",
		Long: `Delete a workspace.

A workspace that still owns tasks cannot be deleted; delete its tasks first.
`,
		Args: cli.ExactArgs(1),
		RunE: runDelete,
	}

	cli.AddOutputFlags(cmd)
	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	formatter := cli.NewFormatter(cmd)

	id, err := cli.ParseID("workspace", args[0])
	if err != nil {
		return formatter.Fail(err)
	}

	a, err := cli.AppFromContext(cmd.Context())
	if err != nil {
		return formatter.Fail(err)
	}

	if err := a.WorkspaceService.DeleteWorkspace(cmd.Context(), id); err != nil {
		return formatter.Fail(err)
	}

	return formatter.Success(id, func() []string {
		return []string{styles.DoneStyle.Render(fmt.Sprintf("Deleted workspace #%d", id))}
	})
}
