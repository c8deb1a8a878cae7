package workspace

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todo/internal/cli"
	"github.com/thenoetrevino/todo/internal/cli/styles"
	workspaceservice "github.com/thenoetrevino/todo/internal/services/workspace"
)

// RenameCmd returns the workspace rename subcommand
func RenameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rename <workspace_id> <new_name>",
		Short: "Rename a workspace",
		Args:  cli.ExactArgs(2),
		RunE:  runRename,
	}

	cli.AddOutputFlags(cmd)
	return cmd
}

func runRename(cmd *cobra.Command, args []string) error {
	formatter := cli.NewFormatter(cmd)

	id, err := cli.ParseID("workspace", args[0])
	if err != nil {
		return formatter.Fail(err)
	}

	a, err := cli.AppFromContext(cmd.Context())
	if err != nil {
		return formatter.Fail(err)
	}

	name := args[1]
	ws, err := a.WorkspaceService.UpdateWorkspace(cmd.Context(), workspaceservice.UpdateWorkspaceRequest{
		ID:   id,
		Name: &name,
	})
	if err != nil {
		return formatter.Fail(err)
	}

	return formatter.Success(ws, func() []string {
		return []string{styles.DoneStyle.Render("Renamed workspace") + " " + styles.RenderWorkspaceLine(ws)}
	})
}
