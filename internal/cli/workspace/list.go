package workspace

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todo/internal/cli"
	"github.com/thenoetrevino/todo/internal/cli/styles"
)

// ListCmd returns the workspace list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all workspaces, oldest first",
		Args:  cli.ExactArgs(0),
		RunE:  runList,
	}

	cli.AddOutputFlags(cmd)
	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	formatter := cli.NewFormatter(cmd)

	a, err := cli.AppFromContext(cmd.Context())
	if err != nil {
		return formatter.Fail(err)
	}

	workspaces, err := a.WorkspaceService.GetAllWorkspaces(cmd.Context())
	if err != nil {
		return formatter.Fail(err)
	}

	return formatter.Success(workspaces, func() []string {
		if len(workspaces) == 0 {
			return []string{styles.SubtleStyle.Render("No workspaces yet. Create one with 'todo workspace create --name=...'")}
		}
		lines := []string{styles.HeaderStyle.Render(fmt.Sprintf("Workspaces (%d)", len(workspaces)))}
		for _, ws := range workspaces {
			lines = append(lines, styles.RenderWorkspaceLine(ws))
		}
		return lines
	})
}
