package workspace

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todo/internal/cli"
	"github.com/thenoetrevino/todo/internal/cli/styles"
	workspaceservice "github.com/thenoetrevino/todo/internal/services/workspace"
)

// CreateCmd returns the workspace create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new workspace",
		Long: `Create a new workspace to group tasks.

Examples:
  # Simple workspace (human-readable output)
  todo workspace create --name="Home"

  # JSON output for agents
  todo workspace create --name="Home" --json

  # Quiet mode for bash capture
  WS_ID=$(todo workspace create --name="Home" --quiet)
`,
		Args: cli.ExactArgs(0),
		RunE: runCreate,
	}

	cmd.Flags().String("name", "", "Workspace name (required)")
	if err := cmd.MarkFlagRequired("name"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	cli.AddOutputFlags(cmd)
	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	formatter := cli.NewFormatter(cmd)
	name, _ := cmd.Flags().GetString("name")

	a, err := cli.AppFromContext(cmd.Context())
	if err != nil {
		return formatter.Fail(err)
	}

	ws, err := a.WorkspaceService.CreateWorkspace(cmd.Context(), workspaceservice.CreateWorkspaceRequest{
		Name: name,
	})
	if err != nil {
		return formatter.Fail(err)
	}

	return formatter.Success(ws, func() []string {
		return []string{
			styles.DoneStyle.Render("Created workspace") + " " + styles.RenderWorkspaceLine(ws),
		}
	})
}
