package workspace

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todo/internal/cli"
	"github.com/thenoetrevino/todo/internal/cli/styles"
	"github.com/thenoetrevino/todo/internal/models"
)

// ShowCmd returns the workspace show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <workspace_id>",
		Short: "Show a workspace with its task counts",
		Args:  cli.ExactArgs(1),
		RunE:  runShow,
	}

	cli.AddOutputFlags(cmd)
	return cmd
}

// workspaceDetail is the JSON shape of the show command
type workspaceDetail struct {
	*models.Workspace
	Tasks models.TaskCounts `json:"tasks"`
}

func runShow(cmd *cobra.Command, args []string) error {
	formatter := cli.NewFormatter(cmd)

	id, err := cli.ParseID("workspace", args[0])
	if err != nil {
		return formatter.Fail(err)
	}

	a, err := cli.AppFromContext(cmd.Context())
	if err != nil {
		return formatter.Fail(err)
	}

	ws, err := a.WorkspaceService.GetWorkspaceByID(cmd.Context(), id)
	if err != nil {
		return formatter.Fail(err)
	}
	counts, err := a.WorkspaceService.GetTaskCounts(cmd.Context(), id)
	if err != nil {
		return formatter.Fail(err)
	}

	return formatter.Success(&workspaceDetail{Workspace: ws, Tasks: counts}, func() []string {
		return []string{
			styles.TitleStyle.Render(ws.Name),
			styles.Field("ID", fmt.Sprintf("%d", ws.ID)),
			styles.Field("Tasks", fmt.Sprintf("%d open, %d done", counts.Open(), counts.Completed)),
			styles.Field("Created", styles.Timestamp(ws.CreatedAt)),
			styles.Field("Updated", styles.Timestamp(ws.UpdatedAt)),
		}
	})
}
