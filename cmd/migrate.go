package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todo/internal/cli"
	"github.com/thenoetrevino/todo/internal/cli/styles"
	"github.com/thenoetrevino/todo/internal/database"
)

// schemaVersion is the migrate result; quiet mode prints the bare version
type schemaVersion struct {
	Version int64 `json:"version"`
}

func (v schemaVersion) GetID() int {
	return int(v.Version)
}

// MigrateCmd returns the migrate command. Opening the database already applies
// pending migrations; this reports the resulting schema version.
func MigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending schema migrations and print the schema version",
		Args:  cli.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := cli.NewFormatter(cmd)

			a, err := cli.AppFromContext(cmd.Context())
			if err != nil {
				return formatter.Fail(err)
			}

			version, err := database.RunMigrations(cmd.Context(), a.DB())
			if err != nil {
				return formatter.Fail(err)
			}

			return formatter.Success(schemaVersion{Version: version}, func() []string {
				return []string{styles.Field("Schema version", fmt.Sprintf("%d", version))}
			})
		},
	}

	cli.AddOutputFlags(cmd)
	return cmd
}
