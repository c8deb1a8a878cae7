package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todo/internal/app"
	"github.com/thenoetrevino/todo/internal/cli"
	"github.com/thenoetrevino/todo/internal/cli/styles"
	"github.com/thenoetrevino/todo/internal/cli/task"
	"github.com/thenoetrevino/todo/internal/cli/workspace"
	"github.com/thenoetrevino/todo/internal/config"
	"github.com/thenoetrevino/todo/internal/logging"
)

// skipAppAnnotation marks commands that must not open the database
const skipAppAnnotation = "todo/skip-app"

// session holds what the root command opened, so Execute can release it
// even when the command itself failed.
type session struct {
	app       *app.App
	logCloser io.Closer
}

func (s *session) close() {
	if s.app != nil {
		if err := s.app.Close(); err != nil {
			slog.Error("error closing database", "error", err)
		}
		s.app = nil
	}
	if s.logCloser != nil {
		if err := s.logCloser.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "error closing log file: %v\n", err)
		}
		s.logCloser = nil
	}
}

// NewRootCmd builds the full command tree. When the context passed to
// ExecuteContext already carries an App (see cli.WithApp) it is used as is.
func NewRootCmd() *cobra.Command {
	return newRootCmd(&session{})
}

func newRootCmd(s *session) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "todo",
		Short: "todo - tasks grouped into workspaces",
		Long: `todo keeps your tasks in named workspaces and tracks when they get done.
Data lives in a local SQLite database.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return s.setup(cmd)
		},
	}

	rootCmd.PersistentFlags().String("config", "", "Config file (default $XDG_CONFIG_HOME/todo/config.yaml)")
	rootCmd.PersistentFlags().String("db", "", "Database file (overrides config and TODO_DB_PATH)")
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &cli.UsageError{Err: err}
	})

	rootCmd.AddCommand(workspace.WorkspaceCmd())
	rootCmd.AddCommand(task.TaskCmd())
	rootCmd.AddCommand(MigrateCmd())
	rootCmd.AddCommand(ConfigCmd())

	return rootCmd
}

// setup loads config, starts logging and opens the App for cmd
func (s *session) setup(cmd *cobra.Command) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if _, err := cli.AppFromContext(ctx); err == nil {
		styles.Init(config.DefaultColorScheme())
		return nil
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	styles.Init(cfg.Theme)

	if cmd.Annotations[skipAppAnnotation] == "true" {
		return nil
	}

	logger, closer, err := logging.Init(cfg.Log.Path, cfg.SlogLevel())
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	s.logCloser = closer

	a, err := app.Open(ctx, cfg.Database.Path, app.WithLogger(logger))
	if err != nil {
		return err
	}
	s.app = a

	cmd.SetContext(cli.WithApp(ctx, a))
	return nil
}

// loadConfig reads the config named by --config and applies --db
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if dbPath, _ := cmd.Flags().GetString("db"); dbPath != "" {
		cfg.Database.Path = dbPath
	}
	return cfg, nil
}

// Execute runs the command line and returns the error, if any, for exit code mapping
func Execute(ctx context.Context) error {
	s := &session{}
	defer s.close()

	err := newRootCmd(s).ExecuteContext(ctx)

	var reported *cli.ReportedError
	if err != nil && !errors.As(err, &reported) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}
