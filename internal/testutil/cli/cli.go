// Package cli holds helpers for command tests. It lives apart from testutil
// so that service tests can use testutil without importing the app package.
package cli

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todo/internal/app"
	"github.com/thenoetrevino/todo/internal/cli"
	"github.com/thenoetrevino/todo/internal/logging"
	"github.com/thenoetrevino/todo/internal/testutil"
)

// SetupCLITest creates an in-memory DB and returns both the DB and App instance.
// The App runs on a clock that steps one second per reading.
func SetupCLITest(t *testing.T) (*sql.DB, *app.App) {
	t.Helper()
	db := testutil.SetupTestDB(t)

	appInstance := app.New(db,
		app.WithLogger(logging.Discard()),
		app.WithClock(testutil.StepClock(testutil.BaseTime, time.Second)),
	)

	return db, appInstance
}

// Result is what a command printed
type Result struct {
	Stdout string
	Stderr string
}

// ExecuteCLICommand executes a CLI command with a test app instance injected
// into its context, capturing both output streams
func ExecuteCLICommand(t *testing.T, testApp *app.App, cmd *cobra.Command, args []string) (Result, error) {
	t.Helper()

	if testApp == nil {
		t.Fatal("testApp cannot be nil - SetupCLITest must be called first")
	}

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	// Disable usage output on error for cleaner test output
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	err := cmd.ExecuteContext(cli.WithApp(context.Background(), testApp))
	return Result{Stdout: stdout.String(), Stderr: stderr.String()}, err
}

// ParseJSON parses a JSON envelope printed by a command
func ParseJSON(t *testing.T, output string) map[string]any {
	t.Helper()

	var result map[string]any
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Fatalf("Failed to parse JSON output: %v\nOutput: %s", err, output)
	}

	return result
}

// Lines splits output into non-empty trimmed lines
func Lines(output string) []string {
	var lines []string
	for _, line := range strings.Split(output, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
