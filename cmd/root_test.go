package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/todo/internal/cli"
	testcli "github.com/thenoetrevino/todo/internal/testutil/cli"
)

// isolate keeps config, logs and data inside a temp dir
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(dir, "state"))
	for _, name := range []string{"TODO_DB_PATH", "TODO_LOG_LEVEL", "TODO_LOG_PATH", "TODO_THEME"} {
		t.Setenv(name, "")
		require.NoError(t, os.Unsetenv(name))
	}
	return dir
}

// run executes the full command tree the way main does
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	s := &session{}
	defer s.close()

	root := newRootCmd(s)
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)

	err := root.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func decode(t *testing.T, out string) map[string]any {
	t.Helper()
	var result map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &result), "output: %s", out)
	return result
}

func TestRoot_EndToEnd(t *testing.T) {
	dir := isolate(t)
	db := filepath.Join(dir, "todo.db")

	out, _, err := run(t, "--db", db, "workspace", "create", "--name", "Home", "--quiet")
	require.NoError(t, err)
	wsID := strings.TrimSpace(out)

	out, _, err = run(t, "--db", db, "task", "create", "--title", "Buy milk", "--workspace", wsID, "--quiet")
	require.NoError(t, err)
	taskID := strings.TrimSpace(out)

	_, _, err = run(t, "--db", db, "task", "done", taskID)
	require.NoError(t, err)

	out, _, err = run(t, "--db", db, "task", "list", "--workspace", wsID, "--completed", "--json")
	require.NoError(t, err)
	data := decode(t, out)["data"].([]any)
	require.Len(t, data, 1)
	assert.Equal(t, "Buy milk", data[0].(map[string]any)["title"])
	assert.Equal(t, true, data[0].(map[string]any)["completed"])

	// the workspace owns a task, so deleting it is refused
	_, stderr, err := run(t, "--db", db, "ws", "delete", wsID)
	require.Error(t, err)
	assert.Equal(t, cli.ExitConflict, cli.ExitCode(err))
	assert.Contains(t, stderr, "cannot delete workspace with tasks")

	assert.FileExists(t, filepath.Join(dir, "state", "todo", "logs", "todo.log"))
}

func TestRoot_DatabaseFromEnvironment(t *testing.T) {
	dir := isolate(t)
	db := filepath.Join(dir, "env.db")
	t.Setenv("TODO_DB_PATH", db)

	_, _, err := run(t, "workspace", "create", "--name", "Home")
	require.NoError(t, err)
	assert.FileExists(t, db)
}

func TestRoot_Migrate(t *testing.T) {
	dir := isolate(t)

	out, _, err := run(t, "--db", filepath.Join(dir, "todo.db"), "migrate", "--json")
	require.NoError(t, err)
	data := decode(t, out)["data"].(map[string]any)
	assert.Equal(t, float64(2), data["version"])

	out, _, err = run(t, "--db", filepath.Join(dir, "todo.db"), "migrate", "--quiet")
	require.NoError(t, err)
	assert.Equal(t, "2\n", out)
}

func TestRoot_ConfigCommandsDoNotOpenDatabase(t *testing.T) {
	dir := isolate(t)

	out, _, err := run(t, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "database:")
	assert.Contains(t, out, filepath.Join(dir, "state", "todo", "data", "todo.db"))
	assert.NoFileExists(t, filepath.Join(dir, "state", "todo", "data", "todo.db"))

	out, _, err = run(t, "config", "path")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "config", "todo", "config.yaml")+"\n", out)
}

func TestRoot_ConfigInit(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "config", "todo", "config.yaml")

	_, _, err := run(t, "config", "init")
	require.NoError(t, err)
	assert.FileExists(t, path)

	_, _, err = run(t, "config", "init")
	require.Error(t, err)
	assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))

	_, _, err = run(t, "config", "init", "--force")
	assert.NoError(t, err)
}

func TestRoot_UnknownFlagIsUsageError(t *testing.T) {
	dir := isolate(t)

	_, _, err := run(t, "--db", filepath.Join(dir, "todo.db"), "workspace", "list", "--bogus")
	require.Error(t, err)
	assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))
}

func TestRoot_UsesInjectedApp(t *testing.T) {
	isolate(t)
	_, app := testcli.SetupCLITest(t)

	root := NewRootCmd()
	var stdout bytes.Buffer
	root.SetOut(&stdout)
	root.SetArgs([]string{"workspace", "create", "--name", "Injected", "--json"})

	require.NoError(t, root.ExecuteContext(cli.WithApp(context.Background(), app)))

	all, err := app.WorkspaceService.GetAllWorkspaces(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Injected", all[0].Name)
}
