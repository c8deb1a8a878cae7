// Command pre-commit formats staged Go files and checks staged schema
// migrations before a commit. Install it as .git/hooks/pre-commit.
package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"sync"

	"charm.land/lipgloss/v2"
)

var (
	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#5FD75F"))
	failStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF0000"))
)

// Check is one pre-commit step over the staged files it cares about
type Check interface {
	Name() string
	Wants(file string) bool
	Run(ctx context.Context, files []string) (int, error)
}

// CheckResult holds the result of a check run
type CheckResult struct {
	Name    string
	Touched int
	Error   error
}

// stagedFiles lists files added, copied or modified in the index
func stagedFiles(ctx context.Context) ([]string, error) {
	cmd := exec.CommandContext(ctx, "git", "diff", "--cached", "--name-only", "--diff-filter=ACM")
	output, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("failed to get staged files: %w", err)
	}

	var files []string
	for _, file := range strings.Split(strings.TrimSpace(string(output)), "\n") {
		if file != "" {
			files = append(files, file)
		}
	}
	return files, nil
}

// runCheck runs a single check over the staged files it wants
func runCheck(ctx context.Context, check Check, staged []string) CheckResult {
	result := CheckResult{Name: check.Name()}

	var files []string
	for _, file := range staged {
		if check.Wants(file) {
			files = append(files, file)
		}
	}
	if len(files) == 0 {
		return result
	}

	result.Touched, result.Error = check.Run(ctx, files)
	return result
}

func main() {
	ctx := context.Background()

	staged, err := stagedFiles(ctx)
	if err != nil {
		lipgloss.Fprintln(os.Stderr, failStyle.Render("✗ "+err.Error()))
		os.Exit(1)
	}

	checks := []Check{
		&GoFmtCheck{},
		&MigrationCheck{},
	}

	results := make([]CheckResult, len(checks))
	var wg sync.WaitGroup
	for i, check := range checks {
		wg.Add(1)
		go func(i int, c Check) {
			defer wg.Done()
			results[i] = runCheck(ctx, c, staged)
		}(i, check)
	}
	wg.Wait()

	failed := false
	for _, result := range results {
		switch {
		case result.Error != nil:
			lipgloss.Fprintln(os.Stderr, failStyle.Render(fmt.Sprintf("✗ %s failed:", result.Name)))
			fmt.Fprintln(os.Stderr, result.Error)
			failed = true
		case result.Touched > 0:
			lipgloss.Println(okStyle.Render(fmt.Sprintf("✓ %s: %d file(s)", result.Name, result.Touched)))
		}
	}

	if failed {
		os.Exit(1)
	}
}
