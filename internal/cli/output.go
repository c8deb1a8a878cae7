package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todo/internal/cli/styles"
	"github.com/thenoetrevino/todo/internal/models"
)

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	JSON  bool
	Quiet bool
	Out   io.Writer
	Err   io.Writer
}

// NewFormatter reads the --json and --quiet flags of cmd and writes to its streams
func NewFormatter(cmd *cobra.Command) *OutputFormatter {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	return &OutputFormatter{
		JSON:  jsonOutput,
		Quiet: quietMode,
		Out:   cmd.OutOrStdout(),
		Err:   cmd.ErrOrStderr(),
	}
}

// AddOutputFlags registers the agent-friendly flags every command carries
func AddOutputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (IDs only)")
	cmd.MarkFlagsMutuallyExclusive("json", "quiet")
}

// Success outputs a successful result. human renders the default mode and
// returns the lines to print.
func (f *OutputFormatter) Success(data any, human func() []string) error {
	if f.Quiet {
		for _, id := range quietIDs(data) {
			if _, err := fmt.Fprintf(f.Out, "%d\n", id); err != nil {
				return err
			}
		}
		return nil
	}

	if f.JSON {
		return json.NewEncoder(f.Out).Encode(map[string]any{
			"success": true,
			"data":    data,
		})
	}

	for _, line := range human() {
		if _, err := lipgloss.Fprintln(f.Out, line); err != nil {
			return err
		}
	}
	return nil
}

// Fail reports err in the active output mode and returns it marked as reported
func (f *OutputFormatter) Fail(err error) error {
	if err == nil {
		return nil
	}

	if f.JSON {
		if encErr := json.NewEncoder(f.Out).Encode(map[string]any{
			"success": false,
			"error": map[string]any{
				"code":    ErrorCode(err),
				"message": err.Error(),
			},
		}); encErr != nil {
			return errors.Join(err, encErr)
		}
		return &ReportedError{Err: err}
	}

	if _, printErr := lipgloss.Fprintln(f.Err, styles.ErrorStyle.Render("Error:")+" "+err.Error()); printErr != nil {
		return errors.Join(err, printErr)
	}
	return &ReportedError{Err: err}
}

// ReportedError wraps an error that has already been shown to the user
type ReportedError struct {
	Err error
}

func (e *ReportedError) Error() string {
	return e.Err.Error()
}

func (e *ReportedError) Unwrap() error {
	return e.Err
}

// quietIDs extracts the identifiers printed in quiet mode
func quietIDs(data any) []int {
	switch v := data.(type) {
	case interface{ GetID() int }:
		return []int{v.GetID()}
	case []*models.Workspace:
		ids := make([]int, len(v))
		for i, w := range v {
			ids[i] = w.ID
		}
		return ids
	case []*models.Task:
		ids := make([]int, len(v))
		for i, t := range v {
			ids[i] = t.ID
		}
		return ids
	case int:
		return []int{v}
	default:
		return nil
	}
}
