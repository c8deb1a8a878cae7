package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

// ParseID parses a positional id argument
func ParseID(kind, arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, &UsageError{Err: fmt.Errorf("invalid %s ID: %s", kind, arg)}
	}
	return id, nil
}

// ExactArgs is cobra.ExactArgs with the failure reported as a usage error
func ExactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return &UsageError{Err: err}
		}
		return nil
	}
}

// timeFormats lists the layouts accepted for date flags, most specific first
var timeFormats = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseTime parses a date flag. Dates without a zone are read in local time.
// An empty value yields the zero time.
func ParseTime(flag, value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, nil
	}
	for _, layout := range timeFormats {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, &UsageError{Err: fmt.Errorf("invalid --%s %q (use YYYY-MM-DD, 'YYYY-MM-DD HH:MM' or RFC3339)", flag, value)}
}

// ReadDescription returns the flag value, or stdin when the value is "-"
func ReadDescription(cmd *cobra.Command, value string) (string, error) {
	if value != "-" {
		return value, nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("failed to read description from stdin: %w", err)
	}
	return strings.TrimRight(string(data), "\n"), nil
}
