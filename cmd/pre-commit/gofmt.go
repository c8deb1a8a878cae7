package main

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// GoFmtCheck formats staged Go files with gofmt and re-stages them
type GoFmtCheck struct{}

func (g *GoFmtCheck) Name() string {
	return "gofmt"
}

func (g *GoFmtCheck) Wants(file string) bool {
	return strings.HasSuffix(file, ".go")
}

func (g *GoFmtCheck) Run(ctx context.Context, files []string) (int, error) {
	var failures []string
	formatted := 0
	for _, file := range files {
		if err := exec.CommandContext(ctx, "gofmt", "-w", file).Run(); err != nil {
			failures = append(failures, fmt.Sprintf("  %s: gofmt failed: %v", file, err))
			continue
		}
		if err := exec.CommandContext(ctx, "git", "add", file).Run(); err != nil {
			failures = append(failures, fmt.Sprintf("  %s: git add failed: %v", file, err))
			continue
		}
		formatted++
	}

	if len(failures) > 0 {
		return formatted, fmt.Errorf("formatting errors:\n%s", strings.Join(failures, "\n"))
	}
	return formatted, nil
}
