// Package script renders and persists the cherry-pick replay script.
package script

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/SediDeVone/jira-release-commit-extractor/internal/model"
)

// Options control script rendering.
type Options struct {
	ReleaseID    string
	TargetBranch string
	// StrategyOption is the side handed to `git cherry-pick -X` when a
	// hunk conflicts; "theirs" prefers the incoming commit's version.
	StrategyOption string
	// Now stamps the header; zero means time.Now.
	Now time.Time
}

// Render produces the script body. The script is fail-fast (`set -e`):
// each cherry-pick runs sequentially and the first failure halts it for a
// human to resolve and resume.
func Render(assocs []model.Association, opts Options) string {
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	var b strings.Builder
	b.WriteString("#!/bin/bash\n")
	b.WriteString("\n")
	fmt.Fprintf(&b, "# Cherry-pick script for JIRA release %s\n", opts.ReleaseID)
	fmt.Fprintf(&b, "# Generated on %s\n", now.Format("2006-01-02 15:04:05"))
	b.WriteString("\n")
	b.WriteString("# Exit on error\n")
	b.WriteString("set -e\n")
	b.WriteString("\n")
	b.WriteString("# Checkout the target branch\n")
	fmt.Fprintf(&b, "git checkout %s\n", opts.TargetBranch)
	b.WriteString("\n")
	b.WriteString("# Cherry-pick each commit\n")
	b.WriteString("\n")

	for _, a := range assocs {
		fmt.Fprintf(&b, "# %s: %s\n", a.TicketKey, firstLine(a.CommitMessage))
		fmt.Fprintf(&b, "git cherry-pick --strategy=recursive -X %s %s\n", opts.StrategyOption, a.CommitHash)
		b.WriteString("\n")
	}

	b.WriteString("echo 'Cherry-picking completed successfully!'\n")
	return b.String()
}

// Write persists the rendered script and marks it executable. The content
// is rendered fully before this is called, so a failed write never leaves
// a partial-but-plausible script behind silently.
func Write(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("writing script %s: %w", path, err)
	}
	if err := os.Chmod(path, 0755); err != nil {
		return fmt.Errorf("marking script %s executable: %w", path, err)
	}
	return nil
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
