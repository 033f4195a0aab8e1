package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/SediDeVone/jira-release-commit-extractor/internal/config"
	"github.com/SediDeVone/jira-release-commit-extractor/internal/script"
)

var (
	outputPath     string
	strategyOption string
)

var generateCmd = &cobra.Command{
	Use:   "generate <release-id> <target-branch>",
	Short: "Generate a cherry-pick script for a JIRA release",
	Long: `Generate fetches every ticket in the given JIRA release, scans the commit
history of the current checkout for commits referencing those tickets, orders
them oldest to newest, and writes an executable bash script that checks out
the target branch and cherry-picks each commit in sequence.

Credentials are read from the environment: JIRA_USERNAME and JIRA_API_TOKEN
are required, JIRA_BASE_URL overrides the configured base URL.

The script is not executed; run it yourself after review. On a cherry-pick
conflict the script stops and a human resolves and resumes manually.`,
	Args: cobra.ExactArgs(2),
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&outputPath, "output", "o", "", "output path for the generated script (default cherry_pick_release_<id>.sh)")
	generateCmd.Flags().StringVar(&strategyOption, "strategy-option", "", "conflict side passed to git cherry-pick -X (default from config, normally theirs)")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	releaseID := args[0]
	targetBranch := args[1]

	if !shellSafe.MatchString(targetBranch) {
		return fmt.Errorf("target branch %q contains characters unsafe for the generated script", targetBranch)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	strategy := strategyOption
	if strategy == "" {
		strategy = cfg.Script.MergeStrategy
	}
	if !shellSafe.MatchString(strategy) {
		return fmt.Errorf("strategy option %q contains characters unsafe for the generated script", strategy)
	}

	_, assocs, err := buildPlan(context.Background(), cfg, releaseID)
	if err != nil {
		return err
	}

	out := outputPath
	if out == "" {
		out = fmt.Sprintf(cfg.Script.OutputTemplate, releaseID)
	}

	content := script.Render(assocs, script.Options{
		ReleaseID:      releaseID,
		TargetBranch:   targetBranch,
		StrategyOption: strategy,
	})
	if err := script.Write(out, content); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Cherry-pick script generated: %s\n", out)
	return nil
}
