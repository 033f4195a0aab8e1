package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/SediDeVone/jira-release-commit-extractor/internal/config"
	"github.com/SediDeVone/jira-release-commit-extractor/internal/model"
)

var planFormat string

var planCmd = &cobra.Command{
	Use:   "plan <release-id>",
	Short: "Show the ordered ticket/commit associations without writing a script",
	Long: `Plan runs the same pipeline as generate - fetch the release tickets,
scan the commit history, order by commit date - but prints the associations
instead of writing a script. Useful for reviewing what generate would pick.`,
	Args: cobra.ExactArgs(1),
	RunE: runPlan,
}

func init() {
	planCmd.Flags().StringVarP(&planFormat, "output", "o", "table", "output format: table or yaml")
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	if planFormat != "table" && planFormat != "yaml" {
		return fmt.Errorf("unsupported output format %q, must be table or yaml", planFormat)
	}

	releaseID := args[0]

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	releaseName, assocs, err := buildPlan(context.Background(), cfg, releaseID)
	if err != nil {
		return err
	}

	if len(assocs) == 0 {
		fmt.Println("No associated commits found.")
		return nil
	}

	switch planFormat {
	case "yaml":
		return printYAML(releaseID, releaseName, assocs)
	default:
		return printTable(assocs)
	}
}

func printTable(assocs []model.Association) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

	fmt.Fprintf(w, "TICKET\tSHA\tDATE\tMESSAGE\n")
	for _, a := range assocs {
		fmt.Fprintf(w, "%s\t%.12s\t%s\t%s\n",
			a.TicketKey,
			a.CommitHash,
			a.CommitWhen.Format("2006-01-02 15:04"),
			truncate(firstLine(a.CommitMessage), 72),
		)
	}

	w.Flush()
	fmt.Fprintf(os.Stderr, "\nTotal: %d commits\n", len(assocs))
	return nil
}

func printYAML(releaseID, releaseName string, assocs []model.Association) error {
	out := model.PlanFile{
		ReleaseID:    releaseID,
		ReleaseName:  releaseName,
		Associations: assocs,
	}

	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encoding yaml: %w", err)
	}
	return enc.Close()
}

func firstLine(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			return s[:i]
		}
	}
	return s
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
