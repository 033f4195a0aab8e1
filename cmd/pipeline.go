package cmd

import (
	"context"
	"fmt"
	"os"
	"regexp"

	"github.com/SediDeVone/jira-release-commit-extractor/internal/associate"
	"github.com/SediDeVone/jira-release-commit-extractor/internal/config"
	"github.com/SediDeVone/jira-release-commit-extractor/internal/gitlog"
	"github.com/SediDeVone/jira-release-commit-extractor/internal/jira"
	"github.com/SediDeVone/jira-release-commit-extractor/internal/model"
)

// shellSafe limits branch names and strategy options to single shell-safe
// words, since both are interpolated into the generated script.
var shellSafe = regexp.MustCompile(`^[A-Za-z0-9._/@-]+$`)

// buildPlan runs the read side of the pipeline: fetch the release tickets,
// walk the commit history, associate and order. Strictly sequential; any
// failure aborts the run with no partial output.
func buildPlan(ctx context.Context, cfg *config.Config, releaseID string) (string, []model.Association, error) {
	creds, err := cfg.Credentials()
	if err != nil {
		return "", nil, err
	}

	repo, err := gitlog.Open(".")
	if err != nil {
		return "", nil, err
	}

	client := jira.NewClient(creds)
	client.PageSize = cfg.Jira.PageSize

	fmt.Fprintf(os.Stderr, "Fetching tickets for release %s...\n", releaseID)
	releaseName, tickets, err := client.FetchReleaseTickets(ctx, releaseID, func(fetched, total int) {
		fmt.Fprintf(os.Stderr, "Retrieved %d of %d issues\n", fetched, total)
	})
	if err != nil {
		return "", nil, err
	}
	fmt.Fprintf(os.Stderr, "Found %d issues in release %s\n", len(tickets), releaseName)

	commits, err := repo.Commits(ctx)
	if err != nil {
		return "", nil, err
	}

	assocs := associate.Associate(tickets, commits)
	associate.Order(assocs)
	fmt.Fprintf(os.Stderr, "Found %d unique commits associated with the tickets\n", len(assocs))

	return releaseName, assocs, nil
}
