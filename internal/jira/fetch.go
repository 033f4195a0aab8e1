package jira

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/SediDeVone/jira-release-commit-extractor/internal/model"
)

// jiraTimeLayout is the timestamp format Jira uses in issue fields.
const jiraTimeLayout = "2006-01-02T15:04:05.000-0700"

// FetchReleaseTickets resolves the release id to its name and retrieves
// every ticket whose fixVersion is that release, paging until the search is
// exhausted. The returned order is the API's (created ascending, per the
// JQL); downstream matching treats it as the ticket priority order.
// Duplicate keys across pages are dropped, first occurrence wins.
func (c *Client) FetchReleaseTickets(ctx context.Context, releaseID string, onPage func(fetched, total int)) (string, []model.Ticket, error) {
	version, err := c.GetVersion(ctx, releaseID)
	if err != nil {
		return "", nil, err
	}

	jql := fmt.Sprintf("fixVersion = %q ORDER BY created ASC", version.Name)
	issues, err := c.SearchIssues(ctx, jql, onPage)
	if err != nil {
		return version.Name, nil, err
	}

	seen := make(map[string]bool, len(issues))
	tickets := make([]model.Ticket, 0, len(issues))
	for _, is := range issues {
		if is.Key == "" || seen[is.Key] {
			continue
		}
		seen[is.Key] = true
		tickets = append(tickets, issueToTicket(is))
	}

	return version.Name, tickets, nil
}

func issueToTicket(is Issue) model.Ticket {
	t := model.Ticket{
		Key:     is.Key,
		Summary: is.Fields.Summary,
		Created: parseTime(is.Fields.Created),
		Updated: parseTime(is.Fields.Updated),
	}
	if is.Fields.Status != nil {
		t.Status = is.Fields.Status.Name
	}
	return t
}

// parseTime parses a Jira timestamp, falling back to RFC3339. A zero time
// is returned on failure; ticket timestamps are informational only.
func parseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	if ts, err := time.Parse(jiraTimeLayout, s); err == nil {
		return ts
	}
	if ts, err := time.Parse(time.RFC3339, strings.TrimSpace(s)); err == nil {
		return ts
	}
	return time.Time{}
}
