// Package associate matches commits to release tickets and orders the
// resulting associations for cherry-picking.
package associate

import (
	"sort"
	"strings"

	"github.com/SediDeVone/jira-release-commit-extractor/internal/model"
)

// Associate scans the commit history and links each commit to the first
// ticket (in the given ticket order) whose key its message references.
// Every commit hash produces at most one association: a commit whose message
// mentions several release tickets is attributed to the first match only, so
// it is never cherry-picked twice.
//
// The scan is O(commits x tickets). Keys are matched with boundary-aware
// substring logic rather than exact lookup, so no index from key to commit
// can be built; for very large histories this loop is the dominant cost.
func Associate(tickets []model.Ticket, commits []model.Commit) []model.Association {
	seen := make(map[string]bool, len(commits))
	var assocs []model.Association

	for _, c := range commits {
		if seen[c.Hash] {
			continue
		}
		for _, t := range tickets {
			if !Matches(t.Key, c.Message) {
				continue
			}
			assocs = append(assocs, model.Association{
				TicketKey:     t.Key,
				CommitHash:    c.Hash,
				CommitWhen:    c.When,
				CommitMessage: strings.TrimSpace(c.Message),
			})
			seen[c.Hash] = true
			break
		}
	}

	return assocs
}

// Order sorts associations by commit timestamp, oldest first. The sort is
// stable: commits with identical timestamps keep their scan order, since
// the timestamps alone cannot break such ties.
func Order(assocs []model.Association) {
	sort.SliceStable(assocs, func(i, j int) bool {
		return assocs[i].CommitWhen.Before(assocs[j].CommitWhen)
	})
}
