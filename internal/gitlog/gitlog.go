// Package gitlog reads commit history from a local git checkout.
package gitlog

import (
	"context"
	"fmt"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/SediDeVone/jira-release-commit-extractor/internal/model"
)

// Repository wraps a read-only view of a git repository.
type Repository struct {
	repo *git.Repository
}

// Open opens the repository at path. The error covers the "not a git
// checkout" startup failure mode.
func Open(path string) (*Repository, error) {
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("opening git repository at %s: %w", path, err)
	}
	return &Repository{repo: repo}, nil
}

// Commits walks the full history from HEAD and materializes it. History
// order is the repository's native (newest first); callers that need a
// chronological order sort afterwards.
func (r *Repository) Commits(ctx context.Context) ([]model.Commit, error) {
	head, err := r.repo.Head()
	if err != nil {
		return nil, fmt.Errorf("resolving HEAD: %w", err)
	}

	iter, err := r.repo.Log(&git.LogOptions{From: head.Hash()})
	if err != nil {
		return nil, fmt.Errorf("reading history: %w", err)
	}
	defer iter.Close()

	var commits []model.Commit
	err = iter.ForEach(func(c *object.Commit) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		commits = append(commits, model.Commit{
			Hash:    c.Hash.String(),
			Message: c.Message,
			When:    c.Committer.When,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("reading history: %w", err)
	}

	return commits, nil
}
