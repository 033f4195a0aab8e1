package model

import "time"

// Ticket is a Jira issue belonging to the release being extracted.
type Ticket struct {
	Key     string    `yaml:"key"`
	Summary string    `yaml:"summary"`
	Status  string    `yaml:"status,omitempty"`
	Created time.Time `yaml:"created,omitempty"`
	Updated time.Time `yaml:"updated,omitempty"`
}

// Commit is one entry from the repository's history. The core only reads
// commits, it never mutates the checkout.
type Commit struct {
	Hash    string
	Message string
	When    time.Time
}

// Association links one commit to the ticket it was attributed to. A commit
// appears in at most one Association per run, even when its message
// references several ticket keys.
type Association struct {
	TicketKey     string    `yaml:"ticket"`
	CommitHash    string    `yaml:"sha"`
	CommitWhen    time.Time `yaml:"date"`
	CommitMessage string    `yaml:"message"`
}

// PlanFile is the top-level YAML structure emitted by `plan -o yaml`.
type PlanFile struct {
	ReleaseID    string        `yaml:"releaseId"`
	ReleaseName  string        `yaml:"releaseName"`
	Associations []Association `yaml:"commits"`
}
