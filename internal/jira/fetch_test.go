package jira

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"
)

func TestFetchReleaseTickets(t *testing.T) {
	srv := &pagedServer{issues: 5, reportedTotal: 5}
	c, _ := testClient(t, srv)

	name, tickets, err := c.FetchReleaseTickets(context.Background(), "1234", nil)
	if err != nil {
		t.Fatalf("FetchReleaseTickets: %v", err)
	}
	if name != "Sprint 42" {
		t.Errorf("release name = %q, want %q", name, "Sprint 42")
	}
	if len(tickets) != 5 {
		t.Fatalf("got %d tickets, want 5", len(tickets))
	}
	if tickets[0].Key != "ABC-1" || tickets[4].Key != "ABC-5" {
		t.Errorf("ticket keys = %s..%s, want ABC-1..ABC-5 in API order", tickets[0].Key, tickets[4].Key)
	}
	if tickets[0].Status != "Done" {
		t.Errorf("Status = %q, want %q", tickets[0].Status, "Done")
	}
	if tickets[0].Created.IsZero() {
		t.Error("Created should be parsed, got zero time")
	}
	if !strings.Contains(srv.lastJQL, `fixVersion = "Sprint 42"`) {
		t.Errorf("JQL = %q, want a fixVersion constraint on the release name", srv.lastJQL)
	}
	if !strings.Contains(srv.lastJQL, "ORDER BY created ASC") {
		t.Errorf("JQL = %q, want ORDER BY created ASC", srv.lastJQL)
	}
}

func TestFetchReleaseTicketsUnresolvableRelease(t *testing.T) {
	searchCalls := 0
	versionCalls := 0
	c, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/rest/api/2/search" {
			searchCalls++
			http.Error(w, "should not be reached", http.StatusInternalServerError)
			return
		}
		versionCalls++
		http.NotFound(w, r)
	}))

	_, _, err := c.FetchReleaseTickets(context.Background(), "9999", nil)
	if !errors.Is(err, ErrReleaseNotFound) {
		t.Fatalf("err = %v, want ErrReleaseNotFound", err)
	}
	if versionCalls != 1 {
		t.Errorf("made %d lookup calls, want exactly 1", versionCalls)
	}
	if searchCalls != 0 {
		t.Errorf("made %d search calls, want 0 after a failed lookup", searchCalls)
	}
}

func TestParseTime(t *testing.T) {
	tests := []struct {
		in       string
		wantZero bool
	}{
		{"2025-01-15T10:30:00.000+0000", false},
		{"2025-01-15T10:30:00Z", false},
		{"not a timestamp", true},
		{"", true},
	}
	for _, tt := range tests {
		got := parseTime(tt.in)
		if got.IsZero() != tt.wantZero {
			t.Errorf("parseTime(%q) = %v, wantZero = %v", tt.in, got, tt.wantZero)
		}
	}

	got := parseTime("2025-01-15T10:30:00.000+0000")
	want := time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("parseTime = %v, want %v", got, want)
	}
}
