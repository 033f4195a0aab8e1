// Package jira provides a read-only client for the Jira REST API, covering
// release (version) lookup and paginated JQL search.
package jira

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// DefaultPageSize is the search page size used when none is configured.
// Jira caps search pages at 100 results.
const DefaultPageSize = 100

// ErrReleaseNotFound indicates the release id did not resolve to a named
// version on the Jira server.
var ErrReleaseNotFound = errors.New("release not found")

// APIError is returned for any non-2xx Jira response, carrying the status
// and body so the user sees what the server said. Transport failures are
// fatal to the run; there is no retry or backoff.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("jira API returned %d: %s", e.StatusCode, e.Body)
}

// Credentials hold the Jira endpoint and auth material. They are resolved
// from the environment once at startup and passed in here, never read ad
// hoc, so the client stays testable without environment mutation.
type Credentials struct {
	BaseURL  string
	Username string
	APIToken string
}

// Client provides HTTP access to a Jira instance.
type Client struct {
	creds      Credentials
	PageSize   int
	HTTPClient *http.Client
}

// NewClient creates a Jira client with the given credentials.
func NewClient(creds Credentials) *Client {
	creds.BaseURL = strings.TrimSuffix(creds.BaseURL, "/")
	return &Client{
		creds:    creds,
		PageSize: DefaultPageSize,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Version is a Jira project version (a release).
type Version struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Released bool   `json:"released"`
	Archived bool   `json:"archived"`
}

// Issue represents a Jira issue from the REST API.
type Issue struct {
	ID     string      `json:"id"`
	Key    string      `json:"key"`
	Self   string      `json:"self"`
	Fields IssueFields `json:"fields"`
}

// IssueFields contains the fields of a Jira issue requested by this tool.
type IssueFields struct {
	Summary string       `json:"summary"`
	Status  *StatusField `json:"status"`
	Created string       `json:"created"`
	Updated string       `json:"updated"`
}

// StatusField represents a Jira issue status.
type StatusField struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// SearchResult represents a Jira JQL search response page.
type SearchResult struct {
	StartAt    int     `json:"startAt"`
	MaxResults int     `json:"maxResults"`
	Total      int     `json:"total"`
	Issues     []Issue `json:"issues"`
}

// GetVersion looks up a release by id. A 404 or a version without a name
// resolves to ErrReleaseNotFound.
func (c *Client) GetVersion(ctx context.Context, releaseID string) (*Version, error) {
	apiURL := fmt.Sprintf("%s/rest/api/2/version/%s", c.creds.BaseURL, url.PathEscape(releaseID))

	body, err := c.doRequest(ctx, apiURL)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			return nil, fmt.Errorf("%w: release id %s", ErrReleaseNotFound, releaseID)
		}
		return nil, fmt.Errorf("get version %s: %w", releaseID, err)
	}

	var v Version
	if err := json.Unmarshal(body, &v); err != nil {
		return nil, fmt.Errorf("parse version response: %w", err)
	}
	if v.Name == "" {
		return nil, fmt.Errorf("%w: release id %s has no name", ErrReleaseNotFound, releaseID)
	}
	return &v, nil
}

// searchFields is the set of fields requested from search queries.
const searchFields = "key,summary,status,created,updated"

// SearchIssues runs a JQL query and returns all matching issues, paging with
// startAt/maxResults until done. A page shorter than the requested size is
// the authoritative end-of-results signal; the server-reported total only
// decides whether another full page is worth requesting, which keeps the
// loop terminating even when the server reports an inflated total. onPage,
// when non-nil, is invoked after each page with the running and reported
// counts.
func (c *Client) SearchIssues(ctx context.Context, jql string, onPage func(fetched, total int)) ([]Issue, error) {
	pageSize := c.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	var all []Issue
	startAt := 0
	total := -1

	for {
		params := url.Values{
			"jql":        {jql},
			"fields":     {searchFields},
			"startAt":    {strconv.Itoa(startAt)},
			"maxResults": {strconv.Itoa(pageSize)},
		}
		apiURL := fmt.Sprintf("%s/rest/api/2/search?%s", c.creds.BaseURL, params.Encode())

		body, err := c.doRequest(ctx, apiURL)
		if err != nil {
			return nil, fmt.Errorf("search issues: %w", err)
		}

		var page SearchResult
		if err := json.Unmarshal(body, &page); err != nil {
			return nil, fmt.Errorf("parse search response: %w", err)
		}

		if len(page.Issues) == 0 {
			break
		}

		all = append(all, page.Issues...)
		if total < 0 {
			total = page.Total
		}
		startAt += len(page.Issues)

		if onPage != nil {
			onPage(len(all), total)
		}

		if len(page.Issues) < pageSize {
			break
		}
		if total >= 0 && startAt >= total {
			break
		}
	}

	return all, nil
}

// doRequest executes an authenticated GET and returns the response body.
func (c *Client) doRequest(ctx context.Context, apiURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	auth := base64.StdEncoding.EncodeToString([]byte(c.creds.Username + ":" + c.creds.APIToken))
	req.Header.Set("Authorization", "Basic "+auth)
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(respBody))}
	}

	return respBody, nil
}
