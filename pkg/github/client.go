// Copyright © 2025 Slipway Authors

// Package github is the remote host gateway: release publication over the
// REST API, with a preference for the gh CLI when installed, and the CI
// signal derived from workflow runs. All remote calls go through the retry
// policy.
package github

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/slipway-sh/slipway/pkg/errors"
	"github.com/slipway-sh/slipway/pkg/model"
	"github.com/slipway-sh/slipway/pkg/retry"
	"go.uber.org/zap"
)

const defaultBaseURL = "https://api.github.com"

// ReleaseParams describes a release to create.
type ReleaseParams struct {
	TagName    string `json:"tag_name"`
	Name       string `json:"name"`
	Body       string `json:"body"`
	Draft      bool   `json:"draft"`
	Prerelease bool   `json:"prerelease"`
}

// Release is a published host release.
type Release struct {
	TagName string `json:"tag_name"`
	Name    string `json:"name"`
	HTMLURL string `json:"html_url"`
}

// Client talks to the host REST surface. The token arrives through the
// constructor; the client never reads the process environment.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	l          *zap.Logger
	retry      retry.Options
}

// Option customizes a Client.
type Option func(*Client)

// WithBaseURL overrides the API base URL (tests, GitHub Enterprise).
func WithBaseURL(u string) Option {
	return func(c *Client) {
		if u != "" {
			c.baseURL = u
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.l = l
		}
	}
}

// WithRetryOptions overrides the retry policy for remote calls.
func WithRetryOptions(opts retry.Options) Option {
	return func(c *Client) {
		c.retry = opts
	}
}

// NewClient builds a host API client. An empty token is allowed here;
// token-requiring calls fail with ErrNoCredentials at the point of use.
func NewClient(token string, opts ...Option) *Client {
	c := &Client{
		baseURL:    defaultBaseURL,
		token:      token,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		l:          zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CreateRelease publishes a release and returns its URL.
func (c *Client) CreateRelease(ctx context.Context, owner, repo string, p ReleaseParams) (string, error) {
	if c.token == "" {
		return "", errors.ErrNoCredentials.Wrap(fmt.Errorf("GITHUB_TOKEN is not set"))
	}
	var created Release
	err := retry.Do(ctx, func(ctx context.Context) error {
		body, err := json.Marshal(p)
		if err != nil {
			return err
		}
		return c.doJSON(ctx, http.MethodPost, fmt.Sprintf("/repos/%s/%s/releases", owner, repo), bytes.NewReader(body), &created)
	}, c.retry)
	if err != nil {
		return "", err
	}
	c.l.Info("published host release", zap.String("tag", p.TagName), zap.String("url", created.HTMLURL))
	return created.HTMLURL, nil
}

// LatestRelease returns the most recent published release, or nil when none
// exists. A 404 is a legitimate "none" state, not an error.
func (c *Client) LatestRelease(ctx context.Context, owner, repo string) (*Release, error) {
	var rel Release
	found := true
	err := retry.Do(ctx, func(ctx context.Context) error {
		err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/repos/%s/%s/releases/latest", owner, repo), nil, &rel)
		if httpErr, ok := err.(*statusError); ok && httpErr.status == http.StatusNotFound {
			found = false
			return nil
		}
		return err
	}, c.retry)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &rel, nil
}

// CIStatus derives the tri-state CI signal from the most recent workflow run
// on branch. Errors and empty run lists both yield CIUnknown, never an error.
func (c *Client) CIStatus(ctx context.Context, owner, repo, branch string) model.CIStatus {
	var runs struct {
		WorkflowRuns []struct {
			Status     string `json:"status"`
			Conclusion string `json:"conclusion"`
		} `json:"workflow_runs"`
	}
	path := fmt.Sprintf("/repos/%s/%s/actions/runs?branch=%s&per_page=1", owner, repo, url.QueryEscape(branch))
	err := retry.Do(ctx, func(ctx context.Context) error {
		return c.doJSON(ctx, http.MethodGet, path, nil, &runs)
	}, c.retry)
	if err != nil || len(runs.WorkflowRuns) == 0 {
		c.l.Debug("no usable CI signal", zap.Error(err))
		return model.CIUnknown
	}
	run := runs.WorkflowRuns[0]
	switch run.Status {
	case "completed":
		switch run.Conclusion {
		case "success":
			return model.CISuccess
		case "failure", "timed_out", "startup_failure":
			return model.CIFailure
		default:
			return model.CIUnknown
		}
	case "queued", "in_progress", "waiting", "pending":
		return model.CIPending
	}
	return model.CIUnknown
}

// statusError keeps the HTTP status visible to the retry predicate.
type statusError struct {
	status int
	body   string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("github: status %d: %s", e.status, e.body)
}

func (c *Client) doJSON(ctx context.Context, method, path string, body io.Reader, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 400 {
		return &statusError{status: resp.StatusCode, body: string(raw)}
	}
	if out != nil {
		return json.Unmarshal(raw, out)
	}
	return nil
}

// CIProbe binds a client to one repository, satisfying the analyzer's
// CIReporter interface.
type CIProbe struct {
	Client *Client
	Owner  string
	Repo   string
}

// CIStatus implements analysis.CIReporter.
func (p CIProbe) CIStatus(ctx context.Context, branch string) model.CIStatus {
	if p.Client == nil || p.Owner == "" || p.Repo == "" {
		return model.CIUnknown
	}
	return p.Client.CIStatus(ctx, p.Owner, p.Repo, branch)
}
