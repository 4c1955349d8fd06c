// Package selfupdate checks GitHub releases for a newer build and swaps the
// running binary in place.
package selfupdate

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"golang.org/x/mod/semver"
)

const (
	defaultOwner           = "abhisek"
	defaultRepo            = "cruxlog"
	defaultAPIBaseURL      = "https://api.github.com"
	defaultDownloadBaseURL = "https://github.com"
	defaultTimeout         = 30 * time.Second
)

// Checker queries the release feed and performs updates.
type Checker struct {
	client          *http.Client
	owner           string
	repo            string
	baseURL         string
	downloadBaseURL string
	execPath        func() (string, error)
}

// CheckerOption configures a Checker.
type CheckerOption func(*Checker)

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) CheckerOption {
	return func(c *Checker) {
		c.client.Timeout = d
	}
}

// WithBaseURL overrides the GitHub API base URL, for tests.
func WithBaseURL(url string) CheckerOption {
	return func(c *Checker) {
		c.baseURL = url
	}
}

// WithDownloadBaseURL overrides the release-asset base URL, for tests.
func WithDownloadBaseURL(url string) CheckerOption {
	return func(c *Checker) {
		c.downloadBaseURL = url
	}
}

// withExecPath overrides executable resolution, for tests.
func withExecPath(fn func() (string, error)) CheckerOption {
	return func(c *Checker) {
		c.execPath = fn
	}
}

// NewChecker creates a Checker pointed at the official release repo.
func NewChecker(opts ...CheckerOption) *Checker {
	c := &Checker{
		client:          &http.Client{Timeout: defaultTimeout},
		owner:           defaultOwner,
		repo:            defaultRepo,
		baseURL:         defaultAPIBaseURL,
		downloadBaseURL: defaultDownloadBaseURL,
		execPath:        os.Executable,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CheckInput carries the running version for comparison.
type CheckInput struct {
	Version string
}

// CheckResult reports the latest release and whether it is newer.
type CheckResult struct {
	UpdateAvailable bool
	LatestVersion   string
	ReleaseURL      string
}

type latestRelease struct {
	TagName string `json:"tag_name"`
	HTMLURL string `json:"html_url"`
}

// Check fetches the latest release tag and compares it against the running
// version using semver ordering.
func (c *Checker) Check(ctx context.Context, input *CheckInput) (*CheckResult, error) {
	url := fmt.Sprintf("%s/repos/%s/%s/releases/latest", c.baseURL, c.owner, c.repo)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch latest release: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d fetching latest release", resp.StatusCode)
	}

	var release latestRelease
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return nil, fmt.Errorf("decode release: %w", err)
	}
	if !semver.IsValid(release.TagName) {
		return nil, fmt.Errorf("invalid release tag %q", release.TagName)
	}

	return &CheckResult{
		UpdateAvailable: semver.Compare(release.TagName, input.Version) > 0,
		LatestVersion:   release.TagName,
		ReleaseURL:      release.HTMLURL,
	}, nil
}
