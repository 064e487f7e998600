// Package selfupdate checks GitHub releases for a newer tutorlens build.
package selfupdate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/mod/semver"
)

const (
	defaultOwner = "arindam"
	defaultRepo  = "tutorlens"

	defaultAPIBaseURL = "https://api.github.com"
)

// ErrDevBuild is returned when the running binary has no release version.
var ErrDevBuild = errors.New("cannot check updates for a development build")

// Checker queries the release API for the latest published version.
type Checker struct {
	owner      string
	repo       string
	apiBaseURL string
	client     *http.Client
}

// NewChecker creates a Checker for the canonical release repo.
func NewChecker() *Checker {
	return &Checker{
		owner:      defaultOwner,
		repo:       defaultRepo,
		apiBaseURL: defaultAPIBaseURL,
		client:     &http.Client{Timeout: 15 * time.Second},
	}
}

// NewCheckerWithBaseURL creates a Checker against a custom API endpoint.
// Used by tests.
func NewCheckerWithBaseURL(baseURL string) *Checker {
	c := NewChecker()
	c.apiBaseURL = baseURL
	return c
}

// CheckInput carries the running build's version string.
type CheckInput struct {
	Version string
}

// CheckResult reports the latest release and whether it is newer.
type CheckResult struct {
	CurrentVersion  string
	LatestVersion   string
	UpdateAvailable bool
	ReleaseURL      string
}

type releaseResponse struct {
	TagName string `json:"tag_name"`
	HTMLURL string `json:"html_url"`
}

// Check fetches the latest release tag and compares it against the
// running version using semantic version ordering.
func (c *Checker) Check(ctx context.Context, input *CheckInput) (*CheckResult, error) {
	if input.Version == "" || input.Version == "(devel)" {
		return nil, ErrDevBuild
	}

	url := fmt.Sprintf("%s/repos/%s/%s/releases/latest",
		strings.TrimRight(c.apiBaseURL, "/"), c.owner, c.repo)

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
		return nil, fmt.Errorf("HTTP %d from release API", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read release response: %w", err)
	}

	var release releaseResponse
	if err := json.Unmarshal(body, &release); err != nil {
		return nil, fmt.Errorf("decode release response: %w", err)
	}
	if release.TagName == "" {
		return nil, errors.New("release response has no tag name")
	}

	current := canonicalVersion(input.Version)
	latest := canonicalVersion(release.TagName)
	if !semver.IsValid(latest) {
		return nil, fmt.Errorf("release tag %q is not a semantic version", release.TagName)
	}

	return &CheckResult{
		CurrentVersion:  input.Version,
		LatestVersion:   release.TagName,
		UpdateAvailable: !semver.IsValid(current) || semver.Compare(latest, current) > 0,
		ReleaseURL:      release.HTMLURL,
	}, nil
}

// canonicalVersion normalizes a tag to the "vMAJOR.MINOR.PATCH" form
// semver expects.
func canonicalVersion(tag string) string {
	v := strings.TrimSpace(tag)
	if v != "" && !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	return v
}
