package landscape

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/snona-tech/one-cloud-native-a-day/internal/yamlutil"
)

// Sentinel errors for remote lookups.
var (
	ErrFetchFailed    = errors.New("landscape fetch failed")
	ErrLookupFailed   = errors.New("description lookup failed")
	ErrEmptySourceURL = errors.New("landscape data source URL cannot be empty")
)

// githubAPIBase is swapped out in tests.
var githubAPIBase = "https://api.github.com"

// crunchbaseAPIBase is swapped out in tests.
var crunchbaseAPIBase = "https://api.crunchbase.com"

// Client fetches landscape data and project descriptions.
type Client struct {
	httpClient *http.Client
}

// NewClient returns a Client with a bounded-timeout HTTP client.
// The landscape file is a few megabytes; a minute is generous.
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{Timeout: time.Minute},
	}
}

// Fetch downloads and parses the landscape catalog from sourceURL.
func (c *Client) Fetch(ctx context.Context, sourceURL string) (*Catalog, error) {
	if sourceURL == "" {
		return nil, ErrEmptySourceURL
	}

	body, err := c.get(ctx, sourceURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	return Parse(body)
}

// GitHubDescription looks up the repository description for a github.com
// repo URL. Returns "" when the repository has no description.
func (c *Client) GitHubDescription(ctx context.Context, repoURL string) (string, error) {
	repoPath := strings.TrimPrefix(repoURL, "https://github.com/")
	repoPath = strings.TrimSuffix(strings.TrimSuffix(repoPath, "/"), ".git")
	if repoPath == "" || repoPath == repoURL {
		return "", fmt.Errorf("%w: not a github repo url: %q", ErrLookupFailed, repoURL)
	}

	body, err := c.get(ctx, githubAPIBase+"/repos/"+repoPath, map[string]string{
		"Accept": "application/vnd.github+json",
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrLookupFailed, err)
	}

	return gjson.GetBytes(body, "description").String(), nil
}

// CrunchbaseDescription looks up an organization's short description.
// Returns "" when the organization has none.
func (c *Client) CrunchbaseDescription(ctx context.Context, crunchbaseURL, apiKey string) (string, error) {
	parts := strings.Split(strings.TrimSuffix(crunchbaseURL, "/"), "/")
	organization := parts[len(parts)-1]
	if organization == "" {
		return "", fmt.Errorf("%w: no organization in %q", ErrLookupFailed, crunchbaseURL)
	}

	url := crunchbaseAPIBase + "/api/v4/entities/organizations/" + organization +
		"?field_ids=short_description"
	body, err := c.get(ctx, url, map[string]string{
		"accept":        "application/json",
		"X-cb-user-key": apiKey,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrLookupFailed, err)
	}

	return gjson.GetBytes(body, "properties.short_description").String(), nil
}

// EnrichDescription fills in a missing item description, first from
// GitHub, then from Crunchbase when an API key is available. Lookup
// failures leave the description empty rather than failing the post.
func (c *Client) EnrichDescription(ctx context.Context, item *Item, crunchbaseKey string) {
	if item.Description != "" {
		return
	}

	if item.RepoURL != "" {
		if desc, err := c.GitHubDescription(ctx, item.RepoURL); err == nil && desc != "" {
			item.Description = desc
			return
		}
	}

	if item.Crunchbase != "" && crunchbaseKey != "" {
		if desc, err := c.CrunchbaseDescription(ctx, item.Crunchbase, crunchbaseKey); err == nil {
			item.Description = desc
		}
	}
}

// get performs a GET with a bounded response body.
func (c *Client) get(ctx context.Context, url string, headers map[string]string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, int64(yamlutil.MaxInputSize)))
	if err != nil {
		return nil, err
	}
	return body, nil
}
