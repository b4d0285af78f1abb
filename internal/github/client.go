package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"

	"github.com/devscope/profiler/internal/models"
)

const defaultBaseURL = "https://api.github.com"

// maxRecentCommits bounds how many most-recent commits one repository scan
// may consume.
const maxRecentCommits = 100

// RateLimitInfo holds information about GitHub API rate limits, tracked
// from response headers.
type RateLimitInfo struct {
	Limit     int
	Remaining int
	ResetTime time.Time
}

// Client is a GitHub REST API client scoped to the commit-history reads
// the profiler needs.
type Client struct {
	doer          HTTPDoer
	baseURL       string
	logger        *logrus.Logger
	rateLimitInfo RateLimitInfo

	maxRetries     int
	initialBackoff time.Duration
	maxBackoff     time.Duration
}

// ClientOption allows configuring the GitHub client.
type ClientOption func(*Client)

// WithRetryConfig configures retry behavior.
func WithRetryConfig(maxRetries int, initialBackoff, maxBackoff time.Duration) ClientOption {
	return func(c *Client) {
		c.maxRetries = maxRetries
		c.initialBackoff = initialBackoff
		c.maxBackoff = maxBackoff
	}
}

// WithBaseURL overrides the GitHub API base URL.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithHTTPDoer overrides the underlying HTTP client.
func WithHTTPDoer(doer HTTPDoer) ClientOption {
	return func(c *Client) {
		c.doer = doer
	}
}

// NewClient creates a new GitHub client authenticated with the given token.
// maxRate caps outgoing requests per second.
func NewClient(token string, maxRate float64, logger *logrus.Logger, opts ...ClientOption) *Client {
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	httpClient := oauth2.NewClient(context.Background(), ts)
	httpClient.Timeout = 60 * time.Second

	client := &Client{
		doer:           NewLimitedHTTPDoer(httpClient, maxRate),
		baseURL:        defaultBaseURL,
		logger:         logger,
		maxRetries:     3,
		initialBackoff: time.Second,
		maxBackoff:     time.Minute,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// ParseRepoURL extracts owner and name from a repository URL or a bare
// "owner/name" identifier.
func ParseRepoURL(repoURL string) (owner, name string, err error) {
	trimmed := strings.TrimRight(strings.TrimSpace(repoURL), "/")
	if trimmed == "" {
		return "", "", fmt.Errorf("repository URL cannot be empty")
	}

	if strings.HasPrefix(trimmed, "http") {
		_, after, found := strings.Cut(trimmed, "github.com/")
		if !found {
			return "", "", fmt.Errorf("not a github repository URL: %s", repoURL)
		}
		trimmed = after
	}

	parts := strings.Split(trimmed, "/")
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("invalid repository identifier: %s", repoURL)
	}
	return parts[0], parts[1], nil
}

// GetRepositoryByURL retrieves repository metadata by its URL.
func (c *Client) GetRepositoryByURL(ctx context.Context, repoURL string) (*models.Repository, error) {
	owner, name, err := ParseRepoURL(repoURL)
	if err != nil {
		return nil, err
	}

	reqURL := fmt.Sprintf("%s/repos/%s/%s", c.baseURL, owner, name)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	var repo restRepository
	if err := c.doRequestWithBackoff(req, &repo); err != nil {
		return nil, err
	}

	return &models.Repository{Name: repo.Name, FullName: repo.FullName}, nil
}

// RecentCommits lists up to limit most-recent commits of a repository and
// enriches each with line stats and changed files from the per-commit
// detail endpoint. Detail fetches are best-effort: a failed one is logged,
// recorded on the commit and does not abort the listing.
func (c *Client) RecentCommits(ctx context.Context, owner, name string, limit int) ([]*models.CommitRecord, error) {
	if owner == "" || name == "" {
		return nil, fmt.Errorf("owner and name cannot be empty")
	}
	if limit <= 0 || limit > maxRecentCommits {
		limit = maxRecentCommits
	}

	logger := c.logger.WithFields(logrus.Fields{
		"owner": owner,
		"repo":  name,
		"limit": limit,
	})
	logger.Info("Fetching recent commits from GitHub API")

	query := url.Values{}
	query.Set("per_page", strconv.Itoa(limit))
	listURL := fmt.Sprintf("%s/repos/%s/%s/commits?%s", c.baseURL, owner, name, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, listURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	var listed []restCommit
	if err := c.doRequestWithBackoff(req, &listed); err != nil {
		logger.WithError(err).Error("Failed to list commits")
		return nil, err
	}
	if len(listed) > limit {
		listed = listed[:limit]
	}

	commits := make([]*models.CommitRecord, 0, len(listed))
	for _, rc := range listed {
		record := &models.CommitRecord{
			SHA:     rc.SHA,
			Message: rc.Commit.Message,
			Date:    rc.Commit.Author.Date,
		}
		if rc.Author != nil && rc.Author.Login != "" {
			record.Author = &models.CommitAuthor{
				Login:     rc.Author.Login,
				Name:      rc.Commit.Author.Name,
				AvatarURL: rc.Author.AvatarURL,
			}
			if record.Author.Name == "" {
				record.Author.Name = rc.Author.Login
			}
		}

		detail, err := c.commitDetail(ctx, owner, name, rc.SHA)
		if err != nil {
			logger.WithError(err).WithField("sha", rc.SHA).Warn("Commit detail unavailable, skipping file stats")
			record.DetailErr = err
		} else {
			record.Additions = detail.Stats.Additions
			record.Deletions = detail.Stats.Deletions
			for _, f := range detail.Files {
				record.Files = append(record.Files, f.Filename)
			}
		}

		commits = append(commits, record)
	}

	logger.WithField("commits", len(commits)).Info("Completed fetching commits")
	return commits, nil
}

func (c *Client) commitDetail(ctx context.Context, owner, name, sha string) (*restCommitDetail, error) {
	reqURL := fmt.Sprintf("%s/repos/%s/%s/commits/%s", c.baseURL, owner, name, sha)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	var detail restCommitDetail
	if err := c.doRequestWithBackoff(req, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

// updateRateLimitInfo updates the rate limit information from response headers.
func (c *Client) updateRateLimitInfo(resp *http.Response) {
	if limit := resp.Header.Get("X-RateLimit-Limit"); limit != "" {
		c.rateLimitInfo.Limit, _ = strconv.Atoi(limit)
	}
	if remaining := resp.Header.Get("X-RateLimit-Remaining"); remaining != "" {
		c.rateLimitInfo.Remaining, _ = strconv.Atoi(remaining)
	}
	if reset := resp.Header.Get("X-RateLimit-Reset"); reset != "" {
		if resetTime, err := strconv.ParseInt(reset, 10, 64); err == nil {
			c.rateLimitInfo.ResetTime = time.Unix(resetTime, 0)
		}
	}
}

// doRequestWithBackoff performs an HTTP request with exponential backoff on
// transient failures.
func (c *Client) doRequestWithBackoff(req *http.Request, result interface{}) error {
	var lastErr error
	backoff := c.initialBackoff

	for attempt := 0; attempt < c.maxRetries; attempt++ {
		resp, err := c.doer.Do(req)
		if err != nil {
			lastErr = NewAPIError(0, "request failed", err)
			c.logger.Warnf("Request attempt %d failed: %v", attempt+1, err)
			time.Sleep(backoff)
			backoff = time.Duration(math.Min(float64(backoff*2), float64(c.maxBackoff)))
			continue
		}

		c.updateRateLimitInfo(resp)

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			lastErr = NewAPIError(resp.StatusCode, "failed to read response body", err)
			continue
		}

		if resp.StatusCode != http.StatusOK {
			lastErr = NewAPIError(resp.StatusCode, strings.TrimSpace(string(body)), nil)
			if resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests {
				time.Sleep(backoff)
				backoff = time.Duration(math.Min(float64(backoff*2), float64(c.maxBackoff)))
				continue
			}
			return lastErr
		}

		if result != nil {
			if err := json.Unmarshal(body, result); err != nil {
				return NewAPIError(resp.StatusCode, "failed to decode response", err)
			}
		}

		return nil
	}

	return fmt.Errorf("max retries exceeded: %w", lastErr)
}
