package github

import (
	"context"
	"errors"
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru"

	"github.com/devscope/profiler/internal/models"
)

// Source is the read surface the cache wraps. *Client implements it.
type Source interface {
	GetRepositoryByURL(ctx context.Context, repoURL string) (*models.Repository, error)
	RecentCommits(ctx context.Context, owner, name string, limit int) ([]*models.CommitRecord, error)
}

// CachedSource wraps a Source with an in-memory LRU caching layer so
// repeated analyze requests for the same repository within the TTL do not
// re-fetch the commit window.
type CachedSource struct {
	source       Source
	repoCache    *lru.Cache
	commitsCache *lru.Cache
	ttl          time.Duration
}

// NewCachedSource creates a new CachedSource instance.
func NewCachedSource(source Source, size int, ttl time.Duration) (*CachedSource, error) {
	if size <= 0 {
		return nil, errors.New("cache size must be greater than 0")
	}
	repoCache, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("creating lru cache for repositories: %w", err)
	}
	commitsCache, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("creating lru cache for commits: %w", err)
	}

	return &CachedSource{
		source:       source,
		repoCache:    repoCache,
		commitsCache: commitsCache,
		ttl:          ttl,
	}, nil
}

// GetRepositoryByURL returns repository metadata, cached per URL.
func (c *CachedSource) GetRepositoryByURL(ctx context.Context, repoURL string) (*models.Repository, error) {
	val, ok := c.repoCache.Get(repoURL)
	if ok {
		entry := val.(repoCacheEntry)
		if entry.created.Add(c.ttl).After(time.Now()) {
			return entry.data, nil
		}
	}

	repo, err := c.source.GetRepositoryByURL(ctx, repoURL)
	if err != nil {
		return repo, err
	}

	c.repoCache.Add(repoURL, repoCacheEntry{
		created: time.Now(),
		data:    repo,
	})

	return repo, nil
}

// RecentCommits returns a repository's recent commit window, cached per
// owner/name as long as the cached window is at least as large as requested.
func (c *CachedSource) RecentCommits(ctx context.Context, owner, name string, limit int) ([]*models.CommitRecord, error) {
	key := c.commitsCacheKey(owner, name)
	val, ok := c.commitsCache.Get(key)
	if ok {
		entry := val.(commitsCacheEntry)
		if entry.limit >= limit && entry.created.Add(c.ttl).After(time.Now()) {
			commits := entry.data
			if len(commits) > limit {
				commits = commits[:limit]
			}
			return commits, nil
		}
	}

	commits, err := c.source.RecentCommits(ctx, owner, name, limit)
	if err != nil {
		return commits, err
	}

	c.commitsCache.Add(key, commitsCacheEntry{
		created: time.Now(),
		limit:   limit,
		data:    commits,
	})

	return commits, nil
}

func (c *CachedSource) commitsCacheKey(owner, name string) string {
	return owner + "/" + name
}

type repoCacheEntry struct {
	created time.Time
	data    *models.Repository
}

type commitsCacheEntry struct {
	created time.Time
	limit   int
	data    []*models.CommitRecord
}
