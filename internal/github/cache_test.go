package github

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devscope/profiler/internal/models"
)

// countingSource is a Source stub that counts calls.
type countingSource struct {
	repoCalls   int
	commitCalls int
}

func (s *countingSource) GetRepositoryByURL(_ context.Context, repoURL string) (*models.Repository, error) {
	s.repoCalls++
	return &models.Repository{Name: "repo", FullName: "owner/repo"}, nil
}

func (s *countingSource) RecentCommits(_ context.Context, owner, name string, limit int) ([]*models.CommitRecord, error) {
	s.commitCalls++
	commits := make([]*models.CommitRecord, limit)
	for i := range commits {
		commits[i] = &models.CommitRecord{SHA: "sha"}
	}
	return commits, nil
}

func TestCachedSource(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects non-positive size", func(t *testing.T) {
		_, err := NewCachedSource(&countingSource{}, 0, time.Minute)
		assert.Error(t, err)
	})

	t.Run("caches repository lookups per url", func(t *testing.T) {
		source := &countingSource{}
		cached, err := NewCachedSource(source, 8, time.Minute)
		require.NoError(t, err)

		for i := 0; i < 3; i++ {
			repo, err := cached.GetRepositoryByURL(ctx, "https://github.com/owner/repo")
			require.NoError(t, err)
			assert.Equal(t, "owner/repo", repo.FullName)
		}
		assert.Equal(t, 1, source.repoCalls)

		_, err = cached.GetRepositoryByURL(ctx, "https://github.com/owner/other")
		require.NoError(t, err)
		assert.Equal(t, 2, source.repoCalls)
	})

	t.Run("caches commit windows per repository", func(t *testing.T) {
		source := &countingSource{}
		cached, err := NewCachedSource(source, 8, time.Minute)
		require.NoError(t, err)

		for i := 0; i < 3; i++ {
			commits, err := cached.RecentCommits(ctx, "owner", "repo", 10)
			require.NoError(t, err)
			assert.Len(t, commits, 10)
		}
		assert.Equal(t, 1, source.commitCalls)
	})

	t.Run("serves smaller windows from a larger cached one", func(t *testing.T) {
		source := &countingSource{}
		cached, err := NewCachedSource(source, 8, time.Minute)
		require.NoError(t, err)

		commits, err := cached.RecentCommits(ctx, "owner", "repo", 10)
		require.NoError(t, err)
		assert.Len(t, commits, 10)

		commits, err = cached.RecentCommits(ctx, "owner", "repo", 5)
		require.NoError(t, err)
		assert.Len(t, commits, 5)
		assert.Equal(t, 1, source.commitCalls)
	})

	t.Run("refetches when a larger window is requested", func(t *testing.T) {
		source := &countingSource{}
		cached, err := NewCachedSource(source, 8, time.Minute)
		require.NoError(t, err)

		_, err = cached.RecentCommits(ctx, "owner", "repo", 5)
		require.NoError(t, err)
		commits, err := cached.RecentCommits(ctx, "owner", "repo", 10)
		require.NoError(t, err)
		assert.Len(t, commits, 10)
		assert.Equal(t, 2, source.commitCalls)
	})

	t.Run("expired entries are refetched", func(t *testing.T) {
		source := &countingSource{}
		cached, err := NewCachedSource(source, 8, time.Millisecond)
		require.NoError(t, err)

		_, err = cached.GetRepositoryByURL(ctx, "https://github.com/owner/repo")
		require.NoError(t, err)

		time.Sleep(5 * time.Millisecond)

		_, err = cached.GetRepositoryByURL(ctx, "https://github.com/owner/repo")
		require.NoError(t, err)
		assert.Equal(t, 2, source.repoCalls)
	})
}
