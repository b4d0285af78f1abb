package analyzer

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	apperrors "github.com/devscope/profiler/internal/errors"
	"github.com/devscope/profiler/internal/github"
	"github.com/devscope/profiler/internal/models"
	"github.com/devscope/profiler/internal/store"
)

// commitWindow is the number of most-recent commits fetched per repository
// scan.
const commitWindow = 100

// maxMergedExpertiseAreas caps the expertise-area union when the same
// developer shows up in multiple analyzed repositories.
const maxMergedExpertiseAreas = 5

// Service runs the full analyze pipeline: fetch a repository's recent
// commit window, aggregate per author, synthesize profiles, merge
// cross-repository duplicates and persist the result.
type Service struct {
	source github.Source
	synth  *Synthesizer
	store  store.ProfileStore
	logger *logrus.Logger
}

// NewService creates a new analyzer Service.
func NewService(source github.Source, synth *Synthesizer, profileStore store.ProfileStore, logger *logrus.Logger) *Service {
	return &Service{
		source: source,
		synth:  synth,
		store:  profileStore,
		logger: logger,
	}
}

// AnalyzeRepositories analyzes each repository URL in turn and returns the
// merged profile collection, which is also persisted. Blank URLs are
// skipped. Any fetch failure aborts the run with a client-facing error and
// nothing is persisted.
func (s *Service) AnalyzeRepositories(ctx context.Context, repoURLs []string) ([]models.DeveloperProfile, error) {
	merged := []models.DeveloperProfile{}
	index := make(map[string]int)

	for _, repoURL := range repoURLs {
		if strings.TrimSpace(repoURL) == "" {
			continue
		}

		profiles, err := s.analyzeRepository(ctx, repoURL)
		if err != nil {
			return nil, err
		}

		for _, profile := range profiles {
			if i, ok := index[profile.GithubUsername]; ok {
				merged[i] = mergeProfiles(merged[i], profile)
			} else {
				index[profile.GithubUsername] = len(merged)
				merged = append(merged, profile)
			}
		}
	}

	if err := s.store.Save(ctx, merged); err != nil {
		return nil, apperrors.NewInternalError("failed to save profiles", err)
	}

	return merged, nil
}

func (s *Service) analyzeRepository(ctx context.Context, repoURL string) ([]models.DeveloperProfile, error) {
	logger := s.logger.WithField("repo_url", repoURL)
	logger.Info("Analyzing repository")

	repo, err := s.source.GetRepositoryByURL(ctx, repoURL)
	if err != nil {
		return nil, analyzeError(err)
	}

	owner, name, err := github.ParseRepoURL(repoURL)
	if err != nil {
		return nil, analyzeError(err)
	}

	commits, err := s.source.RecentCommits(ctx, owner, name, commitWindow)
	if err != nil {
		return nil, analyzeError(err)
	}

	detailFailures := 0
	for _, c := range commits {
		if c.DetailErr != nil {
			detailFailures++
		}
	}
	if detailFailures > 0 {
		logger.WithField("commits", detailFailures).Warn("Some commits contributed no file data")
	}

	aggregates := Aggregate(commits)
	logger.WithFields(logrus.Fields{
		"repo":    repo.FullName,
		"commits": len(commits),
		"authors": len(aggregates),
	}).Info("Aggregated commit window")

	profiles := make([]models.DeveloperProfile, 0, len(aggregates))
	for _, agg := range aggregates {
		profiles = append(profiles, s.synth.Profile(ctx, agg, repo.Name))
	}

	return profiles, nil
}

// analyzeError wraps a fetch failure as the descriptive 400-class error
// the analyze endpoint reports.
func analyzeError(err error) error {
	return apperrors.NewValidationError(fmt.Sprintf("Error analyzing repository: %v", err), err)
}

// mergeProfiles folds a newly generated profile into the existing one for
// the same developer: commit counts are summed and expertise areas
// unioned, capped at maxMergedExpertiseAreas. Other qualitative fields
// keep their first-produced values.
func mergeProfiles(existing, incoming models.DeveloperProfile) models.DeveloperProfile {
	existing.TotalCommits += incoming.TotalCommits
	existing.ExpertiseAreas = unionCapped(existing.ExpertiseAreas, incoming.ExpertiseAreas, maxMergedExpertiseAreas)
	return existing
}

// unionCapped unions two string lists keeping the first list's order
// first, then unseen entries from the second, truncated to limit.
func unionCapped(first, second []string, limit int) []string {
	seen := make(map[string]struct{}, len(first)+len(second))
	var union []string
	for _, lists := range [][]string{first, second} {
		for _, entry := range lists {
			if _, ok := seen[entry]; ok {
				continue
			}
			seen[entry] = struct{}{}
			union = append(union, entry)
			if len(union) >= limit {
				return union
			}
		}
	}
	return union
}

// SampleService satisfies the analyze surface in demo mode: it never calls
// external services and returns the bundled sample profiles instead.
type SampleService struct {
	store store.ProfileStore
}

// NewSampleService creates a SampleService reading from the given store.
func NewSampleService(profileStore store.ProfileStore) *SampleService {
	return &SampleService{store: profileStore}
}

// AnalyzeRepositories ignores the requested repositories and returns the
// stored sample profiles.
func (s *SampleService) AnalyzeRepositories(ctx context.Context, _ []string) ([]models.DeveloperProfile, error) {
	return s.store.Load(ctx)
}
