package analyzer

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/devscope/profiler/internal/llm"
	"github.com/devscope/profiler/internal/models"
)

const (
	recentMessageCount = 20
	messageTruncateLen = 100
	topLanguageCount   = 5
	primaryLanguages   = 3
	uniqueFileCap      = 40
	renderedFileCount  = 20
	profileMaxTokens   = 1200
)

// Synthesizer turns one author's aggregate into a DeveloperProfile. The
// qualitative fields come from the LLM; when the call or the reply parse
// fails the author gets a deterministic minimal profile instead. Profile
// never fails.
type Synthesizer struct {
	llm    llm.Client
	model  string
	logger *logrus.Logger
}

// NewSynthesizer creates a Synthesizer using the given completion client
// and model identifier.
func NewSynthesizer(client llm.Client, model string, logger *logrus.Logger) *Synthesizer {
	return &Synthesizer{
		llm:    client,
		model:  model,
		logger: logger,
	}
}

// qualitativeFields is the structured record requested from the LLM.
type qualitativeFields struct {
	ExpertiseAreas []string `json:"expertise_areas"`
	Frameworks     []string `json:"frameworks"`
	WorkStyle      string   `json:"work_style"`
	CommitPattern  string   `json:"commit_pattern"`
	AISummary      string   `json:"ai_summary"`
	BestFor        []string `json:"best_for"`
}

// Profile synthesizes a developer profile for one aggregated author.
func (s *Synthesizer) Profile(ctx context.Context, agg *AuthorAggregate, repoName string) models.DeveloperProfile {
	top := agg.TopLanguages(topLanguageCount)

	profile := models.DeveloperProfile{
		GithubUsername:   agg.Login,
		Name:             agg.Name,
		AvatarURL:        agg.AvatarURL,
		TotalCommits:     len(agg.Commits),
		PrimaryLanguages: languageNames(top, primaryLanguages),
		RepoAnalyzed:     repoName,
	}

	fields, err := s.generate(ctx, agg, repoName, top)
	if err != nil {
		s.logger.WithError(err).WithFields(logrus.Fields{
			"username": agg.Login,
			"repo":     repoName,
		}).Warn("Profile synthesis failed, using fallback profile")
		fields = fallbackFields(len(agg.Commits), repoName)
	}

	profile.ExpertiseAreas = fields.ExpertiseAreas
	profile.Frameworks = fields.Frameworks
	profile.WorkStyle = fields.WorkStyle
	profile.CommitPattern = fields.CommitPattern
	profile.AISummary = fields.AISummary
	profile.BestFor = fields.BestFor
	return profile
}

func (s *Synthesizer) generate(ctx context.Context, agg *AuthorAggregate, repoName string, top []LanguageCount) (*qualitativeFields, error) {
	prompt := buildPrompt(buildContext(agg, repoName, top))

	reply, err := s.llm.Complete(ctx, llm.Request{
		Model:     s.model,
		Prompt:    prompt,
		MaxTokens: profileMaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("llm call failed: %w", err)
	}

	var fields qualitativeFields
	if err := json.Unmarshal([]byte(llm.ExtractJSON(reply)), &fields); err != nil {
		return nil, fmt.Errorf("failed to parse llm reply: %w", err)
	}
	return &fields, nil
}

// buildContext renders the bounded statistical context embedded in the
// synthesis prompt: recent first-line commit messages, the top-language
// histogram, mean commit sizes and a sample of unique file paths.
func buildContext(agg *AuthorAggregate, repoName string, top []LanguageCount) string {
	var sumAdditions, sumDeletions int
	for _, c := range agg.Commits {
		sumAdditions += c.Additions
		sumDeletions += c.Deletions
	}
	commitCount := len(agg.Commits)
	avgAdditions := float64(sumAdditions) / float64(commitCount)
	avgDeletions := float64(sumDeletions) / float64(commitCount)

	langParts := make([]string, 0, len(top))
	for _, lc := range top {
		langParts = append(langParts, fmt.Sprintf("%s (%d files)", lc.Name, lc.Count))
	}

	var messages []string
	for i, c := range agg.Commits {
		if i >= recentMessageCount {
			break
		}
		messages = append(messages, "- "+truncate(firstLine(c.Message), messageTruncateLen))
	}

	var paths []string
	for _, p := range uniqueFiles(agg.Files, uniqueFileCap) {
		if len(paths) >= renderedFileCount {
			break
		}
		paths = append(paths, "- "+p)
	}

	return fmt.Sprintf(`Developer: %s
Repository: %s
Total Commits: %d
Average Lines Added per Commit: %.0f
Average Lines Deleted per Commit: %.0f
Top Languages: %s

Recent Commit Messages:
%s

Sample File Paths Modified:
%s
`,
		agg.Login,
		repoName,
		commitCount,
		avgAdditions,
		avgDeletions,
		strings.Join(langParts, ", "),
		strings.Join(messages, "\n"),
		strings.Join(paths, "\n"),
	)
}

func buildPrompt(context string) string {
	return fmt.Sprintf(`Analyze this developer's GitHub activity and create a comprehensive profile.

%s

Based on the commit messages, file paths, and patterns, generate a JSON profile with these exact fields:

{
  "expertise_areas": ["list 3-5 specific technical areas based on files and commits"],
  "frameworks": ["infer 2-4 frameworks/libraries from file paths and commit messages"],
  "work_style": "2-4 word description of their coding style (e.g., 'methodical test-driven', 'rapid iterative prototyping', 'documentation-focused maintainer')",
  "commit_pattern": "describe their commit habits in one sentence",
  "ai_summary": "Write a 2-3 sentence professional profile highlighting their technical strengths and work approach",
  "best_for": ["3-4 specific things they'd be excellent to consult on based on their work"]
}

Rules:
- Be specific and evidence-based (cite file types, commit patterns)
- Infer frameworks from import statements in commits or config files
- Identify expertise from directory structure (e.g., /auth/* = authentication, /ml/* = machine learning)
- Keep descriptions professional and actionable

CRITICAL: Return ONLY valid JSON. DO NOT include markdown code blocks, explanations, or any text outside the JSON object.
`, context)
}

// fallbackFields is the deterministic minimal profile used when the LLM
// is unavailable or returns something unparseable.
func fallbackFields(commitCount int, repoName string) *qualitativeFields {
	return &qualitativeFields{
		ExpertiseAreas: []string{"Code contribution"},
		Frameworks:     []string{},
		WorkStyle:      "active contributor",
		CommitPattern:  fmt.Sprintf("Made %d commits", commitCount),
		AISummary:      fmt.Sprintf("Active contributor to %s", repoName),
		BestFor:        []string{"Code review", "Technical questions"},
	}
}

func languageNames(top []LanguageCount, n int) []string {
	names := make([]string, 0, n)
	for _, lc := range top {
		if len(names) >= n {
			break
		}
		names = append(names, lc.Name)
	}
	return names
}

// uniqueFiles deduplicates the flat file list in first-seen order, capped
// at limit entries.
func uniqueFiles(files []string, limit int) []string {
	seen := make(map[string]struct{}, len(files))
	var unique []string
	for _, f := range files {
		if _, ok := seen[f]; ok {
			continue
		}
		seen[f] = struct{}{}
		unique = append(unique, f)
		if len(unique) >= limit {
			break
		}
	}
	return unique
}

func firstLine(message string) string {
	if idx := strings.IndexByte(message, '\n'); idx >= 0 {
		return message[:idx]
	}
	return message
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit]
}
