package analyzer

import (
	"sort"
	"time"

	"github.com/devscope/profiler/internal/models"
)

// minCommitsForProfile is the aggregation threshold: authors with fewer
// recorded commits in the scanned window carry no forward lifecycle and
// are dropped before synthesis.
const minCommitsForProfile = 2

// CommitStat is the per-commit data retained for one author.
type CommitStat struct {
	Message   string
	Date      time.Time
	Additions int
	Deletions int
}

// LanguageCount pairs a language label with its file-occurrence count.
type LanguageCount struct {
	Name  string
	Count int
}

// AuthorAggregate accumulates one author's activity over a repository's
// recent commit window.
type AuthorAggregate struct {
	Login     string
	Name      string
	AvatarURL string
	Commits   []CommitStat
	Files     []string
	Languages map[string]int
	Hours     []int

	// langOrder records the rank at which each language was first seen so
	// equal counts rank deterministically.
	langOrder map[string]int
}

func newAuthorAggregate(author *models.CommitAuthor) *AuthorAggregate {
	return &AuthorAggregate{
		Login:     author.Login,
		Name:      author.Name,
		AvatarURL: author.AvatarURL,
		Languages: make(map[string]int),
		langOrder: make(map[string]int),
	}
}

func (a *AuthorAggregate) recordLanguage(label string) {
	if _, seen := a.langOrder[label]; !seen {
		a.langOrder[label] = len(a.langOrder)
	}
	a.Languages[label]++
}

// TopLanguages returns up to n languages ranked by descending occurrence
// count, ties broken by first-seen order.
func (a *AuthorAggregate) TopLanguages(n int) []LanguageCount {
	ranked := make([]LanguageCount, 0, len(a.Languages))
	for name, count := range a.Languages {
		ranked = append(ranked, LanguageCount{Name: name, Count: count})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return a.langOrder[ranked[i].Name] < a.langOrder[ranked[j].Name]
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// Aggregate groups a commit window by author login and accumulates
// per-author statistics. Commits without a linked author account are
// skipped. Commits whose file detail was unavailable contribute their
// message and line stats but no file or language data. Authors below the
// commit threshold are excluded from the result, which is ordered by
// first appearance in the window.
func Aggregate(commits []*models.CommitRecord) []*AuthorAggregate {
	byLogin := make(map[string]*AuthorAggregate)
	var order []string

	for _, commit := range commits {
		if commit.Author == nil || commit.Author.Login == "" {
			continue
		}

		agg, ok := byLogin[commit.Author.Login]
		if !ok {
			agg = newAuthorAggregate(commit.Author)
			byLogin[commit.Author.Login] = agg
			order = append(order, commit.Author.Login)
		}

		agg.Commits = append(agg.Commits, CommitStat{
			Message:   commit.Message,
			Date:      commit.Date,
			Additions: commit.Additions,
			Deletions: commit.Deletions,
		})
		agg.Hours = append(agg.Hours, commit.Date.Hour())

		for _, path := range commit.Files {
			agg.Files = append(agg.Files, path)
			if label, ok := DetectLanguage(path); ok {
				agg.recordLanguage(label)
			}
		}
	}

	result := make([]*AuthorAggregate, 0, len(order))
	for _, login := range order {
		if agg := byLogin[login]; len(agg.Commits) >= minCommitsForProfile {
			result = append(result, agg)
		}
	}
	return result
}
