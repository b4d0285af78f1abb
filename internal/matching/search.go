package matching

import (
	"context"
	"sort"
	"strings"

	"github.com/devscope/profiler/internal/models"
)

const maxSearchMatches = 3

const maxMatchReasons = 3

// minTokenLen filters short query tokens out of the best-for check so stop
// words like "for" and "the" do not score.
const minTokenLen = 4

const (
	expertiseScore = 30
	languageScore  = 20
	frameworkScore = 25
	bestForScore   = 15
	maxScore       = 100
)

// KeywordSearcher ranks profiles against a free-text query by keyword
// overlap. It is the search strategy wired in when no LLM is available.
type KeywordSearcher struct{}

// Search scores every profile, drops zero scores, and returns the top
// three by descending score with original order as the tie-break. Calling
// it twice with the same inputs yields identical output.
func (KeywordSearcher) Search(_ context.Context, query string, profiles []models.DeveloperProfile) ([]models.SearchMatch, error) {
	queryLower := strings.ToLower(query)
	tokens := strings.Fields(queryLower)

	var matches []models.SearchMatch
	for _, profile := range profiles {
		score := 0
		var reasons []string

		for _, expertise := range profile.ExpertiseAreas {
			if containsAnyToken(strings.ToLower(expertise), tokens, 0) {
				score += expertiseScore
				reasons = append(reasons, "expertise in "+expertise)
			}
		}

		for _, lang := range profile.PrimaryLanguages {
			if strings.Contains(queryLower, strings.ToLower(lang)) {
				score += languageScore
				reasons = append(reasons, "works with "+lang)
			}
		}

		for _, framework := range profile.Frameworks {
			if strings.Contains(queryLower, strings.ToLower(framework)) {
				score += frameworkScore
				reasons = append(reasons, "uses "+framework)
			}
		}

		for _, item := range profile.BestFor {
			if containsAnyToken(strings.ToLower(item), tokens, minTokenLen) {
				score += bestForScore
				reasons = append(reasons, "good at "+strings.ToLower(item))
			}
		}

		if score == 0 {
			continue
		}
		if score > maxScore {
			score = maxScore
		}
		if len(reasons) > maxMatchReasons {
			reasons = reasons[:maxMatchReasons]
		}

		matches = append(matches, models.SearchMatch{
			DeveloperProfile: profile,
			RelevanceScore:   score,
			MatchReason:      "Strong match: " + strings.Join(reasons, ", "),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].RelevanceScore > matches[j].RelevanceScore
	})
	if len(matches) > maxSearchMatches {
		matches = matches[:maxSearchMatches]
	}

	return matches, nil
}

// containsAnyToken reports whether any query token of at least minLen
// characters appears as a substring of text.
func containsAnyToken(text string, tokens []string, minLen int) bool {
	for _, token := range tokens {
		if len(token) < minLen {
			continue
		}
		if strings.Contains(text, token) {
			return true
		}
	}
	return false
}
