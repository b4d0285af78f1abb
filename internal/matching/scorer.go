package matching

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/devscope/profiler/internal/models"
)

const maxAssignments = 3

const (
	highConfidenceScore   = 6
	mediumConfidenceScore = 3
)

// skillWeight makes skill overlap count double relative to domain and
// target-role overlap.
const skillWeight = 2

// RuleBasedMatcher scores persona/project fit by substring overlap. It is
// pure and deterministic: identical inputs in identical order produce
// identical output. It is wired in when no LLM is available.
type RuleBasedMatcher struct{}

// Match ranks up to three projects per persona. Empty persona or project
// lists yield an empty (or assignment-less) result, never an error.
func (RuleBasedMatcher) Match(_ context.Context, personas []models.Persona, projects []models.Project) ([]models.PersonaMatch, error) {
	blobs := make([]string, len(projects))
	for i, p := range projects {
		blobs[i] = projectTextBlob(p)
	}

	results := make([]models.PersonaMatch, 0, len(personas))
	for _, persona := range personas {
		skills := lowerAll(persona.Resume.Skills)
		domains := lowerAll(persona.Resume.Domains)
		targets := lowerAll(persona.Application.TargetRoles)

		type scoredProject struct {
			project       models.Project
			score         int
			skillOverlap  []string
			domainOverlap []string
		}

		scored := make([]scoredProject, 0, len(projects))
		for i, project := range projects {
			blob := blobs[i]
			skillOverlap := overlapping(skills, blob)
			domainOverlap := overlapping(domains, blob)
			roleOverlap := overlapping(targets, blob)
			scored = append(scored, scoredProject{
				project:       project,
				score:         skillWeight*len(skillOverlap) + len(domainOverlap) + len(roleOverlap),
				skillOverlap:  skillOverlap,
				domainOverlap: domainOverlap,
			})
		}

		sort.SliceStable(scored, func(i, j int) bool {
			return scored[i].score > scored[j].score
		})
		if len(scored) > maxAssignments {
			scored = scored[:maxAssignments]
		}

		assignments := make([]models.MatchAssignment, 0, len(scored))
		for _, sp := range scored {
			assignments = append(assignments, models.MatchAssignment{
				ProjectName:    sp.project.Name,
				FitExplanation: fmt.Sprintf("Rule-based match (%s).", explanation(sp.skillOverlap, sp.domainOverlap)),
				Confidence:     confidenceLabel(sp.score),
			})
		}

		results = append(results, models.PersonaMatch{
			PersonaID:      persona.ID,
			PersonaName:    persona.FullName,
			Assignments:    assignments,
			OverallSummary: "Rule-based recommendation generated because the LLM was unavailable.",
		})
	}

	return results, nil
}

// projectTextBlob concatenates a project's descriptive fields into one
// lower-cased string for substring scoring.
func projectTextBlob(p models.Project) string {
	sections := []string{
		p.Name,
		p.Description,
		strings.Join(p.CoreFeatures, " "),
		string(p.ArchitectureStack),
		string(p.DataModelAndPipeline),
		strings.Join(p.AcceptanceCriteria, " "),
		p.Notes,
	}
	return strings.ToLower(strings.Join(sections, " "))
}

func confidenceLabel(score int) string {
	switch {
	case score >= highConfidenceScore:
		return "High"
	case score >= mediumConfidenceScore:
		return "Medium"
	default:
		return "Low"
	}
}

// explanation lists the overlapping skills and domains, deduplicated in
// first-seen order, or falls back to a generic line when neither overlaps.
func explanation(skillOverlap, domainOverlap []string) string {
	var bits []string
	if len(skillOverlap) > 0 {
		bits = append(bits, "skills match: "+strings.Join(dedupe(skillOverlap), ", "))
	}
	if len(domainOverlap) > 0 {
		bits = append(bits, "domain experience in "+strings.Join(dedupe(domainOverlap), ", "))
	}
	if len(bits) == 0 {
		bits = append(bits, "relevant interests based on target roles and general experience")
	}
	return strings.Join(bits, "; ")
}

func overlapping(terms []string, blob string) []string {
	var found []string
	for _, term := range terms {
		if term != "" && strings.Contains(blob, term) {
			found = append(found, term)
		}
	}
	return found
}

func lowerAll(values []string) []string {
	lowered := make([]string, len(values))
	for i, v := range values {
		lowered[i] = strings.ToLower(v)
	}
	return lowered
}

func dedupe(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	var unique []string
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		unique = append(unique, v)
	}
	return unique
}
