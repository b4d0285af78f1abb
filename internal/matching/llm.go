package matching

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	apperrors "github.com/devscope/profiler/internal/errors"
	"github.com/devscope/profiler/internal/llm"
	"github.com/devscope/profiler/internal/models"
)

const (
	matchMaxTokens  = 1200
	searchMaxTokens = 1000
)

// personaSummary is the condensed persona context embedded in the matching
// prompt.
type personaSummary struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	Headline           string   `json:"headline"`
	CurrentRole        string   `json:"current_role"`
	TargetRoles        []string `json:"target_roles"`
	PreferredLocations []string `json:"preferred_locations"`
	Skills             []string `json:"skills"`
	Domains            []string `json:"domains"`
	Interests          []string `json:"interests"`
	WorkStyle          string   `json:"work_style"`
}

// projectSummary is the condensed project context embedded in the matching
// prompt.
type projectSummary struct {
	Name                 string          `json:"name"`
	Description          string          `json:"description"`
	CoreFeatures         []string        `json:"core_features"`
	ArchitectureStack    json.RawMessage `json:"architecture_stack,omitempty"`
	DataModelAndPipeline json.RawMessage `json:"data_model_and_pipeline,omitempty"`
	APIEndpoints         []string        `json:"api_endpoints,omitempty"`
	PromptEngineering    json.RawMessage `json:"prompt_engineering,omitempty"`
	AcceptanceCriteria   []string        `json:"acceptance_criteria"`
	Notes                string          `json:"notes"`
}

func summarizePersona(p models.Persona) personaSummary {
	var interests []string
	workStyle := ""
	for _, resp := range p.Survey.Responses {
		if resp.Answer != "" {
			interests = append(interests, resp.Answer)
		}
		if workStyle == "" && strings.Contains(strings.ToLower(resp.Question), "working style") {
			workStyle = resp.Answer
		}
	}

	return personaSummary{
		ID:                 p.ID,
		Name:               p.FullName,
		Headline:           p.Resume.Headline,
		CurrentRole:        p.Resume.CurrentRole,
		TargetRoles:        p.Application.TargetRoles,
		PreferredLocations: p.Application.PreferredLocations,
		Skills:             p.Resume.Skills,
		Domains:            p.Resume.Domains,
		Interests:          interests,
		WorkStyle:          workStyle,
	}
}

func summarizeProject(p models.Project) projectSummary {
	return projectSummary{
		Name:                 p.Name,
		Description:          p.Description,
		CoreFeatures:         p.CoreFeatures,
		ArchitectureStack:    p.ArchitectureStack,
		DataModelAndPipeline: p.DataModelAndPipeline,
		APIEndpoints:         p.APIEndpoints,
		PromptEngineering:    p.PromptEngineering,
		AcceptanceCriteria:   p.AcceptanceCriteria,
		Notes:                p.Notes,
	}
}

// LLMMatcher pairs personas with projects by prompting the LLM with both
// datasets. Errors surface to the caller; the rule-based strategy is wired
// in instead of this one when the service runs without credentials.
type LLMMatcher struct {
	llm    llm.Client
	model  string
	logger *logrus.Logger
}

// NewLLMMatcher creates a new LLMMatcher.
func NewLLMMatcher(client llm.Client, model string, logger *logrus.Logger) *LLMMatcher {
	return &LLMMatcher{
		llm:    client,
		model:  model,
		logger: logger,
	}
}

// Match prompts the LLM for per-persona assignments and parses its JSON
// reply.
func (m *LLMMatcher) Match(ctx context.Context, personas []models.Persona, projects []models.Project) ([]models.PersonaMatch, error) {
	personaSummaries := make([]personaSummary, 0, len(personas))
	for _, p := range personas {
		personaSummaries = append(personaSummaries, summarizePersona(p))
	}
	projectSummaries := make([]projectSummary, 0, len(projects))
	for _, p := range projects {
		projectSummaries = append(projectSummaries, summarizeProject(p))
	}

	personasJSON, err := json.MarshalIndent(personaSummaries, "", "  ")
	if err != nil {
		return nil, apperrors.NewInternalError("failed to encode personas", err)
	}
	projectsJSON, err := json.MarshalIndent(projectSummaries, "", "  ")
	if err != nil {
		return nil, apperrors.NewInternalError("failed to encode projects", err)
	}

	prompt := fmt.Sprintf(`You are a staffing AI that pairs candidates to innovation projects.

Personas:
%s

Projects:
%s

For every persona, choose the 1-3 best-fit projects. Cite concrete evidence from their skills, interests, or work style and the project requirements.

Return ONLY valid JSON with this exact shape:
[
  {
    "persona_id": "id",
    "persona_name": "name",
    "assignments": [
      {
        "project_name": "Project",
        "fit_explanation": "2-3 sentences explaining the match referencing persona + project data",
        "confidence": "High|Medium|Low"
      }
    ],
    "overall_summary": "Sentence summarizing how this persona fits the recommended projects."
  }
]

Rules:
- Keep explanations professional and evidence-based.
- Mention overlapping skills, domains, or interests explicitly.
- If a project is a stretch fit, explain what support they would need.
- Never invent new personas or projects.
`, personasJSON, projectsJSON)

	reply, err := m.llm.Complete(ctx, llm.Request{
		Model:     m.model,
		Prompt:    prompt,
		MaxTokens: matchMaxTokens,
	})
	if err != nil {
		return nil, apperrors.NewUpstreamError(fmt.Sprintf("LLM matching error: %v", err), err)
	}

	var matches []models.PersonaMatch
	if err := json.Unmarshal([]byte(llm.ExtractJSON(reply)), &matches); err != nil {
		return nil, apperrors.NewUpstreamError(fmt.Sprintf("LLM matching error: %v", err), err)
	}

	return matches, nil
}

// LLMSearcher ranks stored profiles against a free-text query with the
// LLM. Errors surface; the keyword strategy replaces it in demo mode.
type LLMSearcher struct {
	llm    llm.Client
	model  string
	logger *logrus.Logger
}

// NewLLMSearcher creates a new LLMSearcher.
func NewLLMSearcher(client llm.Client, model string, logger *logrus.Logger) *LLMSearcher {
	return &LLMSearcher{
		llm:    client,
		model:  model,
		logger: logger,
	}
}

// llmSearchMatch is the per-profile record the search prompt asks for.
type llmSearchMatch struct {
	GithubUsername string `json:"github_username"`
	RelevanceScore int    `json:"relevance_score"`
	MatchReason    string `json:"match_reason"`
}

// Search prompts the LLM to rank the profiles and enriches its picks with
// the full stored profile data. Usernames the LLM invents are dropped.
func (s *LLMSearcher) Search(ctx context.Context, query string, profiles []models.DeveloperProfile) ([]models.SearchMatch, error) {
	profilesJSON, err := json.MarshalIndent(profiles, "", "  ")
	if err != nil {
		return nil, apperrors.NewInternalError("failed to encode profiles", err)
	}

	prompt := fmt.Sprintf(`You are a developer matching system. Given a search query and developer profiles, identify the top 3 most relevant developers.

Query: %q

Developer Profiles:
%s

Analyze each profile and return the top 3 matches based on:
1. Technical expertise matching the query
2. Relevant frameworks and languages
3. Work style alignment if mentioned in query
4. Domain expertise from their file paths and commits

Return ONLY valid JSON in this exact format:
[
  {
    "github_username": "username",
    "relevance_score": 95,
    "match_reason": "Specific reason they match the query (cite their expertise, languages, or work)"
  }
]

If fewer than 3 profiles match well, return only the good matches.

CRITICAL: Return ONLY valid JSON array. DO NOT include markdown, explanations, or any text outside the JSON.
`, query, profilesJSON)

	reply, err := s.llm.Complete(ctx, llm.Request{
		Model:     s.model,
		Prompt:    prompt,
		MaxTokens: searchMaxTokens,
	})
	if err != nil {
		return nil, apperrors.NewUpstreamError(fmt.Sprintf("Search error: %v", err), err)
	}

	var ranked []llmSearchMatch
	if err := json.Unmarshal([]byte(llm.ExtractJSON(reply)), &ranked); err != nil {
		return nil, apperrors.NewUpstreamError(fmt.Sprintf("Search error: %v", err), err)
	}

	byUsername := make(map[string]models.DeveloperProfile, len(profiles))
	for _, p := range profiles {
		byUsername[p.GithubUsername] = p
	}

	matches := make([]models.SearchMatch, 0, len(ranked))
	for _, r := range ranked {
		profile, ok := byUsername[r.GithubUsername]
		if !ok {
			s.logger.WithField("username", r.GithubUsername).Warn("LLM returned unknown username, dropping match")
			continue
		}
		matches = append(matches, models.SearchMatch{
			DeveloperProfile: profile,
			RelevanceScore:   r.RelevanceScore,
			MatchReason:      r.MatchReason,
		})
	}

	return matches, nil
}
