package models

// MatchAssignment is one ranked project recommendation for a persona.
type MatchAssignment struct {
	ProjectName    string `json:"project_name"`
	FitExplanation string `json:"fit_explanation"`
	Confidence     string `json:"confidence"`
}

// PersonaMatch is the full matching result for one persona. Computed
// fresh on every matching request, never persisted.
type PersonaMatch struct {
	PersonaID      string            `json:"persona_id"`
	PersonaName    string            `json:"persona_name"`
	Assignments    []MatchAssignment `json:"assignments"`
	OverallSummary string            `json:"overall_summary"`
}

// SearchMatch is a developer profile annotated with its relevance to a
// search query.
type SearchMatch struct {
	DeveloperProfile
	RelevanceScore int    `json:"relevance_score"`
	MatchReason    string `json:"match_reason"`
}
