package models

// DeveloperProfile is the synthesized profile for one repository author.
// The statistical fields are computed locally; the qualitative fields
// (expertise areas, frameworks, work style, commit pattern, summary and
// best-for suggestions) come from the LLM or from the deterministic
// fallback when the LLM is unavailable.
type DeveloperProfile struct {
	GithubUsername   string   `json:"github_username"`
	Name             string   `json:"name"`
	AvatarURL        string   `json:"avatar_url"`
	TotalCommits     int      `json:"total_commits"`
	PrimaryLanguages []string `json:"primary_languages"`
	RepoAnalyzed     string   `json:"repo_analyzed"`
	ExpertiseAreas   []string `json:"expertise_areas"`
	Frameworks       []string `json:"frameworks"`
	WorkStyle        string   `json:"work_style"`
	CommitPattern    string   `json:"commit_pattern"`
	AISummary        string   `json:"ai_summary"`
	BestFor          []string `json:"best_for"`
}
