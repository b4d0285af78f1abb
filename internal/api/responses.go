package api

import (
	"github.com/gin-gonic/gin"

	"github.com/devscope/profiler/internal/models"
)

// ErrorResponse is the error body for all failed requests.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse is the root endpoint body.
type HealthResponse struct {
	Status    string            `json:"status"`
	Message   string            `json:"message"`
	DemoMode  bool              `json:"demo_mode"`
	Endpoints map[string]string `json:"endpoints"`
}

// ModeResponse reports the operating mode and configured credentials.
type ModeResponse struct {
	DemoMode        bool   `json:"demo_mode"`
	Message         string `json:"message"`
	HasGitHubToken  bool   `json:"has_github_token"`
	HasAnthropicKey bool   `json:"has_anthropic_key"`
}

// AnalyzeResponse is the analyze endpoint body.
type AnalyzeResponse struct {
	Success           bool                      `json:"success"`
	ProfilesGenerated int                       `json:"profiles_generated"`
	Profiles          []models.DeveloperProfile `json:"profiles"`
	DemoMode          bool                      `json:"demo_mode"`
	Message           string                    `json:"message,omitempty"`
}

// ProfilesResponse is the list-profiles endpoint body.
type ProfilesResponse struct {
	Profiles []models.DeveloperProfile `json:"profiles"`
	Count    int                       `json:"count"`
	DemoMode bool                      `json:"demo_mode"`
}

// SearchResponse is the search endpoint body.
type SearchResponse struct {
	Matches  []models.SearchMatch `json:"matches"`
	Query    string               `json:"query"`
	DemoMode bool                 `json:"demo_mode"`
	Message  string               `json:"message,omitempty"`
}

// MatchResponse is the match endpoint body.
type MatchResponse struct {
	Success      bool                  `json:"success"`
	PersonaCount int                   `json:"persona_count"`
	ProjectCount int                   `json:"project_count"`
	Matches      []models.PersonaMatch `json:"matches"`
	UsingLLM     bool                  `json:"using_llm"`
	DemoMode     bool                  `json:"demo_mode"`
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorResponse{Error: message})
}
