package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	apperrors "github.com/devscope/profiler/internal/errors"
	"github.com/devscope/profiler/internal/models"
	"github.com/devscope/profiler/internal/store"
)

// RepositoryAnalyzer runs the analyze pipeline for a list of repository
// URLs.
type RepositoryAnalyzer interface {
	AnalyzeRepositories(ctx context.Context, repoURLs []string) ([]models.DeveloperProfile, error)
}

// Searcher ranks stored profiles against a free-text query.
type Searcher interface {
	Search(ctx context.Context, query string, profiles []models.DeveloperProfile) ([]models.SearchMatch, error)
}

// Matcher pairs personas with projects.
type Matcher interface {
	Match(ctx context.Context, personas []models.Persona, projects []models.Project) ([]models.PersonaMatch, error)
}

// Datasets provides the persona and project configuration datasets.
type Datasets interface {
	Personas() ([]models.Persona, error)
	Projects() ([]models.Project, error)
}

// HandlerConfig wires the strategies the handler serves. Which
// implementations go in (LLM-backed or keyword/rule-based) is decided once
// at startup, not per request.
type HandlerConfig struct {
	Analyzer        RepositoryAnalyzer
	Profiles        store.ProfileStore
	Searcher        Searcher
	Matcher         Matcher
	Datasets        Datasets
	DemoMode        bool
	HasGitHubToken  bool
	HasAnthropicKey bool
}

// Handler serves the profiler HTTP API.
type Handler struct {
	cfg    HandlerConfig
	logger *logrus.Logger
}

// NewHandler creates a new API handler.
func NewHandler(cfg HandlerConfig, logger *logrus.Logger) *Handler {
	return &Handler{
		cfg:    cfg,
		logger: logger,
	}
}

// Health godoc
// @Summary Health check
// @Description Reports service status and the available endpoints
// @Tags meta
// @Produce json
// @Success 200 {object} HealthResponse
// @Router / [get]
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:   "running",
		Message:  "GitHub Developer Profiler API",
		DemoMode: h.cfg.DemoMode,
		Endpoints: map[string]string{
			"POST /api/v1/analyze":             "Analyze GitHub repositories",
			"GET /api/v1/profiles":             "Get all profiles",
			"GET /api/v1/search?query=<query>": "Search for developers",
			"POST /api/v1/match":               "Match personas to projects",
			"GET /mode":                        "Check if running in demo mode",
		},
	})
}

// Mode godoc
// @Summary Report operating mode
// @Description Reports whether the service runs in demo mode and which credentials are configured
// @Tags meta
// @Produce json
// @Success 200 {object} ModeResponse
// @Router /mode [get]
func (h *Handler) Mode(c *gin.Context) {
	message := "Using real GitHub and Anthropic APIs"
	if h.cfg.DemoMode {
		message = "Using sample data"
	}
	c.JSON(http.StatusOK, ModeResponse{
		DemoMode:        h.cfg.DemoMode,
		Message:         message,
		HasGitHubToken:  h.cfg.HasGitHubToken,
		HasAnthropicKey: h.cfg.HasAnthropicKey,
	})
}

// AnalyzeRepositories godoc
// @Summary Analyze GitHub repositories
// @Description Analyzes the given repositories and generates merged developer profiles
// @Tags profiles
// @Accept json
// @Produce json
// @Param repos body []string true "Repository URLs"
// @Success 200 {object} AnalyzeResponse
// @Failure 400 {object} ErrorResponse
// @Router /analyze [post]
func (h *Handler) AnalyzeRepositories(c *gin.Context) {
	var repos []string
	if err := c.ShouldBindJSON(&repos); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body: expected a JSON array of repository URLs")
		return
	}

	if h.cfg.DemoMode {
		profiles, err := h.cfg.Profiles.Load(c.Request.Context())
		if err != nil {
			h.logger.WithError(err).Error("Failed to load demo profiles")
			respondError(c, http.StatusInternalServerError, "Failed to load profiles")
			return
		}
		c.JSON(http.StatusOK, AnalyzeResponse{
			Success:           true,
			ProfilesGenerated: len(profiles),
			Profiles:          profiles,
			DemoMode:          true,
			Message:           "Demo mode: Using sample data. Add API keys to analyze real repositories.",
		})
		return
	}

	profiles, err := h.cfg.Analyzer.AnalyzeRepositories(c.Request.Context(), repos)
	if err != nil {
		h.logger.WithError(err).Error("Repository analysis failed")
		respondError(c, apperrors.HTTPStatus(err), apperrors.Message(err))
		return
	}

	c.JSON(http.StatusOK, AnalyzeResponse{
		Success:           true,
		ProfilesGenerated: len(profiles),
		Profiles:          profiles,
		DemoMode:          false,
	})
}

// ListProfiles godoc
// @Summary List developer profiles
// @Description Returns all generated developer profiles
// @Tags profiles
// @Produce json
// @Success 200 {object} ProfilesResponse
// @Failure 500 {object} ErrorResponse
// @Router /profiles [get]
func (h *Handler) ListProfiles(c *gin.Context) {
	profiles, err := h.cfg.Profiles.Load(c.Request.Context())
	if err != nil {
		h.logger.WithError(err).Error("Failed to load profiles")
		respondError(c, http.StatusInternalServerError, "Failed to load profiles")
		return
	}

	c.JSON(http.StatusOK, ProfilesResponse{
		Profiles: profiles,
		Count:    len(profiles),
		DemoMode: h.cfg.DemoMode,
	})
}

// SearchProfiles godoc
// @Summary Search developer profiles
// @Description Ranks stored profiles against a free-text query
// @Tags profiles
// @Produce json
// @Param query query string true "Search query"
// @Success 200 {object} SearchResponse
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /search [get]
func (h *Handler) SearchProfiles(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		respondError(c, http.StatusBadRequest, "Missing query parameter")
		return
	}

	profiles, err := h.cfg.Profiles.Load(c.Request.Context())
	if err != nil {
		h.logger.WithError(err).Error("Failed to load profiles")
		respondError(c, http.StatusInternalServerError, "Failed to load profiles")
		return
	}

	if len(profiles) == 0 {
		c.JSON(http.StatusOK, SearchResponse{
			Matches:  []models.SearchMatch{},
			Query:    query,
			DemoMode: h.cfg.DemoMode,
			Message:  "No profiles available. Analyze repositories first.",
		})
		return
	}

	matches, err := h.cfg.Searcher.Search(c.Request.Context(), query, profiles)
	if err != nil {
		h.logger.WithError(err).Error("Profile search failed")
		respondError(c, apperrors.HTTPStatus(err), apperrors.Message(err))
		return
	}
	if matches == nil {
		matches = []models.SearchMatch{}
	}

	resp := SearchResponse{
		Matches:  matches,
		Query:    query,
		DemoMode: h.cfg.DemoMode,
	}
	if h.cfg.DemoMode {
		resp.Message = "Demo mode: Using simple keyword matching. Add API keys for AI-powered semantic search."
	}
	c.JSON(http.StatusOK, resp)
}

// MatchPersonas godoc
// @Summary Match personas to projects
// @Description Returns ranked project assignments for every persona
// @Tags matching
// @Produce json
// @Success 200 {object} MatchResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /match [post]
func (h *Handler) MatchPersonas(c *gin.Context) {
	personas, err := h.cfg.Datasets.Personas()
	if err != nil {
		respondError(c, apperrors.HTTPStatus(err), apperrors.Message(err))
		return
	}
	projects, err := h.cfg.Datasets.Projects()
	if err != nil {
		respondError(c, apperrors.HTTPStatus(err), apperrors.Message(err))
		return
	}

	if len(personas) == 0 {
		respondError(c, http.StatusBadRequest, "No personas found in personas dataset")
		return
	}
	if len(projects) == 0 {
		respondError(c, http.StatusBadRequest, "No projects found in projects dataset")
		return
	}

	matches, err := h.cfg.Matcher.Match(c.Request.Context(), personas, projects)
	if err != nil {
		h.logger.WithError(err).Error("Persona matching failed")
		respondError(c, apperrors.HTTPStatus(err), apperrors.Message(err))
		return
	}

	c.JSON(http.StatusOK, MatchResponse{
		Success:      true,
		PersonaCount: len(personas),
		ProjectCount: len(projects),
		Matches:      matches,
		UsingLLM:     !h.cfg.DemoMode,
		DemoMode:     h.cfg.DemoMode,
	})
}
