package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "github.com/devscope/profiler/internal/errors"
	"github.com/devscope/profiler/internal/models"
)

// MockAnalyzer is a mock implementation of RepositoryAnalyzer
type MockAnalyzer struct {
	mock.Mock
}

func (m *MockAnalyzer) AnalyzeRepositories(ctx context.Context, repoURLs []string) ([]models.DeveloperProfile, error) {
	args := m.Called(ctx, repoURLs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.DeveloperProfile), args.Error(1)
}

// MockSearcher is a mock implementation of Searcher
type MockSearcher struct {
	mock.Mock
}

func (m *MockSearcher) Search(ctx context.Context, query string, profiles []models.DeveloperProfile) ([]models.SearchMatch, error) {
	args := m.Called(ctx, query, profiles)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.SearchMatch), args.Error(1)
}

// MockMatcher is a mock implementation of Matcher
type MockMatcher struct {
	mock.Mock
}

func (m *MockMatcher) Match(ctx context.Context, personas []models.Persona, projects []models.Project) ([]models.PersonaMatch, error) {
	args := m.Called(ctx, personas, projects)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PersonaMatch), args.Error(1)
}

// MockDatasets is a mock implementation of Datasets
type MockDatasets struct {
	mock.Mock
}

func (m *MockDatasets) Personas() ([]models.Persona, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Persona), args.Error(1)
}

func (m *MockDatasets) Projects() ([]models.Project, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Project), args.Error(1)
}

// MockProfileStore is a mock implementation of store.ProfileStore
type MockProfileStore struct {
	mock.Mock
}

func (m *MockProfileStore) Load(ctx context.Context) ([]models.DeveloperProfile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.DeveloperProfile), args.Error(1)
}

func (m *MockProfileStore) Save(ctx context.Context, profiles []models.DeveloperProfile) error {
	args := m.Called(ctx, profiles)
	return args.Error(0)
}

type testMocks struct {
	analyzer *MockAnalyzer
	store    *MockProfileStore
	searcher *MockSearcher
	matcher  *MockMatcher
	datasets *MockDatasets
}

func setupTestHandler(demoMode bool) (*Handler, *testMocks) {
	mocks := &testMocks{
		analyzer: new(MockAnalyzer),
		store:    new(MockProfileStore),
		searcher: new(MockSearcher),
		matcher:  new(MockMatcher),
		datasets: new(MockDatasets),
	}
	logger := logrus.New()
	logger.SetOutput(bytes.NewBuffer(nil)) // Discard logs during tests

	handler := NewHandler(HandlerConfig{
		Analyzer:        mocks.analyzer,
		Profiles:        mocks.store,
		Searcher:        mocks.searcher,
		Matcher:         mocks.matcher,
		Datasets:        mocks.datasets,
		DemoMode:        demoMode,
		HasGitHubToken:  !demoMode,
		HasAnthropicKey: !demoMode,
	}, logger)

	return handler, mocks
}

func setupTestRouter(handler *Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/", handler.Health)
	router.GET("/mode", handler.Mode)
	router.POST("/api/v1/analyze", handler.AnalyzeRepositories)
	router.GET("/api/v1/profiles", handler.ListProfiles)
	router.GET("/api/v1/search", handler.SearchProfiles)
	router.POST("/api/v1/match", handler.MatchPersonas)
	return router
}

func TestHealth(t *testing.T) {
	handler, _ := setupTestHandler(false)
	router := setupTestRouter(handler)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "running", response.Status)
	assert.False(t, response.DemoMode)
	assert.Contains(t, response.Endpoints, "POST /api/v1/analyze")
}

func TestMode(t *testing.T) {
	tests := []struct {
		name     string
		demoMode bool
		message  string
	}{
		{name: "full mode", demoMode: false, message: "Using real GitHub and Anthropic APIs"},
		{name: "demo mode", demoMode: true, message: "Using sample data"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, _ := setupTestHandler(tt.demoMode)
			router := setupTestRouter(handler)

			w := httptest.NewRecorder()
			req, _ := http.NewRequest("GET", "/mode", nil)
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			var response ModeResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			assert.Equal(t, tt.demoMode, response.DemoMode)
			assert.Equal(t, tt.message, response.Message)
		})
	}
}

func TestAnalyzeRepositories(t *testing.T) {
	t.Run("successful analysis", func(t *testing.T) {
		handler, mocks := setupTestHandler(false)
		router := setupTestRouter(handler)

		expected := []models.DeveloperProfile{{GithubUsername: "alice", TotalCommits: 5}}
		mocks.analyzer.On("AnalyzeRepositories", mock.Anything, []string{"owner/repo"}).Return(expected, nil)

		body, _ := json.Marshal([]string{"owner/repo"})
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/analyze", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var response AnalyzeResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.True(t, response.Success)
		assert.Equal(t, 1, response.ProfilesGenerated)
		assert.Equal(t, expected, response.Profiles)
		assert.False(t, response.DemoMode)
		mocks.analyzer.AssertExpectations(t)
	})

	t.Run("invalid request body", func(t *testing.T) {
		handler, mocks := setupTestHandler(false)
		router := setupTestRouter(handler)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/analyze", bytes.NewBufferString(`{"repos": []}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		var response ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "Invalid request body: expected a JSON array of repository URLs", response.Error)
		mocks.analyzer.AssertNotCalled(t, "AnalyzeRepositories")
	})

	t.Run("analysis failure maps through the error type", func(t *testing.T) {
		handler, mocks := setupTestHandler(false)
		router := setupTestRouter(handler)

		mocks.analyzer.On("AnalyzeRepositories", mock.Anything, mock.Anything).
			Return(nil, apperrors.NewValidationError("Error analyzing repository: not found", nil))

		body, _ := json.Marshal([]string{"owner/missing"})
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/analyze", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		var response ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "Error analyzing repository: not found", response.Error)
	})

	t.Run("demo mode returns sample data", func(t *testing.T) {
		handler, mocks := setupTestHandler(true)
		router := setupTestRouter(handler)

		samples := []models.DeveloperProfile{{GithubUsername: "sample-dev"}}
		mocks.store.On("Load", mock.Anything).Return(samples, nil)

		body, _ := json.Marshal([]string{"owner/repo"})
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/analyze", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var response AnalyzeResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.True(t, response.DemoMode)
		assert.Equal(t, samples, response.Profiles)
		assert.Equal(t, "Demo mode: Using sample data. Add API keys to analyze real repositories.", response.Message)
		mocks.analyzer.AssertNotCalled(t, "AnalyzeRepositories")
	})
}

func TestListProfiles(t *testing.T) {
	t.Run("returns stored profiles", func(t *testing.T) {
		handler, mocks := setupTestHandler(false)
		router := setupTestRouter(handler)

		profiles := []models.DeveloperProfile{{GithubUsername: "alice"}, {GithubUsername: "bob"}}
		mocks.store.On("Load", mock.Anything).Return(profiles, nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/profiles", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var response ProfilesResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, 2, response.Count)
		assert.Equal(t, profiles, response.Profiles)
	})

	t.Run("store failure is a 500", func(t *testing.T) {
		handler, mocks := setupTestHandler(false)
		router := setupTestRouter(handler)

		mocks.store.On("Load", mock.Anything).Return(nil, errors.New("disk error"))

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/profiles", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestSearchProfiles(t *testing.T) {
	profiles := []models.DeveloperProfile{{GithubUsername: "alice"}}

	t.Run("missing query parameter", func(t *testing.T) {
		handler, _ := setupTestHandler(false)
		router := setupTestRouter(handler)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/search", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		var response ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "Missing query parameter", response.Error)
	})

	t.Run("no stored profiles short-circuits", func(t *testing.T) {
		handler, mocks := setupTestHandler(false)
		router := setupTestRouter(handler)

		mocks.store.On("Load", mock.Anything).Return([]models.DeveloperProfile{}, nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/search?query=python", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var response SearchResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Empty(t, response.Matches)
		assert.Equal(t, "No profiles available. Analyze repositories first.", response.Message)
		mocks.searcher.AssertNotCalled(t, "Search")
	})

	t.Run("returns ranked matches", func(t *testing.T) {
		handler, mocks := setupTestHandler(false)
		router := setupTestRouter(handler)

		matches := []models.SearchMatch{
			{DeveloperProfile: profiles[0], RelevanceScore: 90, MatchReason: "Strong Python background"},
		}
		mocks.store.On("Load", mock.Anything).Return(profiles, nil)
		mocks.searcher.On("Search", mock.Anything, "python", profiles).Return(matches, nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/search?query=python", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var response SearchResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "python", response.Query)
		require.Len(t, response.Matches, 1)
		assert.Equal(t, 90, response.Matches[0].RelevanceScore)
		assert.Empty(t, response.Message)
		mocks.searcher.AssertExpectations(t)
	})

	t.Run("demo mode annotates the response", func(t *testing.T) {
		handler, mocks := setupTestHandler(true)
		router := setupTestRouter(handler)

		mocks.store.On("Load", mock.Anything).Return(profiles, nil)
		mocks.searcher.On("Search", mock.Anything, "python", profiles).Return([]models.SearchMatch{}, nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/search?query=python", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var response SearchResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.True(t, response.DemoMode)
		assert.Equal(t, "Demo mode: Using simple keyword matching. Add API keys for AI-powered semantic search.", response.Message)
	})

	t.Run("searcher failure maps through the error type", func(t *testing.T) {
		handler, mocks := setupTestHandler(false)
		router := setupTestRouter(handler)

		mocks.store.On("Load", mock.Anything).Return(profiles, nil)
		mocks.searcher.On("Search", mock.Anything, "python", profiles).
			Return(nil, apperrors.NewUpstreamError("Search error: timeout", nil))

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/search?query=python", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadGateway, w.Code)
		var response ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "Search error: timeout", response.Error)
	})
}

func TestMatchPersonas(t *testing.T) {
	personas := []models.Persona{{ID: "p1", FullName: "Jordan Reyes"}}
	projects := []models.Project{{Name: "Ledger"}}

	t.Run("successful matching", func(t *testing.T) {
		handler, mocks := setupTestHandler(false)
		router := setupTestRouter(handler)

		matches := []models.PersonaMatch{{PersonaID: "p1", PersonaName: "Jordan Reyes"}}
		mocks.datasets.On("Personas").Return(personas, nil)
		mocks.datasets.On("Projects").Return(projects, nil)
		mocks.matcher.On("Match", mock.Anything, personas, projects).Return(matches, nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/match", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var response MatchResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.True(t, response.Success)
		assert.Equal(t, 1, response.PersonaCount)
		assert.Equal(t, 1, response.ProjectCount)
		assert.True(t, response.UsingLLM)
		assert.Equal(t, matches, response.Matches)
		mocks.matcher.AssertExpectations(t)
	})

	t.Run("missing dataset file is a 404", func(t *testing.T) {
		handler, mocks := setupTestHandler(false)
		router := setupTestRouter(handler)

		mocks.datasets.On("Personas").
			Return(nil, apperrors.NewNotFoundError("personal.json not found. Add the file to use this endpoint.", nil))

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/match", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		var response ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "personal.json not found. Add the file to use this endpoint.", response.Error)
	})

	t.Run("empty personas dataset", func(t *testing.T) {
		handler, mocks := setupTestHandler(false)
		router := setupTestRouter(handler)

		mocks.datasets.On("Personas").Return([]models.Persona{}, nil)
		mocks.datasets.On("Projects").Return(projects, nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/match", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		var response ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "No personas found in personas dataset", response.Error)
		mocks.matcher.AssertNotCalled(t, "Match")
	})

	t.Run("empty projects dataset", func(t *testing.T) {
		handler, mocks := setupTestHandler(false)
		router := setupTestRouter(handler)

		mocks.datasets.On("Personas").Return(personas, nil)
		mocks.datasets.On("Projects").Return([]models.Project{}, nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/match", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		var response ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "No projects found in projects dataset", response.Error)
	})

	t.Run("matcher failure maps through the error type", func(t *testing.T) {
		handler, mocks := setupTestHandler(false)
		router := setupTestRouter(handler)

		mocks.datasets.On("Personas").Return(personas, nil)
		mocks.datasets.On("Projects").Return(projects, nil)
		mocks.matcher.On("Match", mock.Anything, personas, projects).
			Return(nil, apperrors.NewUpstreamError("LLM matching error: overloaded", nil))

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/match", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadGateway, w.Code)
		var response ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "LLM matching error: overloaded", response.Error)
	})

	t.Run("demo mode reports rule-based matching", func(t *testing.T) {
		handler, mocks := setupTestHandler(true)
		router := setupTestRouter(handler)

		mocks.datasets.On("Personas").Return(personas, nil)
		mocks.datasets.On("Projects").Return(projects, nil)
		mocks.matcher.On("Match", mock.Anything, personas, projects).Return([]models.PersonaMatch{}, nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/match", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var response MatchResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.True(t, response.DemoMode)
		assert.False(t, response.UsingLLM)
	})
}
