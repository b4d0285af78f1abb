package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/devscope/profiler/internal/analyzer"
	"github.com/devscope/profiler/internal/api"
	"github.com/devscope/profiler/internal/config"
	"github.com/devscope/profiler/internal/github"
	"github.com/devscope/profiler/internal/llm"
	"github.com/devscope/profiler/internal/matching"
	"github.com/devscope/profiler/internal/store"

	_ "github.com/devscope/profiler/docs"
)

// @title GitHub Developer Profiler API
// @version 1.0
// @description API for analyzing GitHub repositories, building developer profiles and matching personas to projects
// @license.name MIT
// @license.url https://opensource.org/licenses/MIT
// @host localhost:8080
// @BasePath /api/v1
func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
	})
	logger.SetOutput(os.Stdout)

	// Load configuration with defaults
	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load configuration: %v", err)
	}

	demoMode := cfg.DemoMode()
	if demoMode {
		logger.Warn("Running in demo mode: set GITHUB_TOKEN and ANTHROPIC_API_KEY to analyze real repositories")
	}

	// Initialize profile persistence
	var profileStore store.ProfileStore
	switch {
	case demoMode:
		profileStore = store.NewFileStore(cfg.DemoProfilesFile)
	case cfg.ProfileStoreDSN != "":
		pgStore, err := store.NewPostgresStore(cfg.ProfileStoreDSN)
		if err != nil {
			logger.Fatalf("Failed to initialize database: %v", err)
		}
		// Run migrations with retry logic
		if err := retry(3, 5*time.Second, func() error {
			return pgStore.Migrate()
		}); err != nil {
			logger.Fatalf("Failed to run migrations after retries: %v", err)
		}
		profileStore = pgStore
	default:
		profileStore = store.NewFileStore(cfg.ProfilesFile)
	}

	datasets, err := matching.NewDatasetLoader(cfg.PersonasFile, cfg.ProjectsFile)
	if err != nil {
		logger.Fatalf("Failed to initialize dataset loader: %v", err)
	}

	// Select strategies once at startup. Handlers never re-check
	// credentials per request.
	handlerCfg := api.HandlerConfig{
		Profiles:        profileStore,
		Datasets:        datasets,
		DemoMode:        demoMode,
		HasGitHubToken:  cfg.GitHubToken != "",
		HasAnthropicKey: cfg.AnthropicAPIKey != "",
	}
	if demoMode {
		handlerCfg.Analyzer = analyzer.NewSampleService(profileStore)
		handlerCfg.Searcher = matching.KeywordSearcher{}
		handlerCfg.Matcher = matching.RuleBasedMatcher{}
	} else {
		ghClient := github.NewClient(cfg.GitHubToken, cfg.GitHubMaxRPS, logger)
		source, err := github.NewCachedSource(ghClient, cfg.CommitCacheSize, cfg.CommitCacheTTL)
		if err != nil {
			logger.Fatalf("Failed to initialize commit cache: %v", err)
		}
		llmClient := llm.NewAnthropicClient(cfg.AnthropicAPIKey, logger)
		synth := analyzer.NewSynthesizer(llmClient, cfg.AnthropicModel, logger)

		handlerCfg.Analyzer = analyzer.NewService(source, synth, profileStore, logger)
		handlerCfg.Searcher = matching.NewLLMSearcher(llmClient, cfg.AnthropicModel, logger)
		handlerCfg.Matcher = matching.NewLLMMatcher(llmClient, cfg.AnthropicModel, logger)
	}

	apiHandler := api.NewHandler(handlerCfg, logger)
	router := api.SetupRouter(apiHandler)

	// Create HTTP server. The write timeout covers full analyze runs,
	// which fetch commit details for every commit in the window.
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 3 * time.Minute,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.Infof("Server starting on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Server failed: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("Server shutdown failed: %v", err)
	}
	logger.Info("Server exited properly")
}

// retry retries a function up to a certain number of attempts with a delay between attempts
func retry(attempts int, sleep time.Duration, fn func() error) error {
	if err := fn(); err != nil {
		if attempts--; attempts > 0 {
			time.Sleep(sleep)
			return retry(attempts, sleep, fn)
		}
		return err
	}
	return nil
}
