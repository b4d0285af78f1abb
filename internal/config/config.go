package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all service configuration, populated from the environment.
// GITHUB_TOKEN and ANTHROPIC_API_KEY are required for full operation; when
// either is missing the service runs in demo mode with sample data and
// rule-based scoring instead of any external call.
type Config struct {
	Port            string `envconfig:"PORT" default:"8080"`
	GitHubToken     string `envconfig:"GITHUB_TOKEN"`
	AnthropicAPIKey string `envconfig:"ANTHROPIC_API_KEY"`
	AnthropicModel  string `envconfig:"ANTHROPIC_MODEL" default:"claude-sonnet-4-20250514"`

	ProfilesFile     string `envconfig:"PROFILES_FILE" default:"profiles.json"`
	DemoProfilesFile string `envconfig:"DEMO_PROFILES_FILE" default:"demo_profiles.json"`
	PersonasFile     string `envconfig:"PERSONAS_FILE" default:"personal.json"`
	ProjectsFile     string `envconfig:"PROJECTS_FILE" default:"projects.json"`

	// ProfileStoreDSN switches profile persistence from the JSON file to
	// Postgres when set.
	ProfileStoreDSN string `envconfig:"PROFILE_STORE_DSN"`

	CommitCacheSize int           `envconfig:"COMMIT_CACHE_SIZE" default:"64"`
	CommitCacheTTL  time.Duration `envconfig:"COMMIT_CACHE_TTL" default:"10m"`
	GitHubMaxRPS    float64       `envconfig:"GITHUB_MAX_RPS" default:"5"`
}

// Load reads configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// DemoMode reports whether the service should run without external
// credentials.
func (c *Config) DemoMode() bool {
	return c.GitHubToken == "" || c.AnthropicAPIKey == ""
}
