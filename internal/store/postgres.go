package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"

	"github.com/devscope/profiler/internal/models"
)

// PostgresStore persists profiles in a developer_profiles table, one row
// per profile with the document stored as JSONB.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore opens and pings a Postgres connection.
func NewPostgresStore(connectionString string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresStore{db: db}, nil
}

// Migrate applies pending schema migrations.
func (s *PostgresStore) Migrate() error {
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	if err := goose.Up(s.db, "internal/store/migrations"); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}

// Load reads all stored profiles in insertion order.
func (s *PostgresStore) Load(ctx context.Context) ([]models.DeveloperProfile, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT profile_json FROM developer_profiles
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query profiles: %w", err)
	}
	defer rows.Close()

	profiles := []models.DeveloperProfile{}
	for rows.Next() {
		var profileJSON []byte
		if err := rows.Scan(&profileJSON); err != nil {
			return nil, fmt.Errorf("failed to scan profile row: %w", err)
		}

		var profile models.DeveloperProfile
		if err := json.Unmarshal(profileJSON, &profile); err != nil {
			return nil, fmt.Errorf("failed to unmarshal profile: %w", err)
		}
		profiles = append(profiles, profile)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating profile rows: %w", err)
	}

	return profiles, nil
}

// Save replaces the stored collection with the given profiles in one
// transaction.
func (s *PostgresStore) Save(ctx context.Context, profiles []models.DeveloperProfile) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM developer_profiles`); err != nil {
		return fmt.Errorf("failed to clear profiles: %w", err)
	}

	for _, profile := range profiles {
		profileJSON, err := json.Marshal(profile)
		if err != nil {
			return fmt.Errorf("failed to marshal profile for %s: %w", profile.GithubUsername, err)
		}

		if _, err := tx.ExecContext(ctx, `
			INSERT INTO developer_profiles (github_username, profile_json)
			VALUES ($1, $2)
		`, profile.GithubUsername, profileJSON); err != nil {
			return fmt.Errorf("failed to insert profile for %s: %w", profile.GithubUsername, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit profiles: %w", err)
	}

	return nil
}
