package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/devscope/profiler/internal/models"
)

// FileStore persists profiles as one JSON array file.
type FileStore struct {
	path string
}

// NewFileStore creates a FileStore backed by the given path. The file is
// created on first save; a missing file reads as an empty collection.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads all profiles from the file.
func (s *FileStore) Load(_ context.Context) ([]models.DeveloperProfile, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []models.DeveloperProfile{}, nil
		}
		return nil, fmt.Errorf("failed to read profiles file %s: %w", s.path, err)
	}

	var profiles []models.DeveloperProfile
	if err := json.Unmarshal(data, &profiles); err != nil {
		return nil, fmt.Errorf("failed to parse profiles file %s: %w", s.path, err)
	}
	return profiles, nil
}

// Save replaces the file contents with the given profiles.
func (s *FileStore) Save(_ context.Context, profiles []models.DeveloperProfile) error {
	data, err := json.MarshalIndent(profiles, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode profiles: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write profiles file %s: %w", s.path, err)
	}
	return nil
}
