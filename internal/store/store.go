// Package store persists developer profiles. The default backend is a
// single JSON-array file replaced wholesale on save; a Postgres backend is
// available for deployments that already run a database.
package store

import (
	"context"

	"github.com/devscope/profiler/internal/models"
)

// ProfileStore loads and replaces the full profile collection. Load on an
// empty store returns an empty slice, not an error. Save is a full
// replace; concurrent writers are not coordinated and the last write wins.
type ProfileStore interface {
	Load(ctx context.Context) ([]models.DeveloperProfile, error)
	Save(ctx context.Context, profiles []models.DeveloperProfile) error
}
