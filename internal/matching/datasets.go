package matching

import (
	"encoding/json"
	"fmt"
	"os"

	lru "github.com/hashicorp/golang-lru"

	apperrors "github.com/devscope/profiler/internal/errors"
	"github.com/devscope/profiler/internal/models"
)

// DatasetLoader reads the persona and project datasets from disk. Decoded
// documents are cached in-process; the files are configuration data that
// does not change while the service runs.
type DatasetLoader struct {
	personasPath string
	projectsPath string
	cache        *lru.Cache
}

// NewDatasetLoader creates a loader for the two dataset files.
func NewDatasetLoader(personasPath, projectsPath string) (*DatasetLoader, error) {
	cache, err := lru.New(2)
	if err != nil {
		return nil, fmt.Errorf("creating dataset cache: %w", err)
	}
	return &DatasetLoader{
		personasPath: personasPath,
		projectsPath: projectsPath,
		cache:        cache,
	}, nil
}

// Personas returns the personas dataset. A missing file is a client-facing
// not-found error; malformed JSON is an internal error.
func (l *DatasetLoader) Personas() ([]models.Persona, error) {
	if val, ok := l.cache.Get(l.personasPath); ok {
		return val.([]models.Persona), nil
	}

	var doc struct {
		Personas []models.Persona `json:"personas"`
	}
	if err := l.readDataset(l.personasPath, &doc); err != nil {
		return nil, err
	}

	l.cache.Add(l.personasPath, doc.Personas)
	return doc.Personas, nil
}

// Projects returns the projects dataset with the same error contract as
// Personas.
func (l *DatasetLoader) Projects() ([]models.Project, error) {
	if val, ok := l.cache.Get(l.projectsPath); ok {
		return val.([]models.Project), nil
	}

	var doc struct {
		Projects []models.Project `json:"projects"`
	}
	if err := l.readDataset(l.projectsPath, &doc); err != nil {
		return nil, err
	}

	l.cache.Add(l.projectsPath, doc.Projects)
	return doc.Projects, nil
}

func (l *DatasetLoader) readDataset(path string, out interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return apperrors.NewNotFoundError(fmt.Sprintf("%s not found. Add the file to use this endpoint.", path), err)
		}
		return apperrors.NewInternalError(fmt.Sprintf("Error reading %s", path), err)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return apperrors.NewInternalError(fmt.Sprintf("Error parsing %s: %v", path, err), err)
	}
	return nil
}
