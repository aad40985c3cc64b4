package database

import (
	"context"
	"fmt"
	"sync"

	"github.com/thenoetrevino/trackr/internal/models"
)

// MemoryStore is a DataStore backed by a slice
type MemoryStore struct {
	mu       sync.RWMutex
	projects []*models.Project
}

// NewMemoryStore creates a store holding copies of the initial projects
func NewMemoryStore(initial []*models.Project) (*MemoryStore, error) {
	if err := validateSeed(initial); err != nil {
		return nil, err
	}
	return &MemoryStore{projects: models.CloneProjects(initial)}, nil
}

// ListProjects returns copies of all projects in list order
func (s *MemoryStore) ListProjects(ctx context.Context) ([]*models.Project, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return models.CloneProjects(s.projects), nil
}

// GetProject returns a copy of the project with the given ID
func (s *MemoryStore) GetProject(ctx context.Context, id string) (*models.Project, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return nil, fmt.Errorf("%w: %s", models.ErrProjectNotFound, id)
	}
	return s.projects[idx].Clone(), nil
}

// UpdateProjectStatus replaces the stored record with one carrying the new status
func (s *MemoryStore) UpdateProjectStatus(ctx context.Context, id string, status models.Status) (*models.Project, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !status.Valid() {
		return nil, fmt.Errorf("%w: %q", models.ErrInvalidStatus, status)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return nil, fmt.Errorf("%w: %s", models.ErrProjectNotFound, id)
	}

	updated := s.projects[idx].Clone()
	updated.Status = status
	s.projects[idx] = updated
	return updated.Clone(), nil
}

// InsertProject prepends a copy of the project
func (s *MemoryStore) InsertProject(ctx context.Context, project *models.Project) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if project == nil || project.ID == "" {
		return fmt.Errorf("insert project: missing ID")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOf(project.ID) >= 0 {
		return fmt.Errorf("%w: %s", models.ErrDuplicateID, project.ID)
	}

	s.projects = append([]*models.Project{project.Clone()}, s.projects...)
	return nil
}

// Close is a no-op for the memory store
func (s *MemoryStore) Close() error {
	return nil
}

// indexOf returns the slice index for id, or -1. Caller holds the lock.
func (s *MemoryStore) indexOf(id string) int {
	for i, p := range s.projects {
		if p.ID == id {
			return i
		}
	}
	return -1
}
