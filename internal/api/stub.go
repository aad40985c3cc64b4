package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/thenoetrevino/trackr/internal/database"
	"github.com/thenoetrevino/trackr/internal/models"
)

// maxIDAttempts bounds regeneration when the ID generator collides
const maxIDAttempts = 5

// Stub implements Client on top of a DataStore, adding an artificial delay
// to every call and random failure to fetches.
type Stub struct {
	store       database.DataStore
	delay       time.Duration
	failureRate float64
	newID       func() string
	logger      *slog.Logger

	rngMu sync.Mutex
	rng   *rand.Rand
}

// NewStub creates a stub with DefaultDelay and DefaultFailureRate unless overridden
func NewStub(store database.DataStore, opts ...Option) *Stub {
	s := &Stub{
		store:       store,
		delay:       DefaultDelay,
		failureRate: DefaultFailureRate,
		newID:       uuid.NewString,
		logger:      slog.Default(),
		rng:         rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0x7472_6163_6b72)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Delay returns the configured latency
func (s *Stub) Delay() time.Duration {
	return s.delay
}

// FailureRate returns the configured fetch failure probability
func (s *Stub) FailureRate() float64 {
	return s.failureRate
}

// GetProjects returns all projects, or models.ErrFetchFailed with probability FailureRate
func (s *Stub) GetProjects(ctx context.Context) ([]*models.Project, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}

	if s.shouldFail() {
		s.logger.Debug("simulated fetch failure", "failure_rate", s.failureRate)
		return nil, models.ErrFetchFailed
	}

	projects, err := s.store.ListProjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	s.logger.Debug("fetched projects", "count", len(projects))
	return projects, nil
}

// UpdateProjectStatus sets a project's status; models.ErrProjectNotFound if the ID is absent
func (s *Stub) UpdateProjectStatus(ctx context.Context, id string, status models.Status) (*models.Project, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: %q", models.ErrInvalidStatus, status)
	}

	if err := s.wait(ctx); err != nil {
		return nil, err
	}

	updated, err := s.store.UpdateProjectStatus(ctx, id, status)
	if err != nil {
		s.logger.Debug("status update failed", "project_id", id, "status", status, "error", err)
		return nil, err
	}
	s.logger.Debug("updated project status", "project_id", id, "status", status)
	return updated, nil
}

// AddProject validates the payload, assigns a fresh ID and prepends the project
func (s *Stub) AddProject(ctx context.Context, input models.ProjectInput) (*models.Project, error) {
	input = input.Normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if err := s.wait(ctx); err != nil {
		return nil, err
	}

	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		project := input.ToProject(s.newID())

		err := s.store.InsertProject(ctx, project)
		if errors.Is(err, models.ErrDuplicateID) {
			s.logger.Warn("generated project ID collided, retrying", "project_id", project.ID, "attempt", attempt+1)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to add project: %w", err)
		}

		s.logger.Debug("added project", "project_id", project.ID, "name", project.Name)
		return project.Clone(), nil
	}

	return nil, fmt.Errorf("failed to add project: %w after %d attempts", models.ErrDuplicateID, maxIDAttempts)
}

// wait blocks for the configured delay or until ctx is done
func (s *Stub) wait(ctx context.Context) error {
	if s.delay <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(s.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (s *Stub) shouldFail() bool {
	if s.failureRate <= 0 {
		return false
	}
	if s.failureRate >= 1 {
		return true
	}

	s.rngMu.Lock()
	defer s.rngMu.Unlock()
	return s.rng.Float64() < s.failureRate
}
