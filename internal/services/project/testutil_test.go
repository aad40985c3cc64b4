package project

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/thenoetrevino/trackr/internal/models"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

var errBackend = errors.New("backend unavailable")

// fakeBackend is an in-memory backend with switchable failures
type fakeBackend struct {
	mu         sync.Mutex
	projects   []*models.Project
	failFetch  bool
	failUpdate bool
	failAdd    bool
	nextID     int
	fetchCalls int
}

func newFakeBackend(projects ...*models.Project) *fakeBackend {
	return &fakeBackend{projects: projects, nextID: 100}
}

func (f *fakeBackend) GetProjects(_ context.Context) ([]*models.Project, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fetchCalls++
	if f.failFetch {
		return nil, models.ErrFetchFailed
	}
	return models.CloneProjects(f.projects), nil
}

func (f *fakeBackend) UpdateProjectStatus(_ context.Context, id string, status models.Status) (*models.Project, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failUpdate {
		return nil, errBackend
	}
	for _, p := range f.projects {
		if p.ID == id {
			p.Status = status
			return p.Clone(), nil
		}
	}
	return nil, models.ErrProjectNotFound
}

func (f *fakeBackend) AddProject(_ context.Context, input models.ProjectInput) (*models.Project, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failAdd {
		return nil, errBackend
	}
	input = input.Normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}
	f.nextID++
	p := input.ToProject(fmt.Sprintf("p%d", f.nextID))
	f.projects = append([]*models.Project{p}, f.projects...)
	return p.Clone(), nil
}

func (f *fakeBackend) setFailFetch(v bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failFetch = v
}

func testProject(id, name, client string, status models.Status) *models.Project {
	return &models.Project{
		ID:         id,
		Name:       name,
		ClientName: client,
		StartDate:  "2024-01-15",
		Status:     status,
	}
}

// sampleProjects mirrors the default mock data shape
func sampleProjects() []*models.Project {
	return []*models.Project{
		testProject("1", "Website Redesign", "Acme Corp", models.StatusActive),
		testProject("2", "Mobile App Development", "TechStart Inc", models.StatusActive),
		testProject("3", "Brand Identity", "Green Energy Co", models.StatusOnHold),
		testProject("4", "E-commerce Platform", "Fashion Hub", models.StatusCompleted),
		testProject("5", "Marketing Campaign", "Acme Corp", models.StatusActive),
	}
}

// loadedService returns a service that has completed its initial load
func loadedService(t *testing.T, backend *fakeBackend) Service {
	t.Helper()
	svc := NewService(backend, nil, nil)
	if err := svc.Load(context.Background()); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	return svc
}

func projectIDs(projects []*models.Project) []string {
	ids := make([]string, len(projects))
	for i, p := range projects {
		ids[i] = p.ID
	}
	return ids
}

func equalIDs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
