// Package project holds the shared project state container.
//
// One Service instance is created per process and injected into every screen
// and command that shows projects, so a mutation made anywhere is visible
// everywhere without a refetch.
package project

import (
	"context"
	"log/slog"
	"sync"

	"github.com/thenoetrevino/trackr/internal/events"
	"github.com/thenoetrevino/trackr/internal/models"
)

// Service defines the shared project state and the operations that mutate it
type Service interface {
	// Read operations
	Snapshot() Snapshot
	Project(id string) (*models.Project, bool)

	// Fetch operations. Failures are captured into Snapshot().Error and also returned.
	Load(ctx context.Context) error
	Refresh(ctx context.Context) error

	// Write operations. Failures propagate to the caller and leave state untouched.
	UpdateStatus(ctx context.Context, id string, status models.Status) (*models.Project, error)
	AddProject(ctx context.Context, input models.ProjectInput) (*models.Project, error)

	// View state
	SetSearchQuery(query string)
	SetStatusFilter(filter models.StatusFilter)

	// Subscribe returns a channel of change notifications and an unsubscribe func
	Subscribe() (<-chan events.Event, func())
}

// Snapshot is a consistent copy of the container state
type Snapshot struct {
	Projects     []*models.Project // filtered view
	AllProjects  []*models.Project // full list
	Loading      bool
	Refreshing   bool
	Error        string
	SearchQuery  string
	StatusFilter models.StatusFilter
}

// HasError reports whether the last fetch failed
func (s Snapshot) HasError() bool {
	return s.Error != ""
}

// backend defines the API calls needed by the project service.
// This interface is private to the service layer; api.Client satisfies it.
type backend interface {
	GetProjects(ctx context.Context) ([]*models.Project, error)
	UpdateProjectStatus(ctx context.Context, id string, status models.Status) (*models.Project, error)
	AddProject(ctx context.Context, input models.ProjectInput) (*models.Project, error)
}

// service implements Service interface with a private backend
type service struct {
	client      backend
	eventClient events.Publisher
	logger      *slog.Logger

	mu           sync.RWMutex
	all          []*models.Project
	filtered     []*models.Project
	loading      bool
	refreshing   bool
	errMsg       string
	searchQuery  string
	statusFilter models.StatusFilter
}

// NewService creates the container. It starts in the loading state with an
// empty list; call Load once at startup. eventClient and logger may be nil.
func NewService(client backend, eventClient events.Publisher, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &service{
		client:       client,
		eventClient:  eventClient,
		logger:       logger,
		all:          []*models.Project{},
		filtered:     []*models.Project{},
		loading:      true,
		statusFilter: models.FilterAll,
	}
}

// Snapshot returns copies of the lists and the current flags
func (s *service) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Snapshot{
		Projects:     models.CloneProjects(s.filtered),
		AllProjects:  models.CloneProjects(s.all),
		Loading:      s.loading,
		Refreshing:   s.refreshing,
		Error:        s.errMsg,
		SearchQuery:  s.searchQuery,
		StatusFilter: s.statusFilter,
	}
}

// Project looks up a project in the full (unfiltered) list
func (s *service) Project(id string) (*models.Project, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.all {
		if p.ID == id {
			return p.Clone(), true
		}
	}
	return nil, false
}

// Load performs the initial fetch, driving the Loading flag
func (s *service) Load(ctx context.Context) error {
	return s.fetch(ctx, false)
}

// Refresh performs a user-triggered refetch, driving the Refreshing flag
func (s *service) Refresh(ctx context.Context) error {
	return s.fetch(ctx, true)
}

func (s *service) fetch(ctx context.Context, isRefreshing bool) error {
	s.mu.Lock()
	if isRefreshing {
		s.refreshing = true
	} else {
		s.loading = true
	}
	s.errMsg = ""
	s.mu.Unlock()
	s.publish(events.EventLoadStarted, "")

	projects, err := s.client.GetProjects(ctx)

	s.mu.Lock()
	s.loading = false
	s.refreshing = false
	if err != nil {
		s.errMsg = err.Error()
	} else {
		s.all = models.CloneProjects(projects)
		s.refilter()
	}
	s.mu.Unlock()

	if err != nil {
		s.logger.Warn("failed to fetch projects", "refresh", isRefreshing, "error", err)
		s.publish(events.EventLoadFailed, "")
		return err
	}

	s.logger.Debug("fetched projects", "refresh", isRefreshing, "count", len(projects))
	s.publish(events.EventProjectsLoaded, "")
	return nil
}

// UpdateStatus updates the backend, then replaces the matching local entry
func (s *service) UpdateStatus(ctx context.Context, id string, status models.Status) (*models.Project, error) {
	if id == "" {
		return nil, ErrInvalidProjectID
	}

	updated, err := s.client.UpdateProjectStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	for i, p := range s.all {
		if p.ID == id {
			s.all[i] = updated.Clone()
			break
		}
	}
	s.refilter()
	s.mu.Unlock()

	s.logger.Info("project status updated", "project_id", id, "status", status)
	s.publish(events.EventProjectUpdated, id)
	return updated.Clone(), nil
}

// AddProject creates the project on the backend, then prepends it locally
func (s *service) AddProject(ctx context.Context, input models.ProjectInput) (*models.Project, error) {
	created, err := s.client.AddProject(ctx, input)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.all = append([]*models.Project{created.Clone()}, s.all...)
	s.refilter()
	s.mu.Unlock()

	s.logger.Info("project created", "project_id", created.ID, "name", created.Name)
	s.publish(events.EventProjectCreated, created.ID)
	return created.Clone(), nil
}

// SetSearchQuery changes the search text of the filtered view
func (s *service) SetSearchQuery(query string) {
	s.mu.Lock()
	if s.searchQuery == query {
		s.mu.Unlock()
		return
	}
	s.searchQuery = query
	s.refilter()
	s.mu.Unlock()

	s.publish(events.EventFilterChanged, "")
}

// SetStatusFilter changes the status filter of the filtered view
func (s *service) SetStatusFilter(filter models.StatusFilter) {
	if filter == "" {
		filter = models.FilterAll
	}

	s.mu.Lock()
	if s.statusFilter == filter {
		s.mu.Unlock()
		return
	}
	s.statusFilter = filter
	s.refilter()
	s.mu.Unlock()

	s.publish(events.EventFilterChanged, "")
}

// Subscribe registers for change notifications. Without a publisher the
// returned channel is already closed.
func (s *service) Subscribe() (<-chan events.Event, func()) {
	if s.eventClient == nil {
		ch := make(chan events.Event)
		close(ch)
		return ch, func() {}
	}
	return s.eventClient.Subscribe(events.DefaultBuffer)
}

// refilter recomputes the filtered view. Caller holds the write lock.
func (s *service) refilter() {
	s.filtered = Filter(s.all, s.searchQuery, s.statusFilter)
}

// publish sends a change event if a publisher is configured
func (s *service) publish(eventType events.EventType, projectID string) {
	if s.eventClient == nil {
		return
	}

	if err := s.eventClient.Publish(events.Event{
		Type:      eventType,
		ProjectID: projectID,
	}); err != nil {
		s.logger.Debug("failed to publish event", "event_type", eventType, "project_id", projectID, "error", err)
	}
}
