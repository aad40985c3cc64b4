package project

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/thenoetrevino/trackr/internal/events"
	"github.com/thenoetrevino/trackr/internal/models"
)

// ============================================================================
// INITIAL STATE AND FETCHING
// ============================================================================

func TestNewService_InitialState(t *testing.T) {
	t.Parallel()

	svc := NewService(newFakeBackend(), nil, nil)
	snap := svc.Snapshot()

	if !snap.Loading {
		t.Error("expected Loading to be true before first load")
	}
	if snap.Refreshing {
		t.Error("expected Refreshing to be false")
	}
	if snap.HasError() {
		t.Errorf("expected no error, got %q", snap.Error)
	}
	if len(snap.AllProjects) != 0 || len(snap.Projects) != 0 {
		t.Error("expected empty project lists")
	}
	if snap.StatusFilter != models.FilterAll {
		t.Errorf("expected filter all, got %q", snap.StatusFilter)
	}
}

func TestLoad_Success(t *testing.T) {
	t.Parallel()

	svc := loadedService(t, newFakeBackend(sampleProjects()...))
	snap := svc.Snapshot()

	if snap.Loading {
		t.Error("expected Loading to be false after load")
	}
	if got := projectIDs(snap.AllProjects); !equalIDs(got, []string{"1", "2", "3", "4", "5"}) {
		t.Errorf("unexpected projects %v", got)
	}
	if len(snap.Projects) != 5 {
		t.Errorf("expected filtered view to hold 5 projects, got %d", len(snap.Projects))
	}
}

func TestLoad_FailureCapturesError(t *testing.T) {
	t.Parallel()

	backend := newFakeBackend(sampleProjects()...)
	backend.setFailFetch(true)
	svc := NewService(backend, nil, nil)

	err := svc.Load(context.Background())
	if !errors.Is(err, models.ErrFetchFailed) {
		t.Fatalf("expected ErrFetchFailed, got %v", err)
	}

	snap := svc.Snapshot()
	if snap.Loading {
		t.Error("expected Loading to be false after failure")
	}
	if snap.Error != models.ErrFetchFailed.Error() {
		t.Errorf("expected error message %q, got %q", models.ErrFetchFailed.Error(), snap.Error)
	}
	if len(snap.AllProjects) != 0 {
		t.Error("expected project list to stay empty")
	}
}

func TestRefresh_FailureKeepsProjects(t *testing.T) {
	t.Parallel()

	backend := newFakeBackend(sampleProjects()...)
	svc := loadedService(t, backend)

	backend.setFailFetch(true)
	if err := svc.Refresh(context.Background()); err == nil {
		t.Fatal("expected refresh to fail")
	}

	snap := svc.Snapshot()
	if snap.Refreshing {
		t.Error("expected Refreshing to be false")
	}
	if !snap.HasError() {
		t.Error("expected error to be captured")
	}
	if len(snap.AllProjects) != 5 {
		t.Errorf("expected previous projects to be kept, got %d", len(snap.AllProjects))
	}
}

func TestRefresh_ClearsPreviousError(t *testing.T) {
	t.Parallel()

	backend := newFakeBackend(sampleProjects()...)
	backend.setFailFetch(true)
	svc := NewService(backend, nil, nil)
	_ = svc.Load(context.Background())

	backend.setFailFetch(false)
	if err := svc.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}

	snap := svc.Snapshot()
	if snap.HasError() {
		t.Errorf("expected error cleared, got %q", snap.Error)
	}
	if len(snap.AllProjects) != 5 {
		t.Errorf("expected 5 projects, got %d", len(snap.AllProjects))
	}
}

// blockingBackend holds GetProjects until released so in-flight flags can be observed
type blockingBackend struct {
	*fakeBackend
	started chan struct{}
	release chan struct{}
}

func (b *blockingBackend) GetProjects(ctx context.Context) ([]*models.Project, error) {
	close(b.started)
	<-b.release
	return b.fakeBackend.GetProjects(ctx)
}

func TestRefresh_SetsRefreshingWhileInFlight(t *testing.T) {
	t.Parallel()

	backend := &blockingBackend{
		fakeBackend: newFakeBackend(sampleProjects()...),
		started:     make(chan struct{}),
		release:     make(chan struct{}),
	}
	svc := NewService(backend, nil, nil)

	done := make(chan error, 1)
	go func() { done <- svc.Refresh(context.Background()) }()

	<-backend.started
	if snap := svc.Snapshot(); !snap.Refreshing {
		t.Error("expected Refreshing to be true while fetch is in flight")
	}
	close(backend.release)

	if err := <-done; err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}
	if snap := svc.Snapshot(); snap.Refreshing || snap.Loading {
		t.Error("expected both flags cleared after refresh")
	}
}

// ============================================================================
// MUTATIONS
// ============================================================================

func TestUpdateStatus_ReplacesEntry(t *testing.T) {
	t.Parallel()

	svc := loadedService(t, newFakeBackend(sampleProjects()...))

	updated, err := svc.UpdateStatus(context.Background(), "3", models.StatusCompleted)
	if err != nil {
		t.Fatalf("UpdateStatus failed: %v", err)
	}
	if updated.Status != models.StatusCompleted {
		t.Errorf("expected completed, got %q", updated.Status)
	}

	snap := svc.Snapshot()
	if got := projectIDs(snap.AllProjects); !equalIDs(got, []string{"1", "2", "3", "4", "5"}) {
		t.Errorf("order changed: %v", got)
	}
	p, ok := svc.Project("3")
	if !ok || p.Status != models.StatusCompleted {
		t.Errorf("expected project 3 to be completed, got %+v", p)
	}
}

func TestUpdateStatus_UpdatesFilteredView(t *testing.T) {
	t.Parallel()

	svc := loadedService(t, newFakeBackend(sampleProjects()...))
	svc.SetStatusFilter(models.StatusFilter(models.StatusOnHold))

	if _, err := svc.UpdateStatus(context.Background(), "3", models.StatusActive); err != nil {
		t.Fatalf("UpdateStatus failed: %v", err)
	}

	if got := svc.Snapshot().Projects; len(got) != 0 {
		t.Errorf("expected on-hold view to be empty, got %v", projectIDs(got))
	}
}

func TestUpdateStatus_FailureLeavesStateUntouched(t *testing.T) {
	t.Parallel()

	backend := newFakeBackend(sampleProjects()...)
	svc := loadedService(t, backend)
	backend.failUpdate = true

	_, err := svc.UpdateStatus(context.Background(), "1", models.StatusCompleted)
	if !errors.Is(err, errBackend) {
		t.Fatalf("expected backend error, got %v", err)
	}

	snap := svc.Snapshot()
	if snap.HasError() {
		t.Errorf("update failure must not set fetch error, got %q", snap.Error)
	}
	p, _ := svc.Project("1")
	if p.Status != models.StatusActive {
		t.Errorf("expected status unchanged, got %q", p.Status)
	}
}

func TestUpdateStatus_UnknownID(t *testing.T) {
	t.Parallel()

	svc := loadedService(t, newFakeBackend(sampleProjects()...))

	_, err := svc.UpdateStatus(context.Background(), "999", models.StatusActive)
	if !errors.Is(err, models.ErrProjectNotFound) {
		t.Errorf("expected ErrProjectNotFound, got %v", err)
	}
	if len(svc.Snapshot().AllProjects) != 5 {
		t.Error("list length changed")
	}
}

func TestUpdateStatus_EmptyID(t *testing.T) {
	t.Parallel()

	svc := loadedService(t, newFakeBackend(sampleProjects()...))

	if _, err := svc.UpdateStatus(context.Background(), "", models.StatusActive); !errors.Is(err, ErrInvalidProjectID) {
		t.Errorf("expected ErrInvalidProjectID, got %v", err)
	}
}

func TestAddProject_Prepends(t *testing.T) {
	t.Parallel()

	svc := loadedService(t, newFakeBackend(sampleProjects()...))

	created, err := svc.AddProject(context.Background(), models.ProjectInput{
		Name:       "Data Migration",
		ClientName: "Initech",
		StartDate:  "2024-06-01",
	})
	if err != nil {
		t.Fatalf("AddProject failed: %v", err)
	}
	if created.ID == "" {
		t.Error("expected created project to have an ID")
	}
	if created.Status != models.StatusActive {
		t.Errorf("expected default status active, got %q", created.Status)
	}

	snap := svc.Snapshot()
	if len(snap.AllProjects) != 6 {
		t.Fatalf("expected 6 projects, got %d", len(snap.AllProjects))
	}
	if snap.AllProjects[0].ID != created.ID {
		t.Errorf("expected new project first, got %q", snap.AllProjects[0].ID)
	}
	if snap.Projects[0].ID != created.ID {
		t.Error("expected new project first in filtered view")
	}
}

func TestAddProject_FailureLeavesStateUntouched(t *testing.T) {
	t.Parallel()

	backend := newFakeBackend(sampleProjects()...)
	svc := loadedService(t, backend)
	backend.failAdd = true

	_, err := svc.AddProject(context.Background(), models.ProjectInput{
		Name: "X", ClientName: "Y", StartDate: "2024-01-01",
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if len(svc.Snapshot().AllProjects) != 5 {
		t.Error("list changed on failure")
	}
	if svc.Snapshot().HasError() {
		t.Error("add failure must not set fetch error")
	}
}

func TestAddProject_ValidationError(t *testing.T) {
	t.Parallel()

	svc := loadedService(t, newFakeBackend(sampleProjects()...))

	_, err := svc.AddProject(context.Background(), models.ProjectInput{ClientName: "Y", StartDate: "2024-01-01"})
	if !errors.Is(err, models.ErrEmptyName) {
		t.Errorf("expected ErrEmptyName, got %v", err)
	}
}

// ============================================================================
// VIEW STATE
// ============================================================================

func TestSetSearchQuery(t *testing.T) {
	t.Parallel()

	svc := loadedService(t, newFakeBackend(sampleProjects()...))
	svc.SetSearchQuery("acme")

	snap := svc.Snapshot()
	if snap.SearchQuery != "acme" {
		t.Errorf("expected query to be stored, got %q", snap.SearchQuery)
	}
	if got := projectIDs(snap.Projects); !equalIDs(got, []string{"1", "5"}) {
		t.Errorf("unexpected filtered projects %v", got)
	}
	if len(snap.AllProjects) != 5 {
		t.Error("full list must not be filtered")
	}
}

func TestSetStatusFilter(t *testing.T) {
	t.Parallel()

	svc := loadedService(t, newFakeBackend(sampleProjects()...))
	svc.SetSearchQuery("acme")
	svc.SetStatusFilter(models.StatusFilter(models.StatusActive))

	if got := projectIDs(svc.Snapshot().Projects); !equalIDs(got, []string{"1", "5"}) {
		t.Errorf("unexpected filtered projects %v", got)
	}

	svc.SetStatusFilter("")
	if svc.Snapshot().StatusFilter != models.FilterAll {
		t.Error("expected empty filter to reset to all")
	}
}

func TestSnapshot_ReturnsCopies(t *testing.T) {
	t.Parallel()

	svc := loadedService(t, newFakeBackend(sampleProjects()...))

	snap := svc.Snapshot()
	snap.AllProjects[0].Name = "mutated"

	p, _ := svc.Project(snap.AllProjects[0].ID)
	if p.Name == "mutated" {
		t.Error("mutating a snapshot leaked into the container")
	}
}

func TestProject_NotFound(t *testing.T) {
	t.Parallel()

	svc := loadedService(t, newFakeBackend(sampleProjects()...))
	if _, ok := svc.Project("missing"); ok {
		t.Error("expected missing project lookup to fail")
	}
}

// ============================================================================
// EVENTS AND CONCURRENCY
// ============================================================================

func TestService_PublishesEvents(t *testing.T) {
	t.Parallel()

	broker := events.NewBroker(nil)
	defer broker.Close()

	svc := NewService(newFakeBackend(sampleProjects()...), broker, nil)
	ch, unsubscribe := svc.Subscribe()
	defer unsubscribe()

	if err := svc.Load(context.Background()); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if _, err := svc.UpdateStatus(context.Background(), "2", models.StatusOnHold); err != nil {
		t.Fatalf("UpdateStatus failed: %v", err)
	}

	want := []events.EventType{events.EventLoadStarted, events.EventProjectsLoaded, events.EventProjectUpdated}
	for _, w := range want {
		select {
		case ev := <-ch:
			if ev.Type != w {
				t.Errorf("expected event %q, got %q", w, ev.Type)
			}
			if w == events.EventProjectUpdated && ev.ProjectID != "2" {
				t.Errorf("expected project ID 2, got %q", ev.ProjectID)
			}
		case <-time.After(time.Second):
			t.Fatalf("timed out waiting for %q", w)
		}
	}
}

func TestSubscribe_WithoutPublisher(t *testing.T) {
	t.Parallel()

	svc := NewService(newFakeBackend(), nil, nil)
	ch, unsubscribe := svc.Subscribe()
	defer unsubscribe()

	if _, ok := <-ch; ok {
		t.Error("expected closed channel without a publisher")
	}
}

func TestService_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	svc := loadedService(t, newFakeBackend(sampleProjects()...))

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(3)
		go func() {
			defer wg.Done()
			_ = svc.Refresh(context.Background())
		}()
		go func() {
			defer wg.Done()
			svc.SetSearchQuery("a")
			_ = svc.Snapshot()
		}()
		go func() {
			defer wg.Done()
			_, _ = svc.UpdateStatus(context.Background(), "1", models.StatusOnHold)
		}()
	}
	wg.Wait()

	if n := len(svc.Snapshot().AllProjects); n != 5 {
		t.Errorf("expected 5 projects after concurrent access, got %d", n)
	}
}
