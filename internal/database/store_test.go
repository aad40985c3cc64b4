package database

import (
	"context"
	"errors"
	"testing"

	"github.com/thenoetrevino/trackr/internal/models"
)

// ============================================================================
// CONTRACT TESTS (run against every driver)
// ============================================================================

func TestStore_ListPreservesSeedOrder(t *testing.T) {
	t.Parallel()
	for name, setup := range drivers() {
		t.Run(name, func(t *testing.T) {
			store := setup(t, DefaultProjects())

			projects, err := store.ListProjects(context.Background())
			if err != nil {
				t.Fatalf("ListProjects() error: %v", err)
			}

			want := []string{"1", "2", "3", "4", "5"}
			if got := ids(projects); !equalIDs(got, want) {
				t.Errorf("ListProjects() ids = %v, want %v", got, want)
			}

			seo := projects[2]
			if seo.EndDate != "2023-12-20" || seo.Status != models.StatusCompleted {
				t.Errorf("project 3 = %+v, want completed with end date", seo)
			}
			if projects[0].EndDate != "" {
				t.Errorf("project 1 EndDate = %q, want empty", projects[0].EndDate)
			}
		})
	}
}

func TestStore_ListReturnsCopies(t *testing.T) {
	t.Parallel()
	for name, setup := range drivers() {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			store := setup(t, DefaultProjects())

			first, _ := store.ListProjects(ctx)
			first[0].Status = models.StatusCompleted
			first[0].Name = "mutated"

			again, _ := store.ListProjects(ctx)
			if again[0].Name != "Website Redesign" || again[0].Status != models.StatusActive {
				t.Errorf("store was mutated through a returned record: %+v", again[0])
			}
		})
	}
}

func TestStore_UpdateProjectStatus(t *testing.T) {
	t.Parallel()
	for name, setup := range drivers() {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			store := setup(t, DefaultProjects())

			updated, err := store.UpdateProjectStatus(ctx, "2", models.StatusCompleted)
			if err != nil {
				t.Fatalf("UpdateProjectStatus() error: %v", err)
			}
			if updated.ID != "2" || updated.Status != models.StatusCompleted {
				t.Errorf("updated = %+v, want id 2 completed", updated)
			}
			if updated.Name != "Mobile App Development" {
				t.Errorf("update changed other fields: %+v", updated)
			}

			before := DefaultProjects()
			after, _ := store.ListProjects(ctx)
			for i := range after {
				if after[i].ID == "2" {
					continue
				}
				if after[i].Status != before[i].Status {
					t.Errorf("project %s status changed to %q", after[i].ID, after[i].Status)
				}
			}
		})
	}
}

func TestStore_UpdateMissingIDDoesNotMutate(t *testing.T) {
	t.Parallel()
	for name, setup := range drivers() {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			store := setup(t, DefaultProjects())

			_, err := store.UpdateProjectStatus(ctx, "999", models.StatusCompleted)
			if !errors.Is(err, models.ErrProjectNotFound) {
				t.Fatalf("error = %v, want ErrProjectNotFound", err)
			}

			after, _ := store.ListProjects(ctx)
			for i, p := range DefaultProjects() {
				if after[i].Status != p.Status {
					t.Errorf("project %s status = %q, want %q", p.ID, after[i].Status, p.Status)
				}
			}
		})
	}
}

func TestStore_UpdateInvalidStatus(t *testing.T) {
	t.Parallel()
	for name, setup := range drivers() {
		t.Run(name, func(t *testing.T) {
			store := setup(t, DefaultProjects())

			_, err := store.UpdateProjectStatus(context.Background(), "1", "archived")
			if !errors.Is(err, models.ErrInvalidStatus) {
				t.Errorf("error = %v, want ErrInvalidStatus", err)
			}
		})
	}
}

func TestStore_InsertPrepends(t *testing.T) {
	t.Parallel()
	for name, setup := range drivers() {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			store := setup(t, DefaultProjects())

			for _, id := range []string{"a", "b"} {
				err := store.InsertProject(ctx, &models.Project{
					ID:         id,
					Name:       "New " + id,
					ClientName: "Client",
					Status:     models.StatusActive,
					StartDate:  "2024-03-01",
				})
				if err != nil {
					t.Fatalf("InsertProject(%s) error: %v", id, err)
				}
			}

			projects, _ := store.ListProjects(ctx)
			want := []string{"b", "a", "1", "2", "3", "4", "5"}
			if got := ids(projects); !equalIDs(got, want) {
				t.Errorf("ids after insert = %v, want %v", got, want)
			}
		})
	}
}

func TestStore_InsertIntoEmptyStore(t *testing.T) {
	t.Parallel()
	for name, setup := range drivers() {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			store := setup(t, nil)

			err := store.InsertProject(ctx, &models.Project{
				ID: "x", Name: "Solo", ClientName: "C", Status: models.StatusOnHold, StartDate: "2024-01-01",
			})
			if err != nil {
				t.Fatalf("InsertProject() error: %v", err)
			}

			got, err := store.GetProject(ctx, "x")
			if err != nil {
				t.Fatalf("GetProject() error: %v", err)
			}
			if got.Status != models.StatusOnHold {
				t.Errorf("status = %q, want on_hold", got.Status)
			}
		})
	}
}

func TestStore_InsertDuplicateID(t *testing.T) {
	t.Parallel()
	for name, setup := range drivers() {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			store := setup(t, DefaultProjects())

			err := store.InsertProject(ctx, &models.Project{
				ID: "1", Name: "Dup", ClientName: "C", Status: models.StatusActive, StartDate: "2024-01-01",
			})
			if !errors.Is(err, models.ErrDuplicateID) {
				t.Fatalf("error = %v, want ErrDuplicateID", err)
			}

			projects, _ := store.ListProjects(ctx)
			if len(projects) != 5 {
				t.Errorf("len = %d, want 5", len(projects))
			}
		})
	}
}

func TestStore_GetProjectNotFound(t *testing.T) {
	t.Parallel()
	for name, setup := range drivers() {
		t.Run(name, func(t *testing.T) {
			_, err := setup(t, DefaultProjects()).GetProject(context.Background(), "nope")
			if !errors.Is(err, models.ErrProjectNotFound) {
				t.Errorf("error = %v, want ErrProjectNotFound", err)
			}
		})
	}
}

// ============================================================================
// CONSTRUCTOR TESTS
// ============================================================================

func TestNewMemoryStore_RejectsBadSeed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		seed []*models.Project
		want error
	}{
		{
			name: "duplicate id",
			seed: []*models.Project{
				{ID: "1", Status: models.StatusActive},
				{ID: "1", Status: models.StatusActive},
			},
			want: models.ErrDuplicateID,
		},
		{
			name: "invalid status",
			seed: []*models.Project{{ID: "1", Status: "paused"}},
			want: models.ErrInvalidStatus,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewMemoryStore(tt.seed); !errors.Is(err, tt.want) {
				t.Errorf("NewMemoryStore() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestNewMemoryStore_CopiesSeed(t *testing.T) {
	t.Parallel()

	seed := DefaultProjects()
	store, err := NewMemoryStore(seed)
	if err != nil {
		t.Fatalf("NewMemoryStore() error: %v", err)
	}

	seed[0].Name = "changed after construction"

	got, _ := store.GetProject(context.Background(), "1")
	if got.Name != "Website Redesign" {
		t.Errorf("store shares memory with seed slice: %q", got.Name)
	}
}

func TestOpen_Drivers(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	for _, driver := range []string{"", DriverMemory, DriverSQLite} {
		store, err := Open(ctx, driver, "", DefaultProjects())
		if err != nil {
			t.Fatalf("Open(%q) error: %v", driver, err)
		}
		projects, err := store.ListProjects(ctx)
		if err != nil || len(projects) != 5 {
			t.Errorf("Open(%q) list = %d projects, err %v", driver, len(projects), err)
		}
		_ = store.Close()
	}

	if _, err := Open(ctx, "postgres", "", nil); err == nil {
		t.Error("expected error for unknown driver")
	}
}

func TestMemoryStore_CancelledContext(t *testing.T) {
	t.Parallel()

	store := setupMemoryStore(t, DefaultProjects())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := store.ListProjects(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("ListProjects() error = %v, want context.Canceled", err)
	}
}
