package database

import (
	"context"
	"testing"

	"github.com/thenoetrevino/trackr/internal/models"
)

// ============================================================================
// STORE SETUP HELPERS
// ============================================================================

// storeFactory builds a fresh DataStore seeded with initial
type storeFactory func(t *testing.T, initial []*models.Project) DataStore

// drivers lists every DataStore implementation the contract tests run against
func drivers() map[string]storeFactory {
	return map[string]storeFactory{
		DriverMemory: setupMemoryStore,
		DriverSQLite: setupSQLiteStore,
	}
}

func setupMemoryStore(t *testing.T, initial []*models.Project) DataStore {
	t.Helper()
	store, err := NewMemoryStore(initial)
	if err != nil {
		t.Fatalf("Failed to create memory store: %v", err)
	}
	return store
}

// setupSQLiteStore creates an in-memory database, runs migrations and seeds it
func setupSQLiteStore(t *testing.T, initial []*models.Project) DataStore {
	t.Helper()
	ctx := context.Background()

	db, err := InitDB(ctx, MemoryDSN)
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}

	repo, err := NewRepository(ctx, db, initial)
	if err != nil {
		_ = db.Close()
		t.Fatalf("Failed to seed test database: %v", err)
	}
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func ids(projects []*models.Project) []string {
	out := make([]string, len(projects))
	for i, p := range projects {
		out[i] = p.ID
	}
	return out
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
