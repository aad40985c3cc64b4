// Package database holds the process-lifetime project stores.
//
// Two drivers implement DataStore: MemoryStore keeps a slice behind a mutex,
// Repository keeps rows in an in-memory SQLite database. Both take their
// initial records through the constructor and hand out copies only.
package database

import (
	"context"
	"fmt"

	"github.com/thenoetrevino/trackr/internal/models"
)

// DataStore defines the data operations the API stub needs.
type DataStore interface {
	// ListProjects returns every project in list order (newest inserts first)
	ListProjects(ctx context.Context) ([]*models.Project, error)

	// GetProject returns one project or models.ErrProjectNotFound
	GetProject(ctx context.Context, id string) (*models.Project, error)

	// UpdateProjectStatus changes the status of exactly one project and returns it.
	// An unknown ID yields models.ErrProjectNotFound and no mutation.
	UpdateProjectStatus(ctx context.Context, id string, status models.Status) (*models.Project, error)

	// InsertProject prepends a project; models.ErrDuplicateID if the ID is taken
	InsertProject(ctx context.Context, project *models.Project) error

	// Close releases any resources held by the store
	Close() error
}

// Compile-time verification that both drivers implement DataStore
var (
	_ DataStore = (*MemoryStore)(nil)
	_ DataStore = (*Repository)(nil)
)

// Driver names accepted by Open
const (
	DriverMemory = "memory"
	DriverSQLite = "sqlite"
)

// Open builds a DataStore for the named driver seeded with initial.
// dsn is only used by the sqlite driver.
func Open(ctx context.Context, driver, dsn string, initial []*models.Project) (DataStore, error) {
	switch driver {
	case "", DriverMemory:
		return NewMemoryStore(initial)
	case DriverSQLite:
		db, err := InitDB(ctx, dsn)
		if err != nil {
			return nil, err
		}
		repo, err := NewRepository(ctx, db, initial)
		if err != nil {
			closeQuietly(db)
			return nil, err
		}
		return repo, nil
	default:
		return nil, fmt.Errorf("unknown store driver %q (must be: memory, sqlite)", driver)
	}
}
