// Package api is the project backend boundary.
//
// Client is the call surface the shared state container depends on. Stub
// serves it from a local DataStore with simulated latency and failure;
// HTTPClient serves the identical signatures from a running trackr server.
package api

import (
	"context"

	"github.com/thenoetrevino/trackr/internal/models"
)

// Client defines the backend operations on projects
type Client interface {
	// GetProjects returns the full project list
	GetProjects(ctx context.Context) ([]*models.Project, error)

	// UpdateProjectStatus changes one project's status and returns the updated record
	UpdateProjectStatus(ctx context.Context, id string, status models.Status) (*models.Project, error)

	// AddProject creates a project from the payload and returns it with its new ID
	AddProject(ctx context.Context, input models.ProjectInput) (*models.Project, error)
}

// Compile-time verification that both implementations satisfy Client
var (
	_ Client = (*Stub)(nil)
	_ Client = (*HTTPClient)(nil)
)
