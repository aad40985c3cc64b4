package project

import (
	"strings"

	"github.com/thenoetrevino/trackr/internal/models"
)

// Filter returns the projects whose name or client name contains query
// (case-insensitive) and whose status passes the status filter.
// An empty query matches every project. Order is preserved.
func Filter(projects []*models.Project, query string, status models.StatusFilter) []*models.Project {
	q := strings.ToLower(query)

	out := make([]*models.Project, 0, len(projects))
	for _, p := range projects {
		matchesSearch := strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.ClientName), q)
		if matchesSearch && status.Matches(p.Status) {
			out = append(out, p)
		}
	}
	return out
}
