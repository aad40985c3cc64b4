package project

import (
	"testing"

	"github.com/thenoetrevino/trackr/internal/models"
)

func TestFilter(t *testing.T) {
	t.Parallel()

	projects := sampleProjects()

	tests := []struct {
		name   string
		query  string
		status models.StatusFilter
		want   []string
	}{
		{"empty query all statuses", "", models.FilterAll, []string{"1", "2", "3", "4", "5"}},
		{"client match case-insensitive", "acme", models.FilterAll, []string{"1", "5"}},
		{"name match uppercase", "BRAND", models.FilterAll, []string{"3"}},
		{"status only", "", models.StatusFilter(models.StatusActive), []string{"1", "2", "5"}},
		{"query and status", "acme", models.StatusFilter(models.StatusCompleted), nil},
		{"on hold", "", models.StatusFilter(models.StatusOnHold), []string{"3"}},
		{"no match", "zzz", models.FilterAll, nil},
		{"substring in middle", "app", models.FilterAll, []string{"2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := projectIDs(Filter(projects, tt.query, tt.status))
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !equalIDs(got, tt.want) {
				t.Errorf("Filter(%q, %q) = %v, want %v", tt.query, tt.status, got, tt.want)
			}
		})
	}
}

func TestFilter_Idempotent(t *testing.T) {
	t.Parallel()

	projects := sampleProjects()
	once := Filter(projects, "a", models.StatusFilter(models.StatusActive))
	twice := Filter(once, "a", models.StatusFilter(models.StatusActive))

	if !equalIDs(projectIDs(once), projectIDs(twice)) {
		t.Errorf("filtering twice changed result: %v vs %v", projectIDs(once), projectIDs(twice))
	}
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	projects := sampleProjects()
	_ = Filter(projects, "acme", models.FilterAll)

	if len(projects) != 5 {
		t.Errorf("input length changed to %d", len(projects))
	}
}
