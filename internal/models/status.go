package models

import (
	"fmt"
	"strings"
)

// Status is the lifecycle state of a project
type Status string

const (
	StatusActive    Status = "active"
	StatusOnHold    Status = "on_hold"
	StatusCompleted Status = "completed"
)

// AllStatuses returns the statuses in display order
func AllStatuses() []Status {
	return []Status{StatusActive, StatusOnHold, StatusCompleted}
}

// Valid reports whether s is one of the three known statuses
func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusOnHold, StatusCompleted:
		return true
	}
	return false
}

// Label returns the human readable name, e.g. "On Hold"
func (s Status) Label() string {
	switch s {
	case StatusActive:
		return "Active"
	case StatusOnHold:
		return "On Hold"
	case StatusCompleted:
		return "Completed"
	}
	return string(s)
}

// Text returns the lower-case phrase used in sentences, e.g. "on hold"
func (s Status) Text() string {
	return strings.ReplaceAll(string(s), "_", " ")
}

// ParseStatus maps user input to a Status.
// Accepts "on_hold", "on-hold" and "on hold" in any case.
func ParseStatus(s string) (Status, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	normalized = strings.NewReplacer("-", "_", " ", "_").Replace(normalized)

	status := Status(normalized)
	if !status.Valid() {
		return "", fmt.Errorf("%w: %q (must be: active, on_hold, completed)", ErrInvalidStatus, s)
	}
	return status, nil
}

// StatusFilter narrows a project list to one status, or to none with FilterAll
type StatusFilter string

// FilterAll matches every status
const FilterAll StatusFilter = "all"

// FilterOptions returns the filter chips in display order
func FilterOptions() []StatusFilter {
	return []StatusFilter{FilterAll, StatusFilter(StatusActive), StatusFilter(StatusOnHold), StatusFilter(StatusCompleted)}
}

// Matches reports whether a project with the given status passes the filter
func (f StatusFilter) Matches(s Status) bool {
	return f == FilterAll || f == "" || Status(f) == s
}

// Label returns the chip text
func (f StatusFilter) Label() string {
	if f == FilterAll || f == "" {
		return "All"
	}
	return Status(f).Label()
}

// Next cycles to the following filter option
func (f StatusFilter) Next() StatusFilter {
	opts := FilterOptions()
	for i, o := range opts {
		if o == f {
			return opts[(i+1)%len(opts)]
		}
	}
	return FilterAll
}

// ParseStatusFilter accepts "all" or anything ParseStatus accepts
func ParseStatusFilter(s string) (StatusFilter, error) {
	if strings.TrimSpace(s) == "" || strings.EqualFold(strings.TrimSpace(s), string(FilterAll)) {
		return FilterAll, nil
	}
	status, err := ParseStatus(s)
	if err != nil {
		return "", err
	}
	return StatusFilter(status), nil
}
