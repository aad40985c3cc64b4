package events

import "time"

// EventType indicates what kind of change occurred
type EventType string

const (
	EventLoadStarted    EventType = "load_started"
	EventProjectsLoaded EventType = "projects_loaded"
	EventLoadFailed     EventType = "load_failed"
	EventProjectUpdated EventType = "project_updated"
	EventProjectCreated EventType = "project_created"
	EventFilterChanged  EventType = "filter_changed"
)

// Event represents a change to the shared project state
type Event struct {
	Type       EventType
	ProjectID  string    // Empty for list-wide changes
	Timestamp  time.Time // When the event was published
	SequenceID int64     // Monotonically increasing sequence number for ordering
}
