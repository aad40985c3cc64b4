package tui

import (
	"github.com/thenoetrevino/trackr/internal/events"
	"github.com/thenoetrevino/trackr/internal/models"
)

// projectsLoadedMsg is sent when a load or refresh finishes.
// The result itself is already in the container; err is for logging.
type projectsLoadedMsg struct {
	err error
}

// statusUpdatedMsg is sent when a status update from the detail screen finishes
type statusUpdatedMsg struct {
	seq       uint64
	projectID string
	project   *models.Project
	err       error
}

// projectCreatedMsg is sent when the create form's request finishes
type projectCreatedMsg struct {
	seq     uint64
	project *models.Project
	err     error
}

// stateChangedMsg carries a container event to the update loop
type stateChangedMsg struct {
	event events.Event
}
