package tui

import (
	"context"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/trackr/internal/events"
	"github.com/thenoetrevino/trackr/internal/models"
	projectservice "github.com/thenoetrevino/trackr/internal/services/project"
)

// loadProjects fetches the list through the container. refresh keeps the
// current list on screen and shows the inline indicator instead of the spinner.
func loadProjects(ctx context.Context, svc projectservice.Service, refresh bool) tea.Cmd {
	return func() tea.Msg {
		var err error
		if refresh {
			err = svc.Refresh(ctx)
		} else {
			err = svc.Load(ctx)
		}
		return projectsLoadedMsg{err: err}
	}
}

// updateStatus sends a status change; seq tags the result for the detail screen.
func updateStatus(ctx context.Context, svc projectservice.Service, seq uint64, id string, status models.Status) tea.Cmd {
	return func() tea.Msg {
		project, err := svc.UpdateStatus(ctx, id, status)
		return statusUpdatedMsg{seq: seq, projectID: id, project: project, err: err}
	}
}

// addProject sends the create form; seq tags the result for the form.
func addProject(ctx context.Context, svc projectservice.Service, seq uint64, input models.ProjectInput) tea.Cmd {
	return func() tea.Msg {
		project, err := svc.AddProject(ctx, input)
		return projectCreatedMsg{seq: seq, project: project, err: err}
	}
}

// listenForEvents returns a command that waits for the next container event.
// Returns nil when the channel is closed or the context is done.
func listenForEvents(ctx context.Context, ch <-chan events.Event) tea.Cmd {
	if ch == nil {
		return nil
	}

	return func() tea.Msg {
		select {
		case event, ok := <-ch:
			if !ok {
				return nil
			}
			return stateChangedMsg{event: event}
		case <-ctx.Done():
			return nil
		}
	}
}
