package tui

import (
	"fmt"
	"unicode"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/trackr/internal/models"
	"github.com/thenoetrevino/trackr/internal/tui/state"
)

// User-facing failure copy
const (
	msgUpdateFailed   = "Failed to update status. Please try again."
	msgCreateFailed   = "Failed to add project. Please try again."
	msgMissingFields  = "Name, client, and start date are required."
	alertTitleError   = "Error"
	alertTitleInvalid = "Invalid Project"
)

// Update handles all messages and updates the model accordingly
// This implements the "Update" part of the Model-View-Update pattern
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Check if context is cancelled (graceful shutdown)
	select {
	case <-m.ctx.Done():
		return m, tea.Quit
	default:
	}

	model, cmd := m.update(msg)

	// The list header grows with filter chips and the error banner,
	// so the scroll window is resized after every message
	if next, ok := model.(Model); ok {
		next.syncListWindow()
	}
	return model, cmd
}

func (m Model) update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.uiState.SetSize(msg.Width, msg.Height)
		m.notificationState.SetWindowSize(msg.Width, msg.Height)
		m.search.SetWidth(max(msg.Width-8, 10))
		if m.formState.Form != nil {
			m.formState.Form = m.formState.Form.WithWidth(formWidth(msg.Width))
		}
		m.syncListWindow()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case projectsLoadedMsg:
		if msg.err != nil {
			m.logger.Warn("project fetch failed", "error", msg.err)
		}
		m.listState.Clamp(len(m.snapshot().Projects))
		return m, nil

	case statusUpdatedMsg:
		return m.handleStatusUpdated(msg)

	case projectCreatedMsg:
		return m.handleProjectCreated(msg)

	case stateChangedMsg:
		m.listState.Clamp(len(m.snapshot().Projects))
		return m, listenForEvents(m.ctx, m.eventChan)

	case tea.KeyPressMsg:
		return m.handleKey(msg)
	}

	// Cursor blinks and other form internals
	if m.uiState.Screen() == state.CreateScreen && m.formState.Form != nil {
		return m.updateProjectForm(msg)
	}

	return m, nil
}

// handleKey dismisses transient UI, then dispatches to the current screen.
func (m Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m.quit()
	}

	// Toasts go away on the next key; the key is still handled
	m.notificationState.Clear()

	// A blocking alert swallows the key that dismisses it
	if m.uiState.Mode() == state.AlertMode {
		m.uiState.DismissAlert()
		return m, nil
	}

	if m.uiState.Mode() == state.HelpMode {
		m.uiState.SetMode(state.NormalMode)
		return m, nil
	}

	switch m.uiState.Screen() {
	case state.DetailScreen:
		return m.handleDetailKey(msg)
	case state.CreateScreen:
		return m.handleCreateKey(msg)
	default:
		if m.uiState.Mode() == state.SearchMode {
			return m.handleSearchMode(msg)
		}
		return m.handleListKey(msg)
	}
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.Close()
	return m, tea.Quit
}

// handleStatusUpdated clears the in-flight flag and reports the outcome.
// The container already holds the new record, so the list shows it too.
// A result for an update the detail screen stopped waiting on still reports,
// but leaves the current indicator alone.
func (m Model) handleStatusUpdated(msg statusUpdatedMsg) (tea.Model, tea.Cmd) {
	m.detailState.FinishUpdate(msg.seq)

	if msg.err != nil {
		m.logger.Error("status update failed", "project_id", msg.projectID, "error", msg.err)
		m.uiState.ShowAlert(alertTitleError, msgUpdateFailed)
		return m, nil
	}

	m.notificationState.Add(state.LevelSuccess,
		fmt.Sprintf("%q is now %s.", msg.project.Name, msg.project.Status.Text()))
	m.listState.Clamp(len(m.snapshot().Projects))
	return m, nil
}

// handleProjectCreated returns to the list with the new project selected at the top.
// If the form was cancelled while saving, the result only raises a toast:
// whatever the user moved on to, including a new draft, is left alone.
func (m Model) handleProjectCreated(msg projectCreatedMsg) (tea.Model, tea.Cmd) {
	if !m.formState.FinishSave(msg.seq) {
		if msg.err != nil {
			m.logger.Warn("cancelled create project failed", "error", msg.err)
			return m, nil
		}
		m.notificationState.Add(state.LevelSuccess, fmt.Sprintf("%q was added.", msg.project.Name))
		return m, nil
	}

	if msg.err != nil {
		m.logger.Error("create project failed", "error", msg.err)
		if models.IsValidationError(msg.err) {
			m.uiState.ShowAlert(alertTitleInvalid, validationMessage(msg.err))
		} else {
			m.uiState.ShowAlert(alertTitleError, msgCreateFailed)
		}
		return m, m.reopenProjectForm()
	}

	m.formState.Reset()
	m.uiState.SetScreen(state.ListScreen)
	m.listState.Reset()
	m.notificationState.Add(state.LevelSuccess, fmt.Sprintf("%q was added.", msg.project.Name))
	return m, nil
}

// validationMessage turns a model validation error into a sentence
func validationMessage(err error) string {
	runes := []rune(err.Error())
	if len(runes) == 0 {
		return msgCreateFailed
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes) + "."
}
