package tui

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/trackr/internal/tui/state"
)

// ============================================================================
// DETAIL SCREEN HANDLERS
// ============================================================================

// handleDetailKey handles keyboard input on the detail screen.
func (m Model) handleDetailKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()

	case key.Matches(msg, m.keys.Back):
		m.uiState.SetScreen(state.ListScreen)
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.uiState.SetMode(state.HelpMode)
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		// Retry when the project could not be found
		if _, ok := m.service.Project(m.detailState.ProjectID); !ok {
			return m.handleRefresh()
		}
		return m, nil

	case key.Matches(msg, m.keys.Left), key.Matches(msg, m.keys.Up):
		m.detailState.PrevOption()
		return m, nil

	case key.Matches(msg, m.keys.Right), key.Matches(msg, m.keys.Down):
		m.detailState.NextOption()
		return m, nil

	case key.Matches(msg, m.keys.Select):
		return m.handleSelectStatus()
	}

	return m, nil
}

// handleSelectStatus sends the highlighted status to the API.
// Choosing the current status, or pressing again while a request is in
// flight, does nothing.
func (m Model) handleSelectStatus() (tea.Model, tea.Cmd) {
	if m.detailState.Updating() {
		return m, nil
	}

	project, ok := m.service.Project(m.detailState.ProjectID)
	if !ok {
		return m, nil
	}

	status := m.detailState.SelectedStatus()
	if status == project.Status {
		return m, nil
	}

	seq := m.detailState.BeginUpdate()
	return m, updateStatus(m.ctx, m.service, seq, project.ID, status)
}
