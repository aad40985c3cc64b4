package tui

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/trackr/internal/tui/state"
)

// ============================================================================
// LIST SCREEN HANDLERS
// ============================================================================

// handleListKey handles keyboard input on the list screen in normal mode.
func (m Model) handleListKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	snap := m.snapshot()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()

	case key.Matches(msg, m.keys.Help):
		m.uiState.SetMode(state.HelpMode)
		return m, nil

	case key.Matches(msg, m.keys.Search):
		return m.handleEnterSearch()

	case key.Matches(msg, m.keys.Back):
		// esc outside search clears a lingering query
		if snap.SearchQuery != "" {
			return m.handleSearchCancel()
		}
		return m, nil

	case key.Matches(msg, m.keys.ToggleFilters):
		m.listState.ToggleFilters()
		return m, nil

	case key.Matches(msg, m.keys.NextFilter):
		if !m.listState.ShowFilters() {
			m.listState.ToggleFilters()
		}
		m.service.SetStatusFilter(snap.StatusFilter.Next())
		m.listState.Reset()
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		return m.handleRefresh()

	case key.Matches(msg, m.keys.Up):
		m.listState.MoveUp()
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.listState.MoveDown(len(snap.Projects))
		return m, nil

	case key.Matches(msg, m.keys.Open):
		return m.handleOpenProject()

	case key.Matches(msg, m.keys.Create):
		return m.handleOpenCreate()
	}

	return m, nil
}

// handleRefresh refetches the list. With nothing on screen it shows the
// full spinner, otherwise the inline refreshing indicator.
func (m Model) handleRefresh() (tea.Model, tea.Cmd) {
	if m.busy() {
		return m, nil
	}
	refresh := len(m.snapshot().AllProjects) > 0
	return m, loadProjects(m.ctx, m.service, refresh)
}

// handleOpenProject shows the detail screen for the selected project.
func (m Model) handleOpenProject() (tea.Model, tea.Cmd) {
	id := m.selectedProjectID()
	if id == "" {
		return m, nil
	}
	project, ok := m.service.Project(id)
	if !ok {
		return m, nil
	}
	m.detailState.Open(id, project.Status)
	m.uiState.SetScreen(state.DetailScreen)
	return m, nil
}

// handleOpenCreate shows a blank create form.
func (m Model) handleOpenCreate() (tea.Model, tea.Cmd) {
	m.formState.Reset()
	form := m.openProjectForm()
	m.uiState.SetScreen(state.CreateScreen)
	return m, form.Init()
}

// ============================================================================
// SEARCH MODE HANDLERS
// ============================================================================

// handleEnterSearch focuses the search box, keeping any existing query.
func (m Model) handleEnterSearch() (tea.Model, tea.Cmd) {
	m.uiState.SetMode(state.SearchMode)
	return m, m.search.Focus()
}

// handleSearchMode handles keyboard input in search mode.
// Every edit filters the list immediately.
func (m Model) handleSearchMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		return m.handleSearchConfirm()
	case "esc":
		return m.handleSearchCancel()
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.executeSearch()
	return m, cmd
}

// handleSearchConfirm keeps the query and returns to normal mode.
func (m Model) handleSearchConfirm() (tea.Model, tea.Cmd) {
	m.search.Blur()
	m.uiState.SetMode(state.NormalMode)
	return m, nil
}

// handleSearchCancel clears the search and returns to normal mode.
func (m Model) handleSearchCancel() (tea.Model, tea.Cmd) {
	m.search.Reset()
	m.search.Blur()
	m.uiState.SetMode(state.NormalMode)
	m.executeSearch()
	return m, nil
}

// executeSearch pushes the search box value into the container.
func (m Model) executeSearch() {
	if m.search.Value() == m.snapshot().SearchQuery {
		return
	}
	m.service.SetSearchQuery(m.search.Value())
	m.listState.Reset()
}
