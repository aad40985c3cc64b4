package tui

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/huh/v2"
	"github.com/thenoetrevino/trackr/internal/tui/huhforms"
	"github.com/thenoetrevino/trackr/internal/tui/state"
)

// ============================================================================
// CREATE SCREEN HANDLERS
// ============================================================================

// handleCreateKey handles keyboard input on the create form.
// Cancel and save are handled here; every other key goes to the huh form.
func (m Model) handleCreateKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		// A save still in flight finishes on its own; Reset makes its result stale
		m.formState.Reset()
		m.uiState.SetScreen(state.ListScreen)
		return m, nil

	case key.Matches(msg, m.keys.Save):
		return m.handleSaveProject()
	}

	if m.formState.Saving() {
		return m, nil
	}

	return m.updateProjectForm(msg)
}

// updateProjectForm forwards a message to the huh form and saves once the
// user submits from the last field.
func (m Model) updateProjectForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.formState.Form == nil {
		return m, nil
	}

	model, cmd := m.formState.Form.Update(msg)
	m.formState.Form = model.(*huh.Form)

	if m.formState.Completed() && !m.formState.Saving() {
		return m.handleSaveProject()
	}

	return m, cmd
}

// handleSaveProject validates the draft and sends it to the API.
// A rejected draft stays on screen for the user to fix.
func (m Model) handleSaveProject() (tea.Model, tea.Cmd) {
	form := m.formState
	if form.Saving() {
		return m, nil
	}

	if form.MissingRequired() {
		m.uiState.ShowAlert(alertTitleError, msgMissingFields)
		return m, m.reopenProjectForm()
	}

	input := form.Input()
	if err := input.Validate(); err != nil {
		m.uiState.ShowAlert(alertTitleInvalid, validationMessage(err))
		return m, m.reopenProjectForm()
	}

	seq := form.BeginSave()
	return m, addProject(m.ctx, m.service, seq, input)
}

// openProjectForm builds a themed form over the current draft.
func (m Model) openProjectForm() *huh.Form {
	m.formState.Form = m.formState.Open().
		WithKeyMap(huhforms.CreateKeyMap(m.config.KeyMappings)).
		WithTheme(huhforms.CreateTrackrTheme(m.config.ColorScheme)).
		WithWidth(formWidth(m.uiState.Width()))
	return m.formState.Form
}

// reopenProjectForm replaces a submitted form so the draft can be edited again.
// The values live in the form state, so nothing typed is lost.
func (m Model) reopenProjectForm() tea.Cmd {
	if m.formState.Form != nil && !m.formState.Completed() {
		return nil
	}
	return m.openProjectForm().Init()
}

// formWidth fits the form inside its box on narrow terminals
func formWidth(termWidth int) int {
	return max(min(termWidth-10, 64), 20)
}
