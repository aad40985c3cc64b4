package tui

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/trackr/internal/tui/components"
)

// viewCreate renders the new project form
func (m Model) viewCreate() string {
	form := m.formState
	km := m.config.KeyMappings

	rows := []string{
		components.TitleStyle.Render("New Project"),
		"",
	}
	if form.Form != nil {
		rows = append(rows, form.Form.View())
	}
	rows = append(rows, "")

	if form.Saving() {
		rows = append(rows, m.spinner.View()+" Saving…")
	} else {
		rows = append(rows, components.SubtleStyle.Render(
			km.NextField+"/"+km.PrevField+" move · "+km.SaveForm+" save · "+km.Back+" cancel"))
	}

	box := components.FormBoxStyle.
		Width(min(m.uiState.Width()-4, 72)).
		Render(lipgloss.JoinVertical(lipgloss.Left, rows...))

	return lipgloss.Place(m.uiState.Width(), m.bodyHeight(), lipgloss.Center, lipgloss.Center, box)
}
