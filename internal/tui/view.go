package tui

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/trackr/internal/tui/components"
	"github.com/thenoetrevino/trackr/internal/tui/notifications"
	"github.com/thenoetrevino/trackr/internal/tui/state"
)

// View renders the current state of the application
// This implements the "View" part of the Model-View-Update pattern
func (m Model) View() tea.View {
	var view tea.View
	view.AltScreen = true

	// Wait for terminal size to be initialized
	if m.uiState.Width() == 0 {
		view.Content = "Loading..."
		return view
	}

	var body string
	switch {
	case m.uiState.Mode() == state.HelpMode:
		body = m.viewHelp()
	case m.uiState.Screen() == state.DetailScreen:
		body = m.viewDetail()
	case m.uiState.Screen() == state.CreateScreen:
		body = m.viewCreate()
	default:
		body = m.viewList()
	}

	base := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.PlaceVertical(m.bodyHeight(), lipgloss.Top, body),
		m.viewStatusBar(),
	)

	layers := []*lipgloss.Layer{lipgloss.NewLayer(base)}
	layers = append(layers, m.notificationState.GetLayers(notifications.RenderFromState)...)

	if alert := m.uiState.Alert(); alert != nil {
		box := components.RenderAlert(components.AlertProps{Title: alert.Title, Message: alert.Message})
		x := max((m.uiState.Width()-lipgloss.Width(box))/2, 0)
		y := max((m.uiState.Height()-lipgloss.Height(box))/2, 0)
		layers = append(layers, lipgloss.NewLayer(box).X(x).Y(y).Z(2))
	}

	view.Content = lipgloss.NewCanvas(layers...).Render()
	return view
}

// bodyHeight is the terminal height minus the status bar
func (m Model) bodyHeight() int {
	return max(m.uiState.Height()-1, 1)
}

// viewStatusBar renders the bottom bar with screen hints
func (m Model) viewStatusBar() string {
	var left string
	switch m.uiState.Screen() {
	case state.DetailScreen:
		left = "trackr · project"
	case state.CreateScreen:
		left = "trackr · new project"
	default:
		left = "trackr · projects"
		if m.uiState.Mode() == state.SearchMode {
			left = "trackr · search"
		}
	}

	return components.RenderStatusBar(components.StatusBarProps{
		Width: m.uiState.Width(),
		Left:  left,
		Right: "press " + m.config.KeyMappings.ShowHelp + " for help",
	})
}

// viewHelp renders the keyboard shortcut reference
func (m Model) viewHelp() string {
	km := m.config.KeyMappings
	sections := []struct {
		title string
		rows  [][2]string
	}{
		{"PROJECTS", [][2]string{
			{km.OpenProject, "Open selected project"},
			{km.CreateProject, "New project"},
			{km.Refresh, "Refresh list"},
			{km.Search, "Search projects or clients"},
			{km.ToggleFilters, "Show or hide status filters"},
			{km.NextFilter, "Next status filter"},
		}},
		{"DETAIL", [][2]string{
			{"h/l", "Choose status"},
			{"enter", "Apply status"},
		}},
		{"NEW PROJECT", [][2]string{
			{km.NextField + "/" + km.PrevField, "Next / previous field"},
			{"h/l", "Change status"},
			{"enter", "Save from the status field"},
			{km.SaveForm, "Save"},
		}},
		{"NAVIGATION", [][2]string{
			{km.PrevProject + "/" + km.NextProject, "Move up / down"},
			{km.Back, "Back, cancel or clear search"},
			{km.Quit, "Quit"},
		}},
	}

	var b strings.Builder
	b.WriteString(components.TitleStyle.Render("trackr - Keyboard Shortcuts"))
	for _, section := range sections {
		b.WriteString("\n\n" + components.TitleStyle.Render(section.title))
		for _, row := range section.rows {
			b.WriteString("\n  " + components.LabelStyle.Render(row[0]) + row[1])
		}
	}
	b.WriteString("\n\n" + components.SubtleStyle.Render("press any key to close"))

	return lipgloss.Place(m.uiState.Width(), m.bodyHeight(), lipgloss.Center, lipgloss.Center,
		components.HelpBoxStyle.Render(b.String()))
}
