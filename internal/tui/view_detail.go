package tui

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/trackr/internal/models"
	"github.com/thenoetrevino/trackr/internal/tui/components"
)

// viewDetail renders one project with its status options
func (m Model) viewDetail() string {
	snap := m.snapshot()
	width := m.uiState.Width()

	project, ok := m.service.Project(m.detailState.ProjectID)
	if !ok {
		if snap.Loading || snap.Refreshing {
			return lipgloss.Place(width, m.bodyHeight(), lipgloss.Center, lipgloss.Center,
				m.spinner.View()+" Loading project...")
		}
		return components.RenderErrorPanel(components.ErrorPanelProps{
			Message: components.ProjectNotFoundText,
			Action:  "press " + m.config.KeyMappings.Refresh + " to try again, " + m.config.KeyMappings.Back + " to go back",
			Width:   width,
		})
	}

	inner := max(width-8, 20)

	badge := components.RenderStatusBadge(project.Status)
	name := components.TitleStyle.Render(project.Name)
	gap := max(inner-lipgloss.Width(name)-lipgloss.Width(badge), 1)

	rows := []string{
		name + strings.Repeat(" ", gap) + badge,
		"",
		components.LabelStyle.Render("Client") + project.ClientName,
		components.LabelStyle.Render("Start Date") + project.StartDate,
	}
	if project.EndDate != "" {
		rows = append(rows, components.LabelStyle.Render("End Date")+project.EndDate)
	}
	rows = append(rows,
		"",
		components.LabelStyle.Render("Description"),
		components.RenderDescription(components.DescriptionProps{
			Description: project.Description,
			Width:       inner,
		}),
		"",
		components.TitleStyle.Render("Update Status"),
		m.viewStatusOptions(project.Status),
	)

	if m.detailState.Updating() {
		rows = append(rows, m.spinner.View()+" Updating…")
	} else {
		rows = append(rows, components.SubtleStyle.Render("←/→ choose · enter apply · "+m.config.KeyMappings.Back+" back"))
	}

	return components.PanelStyle.Width(width).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// viewStatusOptions renders the three status buttons, marking the current one
func (m Model) viewStatusOptions(current models.Status) string {
	buttons := make([]string, 0, len(models.AllStatuses()))
	for i, s := range models.AllStatuses() {
		label := s.Label()
		if s == current {
			label = "✓ " + label
		}
		style := components.ButtonStyle
		if i == m.detailState.OptionCursor() {
			style = components.ActiveButtonStyle
		}
		buttons = append(buttons, style.Render(label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, buttons...)
}
