package components

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/trackr/internal/models"
)

// ProjectCardHeight is the rendered height of a card including its border
const ProjectCardHeight = 5

type ProjectCardProps struct {
	Project  *models.Project
	Selected bool
	Width    int
}

// RenderProjectCard renders one list row: name and badge, client, start date
func RenderProjectCard(props ProjectCardProps) string {
	p := props.Project
	style := CardStyle
	if props.Selected {
		style = SelectedCardStyle
	}

	// border + padding
	inner := max(props.Width-4, 10)

	badge := RenderStatusBadge(p.Status)
	name := TitleStyle.Render(truncate(p.Name, inner-lipgloss.Width(badge)-1))
	gap := max(inner-lipgloss.Width(name)-lipgloss.Width(badge), 1)
	header := name + strings.Repeat(" ", gap) + badge

	body := lipgloss.JoinVertical(lipgloss.Left,
		header,
		"Client: "+truncate(p.ClientName, inner-len("Client: ")),
		SubtleStyle.Render("Started "+p.StartDate),
	)

	return style.Width(props.Width).Render(body)
}

// truncate shortens s to n display columns, ending with an ellipsis
func truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= n {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > n {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}
