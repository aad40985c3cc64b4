package components

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/trackr/internal/models"
	"github.com/thenoetrevino/trackr/internal/tui/theme"
)

// StatusColor returns the theme color for a status
func StatusColor(s models.Status) string {
	switch s {
	case models.StatusActive:
		return theme.Active
	case models.StatusOnHold:
		return theme.OnHold
	case models.StatusCompleted:
		return theme.Completed
	}
	return theme.Subtle
}

// RenderStatusBadge renders a status as a small colored pill, e.g. " On Hold "
func RenderStatusBadge(s models.Status) string {
	return BadgeStyle.
		Foreground(lipgloss.Color(theme.StatusBarBg)).
		Background(lipgloss.Color(StatusColor(s))).
		Render(s.Label())
}
