// Package styles holds the lipgloss styles for human-readable CLI output.
package styles

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/trackr/internal/config/colors"
	"github.com/thenoetrevino/trackr/internal/models"
)

var (
	// Card styles
	CardStyle lipgloss.Style
	CardWidth = 80

	// Text styles
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style
	LabelStyle    lipgloss.Style // For field labels like "Client:", "Started:"
	ValueStyle    lipgloss.Style // For field values
	SectionStyle  lipgloss.Style // For section headers like "Description"

	// Result styles
	SuccessStyle lipgloss.Style
	ErrorStyle   lipgloss.Style

	statusColors map[models.Status]string
)

func init() {
	Init(colors.ColorScheme{})
}

// Init initializes all CLI styles with the given color scheme
func Init(scheme colors.ColorScheme) {
	scheme.ApplyDefaults()

	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(scheme.Accent)).
		Padding(1, 2).
		Width(CardWidth)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Title))

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Subtle))

	LabelStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Accent))

	ValueStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Normal))

	SectionStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Accent)).
		Bold(true).
		MarginTop(1)

	SuccessStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.SuccessFg)).
		Background(lipgloss.Color(scheme.SuccessBg)).
		Padding(0, 1)

	ErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.ErrorFg)).
		Background(lipgloss.Color(scheme.ErrorBg)).
		Padding(0, 1)

	statusColors = map[models.Status]string{
		models.StatusActive:    scheme.Active,
		models.StatusOnHold:    scheme.OnHold,
		models.StatusCompleted: scheme.Completed,
	}
}

// ═══════════════════════════════════════════════════════════════════
// HELPER FUNCTIONS
// ═══════════════════════════════════════════════════════════════════

// StatusText renders the status label in its theme color
func StatusText(s models.Status) string {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(statusColors[s])).
		Render(s.Label())
}

// RenderProjectCard renders every field of a project inside a bordered card
func RenderProjectCard(p *models.Project) string {
	field := func(label, value string) string {
		return LabelStyle.Render(label+":") + " " + ValueStyle.Render(value)
	}

	lines := []string{
		TitleStyle.Render(p.Name) + "  " + StatusText(p.Status),
		SubtitleStyle.Render("ID " + p.ID),
		"",
		field("Client", p.ClientName),
		field("Started", p.StartDate),
	}
	if p.EndDate != "" {
		lines = append(lines, field("Ended", p.EndDate))
	}
	if p.Description != "" {
		lines = append(lines, SectionStyle.Render("Description"), ValueStyle.Render(p.Description))
	}

	return CardStyle.Render(strings.Join(lines, "\n"))
}
