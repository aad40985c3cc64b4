// Package components provides reusable UI components and styles.
// Call InitStyles() before use to initialize all style variables.
package components

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/trackr/internal/config/colors"
	"github.com/thenoetrevino/trackr/internal/tui/theme"
)

// These are cached to avoid recomputing on every redraw.
var (
	// CardStyle defines the appearance of project cards on the list screen
	CardStyle lipgloss.Style

	// SelectedCardStyle defines the card under the cursor
	SelectedCardStyle lipgloss.Style

	// TitleStyle defines the appearance of titles (screen headers, project names)
	TitleStyle lipgloss.Style

	// SubtleStyle is used for secondary text such as dates and hints
	SubtleStyle lipgloss.Style

	// LabelStyle defines field labels on the detail screen and in help
	LabelStyle lipgloss.Style

	// BadgeStyle is the base style for status badges
	BadgeStyle lipgloss.Style

	// ChipStyle defines inactive filter chips
	ChipStyle lipgloss.Style

	// ActiveChipStyle defines the selected filter chip
	ActiveChipStyle lipgloss.Style

	// SearchBoxStyle defines the search input border
	SearchBoxStyle lipgloss.Style

	// FocusedSearchBoxStyle defines the search input while typing
	FocusedSearchBoxStyle lipgloss.Style

	// FormBoxStyle defines the create project form container
	FormBoxStyle lipgloss.Style

	// PanelStyle defines the detail screen container
	PanelStyle lipgloss.Style

	// ErrorPanelStyle defines the error panel (red border)
	ErrorPanelStyle lipgloss.Style

	// AlertBoxStyle defines blocking alerts (red border)
	AlertBoxStyle lipgloss.Style

	// HelpBoxStyle defines the base style for help screen
	HelpBoxStyle lipgloss.Style

	// ButtonStyle defines inactive action buttons
	ButtonStyle lipgloss.Style

	// ActiveButtonStyle defines the highlighted action button
	ActiveButtonStyle lipgloss.Style

	// StatusBarStyle defines the base style for the status bar
	StatusBarStyle lipgloss.Style
)

// InitStyles initializes all styles with the given color scheme
func InitStyles(colors colors.ColorScheme) {
	// Initialize theme colors
	theme.Init(colors)

	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.CardBorder)).
		Padding(0, 1)

	SelectedCardStyle = CardStyle.
		BorderForeground(lipgloss.Color(theme.SelectedBorder)).
		Background(lipgloss.Color(theme.SelectedBg)).
		BorderBackground(lipgloss.Color(theme.SelectedBg))

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Title))

	SubtleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle))

	LabelStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle)).
		Width(14)

	BadgeStyle = lipgloss.NewStyle().
		Bold(true).
		Padding(0, 1)

	ChipStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Normal)).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.CardBorder)).
		Padding(0, 1)

	ActiveChipStyle = ChipStyle.
		Foreground(lipgloss.Color(theme.Highlight)).
		BorderForeground(lipgloss.Color(theme.Highlight)).
		Bold(true)

	SearchBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.CardBorder)).
		Padding(0, 1)

	FocusedSearchBoxStyle = SearchBoxStyle.
		BorderForeground(lipgloss.Color(theme.Highlight))

	FormBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Highlight)).
		Padding(1, 2)

	PanelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.CardBorder)).
		Padding(1, 2)

	ErrorPanelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.ErrorBg)).
		Padding(1, 2).
		Align(lipgloss.Center)

	AlertBoxStyle = ErrorPanelStyle

	HelpBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.InfoBg)).
		Padding(1, 2)

	ButtonStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Normal)).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.CardBorder)).
		Padding(0, 2)

	ActiveButtonStyle = ButtonStyle.
		Foreground(lipgloss.Color(theme.Highlight)).
		BorderForeground(lipgloss.Color(theme.Highlight)).
		Bold(true)

	StatusBarStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.StatusBarText)).
		Background(lipgloss.Color(theme.StatusBarBg))
}
