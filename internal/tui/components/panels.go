package components

import (
	"charm.land/lipgloss/v2"
)

// Empty and error state copy
const (
	EmptyTitle          = "No Projects Yet"
	EmptyMessage        = "You don't have any projects tracked yet."
	NoResultsTitle      = "No Results Found"
	NoResultsMessage    = "We couldn't find any projects matching your criteria."
	ErrorTitle          = "Something went wrong"
	ProjectNotFoundText = "Project not found."
)

type EmptyStateProps struct {
	Title   string
	Message string
	Hint    string
	Width   int
}

// RenderEmptyState renders a centered title, message and optional key hint
func RenderEmptyState(props EmptyStateProps) string {
	lines := []string{
		TitleStyle.Render(props.Title),
		"",
		props.Message,
	}
	if props.Hint != "" {
		lines = append(lines, "", SubtleStyle.Render(props.Hint))
	}
	return lipgloss.PlaceHorizontal(props.Width, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, lines...))
}

type ErrorPanelProps struct {
	Message string
	Action  string
	Width   int
}

// RenderErrorPanel renders "Something went wrong", the message and a retry action
func RenderErrorPanel(props ErrorPanelProps) string {
	body := lipgloss.JoinVertical(lipgloss.Center,
		TitleStyle.Render(ErrorTitle),
		"",
		props.Message,
		"",
		ActiveButtonStyle.Render(props.Action),
	)
	return lipgloss.PlaceHorizontal(props.Width, lipgloss.Center, ErrorPanelStyle.Render(body))
}

type AlertProps struct {
	Title   string
	Message string
}

// RenderAlert renders a blocking alert box; the caller places it on screen
func RenderAlert(props AlertProps) string {
	return AlertBoxStyle.Render(lipgloss.JoinVertical(lipgloss.Center,
		TitleStyle.Render(props.Title),
		"",
		props.Message,
		"",
		SubtleStyle.Render("press any key to dismiss"),
	))
}
