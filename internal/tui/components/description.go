package components

import (
	"strings"
	"sync"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/glamour"
)

// NoDescriptionText stands in for a project saved without a description
const NoDescriptionText = "No description provided."

// Description text wraps at a readable measure even on wide terminals
const (
	maxDescriptionWidth = 72
	minDescriptionWidth = 20
)

type DescriptionProps struct {
	Description string
	Width       int
}

// descriptionRenderers holds one glamour renderer per wrap width
var descriptionRenderers sync.Map // map[int]*glamour.TermRenderer

func descriptionWidth(width int) int {
	return min(max(width, minDescriptionWidth), maxDescriptionWidth)
}

func descriptionRenderer(width int) (*glamour.TermRenderer, error) {
	if cached, ok := descriptionRenderers.Load(width); ok {
		return cached.(*glamour.TermRenderer), nil
	}

	// Line breaks typed in the create form are kept as written
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
		glamour.WithPreservedNewLines(),
	)
	if err != nil {
		return nil, err
	}

	actual, _ := descriptionRenderers.LoadOrStore(width, renderer)
	return actual.(*glamour.TermRenderer), nil
}

// RenderDescription renders a project description as markdown for the detail panel.
// If glamour fails the text is wrapped as plain text instead.
func RenderDescription(props DescriptionProps) string {
	text := strings.TrimSpace(props.Description)
	if text == "" {
		return SubtleStyle.Italic(true).Render(NoDescriptionText)
	}

	width := descriptionWidth(props.Width)
	if renderer, err := descriptionRenderer(width); err == nil {
		if out, err := renderer.Render(text); err == nil {
			return strings.Trim(out, "\n")
		}
	}

	return lipgloss.NewStyle().Width(width).Render(text)
}
