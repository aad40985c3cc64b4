package tui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/trackr/internal/tui/components"
	"github.com/thenoetrevino/trackr/internal/tui/state"
	"github.com/thenoetrevino/trackr/internal/tui/theme"
)

// viewList renders the project list screen
func (m Model) viewList() string {
	snap := m.snapshot()
	width := m.uiState.Width()

	header := m.listHeader()
	bodyHeight := m.listBodyHeight(header)

	var body string
	switch {
	case snap.Loading && !snap.Refreshing:
		body = lipgloss.Place(width, bodyHeight, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Loading projects...")

	case snap.HasError() && len(snap.Projects) == 0:
		body = components.RenderErrorPanel(components.ErrorPanelProps{
			Message: snap.Error,
			Action:  "press " + m.config.KeyMappings.Refresh + " to try again",
			Width:   width,
		})

	case len(snap.AllProjects) == 0:
		body = components.RenderEmptyState(components.EmptyStateProps{
			Title:   components.EmptyTitle,
			Message: components.EmptyMessage,
			Hint:    "press " + m.config.KeyMappings.CreateProject + " to add one",
			Width:   width,
		})

	case len(snap.Projects) == 0:
		body = components.RenderEmptyState(components.EmptyStateProps{
			Title:   components.NoResultsTitle,
			Message: components.NoResultsMessage,
			Width:   width,
		})

	default:
		offset := m.listState.ScrollOffset()
		end := min(offset+m.listState.VisibleRows(), len(snap.Projects))

		cards := make([]string, 0, end-offset)
		for i := offset; i < end; i++ {
			cards = append(cards, components.RenderProjectCard(components.ProjectCardProps{
				Project:  snap.Projects[i],
				Selected: i == m.listState.Cursor(),
				Width:    width,
			}))
		}
		body = lipgloss.JoinVertical(lipgloss.Left, cards...)
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, body)
}

// listHeader renders everything above the project cards
func (m Model) listHeader() string {
	snap := m.snapshot()
	width := m.uiState.Width()

	sections := []string{m.viewListHeader()}

	searchBox := components.SearchBoxStyle
	if m.uiState.Mode() == state.SearchMode {
		searchBox = components.FocusedSearchBoxStyle
	}
	sections = append(sections, searchBox.Width(width-2).Render(m.search.View()))

	if m.listState.ShowFilters() {
		sections = append(sections, components.RenderFilterChips(snap.StatusFilter))
	}

	// A failed refresh keeps the old list; say so above it
	if snap.HasError() && len(snap.Projects) > 0 {
		sections = append(sections, lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.ErrorFg)).
			Background(lipgloss.Color(theme.ErrorBg)).
			Width(width).
			Render(" ✕ "+snap.Error+"  press "+m.config.KeyMappings.Refresh+" to try again"))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) listBodyHeight(header string) int {
	return max(m.bodyHeight()-lipgloss.Height(header), components.ProjectCardHeight)
}

// syncListWindow tells the list state how many cards fit under the header.
func (m Model) syncListWindow() {
	rows := m.listBodyHeight(m.listHeader()) / components.ProjectCardHeight
	m.listState.SetVisibleRows(rows)
}

// viewListHeader renders the title, project count and refresh indicator
func (m Model) viewListHeader() string {
	snap := m.snapshot()

	left := components.TitleStyle.Render("Projects")
	if !snap.Loading {
		left += components.SubtleStyle.Render(fmt.Sprintf(" (%d)", len(snap.Projects)))
	}

	right := components.SubtleStyle.Render(m.config.KeyMappings.CreateProject + " new project")
	if snap.Refreshing {
		right = m.spinner.View() + components.SubtleStyle.Render(" refreshing")
	}

	gap := max(m.uiState.Width()-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return left + strings.Repeat(" ", gap) + right
}
