package components

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/trackr/internal/models"
)

// RenderFilterChips renders every filter option with the active one highlighted
func RenderFilterChips(active models.StatusFilter) string {
	chips := make([]string, 0, len(models.FilterOptions()))
	for _, f := range models.FilterOptions() {
		style := ChipStyle
		if f == active {
			style = ActiveChipStyle
		}
		chips = append(chips, style.Render(f.Label()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, chips...)
}
