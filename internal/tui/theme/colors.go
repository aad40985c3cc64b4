package theme

import "github.com/thenoetrevino/trackr/internal/config/colors"

// Colors holds the current theme colors, initialized by Init
var (
	Highlight      string
	Title          string
	Subtle         string
	Normal         string
	Active         string
	OnHold         string
	Completed      string
	CardBorder     string
	SelectedBorder string
	SelectedBg     string
	InfoFg         string
	InfoBg         string
	SuccessFg      string
	SuccessBg      string
	ErrorFg        string
	ErrorBg        string
	StatusBarBg    string
	StatusBarText  string
)

// Init initializes the theme colors from the given color scheme
func Init(scheme colors.ColorScheme) {
	scheme.ApplyDefaults()

	Highlight = scheme.Accent
	Title = scheme.Title
	Subtle = scheme.Subtle
	Normal = scheme.Normal
	Active = scheme.Active
	OnHold = scheme.OnHold
	Completed = scheme.Completed
	CardBorder = scheme.CardBorder
	SelectedBorder = scheme.SelectedBorder
	SelectedBg = scheme.SelectedBg
	InfoFg = scheme.InfoFg
	InfoBg = scheme.InfoBg
	SuccessFg = scheme.SuccessFg
	SuccessBg = scheme.SuccessBg
	ErrorFg = scheme.ErrorFg
	ErrorBg = scheme.ErrorBg
	StatusBarBg = scheme.StatusBarBg
	StatusBarText = scheme.StatusBarText
}
