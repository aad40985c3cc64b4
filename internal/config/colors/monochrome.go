package colors

// Monochrome returns a black and white color scheme
func Monochrome() *ColorScheme {
	return &ColorScheme{
		Preset: "monochrome",

		Accent: "#FFFFFF",

		Active:    "#FFFFFF",
		OnHold:    "#A8A8A8",
		Completed: "#585858",

		CardBorder:     "#585858",
		SelectedBorder: "#FFFFFF",
		SelectedBg:     "#3A3A3A",

		Title:  "#FFFFFF",
		Subtle: "#585858",
		Normal: "#D0D0D0",

		InfoFg:    "#FFFFFF",
		InfoBg:    "#1C1C1C",
		SuccessFg: "#FFFFFF",
		SuccessBg: "#3A3A3A",
		ErrorFg:   "#FFFFFF",
		ErrorBg:   "#585858",

		StatusBarBg:   "#3A3A3A",
		StatusBarText: "#FFFFFF",
	}
}
