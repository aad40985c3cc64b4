package colors

// Lotus returns the Kanagawa Lotus color scheme (light theme with cream/paper background)
func Lotus() *ColorScheme {
	return &ColorScheme{
		Preset: "lotus",

		Accent: palette.lotusViolet4,

		Active:    palette.lotusGreen,
		OnHold:    palette.lotusYellow,
		Completed: palette.lotusBlue4,

		CardBorder:     palette.lotusViolet1,
		SelectedBorder: palette.lotusAqua,
		SelectedBg:     palette.lotusBlue1,

		Title:  palette.lotusBlue4,
		Subtle: palette.lotusGray3,
		Normal: palette.lotusInk1,

		InfoFg:    palette.lotusTeal3,
		InfoBg:    palette.lotusWhite3,
		SuccessFg: palette.lotusGreen,
		SuccessBg: palette.lotusWhite4,
		ErrorFg:   palette.lotusRed,
		ErrorBg:   palette.lotusRed4,

		StatusBarBg:   palette.lotusViolet4,
		StatusBarText: palette.lotusWhite3,
	}
}
