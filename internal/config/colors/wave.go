package colors

// Wave returns the Kanagawa Wave color scheme (dark theme with blue/purple accents)
func Wave() *ColorScheme {
	return &ColorScheme{
		Preset: "wave",

		Accent: palette.oniViolet,

		Active:    palette.springGreen,
		OnHold:    palette.carpYellow,
		Completed: palette.crystalBlue,

		CardBorder:     palette.sumiInk6,
		SelectedBorder: palette.waveAqua2,
		SelectedBg:     palette.waveBlue1,

		Title:  palette.crystalBlue,
		Subtle: palette.fujiGray,
		Normal: palette.fujiWhite,

		InfoFg:    palette.crystalBlue,
		InfoBg:    palette.winterBlue,
		SuccessFg: palette.springGreen,
		SuccessBg: palette.winterGreen,
		ErrorFg:   palette.peachRed,
		ErrorBg:   palette.winterRed,

		StatusBarBg:   palette.sumiInk4,
		StatusBarText: palette.fujiWhite,
	}
}
