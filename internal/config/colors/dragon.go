package colors

// Dragon returns the Kanagawa Dragon color scheme (dark theme with warm earth tones)
func Dragon() *ColorScheme {
	return &ColorScheme{
		Preset: "dragon",

		Accent: palette.dragonViolet,

		Active:    palette.dragonGreen2,
		OnHold:    palette.dragonYellow,
		Completed: palette.dragonBlue2,

		CardBorder:     palette.dragonBlack6,
		SelectedBorder: palette.dragonAqua,
		SelectedBg:     palette.dragonBlack4,

		Title:  palette.dragonBlue2,
		Subtle: palette.dragonAsh,
		Normal: palette.dragonWhite,

		InfoFg:    palette.dragonBlue2,
		InfoBg:    palette.dragonBlack3,
		SuccessFg: palette.dragonGreen2,
		SuccessBg: palette.winterGreen,
		ErrorFg:   palette.dragonRed,
		ErrorBg:   palette.winterRed,

		StatusBarBg:   palette.dragonViolet, // Matches accent
		StatusBarText: palette.dragonWhite,  // Matches normal text
	}
}
