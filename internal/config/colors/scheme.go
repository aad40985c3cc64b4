package colors

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name (e.g., "default", "monochrome", "wave")
	Preset string `yaml:"preset"`

	// Primary accent color (used for selections, titles, highlights)
	Accent string `yaml:"accent"`

	// Status badge colors
	Active    string `yaml:"active"`
	OnHold    string `yaml:"on_hold"`
	Completed string `yaml:"completed"`

	// UI element colors
	CardBorder     string `yaml:"card_border"`
	SelectedBorder string `yaml:"selected_border"`
	SelectedBg     string `yaml:"selected_bg"`

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"` // Muted/placeholder text
	Normal string `yaml:"normal"`

	// Notification colors (foreground/background pairs)
	InfoFg    string `yaml:"info_fg"`
	InfoBg    string `yaml:"info_bg"`
	SuccessFg string `yaml:"success_fg"`
	SuccessBg string `yaml:"success_bg"`
	ErrorFg   string `yaml:"error_fg"`
	ErrorBg   string `yaml:"error_bg"`

	// Status bar
	StatusBarBg   string `yaml:"status_bar_bg"`
	StatusBarText string `yaml:"status_bar_text"`
}

// Presets lists the preset names accepted in the theme section
func Presets() []string {
	return []string{"default", "monochrome", "wave", "dragon", "lotus"}
}

// GetPreset returns a preset color scheme by name.
// Unknown names fall back to the default scheme.
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	case "wave":
		return Wave()
	case "dragon":
		return Dragon()
	case "lotus":
		return Lotus()
	default:
		return Default()
	}
}

// fields returns pointers to every color value, in declaration order
func (c *ColorScheme) fields() []*string {
	return []*string{
		&c.Accent,
		&c.Active, &c.OnHold, &c.Completed,
		&c.CardBorder, &c.SelectedBorder, &c.SelectedBg,
		&c.Title, &c.Subtle, &c.Normal,
		&c.InfoFg, &c.InfoBg, &c.SuccessFg, &c.SuccessBg, &c.ErrorFg, &c.ErrorBg,
		&c.StatusBarBg, &c.StatusBarText,
	}
}

// ApplyDefaults fills in missing color values using the preset as base
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset)
	if c.Preset == "" {
		c.Preset = preset.Preset
	}

	src := preset.fields()
	for i, dst := range c.fields() {
		if *dst == "" {
			*dst = *src[i]
		}
	}
}

// MergeFrom overrides colors with every non-empty value from other
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	if other.Preset != "" {
		c.Preset = other.Preset
	}

	src := other.fields()
	for i, dst := range c.fields() {
		if *src[i] != "" {
			*dst = *src[i]
		}
	}
}
