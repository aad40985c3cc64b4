package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Project list
	OpenProject   string `yaml:"open_project"`
	CreateProject string `yaml:"create_project"`
	Refresh       string `yaml:"refresh"`
	Search        string `yaml:"search"`
	ToggleFilters string `yaml:"toggle_filters"`
	NextFilter    string `yaml:"next_filter"`

	// Forms
	SaveForm  string `yaml:"save_form"`
	NextField string `yaml:"next_field"`
	PrevField string `yaml:"prev_field"`

	// Navigation
	PrevProject string `yaml:"prev_project"`
	NextProject string `yaml:"next_project"`
	Back        string `yaml:"back"`

	// Other
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		// Project list
		OpenProject:   "enter",
		CreateProject: "n",
		Refresh:       "r",
		Search:        "/",
		ToggleFilters: "f",
		NextFilter:    "tab",

		// Forms
		SaveForm:  "ctrl+s",
		NextField: "tab",
		PrevField: "shift+tab",

		// Navigation
		PrevProject: "k",
		NextProject: "j",
		Back:        "esc",

		// Other
		ShowHelp: "?",
		Quit:     "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	if k.OpenProject == "" {
		k.OpenProject = defaults.OpenProject
	}
	if k.CreateProject == "" {
		k.CreateProject = defaults.CreateProject
	}
	if k.Refresh == "" {
		k.Refresh = defaults.Refresh
	}
	if k.Search == "" {
		k.Search = defaults.Search
	}
	if k.ToggleFilters == "" {
		k.ToggleFilters = defaults.ToggleFilters
	}
	if k.NextFilter == "" {
		k.NextFilter = defaults.NextFilter
	}
	if k.SaveForm == "" {
		k.SaveForm = defaults.SaveForm
	}
	if k.NextField == "" {
		k.NextField = defaults.NextField
	}
	if k.PrevField == "" {
		k.PrevField = defaults.PrevField
	}
	if k.PrevProject == "" {
		k.PrevProject = defaults.PrevProject
	}
	if k.NextProject == "" {
		k.NextProject = defaults.NextProject
	}
	if k.Back == "" {
		k.Back = defaults.Back
	}
	if k.ShowHelp == "" {
		k.ShowHelp = defaults.ShowHelp
	}
	if k.Quit == "" {
		k.Quit = defaults.Quit
	}
}
