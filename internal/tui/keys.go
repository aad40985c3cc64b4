package tui

import (
	"charm.land/bubbles/v2/key"
	"github.com/thenoetrevino/trackr/internal/config"
)

// keyMap holds the bindings built from the configured key mappings.
// Arrow keys are always bound alongside the configured letters.
type keyMap struct {
	Open          key.Binding
	Create        key.Binding
	Refresh       key.Binding
	Search        key.Binding
	ToggleFilters key.Binding
	NextFilter    key.Binding
	Save          key.Binding
	Up            key.Binding
	Down          key.Binding
	Left          key.Binding
	Right         key.Binding
	Select        key.Binding
	Back          key.Binding
	Help          key.Binding
	Quit          key.Binding
	ForceQuit     key.Binding
}

func newKeyMap(km config.KeyMappings) keyMap {
	return keyMap{
		Open:          key.NewBinding(key.WithKeys(km.OpenProject), key.WithHelp(km.OpenProject, "open project")),
		Create:        key.NewBinding(key.WithKeys(km.CreateProject), key.WithHelp(km.CreateProject, "new project")),
		Refresh:       key.NewBinding(key.WithKeys(km.Refresh), key.WithHelp(km.Refresh, "refresh")),
		Search:        key.NewBinding(key.WithKeys(km.Search), key.WithHelp(km.Search, "search")),
		ToggleFilters: key.NewBinding(key.WithKeys(km.ToggleFilters), key.WithHelp(km.ToggleFilters, "show/hide filters")),
		NextFilter:    key.NewBinding(key.WithKeys(km.NextFilter), key.WithHelp(km.NextFilter, "next status filter")),
		Save:          key.NewBinding(key.WithKeys(km.SaveForm), key.WithHelp(km.SaveForm, "save")),
		Up:            key.NewBinding(key.WithKeys(km.PrevProject, "up"), key.WithHelp(km.PrevProject+"/↑", "up")),
		Down:          key.NewBinding(key.WithKeys(km.NextProject, "down"), key.WithHelp(km.NextProject+"/↓", "down")),
		Left:          key.NewBinding(key.WithKeys("h", "left"), key.WithHelp("h/←", "previous option")),
		Right:         key.NewBinding(key.WithKeys("l", "right"), key.WithHelp("l/→", "next option")),
		Select:        key.NewBinding(key.WithKeys("enter", "space"), key.WithHelp("enter", "select")),
		Back:          key.NewBinding(key.WithKeys(km.Back), key.WithHelp(km.Back, "back")),
		Help:          key.NewBinding(key.WithKeys(km.ShowHelp), key.WithHelp(km.ShowHelp, "help")),
		Quit:          key.NewBinding(key.WithKeys(km.Quit, "ctrl+c"), key.WithHelp(km.Quit, "quit")),
		ForceQuit:     key.NewBinding(key.WithKeys("ctrl+c")),
	}
}
