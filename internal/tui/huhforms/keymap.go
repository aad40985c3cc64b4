package huhforms

import (
	"charm.land/bubbles/v2/key"
	"charm.land/huh/v2"
	"github.com/thenoetrevino/trackr/internal/config"
)

// CreateKeyMap builds the form keymap from the configured field keys.
// enter still advances single-line fields; shift+enter adds a newline in the
// description next to the default alt+enter and ctrl+j.
func CreateKeyMap(km config.KeyMappings) *huh.KeyMap {
	keymap := huh.NewDefaultKeyMap()

	next := key.NewBinding(key.WithKeys(km.NextField, "enter"), key.WithHelp(km.NextField, "next"))
	prev := key.NewBinding(key.WithKeys(km.PrevField), key.WithHelp(km.PrevField, "back"))

	keymap.Input.Next = next
	keymap.Input.Prev = prev
	keymap.Select.Next = next
	keymap.Select.Prev = prev

	keymap.Text.Next = key.NewBinding(key.WithKeys(km.NextField), key.WithHelp(km.NextField, "next"))
	keymap.Text.Prev = prev
	keymap.Text.NewLine = key.NewBinding(
		key.WithKeys("shift+enter", "alt+enter", "ctrl+j"),
		key.WithHelp("shift+enter / alt+enter / ctrl+j", "new line"),
	)

	return keymap
}
