package selector

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the selector's key bindings.
type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Confirm key.Binding
	Cancel  key.Binding
}

var keys = keyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "w", "W", "k", "K", "left", "a", "A", "h", "H"),
		key.WithHelp("↑/w/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "s", "S", "j", "J", "right", "d", "D", "l", "L"),
		key.WithHelp("↓/s/j", "down"),
	),
	Confirm: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "select"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("q", "Q", "esc", "ctrl+c"),
		key.WithHelp("q/esc", "cancel"),
	),
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Confirm, k.Cancel}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
