package settings

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings of the settings panel.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Decrease key.Binding // Cycle choices backwards or lower the opacity.
	Increase key.Binding // Cycle choices forwards or raise the opacity.
	Edit     key.Binding
	Preset   key.Binding
	Apply    key.Binding
	Cancel   key.Binding
	Help     key.Binding

	// Active while a text field is being edited.
	Confirm key.Binding
	Abort   key.Binding
}

// DefaultKeyMap is the built-in key binding set.
var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Decrease: key.NewBinding(
		key.WithKeys("h", "left"),
		key.WithHelp("h/←", "previous"),
	),
	Increase: key.NewBinding(
		key.WithKeys("l", "right"),
		key.WithHelp("l/→", "next"),
	),
	Edit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "edit"),
	),
	Preset: key.NewBinding(
		key.WithKeys("1", "2", "3", "4", "5"),
		key.WithHelp("1-5", "preset"),
	),
	Apply: key.NewBinding(
		key.WithKeys("a", "ctrl+s"),
		key.WithHelp("a", "apply"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc", "q", "ctrl+c"),
		key.WithHelp("esc", "cancel"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Confirm: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "save field"),
	),
	Abort: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "discard field"),
	),
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Edit, k.Preset, k.Apply, k.Cancel, k.Help}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Decrease, k.Increase},
		{k.Edit, k.Preset},
		{k.Apply, k.Cancel, k.Help},
	}
}

type editingKeys struct {
	KeyMap
}

func (k editingKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Confirm, k.Abort}
}

func (k editingKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
