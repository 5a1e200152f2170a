package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings for the progress view.
type KeyMap struct {
	Abort key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Abort: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q/ctrl+c", "abort"),
		),
	}
}
