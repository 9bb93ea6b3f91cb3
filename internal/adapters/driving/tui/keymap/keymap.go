// Package keymap defines keybindings for the TUI.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the TUI.
type KeyMap struct {
	// Quit exits the application.
	Quit key.Binding

	// NextPanel moves focus to the next panel.
	NextPanel key.Binding

	// PrevPanel moves focus to the previous panel.
	PrevPanel key.Binding

	// Refresh remounts the read-only panels.
	Refresh key.Binding

	// Open opens the PDF file picker.
	Open key.Binding

	// Submit uploads the selected file.
	Submit key.Binding

	// Up scrolls the focused panel up.
	Up key.Binding

	// Down scrolls the focused panel down.
	Down key.Binding

	// Dismiss closes a blocking notice.
	Dismiss key.Binding

	// Cancel leaves the file picker.
	Cancel key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		NextPanel: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next panel"),
		),
		PrevPanel: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev panel"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Open: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "choose pdf"),
		),
		Submit: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "upload"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("enter", "esc"),
			key.WithHelp("enter", "dismiss"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc", "q"),
			key.WithHelp("esc", "cancel"),
		),
	}
}

// ShortHelp returns the bindings shown in the status bar.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Open, k.Submit, k.NextPanel, k.Refresh, k.Quit}
}

// NoticeHelp returns the bindings shown while a notice is open.
func (k *KeyMap) NoticeHelp() []key.Binding {
	return []key.Binding{k.Dismiss}
}

// FullHelp returns the full list of keybindings for the help view.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Open, k.Submit, k.Cancel},
		{k.NextPanel, k.PrevPanel, k.Up, k.Down},
		{k.Refresh, k.Dismiss, k.Quit},
	}
}

// Matches checks if a key string matches a binding.
func Matches(keyStr string, binding key.Binding) bool {
	for _, k := range binding.Keys() {
		if k == keyStr {
			return true
		}
	}
	return false
}
