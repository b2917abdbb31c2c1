// Package keymap defines keybindings for the TUI.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the TUI.
type KeyMap struct {
	// Submit validates the current field.
	Submit key.Binding

	// Cancel ends the session without a chart.
	Cancel key.Binding

	// Interrupt clears the current field and asks for it again.
	Interrupt key.Binding

	// Complete copies the highlighted timezone into the field.
	Complete key.Binding

	// Up moves up in the timezone list.
	Up key.Binding

	// Down moves down in the timezone list.
	Down key.Binding

	// Yes answers a yes/no question.
	Yes key.Binding

	// No answers a yes/no question.
	No key.Binding

	// Quit closes the finished session.
	Quit key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "submit"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "exit"),
		),
		Interrupt: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "clear"),
		),
		Complete: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "use zone"),
		),
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "down"),
		),
		Yes: key.NewBinding(
			key.WithKeys("y", "Y"),
			key.WithHelp("y", "yes"),
		),
		No: key.NewBinding(
			key.WithKeys("n", "N", "enter"),
			key.WithHelp("n", "no"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "enter"),
			key.WithHelp("q", "close"),
		),
	}
}

// ShortHelp returns the hints shown while filling in fields.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Cancel, k.Interrupt}
}

// ZoneHelp returns the hints shown while a timezone list is open.
func (k *KeyMap) ZoneHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Complete, k.Submit}
}

// ConfirmHelp returns the hints shown for a yes/no question.
func (k *KeyMap) ConfirmHelp() []key.Binding {
	return []key.Binding{k.Yes, k.No}
}

// DoneHelp returns the hints shown once the chart is generated.
func (k *KeyMap) DoneHelp() []key.Binding {
	return []key.Binding{k.Quit}
}

// FullHelp returns the full list of keybindings.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Submit, k.Cancel, k.Interrupt},
		{k.Up, k.Down, k.Complete},
		{k.Yes, k.No, k.Quit},
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
