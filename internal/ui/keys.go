package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type keyMap struct {
	Extend  key.Binding
	Retract key.Binding
	Toggle  key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Extend: key.NewBinding(
			key.WithKeys("e", "right", "l"),
			key.WithHelp("e/→", "extend"),
		),
		Retract: key.NewBinding(
			key.WithKeys("r", "left", "h"),
			key.WithHelp("r/←", "retract"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "toggle"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// syncButtons disables the binding for whichever command is already in
// effect, mirroring the disabled button.
func (k *keyMap) syncButtons(extended bool) {
	k.Extend.SetEnabled(!extended)
	k.Retract.SetEnabled(extended)
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Extend, k.Retract, k.Toggle, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Extend, k.Retract, k.Toggle},
		{k.Help, k.Quit},
	}
}

func isQuit(k keyMap, msg tea.KeyMsg) bool {
	return key.Matches(msg, k.Quit)
}
