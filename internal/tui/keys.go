package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Next, Prev, Copy, Example, Reset, Help, Quit key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Next:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		Prev:    key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev field")),
		Copy:    key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "copy subject + message")),
		Example: key.NewBinding(key.WithKeys("ctrl+e"), key.WithHelp("ctrl+e", "fill example")),
		Reset:   key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "reset")),
		Help:    key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "more keys")),
		Quit:    key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "quit")),
	}
}

// ShortHelp and FullHelp implement help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Copy, k.Example, k.Reset, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev},
		{k.Copy, k.Example, k.Reset},
		{k.Help, k.Quit},
	}
}
