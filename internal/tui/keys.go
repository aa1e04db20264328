package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	NextSite key.Binding
	PrevSite key.Binding
	LowDown  key.Binding
	LowUp    key.Binding
	HighDown key.Binding
	HighUp   key.Binding
	Reset    key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		NextSite: key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab/→", "next site")),
		PrevSite: key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("shift+tab/←", "prev site")),
		LowDown:  key.NewBinding(key.WithKeys("["), key.WithHelp("[", "min −step")),
		LowUp:    key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "min +step")),
		HighDown: key.NewBinding(key.WithKeys("{"), key.WithHelp("{", "max −step")),
		HighUp:   key.NewBinding(key.WithKeys("}"), key.WithHelp("}", "max +step")),
		Reset:    key.NewBinding(key.WithKeys("0"), key.WithHelp("0", "full range")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextSite, k.LowUp, k.HighDown, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextSite, k.PrevSite},
		{k.LowDown, k.LowUp, k.HighDown, k.HighUp, k.Reset},
		{k.Help, k.Quit},
	}
}
