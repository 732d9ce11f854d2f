package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	NextPane key.Binding
	PrevPane key.Binding
	AddPane  key.Binding
	Close    key.Binding
	CycleLng key.Binding
	CycleSet key.Binding
	Freq     key.Binding
	Quit     key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		NextPane: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next pane")),
		PrevPane: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev pane")),
		AddPane:  key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "add pane")),
		Close:    key.NewBinding(key.WithKeys("ctrl+w"), key.WithHelp("ctrl+w", "close pane")),
		CycleLng: key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "pane language")),
		CycleSet: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "language set")),
		Freq:     key.NewBinding(key.WithKeys("ctrl+f"), key.WithHelp("ctrl+f", "word frequencies")),
		Quit:     key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextPane, k.AddPane, k.Close, k.CycleLng, k.CycleSet, k.Freq, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.NextPane, k.PrevPane, k.AddPane, k.Close}, {k.CycleLng, k.CycleSet, k.Freq, k.Quit}}
}
