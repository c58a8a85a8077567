package screens

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit       key.Binding
	SwitchPane key.Binding
	Down       key.Binding
	Up         key.Binding
	Reverse    key.Binding
	Open       key.Binding
	ScrollDown key.Binding
	ScrollUp   key.Binding
	First      key.Binding
	Last       key.Binding
	Add        key.Binding
	Remove     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		SwitchPane: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch list")),
		Down:       key.NewBinding(key.WithKeys("J"), key.WithHelp("J", "next")),
		Up:         key.NewBinding(key.WithKeys("K"), key.WithHelp("K", "prev")),
		Reverse:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reverse")),
		Open:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		ScrollDown: key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j", "scroll")),
		ScrollUp:   key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k", "scroll up")),
		First:      key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "top")),
		Last:       key.NewBinding(key.WithKeys("G"), key.WithHelp("G", "bottom")),
		Add:        key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		Remove:     key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "remove")),
	}
}

func (k keyMap) help() []key.Binding {
	return []key.Binding{k.SwitchPane, k.Down, k.Up, k.Open, k.ScrollDown, k.First, k.Last, k.Reverse, k.Add, k.Remove, k.Quit}
}
