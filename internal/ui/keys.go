package ui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	All, Agent, Env    key.Binding
	Follow, Yank, Quit key.Binding
}

var Keys = KeyMap{
	All:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "all")),
	Agent:  key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "agent feed")),
	Env:    key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "env feed")),
	Follow: key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "follow/browse")),
	Yank:   key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "yank to clipboard")),
	Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.All,
		k.Agent,
		k.Env,
		k.Follow,
		k.Yank,
		k.Quit,
	}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{
			k.All,
			k.Agent,
			k.Env,
			k.Follow,
			k.Yank,
			k.Quit,
		},
	}
}
