package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up       key.Binding
	down     key.Binding
	enter    key.Binding
	esc      key.Binding
	quit     key.Binding
	login    key.Binding
	logout   key.Binding
	validate key.Binding
	editIDs  key.Binding
	copy     key.Binding
}

var keys = keyMap{
	up:       key.NewBinding(key.WithKeys("up", "k")),
	down:     key.NewBinding(key.WithKeys("down", "j")),
	enter:    key.NewBinding(key.WithKeys("enter")),
	esc:      key.NewBinding(key.WithKeys("esc")),
	quit:     key.NewBinding(key.WithKeys("q", "ctrl+c")),
	login:    key.NewBinding(key.WithKeys("l")),
	logout:   key.NewBinding(key.WithKeys("o")),
	validate: key.NewBinding(key.WithKeys("v")),
	editIDs:  key.NewBinding(key.WithKeys("/")),
	copy:     key.NewBinding(key.WithKeys("c")),
}
