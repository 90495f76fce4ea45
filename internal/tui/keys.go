package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	enter     key.Binding
	esc       key.Binding
	tab       key.Binding
	backtab   key.Binding
	quit       key.Binding
	logout     key.Binding
	dashboard  key.Binding
	browse     key.Binding
	profile    key.Binding
	password   key.Binding
	hint       key.Binding
	copy       key.Binding
	deactivate key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab")),
	quit:       key.NewBinding(key.WithKeys("q", "ctrl+c")),
	logout:     key.NewBinding(key.WithKeys("l")),
	dashboard:  key.NewBinding(key.WithKeys("d")),
	browse:     key.NewBinding(key.WithKeys("b")),
	profile:    key.NewBinding(key.WithKeys("p")),
	password:   key.NewBinding(key.WithKeys("w")),
	hint:       key.NewBinding(key.WithKeys("f1")),
	copy:       key.NewBinding(key.WithKeys("c")),
	deactivate: key.NewBinding(key.WithKeys("x")),
}
