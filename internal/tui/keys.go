package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	enter     key.Binding
	esc       key.Binding
	tab       key.Binding
	backtab   key.Binding
	quit      key.Binding
	submit    key.Binding
	browse    key.Binding
	paste     key.Binding
	delete    key.Binding
	buildInfo key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab")),
	quit:      key.NewBinding(key.WithKeys("ctrl+c")),
	submit:    key.NewBinding(key.WithKeys("ctrl+s")),
	browse:    key.NewBinding(key.WithKeys("o")),
	paste:     key.NewBinding(key.WithKeys("p")),
	delete:    key.NewBinding(key.WithKeys("d", "delete")),
	buildInfo: key.NewBinding(key.WithKeys("v")),
}
