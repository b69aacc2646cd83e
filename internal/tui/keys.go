package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	enter   key.Binding
	esc     key.Binding
	tab     key.Binding
	backtab key.Binding
	submit  key.Binding
	quit    key.Binding
	encode  key.Binding
	decode  key.Binding
	cleanup key.Binding
	recheck key.Binding
	save    key.Binding
	copy    key.Binding
	home    key.Binding
}

var keys = keyMap{
	enter:   key.NewBinding(key.WithKeys("enter")),
	esc:     key.NewBinding(key.WithKeys("esc")),
	tab:     key.NewBinding(key.WithKeys("tab")),
	backtab: key.NewBinding(key.WithKeys("shift+tab")),
	submit:  key.NewBinding(key.WithKeys("ctrl+s")),
	quit:    key.NewBinding(key.WithKeys("q")),
	encode:  key.NewBinding(key.WithKeys("e", "enter")),
	decode:  key.NewBinding(key.WithKeys("d")),
	cleanup: key.NewBinding(key.WithKeys("x")),
	recheck: key.NewBinding(key.WithKeys("r")),
	save:    key.NewBinding(key.WithKeys("s", "enter")),
	copy:    key.NewBinding(key.WithKeys("c")),
	home:    key.NewBinding(key.WithKeys("h")),
}
