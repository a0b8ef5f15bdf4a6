package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	run        key.Binding
	nextOp     key.Binding
	prevOp     key.Binding
	shiftUp    key.Binding
	shiftDown  key.Binding
	copyResult key.Binding
	quit       key.Binding
}

var keys = keyMap{
	run:        key.NewBinding(key.WithKeys("enter")),
	nextOp:     key.NewBinding(key.WithKeys("tab")),
	prevOp:     key.NewBinding(key.WithKeys("shift+tab")),
	shiftUp:    key.NewBinding(key.WithKeys("up")),
	shiftDown:  key.NewBinding(key.WithKeys("down")),
	copyResult: key.NewBinding(key.WithKeys("ctrl+y")),
	quit:       key.NewBinding(key.WithKeys("esc", "ctrl+c")),
}
