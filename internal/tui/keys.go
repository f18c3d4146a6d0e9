package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Confirm   key.Binding
	Back      key.Binding
	Cancel    key.Binding
	Delete    key.Binding
	Quit      key.Binding
	Interrupt key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:        key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:      key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),
		Left:      key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "decrease")),
		Right:     key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "increase")),
		Confirm:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Back:      key.NewBinding(key.WithKeys("esc", "enter"), key.WithHelp("enter/esc", "menu")),
		Cancel:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Delete:    key.NewBinding(key.WithKeys("backspace", "delete"), key.WithHelp("bksp", "delete")),
		Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		Interrupt: key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

// bindingList adapts a slice of bindings to help.KeyMap.
type bindingList []key.Binding

func (b bindingList) ShortHelp() []key.Binding {
	return b
}

func (b bindingList) FullHelp() [][]key.Binding {
	return [][]key.Binding{b}
}

func (k keyMap) forScreen(s screen) bindingList {
	switch s {
	case screenMenu:
		return bindingList{k.Up, k.Down, k.Confirm, k.Quit}
	case screenTest:
		return bindingList{k.Delete, k.Cancel}
	case screenSettings:
		return bindingList{k.Up, k.Down, k.Left, k.Right, k.Back}
	default:
		return bindingList{k.Back}
	}
}
