package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Activate  key.Binding
	Reset     key.Binding
	PlayAgain key.Binding
	Close     key.Binding
	Quit      key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		Activate:  key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "place")),
		Reset:     key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		PlayAgain: key.NewBinding(key.WithKeys("p", "enter"), key.WithHelp("p", "play again")),
		Close:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (that keyMap) boardHelp() []key.Binding {
	return []key.Binding{that.Up, that.Down, that.Left, that.Right, that.Activate, that.Reset, that.Quit}
}

func (that keyMap) dialogHelp() []key.Binding {
	return []key.Binding{that.PlayAgain, that.Close, that.Quit}
}
