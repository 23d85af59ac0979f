package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the grid key bindings. Arrow keys are not listed here: they
// are routed to the navigation controller, which decides whether to consume them.
type KeyMap struct {
	Navigate    key.Binding
	NextCell    key.Binding
	PrevCell    key.Binding
	Enter       key.Binding
	Paste       key.Binding
	CopyCell    key.Binding
	Diagnostics key.Binding
	Blur        key.Binding
	Help        key.Binding
	Quit        key.Binding
	ForceQuit   key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Navigate:    key.NewBinding(key.WithKeys("up", "down", "left", "right"), key.WithHelp("←↑↓→", "move")),
		NextCell:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next cell")),
		PrevCell:    key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev cell")),
		Enter:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "cell below")),
		Paste:       key.NewBinding(key.WithKeys("ctrl+v"), key.WithHelp("ctrl+v", "paste clipboard")),
		CopyCell:    key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "copy cell")),
		Diagnostics: key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "diagnostics")),
		Blur:        key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "leave cell")),
		Help:        key.NewBinding(key.WithKeys("?", "f1"), key.WithHelp("?/f1", "help")),
		Quit:        key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit (no cell focused)")),
		ForceQuit:   key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Navigate, k.NextCell, k.Paste, k.Blur, k.Help, k.ForceQuit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Navigate, k.NextCell, k.PrevCell, k.Enter},
		{k.Paste, k.CopyCell, k.Diagnostics},
		{k.Blur, k.Help, k.Quit, k.ForceQuit},
	}
}
