package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keyboard shortcuts
type KeyMap struct {
	Expand      key.Binding
	Collapse    key.Binding
	ExpandAll   key.Binding
	CollapseAll key.Binding
	Grow        key.Binding
	Shrink      key.Binding
	Move        key.Binding
	Deselect    key.Binding
	Rescan      key.Binding
	Help        key.Binding
	Quit        key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Expand: key.NewBinding(
			key.WithKeys("e", "enter"),
			key.WithHelp("e", "expand"),
		),
		Collapse: key.NewBinding(
			key.WithKeys("c", "backspace"),
			key.WithHelp("c", "collapse"),
		),
		ExpandAll: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "expand all"),
		),
		CollapseAll: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "collapse all"),
		),
		Grow: key.NewBinding(
			key.WithKeys("up", "+"),
			key.WithHelp("↑/+", "grow 1%"),
		),
		Shrink: key.NewBinding(
			key.WithKeys("down", "-"),
			key.WithHelp("↓/-", "shrink 1%"),
		),
		Move: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "move to hovered"),
		),
		Deselect: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "deselect"),
		),
		Rescan: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "rescan"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns the bindings shown in the help bar
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Expand, k.Collapse, k.Grow, k.Shrink, k.Move, k.Help, k.Quit}
}

// FullHelp returns all help bindings, grouped
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Expand, k.Collapse, k.ExpandAll, k.CollapseAll},
		{k.Grow, k.Shrink, k.Move, k.Deselect},
		{k.Rescan, k.Help, k.Quit},
	}
}
