package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Select     key.Binding
	Clear      key.Binding
	Today      key.Binding
	PrevMonth  key.Binding
	NextMonth  key.Binding
	Recurring  key.Binding
	Pattern    key.Binding
	CycleType  key.Binding
	Interval   key.Binding
	Export     key.Binding
	Tab1       key.Binding
	Tab2       key.Binding
	Tab        key.Binding
	Help       key.Binding
	Enter      key.Binding
	Back       key.Binding
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Quit       key.Binding
}

var keys = keyMap{
	Select: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("enter", "pick date"),
	),
	Clear: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "clear"),
	),
	Today: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "today"),
	),
	PrevMonth: key.NewBinding(
		key.WithKeys("[", "pgup"),
		key.WithHelp("[", "prev month"),
	),
	NextMonth: key.NewBinding(
		key.WithKeys("]", "pgdown"),
		key.WithHelp("]", "next month"),
	),
	Recurring: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "recurring"),
	),
	Pattern: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "pattern"),
	),
	CycleType: key.NewBinding(
		key.WithKeys(">"),
		key.WithHelp(">", "next pattern"),
	),
	Interval: key.NewBinding(
		key.WithKeys("i"),
		key.WithHelp("i", "interval"),
	),
	Export: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "export"),
	),
	Tab1: key.NewBinding(
		key.WithKeys("1"),
		key.WithHelp("1", "picker"),
	),
	Tab2: key.NewBinding(
		key.WithKeys("2"),
		key.WithHelp("2", "settings"),
	),
	Tab: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next view"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "select"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back"),
	),
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Left: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "left"),
	),
	Right: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "right"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Select, k.Recurring, k.Pattern, k.Export, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.PrevMonth, k.NextMonth},
		{k.Select, k.Clear, k.Today},
		{k.Recurring, k.Pattern, k.CycleType, k.Interval},
		{k.Export, k.Tab1, k.Tab2, k.Help, k.Quit},
	}
}
