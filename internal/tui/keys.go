package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	NextFocus   key.Binding
	Scan        key.Binding
	ToggleCheck key.Binding
	CheckAll    key.Binding
	CheckNone   key.Binding
	Delete      key.Binding
	RecycleBin  key.Binding
	Export      key.Binding
	Theme       key.Binding
	SortColumn  key.Binding
	Cancel      key.Binding
	Help        key.Binding
	Quit        key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		NextFocus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "focus"),
		),
		Scan: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "scan"),
		),
		ToggleCheck: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "check"),
		),
		CheckAll: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "check all"),
		),
		CheckNone: key.NewBinding(
			key.WithKeys("A"),
			key.WithHelp("A", "check none"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete checked"),
		),
		RecycleBin: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "recycle bin"),
		),
		Export: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "export xlsx"),
		),
		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "theme"),
		),
		SortColumn: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6"),
			key.WithHelp("1-6", "sort"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
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

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Scan, k.ToggleCheck, k.Delete, k.RecycleBin, k.Export, k.SortColumn, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextFocus, k.Scan, k.ToggleCheck, k.CheckAll, k.CheckNone},
		{k.Delete, k.RecycleBin, k.Export, k.Theme, k.SortColumn},
		{k.Cancel, k.Help, k.Quit},
	}
}
