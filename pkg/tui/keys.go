package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Collapse key.Binding
	Expand   key.Binding
	Toggle   key.Binding
	AddList  key.Binding
	AddItem  key.Binding
	Edit     key.Binding
	Delete   key.Binding
	Grab     key.Binding
	Drop     key.Binding
	Cancel   key.Binding
	File     key.Binding
	Dividers key.Binding
	Shading  key.Binding
	Reload   key.Binding
	Quit     key.Binding
	Confirm  key.Binding
	Deny     key.Binding
	Submit   key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Collapse: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "collapse"),
		),
		Expand: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "expand"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("tab", "enter"),
			key.WithHelp("tab", "fold"),
		),
		AddList: key.NewBinding(
			key.WithKeys("A"),
			key.WithHelp("A", "new list"),
		),
		AddItem: key.NewBinding(
			key.WithKeys("a", "o"),
			key.WithHelp("a", "add item"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e", "r"),
			key.WithHelp("e", "edit"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "x"),
			key.WithHelp("d", "delete"),
		),
		Grab: key.NewBinding(
			key.WithKeys(" ", "m"),
			key.WithHelp("space", "move"),
		),
		Drop: key.NewBinding(
			key.WithKeys(" ", "m", "enter"),
			key.WithHelp("space", "drop"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		File: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "file"),
		),
		Dividers: key.NewBinding(
			key.WithKeys("D"),
			key.WithHelp("D", "dividers"),
		),
		Shading: key.NewBinding(
			key.WithKeys("B"),
			key.WithHelp("B", "shading"),
		),
		Reload: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "reload"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("y", "Y", "enter"),
			key.WithHelp("y", "yes"),
		),
		Deny: key.NewBinding(
			key.WithKeys("n", "N", "esc"),
			key.WithHelp("n", "no"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "save"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Toggle, k.AddItem, k.AddList, k.Edit, k.Delete, k.Grab, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Collapse, k.Expand, k.Toggle},
		{k.AddList, k.AddItem, k.Edit, k.Delete},
		{k.Grab, k.Drop, k.Cancel},
		{k.File, k.Dividers, k.Shading, k.Reload, k.Quit},
	}
}

type dragKeys struct{ k keyMap }

func (d dragKeys) ShortHelp() []key.Binding {
	return []key.Binding{d.k.Up, d.k.Down, d.k.Drop, d.k.Cancel}
}

func (d dragKeys) FullHelp() [][]key.Binding { return [][]key.Binding{d.ShortHelp()} }

type inputKeys struct{ k keyMap }

func (i inputKeys) ShortHelp() []key.Binding {
	return []key.Binding{i.k.Submit, i.k.Cancel}
}

func (i inputKeys) FullHelp() [][]key.Binding { return [][]key.Binding{i.ShortHelp()} }
