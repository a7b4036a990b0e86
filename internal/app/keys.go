package app

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Next, Prev   key.Binding
	Autocomplete key.Binding
	Menu         key.Binding
	Close        key.Binding
	Ignore       key.Binding
	AddWord      key.Binding
	MenuUp       key.Binding
	MenuDown     key.Binding
	Accept       key.Binding
	Undo, Redo   key.Binding
	CopyAll      key.Binding
	Rules        key.Binding
	Save         key.Binding
	Quit         key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Next:         key.NewBinding(key.WithKeys("ctrl+j"), key.WithHelp("ctrl+j", "next issue")),
		Prev:         key.NewBinding(key.WithKeys("ctrl+k"), key.WithHelp("ctrl+k", "prev issue")),
		Autocomplete: key.NewBinding(key.WithKeys("ctrl+@"), key.WithHelp("ctrl+space", "suggestions")),
		Menu:         key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "menu")),
		Close:        key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		// ctrl+i arrives as tab on most terminals.
		Ignore:   key.NewBinding(key.WithKeys("alt+i"), key.WithHelp("alt+i", "ignore")),
		AddWord:  key.NewBinding(key.WithKeys("alt+a"), key.WithHelp("alt+a", "add word")),
		MenuUp:   key.NewBinding(key.WithKeys("up")),
		MenuDown: key.NewBinding(key.WithKeys("down")),
		Accept:   key.NewBinding(key.WithKeys("enter")),
		// Undo and Redo are handled by the editor; these only feed the help.
		Undo:     key.NewBinding(key.WithKeys("ctrl+z"), key.WithHelp("ctrl+z", "undo"), key.WithDisabled()),
		Redo:     key.NewBinding(key.WithKeys("alt+z"), key.WithHelp("alt+z", "redo"), key.WithDisabled()),
		CopyAll:  key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "copy all")),
		Rules:    key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "rules")),
		Save:     key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		Quit:     key.NewBinding(key.WithKeys("ctrl+q"), key.WithHelp("ctrl+q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Menu, k.Ignore, k.AddWord, k.Rules, k.Save, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.Autocomplete, k.Menu, k.Close},
		{k.Ignore, k.AddWord},
		{k.Undo, k.Redo},
		{k.CopyAll, k.Rules, k.Save, k.Quit},
	}
}
