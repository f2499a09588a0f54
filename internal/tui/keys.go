package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	NextTab   key.Binding
	PrevTab   key.Binding
	Tab       key.Binding
	Up        key.Binding
	Down      key.Binding
	Focus     key.Binding
	Select    key.Binding
	EditColor key.Binding
	EditField key.Binding
	Open      key.Binding
	Reset     key.Binding
	Save      key.Binding
	Route     key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		NextTab:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		PrevTab:   key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous tab")),
		Tab:       key.NewBinding(key.WithKeys("1", "2", "3", "4"), key.WithHelp("1-4", "jump to tab")),
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Focus:     key.NewBinding(key.WithKeys("left", "right", "h", "l"), key.WithHelp("←/→", "themes/colours")),
		Select:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "apply theme")),
		EditColor: key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit colour")),
		EditField: key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "edit field")),
		Open:      key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "open/close")),
		Reset:     key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		Save:      key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "save")),
		Route:     key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "settings/trading")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextTab, k.Select, k.EditColor, k.Reset, k.Save, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextTab, k.PrevTab, k.Tab, k.Up, k.Down, k.Focus},
		{k.Select, k.EditColor, k.EditField},
		{k.Open, k.Reset, k.Save, k.Route, k.Help, k.Quit},
	}
}
