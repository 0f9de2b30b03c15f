package types

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the bindings of normal mode. It doubles as the help.KeyMap
// for the footer.
type KeyMap struct {
	Up          key.Binding
	Down        key.Binding
	PageUp      key.Binding
	PageDown    key.Binding
	Home        key.Binding
	End         key.Binding
	Toggle      key.Binding
	ToggleAll   key.Binding
	DeselectAll key.Binding
	Drawer      key.Binding
	Filter      key.Binding
	Sort        key.Binding
	Help        key.Binding
	Quit        key.Binding
	ForceQuit   key.Binding
}

// NewKeyMap returns the default bindings
func NewKeyMap() KeyMap {
	return KeyMap{
		Up:          key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:        key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		PageUp:      key.NewBinding(key.WithKeys("pgup", "ctrl+u"), key.WithHelp("pgup", "page up")),
		PageDown:    key.NewBinding(key.WithKeys("pgdown", "ctrl+d"), key.WithHelp("pgdn", "page down")),
		Home:        key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "top")),
		End:         key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "bottom")),
		Toggle:      key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "select")),
		ToggleAll:   key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "select all")),
		DeselectAll: key.NewBinding(key.WithKeys("esc", "A"), key.WithHelp("esc", "clear")),
		Drawer:      key.NewBinding(key.WithKeys("enter", "z"), key.WithHelp("enter", "details")),
		Filter:      key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
		Sort:        key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort")),
		Help:        key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:        key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "done")),
		ForceQuit:   key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "abort")),
	}
}

// DisableSelection turns off the selection bindings for tables without
// checkboxes
func (k *KeyMap) DisableSelection() {
	k.Toggle.SetEnabled(false)
	k.ToggleAll.SetEnabled(false)
	k.DeselectAll.SetEnabled(false)
}

// DisableDrawers turns off the drawer binding for tables without drawers
func (k *KeyMap) DisableDrawers() {
	k.Drawer.SetEnabled(false)
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.ToggleAll, k.Drawer, k.Filter, k.Help, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown, k.Home, k.End},
		{k.Toggle, k.ToggleAll, k.DeselectAll, k.Drawer},
		{k.Filter, k.Sort, k.Help, k.Quit, k.ForceQuit},
	}
}

// FilterKeyMap holds the bindings shown while typing a filter
type FilterKeyMap struct {
	Apply  key.Binding
	Cancel key.Binding
}

// NewFilterKeyMap returns the filter mode bindings
func NewFilterKeyMap() FilterKeyMap {
	return FilterKeyMap{
		Apply:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "apply")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

func (k FilterKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Apply, k.Cancel}
}

func (k FilterKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Apply, k.Cancel}}
}
