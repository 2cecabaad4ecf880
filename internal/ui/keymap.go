package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap holds every binding used by the tabs widget, its toolbar, and the
// hosting app.
type KeyMap struct {
	Prev      key.Binding
	Next      key.Binding
	Jump      key.Binding
	EditTitle key.Binding
	DeleteTab key.Binding
	FocusBody key.Binding
	Back      key.Binding

	AddTab        key.Binding
	ToggleVariant key.Binding

	ToggleMode key.Binding
	Save       key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Prev:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev tab")),
		Next:      key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next tab")),
		Jump:      key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("1-9", "go to tab")),
		EditTitle: key.NewBinding(key.WithKeys("e", "f2"), key.WithHelp("e", "rename")),
		DeleteTab: key.NewBinding(key.WithKeys("x", "delete"), key.WithHelp("x", "delete tab")),
		FocusBody: key.NewBinding(key.WithKeys("tab", "enter"), key.WithHelp("tab", "edit content")),
		Back:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),

		AddTab:        key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add tab")),
		ToggleVariant: key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "style")),

		ToggleMode: key.NewBinding(key.WithKeys("ctrl+e"), key.WithHelp("ctrl+e", "edit/view")),
		Save:       key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:       key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
	}
}

// modeKeyMap implements help.KeyMap, showing only bindings that apply in mode.
type modeKeyMap struct {
	keys KeyMap
	mode Mode
}

// HelpFor returns a help.KeyMap filtered for mode.
func (k KeyMap) HelpFor(mode Mode) help.KeyMap {
	return modeKeyMap{keys: k, mode: mode}
}

// ShortHelp implements help.KeyMap.
func (m modeKeyMap) ShortHelp() []key.Binding {
	if m.mode == ModeAuthoring {
		return []key.Binding{m.keys.Prev, m.keys.Next, m.keys.EditTitle, m.keys.DeleteTab, m.keys.ToggleMode, m.keys.Help}
	}
	return []key.Binding{m.keys.Prev, m.keys.Next, m.keys.ToggleMode, m.keys.Help}
}

// FullHelp implements help.KeyMap.
func (m modeKeyMap) FullHelp() [][]key.Binding {
	nav := []key.Binding{m.keys.Prev, m.keys.Next, m.keys.Jump}
	app := []key.Binding{m.keys.ToggleMode, m.keys.Save, m.keys.Help, m.keys.Quit}
	if m.mode != ModeAuthoring {
		return [][]key.Binding{nav, app}
	}
	edit := []key.Binding{m.keys.EditTitle, m.keys.DeleteTab, m.keys.FocusBody, m.keys.Back}
	toolbar := []key.Binding{m.keys.AddTab, m.keys.ToggleVariant}
	return [][]key.Binding{nav, edit, toolbar, app}
}
