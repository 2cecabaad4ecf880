package ui

import (
	"fmt"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"tabsblock/internal/block"
	"tabsblock/internal/editor"
)

// SaveFunc persists the node's props.
type SaveFunc func(block.Props) error

// AppModel hosts one Tabs node inside an editor and routes input between the
// app shortcuts, the toolbar, and the widget.
type AppModel struct {
	Editor       *editor.Editor
	Node         *editor.Node
	Block        *TabsBlock
	Toolbar      *Toolbar
	Keys         KeyMap
	Help         help.Model
	Zones        *zone.Manager
	DocumentName string
	Save         SaveFunc

	ShowHelp bool
	Status   string
	StatusOK bool
	Dirty    bool
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the root model for node. zones may be nil to disable
// mouse support; save may be nil to disable saving.
func NewAppModel(ed *editor.Editor, node *editor.Node, zones *zone.Manager, name string, save SaveFunc) *AppModel {
	keys := DefaultKeyMap()
	a := &AppModel{
		Editor:       ed,
		Node:         node,
		Block:        NewTabsBlock(node, WithZones(zones), WithKeyMap(keys)),
		Toolbar:      NewToolbar(node, keys),
		Keys:         keys,
		Help:         help.New(),
		Zones:        zones,
		DocumentName: name,
		Save:         save,
	}
	ed.Subscribe(func(c editor.Change) {
		if c.NodeID == node.ID() {
			a.Dirty = true
		}
	})
	return a
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (a *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: a}
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return a.Block.Init()
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.Help.Width = msg.Width
	case ToggleModeMsg:
		a.Editor.SetEnabled(!a.Editor.Enabled())
		if !a.Editor.Enabled() {
			a.Editor.ClearSelection()
		}
		a.setStatus(true, "Mode: %s", ModeOf(a.Editor.Enabled()))
		a.Block.Settle()
		return a, nil
	case SaveMsg:
		return a, a.saveCmd()
	case SavedMsg:
		a.Dirty = false
		a.setStatus(true, "Saved %s", msg.Name)
		return a, nil
	case SaveFailedMsg:
		log.Printf("ui.Save: %v", msg.Err)
		a.setStatus(false, "Save failed: %v", msg.Err)
		return a, nil
	case tea.KeyMsg:
		if handled, cmd := a.handleKey(msg); handled {
			return a, cmd
		}
	}

	_, cmd := a.Block.Update(msg)
	return a, cmd
}

// handleKey runs app and toolbar shortcuts. The widget gets keys first while
// it is capturing input (title editing or content focus).
func (a *AppModel) handleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return true, tea.Quit
	}
	if a.Block.Capturing() {
		return false, nil
	}
	switch {
	case key.Matches(msg, a.Keys.Quit):
		return true, tea.Quit
	case key.Matches(msg, a.Keys.ToggleMode):
		return true, func() tea.Msg { return ToggleModeMsg{} }
	case key.Matches(msg, a.Keys.Save):
		return true, func() tea.Msg { return SaveMsg{} }
	case key.Matches(msg, a.Keys.Help):
		a.ShowHelp = !a.ShowHelp
		return true, nil
	case a.Editor.Enabled() && a.Toolbar.Handles(msg):
		_, cmd := a.Toolbar.Update(msg)
		a.Block.Settle()
		return true, cmd
	}
	return false, nil
}

func (a *AppModel) saveCmd() tea.Cmd {
	if a.Save == nil {
		return nil
	}
	props := a.Node.Props()
	name := a.DocumentName
	save := a.Save
	return func() tea.Msg {
		if err := save(props); err != nil {
			return SaveFailedMsg{Err: err}
		}
		return SavedMsg{Name: name, At: time.Now()}
	}
}

func (a *AppModel) setStatus(ok bool, format string, args ...interface{}) {
	a.Status = fmt.Sprintf(format, args...)
	a.StatusOK = ok
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	mode := ModeOf(a.Editor.Enabled())
	header := Styles.Status.Render(fmt.Sprintf("%s · %s", a.DocumentName, mode))
	if a.Dirty {
		header += Styles.Hint.Render(" (modified)")
	}

	parts := []string{header}
	if tb := a.Toolbar.View(); tb != "" {
		parts = append(parts, tb)
	}
	parts = append(parts, a.Block.View())
	if a.Status != "" {
		style := Styles.Status
		if !a.StatusOK {
			style = Styles.Error
		}
		parts = append(parts, style.Render(a.Status))
	}
	a.Help.ShowAll = a.ShowHelp
	parts = append(parts, a.Help.View(a.Keys.HelpFor(mode)))

	out := lipgloss.JoinVertical(lipgloss.Left, parts...)
	if a.Zones != nil {
		return a.Zones.Scan(out)
	}
	return out
}
