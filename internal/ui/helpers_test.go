package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"tabsblock/internal/block"
)

// fakeHost is an in-memory Host that counts writes and selection requests.
type fakeHost struct {
	props     block.Props
	authoring bool
	selects   int
	writes    int
}

func (h *fakeHost) Props() block.Props { return h.props }

func (h *fakeHost) MutateProps(fn func(*block.Props)) {
	h.writes++
	next := h.props.Clone()
	fn(&next)
	h.props = next
}

func (h *fakeHost) IsAuthoringMode() bool { return h.authoring }

func (h *fakeHost) SelectThisNode() { h.selects++ }

func newHost(authoring bool, tabs ...block.Tab) *fakeHost {
	return &fakeHost{
		props:     block.Props{Tabs: tabs, Variant: block.VariantModern},
		authoring: authoring,
	}
}

func abc() []block.Tab {
	return []block.Tab{
		{ID: "a", Title: "Tab 1"},
		{ID: "b", Title: "Tab 2"},
		{ID: "c", Title: "Tab 3"},
	}
}

func tabIDs(tabs []block.Tab) []string {
	ids := make([]string, 0, len(tabs))
	for _, t := range tabs {
		ids = append(ids, t.ID)
	}
	return ids
}

// keyMsg builds a tea.KeyMsg from its String() form.
func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "delete":
		return tea.KeyMsg{Type: tea.KeyDelete}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "ctrl+e":
		return tea.KeyMsg{Type: tea.KeyCtrlE}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}
