package ui

import (
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
)

// Region is a tab's nested content region. The widget treats it as an opaque
// child: it forwards input while the body has focus and renders it when its
// panel is visible.
type Region interface {
	Init() tea.Cmd
	Update(tea.Msg) (Region, tea.Cmd)
	View() string
	Focus() tea.Cmd
	Blur()
}

// RegionFactory creates the region addressed by regionID. It is called at
// most once per region id for the widget's lifetime.
type RegionFactory func(regionID string) Region

// TextRegion is a free-text region backed by a bubbles textarea.
type TextRegion struct {
	area textarea.Model
}

// NewTextRegion returns an empty text region. Text regions are not persisted,
// so the region id is unused.
func NewTextRegion(string) Region {
	area := textarea.New()
	area.Placeholder = "Tab content…"
	area.ShowLineNumbers = false
	area.SetHeight(6)
	return &TextRegion{area: area}
}

// SetWidth resizes the editing area.
func (r *TextRegion) SetWidth(w int) { r.area.SetWidth(w) }

func (r *TextRegion) Init() tea.Cmd { return nil }

func (r *TextRegion) Update(msg tea.Msg) (Region, tea.Cmd) {
	var cmd tea.Cmd
	r.area, cmd = r.area.Update(msg)
	return r, cmd
}

func (r *TextRegion) View() string { return r.area.View() }

func (r *TextRegion) Focus() tea.Cmd { return r.area.Focus() }

func (r *TextRegion) Blur() { r.area.Blur() }
