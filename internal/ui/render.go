package ui

import "tabsblock/internal/block"

// Panel is one tab in the render tree. Every tab gets a panel; only the
// display-active one has Hidden == false.
type Panel struct {
	TabID     string
	RegionID  string
	Title     string
	Active    bool
	Hidden    bool
	Editable  bool // title renders as an inline editor
	Deletable bool // delete affordance is present
	Editing   bool // title field currently has focus
}

// Tree is the render tree derived from (tabs, active, mode).
type Tree struct {
	Mode    Mode
	Variant block.Variant
	Style   string // "default" or "secondary"
	Empty   bool   // no tabs yet; the next settle seeds them
	Active  int    // display index, -1 when Empty
	Panels  []Panel
}

// Visible returns the visible panel, or false if there is none.
func (t Tree) Visible() (Panel, bool) {
	for _, p := range t.Panels {
		if !p.Hidden {
			return p, true
		}
	}
	return Panel{}, false
}

// BuildTree derives the render tree. active is the stored selection index and
// may be out of range; it is clamped for display. editing is the index of the
// tab whose title field has focus, or -1.
func BuildTree(props block.Props, active int, mode Mode, editing int) Tree {
	sel := Selection{active: active}
	n := len(props.Tabs)
	display := sel.Display(n)

	t := Tree{
		Mode:    mode,
		Variant: props.Variant,
		Style:   props.Variant.TabStyle(),
		Empty:   n == 0,
		Active:  display,
		Panels:  make([]Panel, 0, n),
	}
	authoring := mode == ModeAuthoring
	for i, tab := range props.Tabs {
		t.Panels = append(t.Panels, Panel{
			TabID:     tab.ID,
			RegionID:  block.RegionID(tab.ID),
			Title:     tab.Title,
			Active:    i == display,
			Hidden:    i != display,
			Editable:  authoring,
			Deletable: authoring && n > 1,
			Editing:   authoring && i == editing,
		})
	}
	return t
}
