package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"tabsblock/internal/block"
)

// Toolbar is the block's companion editor surface: it switches the variant
// and appends tabs. It is only active in authoring mode.
type Toolbar struct {
	host  Host
	store *block.Store
	keys  KeyMap
	newID func() string
}

// Ensure Toolbar implements View.
var _ View = (*Toolbar)(nil)

// NewToolbar creates a toolbar writing through host.
func NewToolbar(host Host, keys KeyMap) *Toolbar {
	return &Toolbar{
		host:  host,
		store: block.NewStore(host),
		keys:  keys,
		newID: func() string { return "tab-" + uuid.NewString() },
	}
}

// AddTab appends a tab with a fresh id and a numbered title.
func (t *Toolbar) AddTab() block.Outcome {
	if !t.host.IsAuthoringMode() {
		return block.NoopReadOnly
	}
	n := len(t.store.Read())
	return t.store.Append(block.Tab{
		ID:    t.newID(),
		Title: fmt.Sprintf("Tab %d", n+1),
	})
}

// ToggleVariant cycles the variant.
func (t *Toolbar) ToggleVariant() block.Outcome {
	if !t.host.IsAuthoringMode() {
		return block.NoopReadOnly
	}
	return t.store.SetVariant(t.host.Props().Variant.Next())
}

// Handles reports whether msg is a toolbar key.
func (t *Toolbar) Handles(msg tea.KeyMsg) bool {
	return key.Matches(msg, t.keys.AddTab, t.keys.ToggleVariant)
}

// Init implements View.
func (t *Toolbar) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (t *Toolbar) Update(msg tea.Msg) (View, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, t.keys.AddTab):
			t.AddTab()
		case key.Matches(msg, t.keys.ToggleVariant):
			t.ToggleVariant()
		}
	}
	return t, nil
}

// View implements View. Renders nothing outside authoring mode.
func (t *Toolbar) View() string {
	if !t.host.IsAuthoringMode() {
		return ""
	}
	variant := t.host.Props().Variant
	if variant == "" {
		variant = block.VariantModern
	}
	return Styles.Toolbar.Render(fmt.Sprintf("%s · style: %s · a: add tab · v: switch style",
		block.DisplayName, variant))
}
