package ui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tabsblock/internal/block"
)

func TestTabsBlock_MountSeedsMissingTabs(t *testing.T) {
	for _, authoring := range []bool{true, false} {
		host := &fakeHost{authoring: authoring}
		b := NewTabsBlock(host)
		assert.Nil(t, host.props.Tabs, "construction must not write")

		b.Init()
		assert.Equal(t, block.DefaultTabs(), host.props.Tabs)
		assert.Equal(t, 0, b.Active())
		assert.Equal(t, 0, b.Render().Active)

		b.Init()
		assert.Equal(t, 1, host.writes, "settle must not reseed a populated collection")
	}
}

func TestTabsBlock_DeleteActiveKeepsIndex(t *testing.T) {
	host := newHost(true, abc()...)
	b := NewTabsBlock(host)
	b.Init()

	require.Equal(t, block.Applied, b.RequestTabChange(1))
	require.Equal(t, block.Applied, b.DeleteTab(1))

	assert.Equal(t, []string{"a", "c"}, tabIDs(host.props.Tabs))
	assert.Equal(t, 1, b.Active())
	visible, ok := b.Render().Visible()
	require.True(t, ok)
	assert.Equal(t, "c", visible.TabID, "the tab sliding into the slot becomes active")
}

func TestTabsBlock_DeleteBeforeLastActiveClampsAtRender(t *testing.T) {
	host := newHost(true, abc()...)
	b := NewTabsBlock(host)
	b.Init()
	require.Equal(t, block.Applied, b.RequestTabChange(2))

	require.Equal(t, block.Applied, b.DeleteTab(0))
	assert.Equal(t, []string{"b", "c"}, tabIDs(host.props.Tabs))

	assert.NotPanics(t, func() {
		_ = b.View()
		_, _ = b.Update(keyMsg("x"))
	})
	// x deleted the displayed tab (index 1); one tab left.
	assert.Equal(t, []string{"b"}, tabIDs(host.props.Tabs))
	assert.Equal(t, 2, b.Active(), "stored index is never re-clamped")
	assert.Equal(t, 0, b.Render().Active)
}

func TestTabsBlock_RenderClampDoesNotMutateSelection(t *testing.T) {
	host := newHost(true, abc()...)
	b := NewTabsBlock(host)
	b.Init()
	b.RequestTabChange(2)
	b.DeleteTab(0)

	tree := b.Render()
	assert.Equal(t, 1, tree.Active)
	visible, ok := tree.Visible()
	require.True(t, ok)
	assert.Equal(t, "c", visible.TabID)
	assert.Equal(t, 2, b.Active())
}

func TestTabsBlock_LastTabHasNoDeleteAffordance(t *testing.T) {
	host := newHost(true, block.DefaultTabs()...)
	b := NewTabsBlock(host)
	b.Init()

	for _, p := range b.Render().Panels {
		assert.True(t, p.Deletable)
	}
	require.Equal(t, block.Applied, b.DeleteTab(0))

	tree := b.Render()
	require.Len(t, tree.Panels, 1)
	assert.False(t, tree.Panels[0].Deletable)
	assert.NotContains(t, b.View(), "×")

	assert.Equal(t, block.NoopLastTab, b.DeleteTab(0))
	assert.Len(t, host.props.Tabs, 1)
}

func TestTabsBlock_ChangeTitleRenamesActive(t *testing.T) {
	host := newHost(true, block.DefaultTabs()...)
	b := NewTabsBlock(host)
	b.Init()

	outcome, _ := b.FocusTitle(0)
	require.Equal(t, block.Applied, outcome)
	require.Equal(t, block.Applied, b.ChangeTitle("Overview"))

	assert.Equal(t, "Overview", host.props.Tabs[0].Title)
	assert.Equal(t, block.Tab{ID: "default-tab-2", Title: "Tab 2"}, host.props.Tabs[1])
}

func TestTabsBlock_TypingRenamesOnEveryKeystroke(t *testing.T) {
	host := newHost(true, block.DefaultTabs()...)
	b := NewTabsBlock(host)
	b.Init()

	_, _ = b.Update(keyMsg("e"))
	require.True(t, b.Editing())
	writes := host.writes

	for range "Tab 1" {
		_, _ = b.Update(keyMsg("backspace"))
	}
	assert.Equal(t, "", host.props.Tabs[0].Title)
	_, _ = b.Update(keyMsg("Overview"))

	assert.Equal(t, "Overview", host.props.Tabs[0].Title)
	assert.Equal(t, "Tab 2", host.props.Tabs[1].Title)
	assert.Equal(t, writes+6, host.writes)
	assert.Equal(t, 1, host.selects)
}

func TestTabsBlock_EnterIsSuppressedWhileEditing(t *testing.T) {
	host := newHost(true, block.DefaultTabs()...)
	b := NewTabsBlock(host)
	b.Init()
	_, _ = b.FocusTitle(1)
	writes := host.writes

	handled, cmd := b.TitleKey(keyMsg("enter"))
	assert.True(t, handled)
	assert.Nil(t, cmd)
	assert.Equal(t, writes, host.writes)
	assert.Equal(t, "Tab 2", host.props.Tabs[1].Title)
	assert.True(t, b.Editing())

	_, _ = b.Update(keyMsg("enter"))
	assert.Equal(t, writes, host.writes)
	assert.Equal(t, FocusHeaders, b.Focus(), "enter must not fall through to focus the body")
}

func TestTabsBlock_EscEndsEditing(t *testing.T) {
	host := newHost(true, block.DefaultTabs()...)
	b := NewTabsBlock(host)
	b.Init()
	_, _ = b.FocusTitle(0)

	_, _ = b.Update(keyMsg("esc"))
	assert.False(t, b.Editing())
	assert.False(t, b.Capturing())
}

func TestTabsBlock_ViewingMode(t *testing.T) {
	host := newHost(false, abc()...)
	b := NewTabsBlock(host)
	b.Init()

	for _, p := range b.Render().Panels {
		assert.False(t, p.Editable)
		assert.False(t, p.Deletable)
	}

	assert.Equal(t, block.Applied, b.RequestTabChange(1))
	assert.Equal(t, 1, b.Active())
	assert.Equal(t, 0, host.selects, "viewing mode must not select the node")

	outcome, cmd := b.FocusTitle(0)
	assert.Equal(t, block.NoopReadOnly, outcome)
	assert.Nil(t, cmd)
	assert.Equal(t, block.NoopReadOnly, b.ChangeTitle("x"))
	assert.Equal(t, block.NoopReadOnly, b.DeleteTab(0))

	_, _ = b.Update(keyMsg("e"))
	_, _ = b.Update(keyMsg("x"))
	_, _ = b.Update(keyMsg("tab"))
	assert.False(t, b.Editing())
	assert.Equal(t, FocusHeaders, b.Focus())
	assert.Equal(t, 0, host.writes)
	assert.NotContains(t, b.View(), "×")
}

func TestTabsBlock_AuthoringTabChangeSelectsNode(t *testing.T) {
	host := newHost(true, abc()...)
	b := NewTabsBlock(host)
	b.Init()

	b.RequestTabChange(2)
	assert.Equal(t, 1, host.selects)
	assert.Equal(t, block.NoopOutOfRange, b.RequestTabChange(3))
	assert.Equal(t, block.NoopOutOfRange, b.RequestTabChange(-1))
	assert.Equal(t, 2, b.Active())
	assert.Equal(t, 1, host.selects)
}

func TestTabsBlock_KeyNavigation(t *testing.T) {
	host := newHost(false, abc()...)
	b := NewTabsBlock(host)
	b.Init()

	_, _ = b.Update(keyMsg("right"))
	assert.Equal(t, 1, b.Active())
	_, _ = b.Update(keyMsg("l"))
	_, _ = b.Update(keyMsg("right"))
	assert.Equal(t, 2, b.Active(), "no wrap past the last tab")
	_, _ = b.Update(keyMsg("1"))
	assert.Equal(t, 0, b.Active())
	_, _ = b.Update(keyMsg("left"))
	assert.Equal(t, 0, b.Active())
	_, _ = b.Update(keyMsg("9"))
	assert.Equal(t, 0, b.Active())
	_, _ = b.Update(keyMsg("3"))
	assert.Equal(t, 2, b.Active())
}

func TestTabsBlock_SwitchingTabEndsTitleEdit(t *testing.T) {
	host := newHost(true, abc()...)
	b := NewTabsBlock(host)
	b.Init()
	_, _ = b.FocusTitle(0)

	b.RequestTabChange(0)
	assert.True(t, b.Editing(), "re-activating the edited tab keeps editing")

	b.RequestTabChange(1)
	assert.False(t, b.Editing())
	assert.Equal(t, "Tab 1", host.props.Tabs[0].Title)
}

func TestTabsBlock_FocusTitleOnOtherTabMovesSelection(t *testing.T) {
	host := newHost(true, abc()...)
	b := NewTabsBlock(host)
	b.Init()
	_, _ = b.FocusTitle(0)

	_, _ = b.FocusTitle(2)
	assert.True(t, b.Editing())
	assert.Equal(t, 2, b.Active())
	b.ChangeTitle("Summary")
	assert.Equal(t, "Summary", host.props.Tabs[2].Title)
	assert.Equal(t, "Tab 1", host.props.Tabs[0].Title)
}

func TestTabsBlock_LeavingAuthoringEndsEditing(t *testing.T) {
	host := newHost(true, abc()...)
	b := NewTabsBlock(host)
	b.Init()
	_, _ = b.FocusTitle(1)
	require.True(t, b.Editing())

	host.authoring = false
	b.Settle()
	assert.False(t, b.Editing())
	for _, p := range b.Render().Panels {
		assert.False(t, p.Editing)
	}
}

func TestTabsBlock_ExternalDeleteOfEditedTabEndsEditing(t *testing.T) {
	host := newHost(true, abc()...)
	b := NewTabsBlock(host)
	b.Init()
	_, _ = b.FocusTitle(1)

	block.NewStore(host).Delete(1)
	b.Settle()
	assert.False(t, b.Editing())
}

func TestTabsBlock_ExternalEmptyIsHealed(t *testing.T) {
	host := newHost(true, abc()...)
	b := NewTabsBlock(host)
	b.Init()

	host.props.Tabs = nil
	assert.True(t, b.Render().Empty)
	assert.NotPanics(t, func() { _ = b.View() })

	_, _ = b.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	assert.Equal(t, block.DefaultTabs(), host.props.Tabs)
}

func TestTabsBlock_StaleIndexOperationsAreSilent(t *testing.T) {
	host := newHost(true, abc()...)
	b := NewTabsBlock(host)
	b.Init()
	writes := host.writes

	assert.Equal(t, block.NoopOutOfRange, b.DeleteTab(7))
	o, _ := b.FocusTitle(7)
	assert.Equal(t, block.NoopOutOfRange, o)
	assert.Equal(t, writes, host.writes)
}

func TestTabsBlock_RegionsPersistAcrossTabSwitches(t *testing.T) {
	host := newHost(true, abc()...)
	created := map[string]int{}
	b := NewTabsBlock(host, WithRegionFactory(func(id string) Region {
		created[id]++
		return NewTextRegion(id)
	}))
	b.Init()

	_ = b.View()
	assert.Equal(t, map[string]int{"a_nosection1": 1, "b_nosection1": 1, "c_nosection1": 1}, created)

	_, _ = b.Update(keyMsg("tab"))
	require.Equal(t, FocusBody, b.Focus())
	assert.True(t, b.Capturing())
	_, _ = b.Update(keyMsg("hello"))
	_, _ = b.Update(keyMsg("esc"))
	require.Equal(t, FocusHeaders, b.Focus())

	first := b.Region("a_nosection1")
	_, _ = b.Update(keyMsg("right"))
	_ = b.View()
	_, _ = b.Update(keyMsg("left"))
	_ = b.View()

	assert.Same(t, first, b.Region("a_nosection1"))
	assert.Equal(t, "hello", first.(*TextRegion).area.Value())
	assert.Equal(t, 1, created["a_nosection1"])
	assert.Contains(t, b.View(), "hello")
}

func TestTabsBlock_DeletedTabRegionIsDropped(t *testing.T) {
	host := newHost(true, abc()...)
	b := NewTabsBlock(host)
	b.Init()
	_ = b.View()
	require.NotNil(t, b.Region("b_nosection1"))

	b.DeleteTab(1)
	b.Settle()
	assert.Nil(t, b.Region("b_nosection1"))
	assert.NotNil(t, b.Region("a_nosection1"))
}

func TestTabsBlock_ViewShowsTitles(t *testing.T) {
	host := newHost(false, block.Tab{ID: "a", Title: "<b>Intro</b>"}, block.Tab{ID: "b", Title: "Q&amp;A"})
	b := NewTabsBlock(host)
	b.Init()

	out := b.View()
	assert.Contains(t, out, "Intro")
	assert.Contains(t, out, "Q&A")
	assert.NotContains(t, out, "<b>")
}

func TestTabsBlock_MouseWithoutZonesIsIgnored(t *testing.T) {
	host := newHost(true, abc()...)
	b := NewTabsBlock(host)
	b.Init()

	_, _ = b.Update(tea.MouseMsg{X: 1, Y: 1, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	assert.Equal(t, 0, b.Active())
	assert.Len(t, host.props.Tabs, 3)
}

func TestTabsBlock_DeleteEndsTitleEdit(t *testing.T) {
	host := newHost(true,
		block.Tab{ID: "a", Title: "A"},
		block.Tab{ID: "b", Title: "B"},
		block.Tab{ID: "c", Title: "C"},
		block.Tab{ID: "d", Title: "D"},
	)
	b := NewTabsBlock(host)
	b.Init()
	_, _ = b.FocusTitle(2)

	require.Equal(t, block.Applied, b.DeleteTab(0))
	assert.False(t, b.Editing())
	assert.False(t, b.Capturing())

	_, _ = b.Update(keyMsg("X"))
	assert.Equal(t, []block.Tab{
		{ID: "b", Title: "B"},
		{ID: "c", Title: "C"},
		{ID: "d", Title: "D"},
	}, host.props.Tabs)
}

func TestTabsBlock_RejectedDeleteKeepsTitleEdit(t *testing.T) {
	host := newHost(true, abc()...)
	b := NewTabsBlock(host)
	b.Init()
	_, _ = b.FocusTitle(1)

	assert.Equal(t, block.NoopOutOfRange, b.DeleteTab(5))
	assert.True(t, b.Editing())
}

func TestTabsBlock_WindowSizeResizesRegions(t *testing.T) {
	host := newHost(true, abc()...)
	b := NewTabsBlock(host)
	b.Init()
	_ = b.View()
	before := b.Region("a_nosection1").(*TextRegion).area.Width()

	_, _ = b.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	after := b.Region("a_nosection1").(*TextRegion).area.Width()
	assert.Greater(t, after, before)
	assert.LessOrEqual(t, after, 96)

	// Regions created after the resize get the same width.
	b.DeleteTab(0)
	b.Settle()
	host.props.Tabs = append(host.props.Tabs, block.Tab{ID: "z", Title: "Z"})
	_ = b.View()
	assert.Equal(t, after, b.Region("z_nosection1").(*TextRegion).area.Width())
}

// clickZone renders b through a fresh zone manager and releases the left
// button on the top-left cell of zone id.
func clickZone(t *testing.T, b *TabsBlock, id func(tabID string) string, tabID string) {
	t.Helper()
	zones := zone.New()
	defer zones.Close()
	b.zones = zones
	b.zoneID = zones.NewPrefix()

	zones.Scan(b.View())
	target := id(tabID)
	require.Eventually(t, func() bool { return !zones.Get(target).IsZero() },
		time.Second, 5*time.Millisecond, "zone %s never registered", target)

	z := zones.Get(target)
	_, _ = b.Update(tea.MouseMsg{
		X:      z.StartX,
		Y:      z.StartY,
		Action: tea.MouseActionRelease,
		Button: tea.MouseButtonLeft,
	})
}

func TestTabsBlock_MouseHeaderClickSwitchesTab(t *testing.T) {
	host := newHost(true, abc()...)
	b := NewTabsBlock(host)
	b.Init()

	clickZone(t, b, b.headerZone, "c")
	assert.Equal(t, 2, b.Active())
	assert.Equal(t, 1, host.selects)
	assert.False(t, b.Editing())
}

func TestTabsBlock_MouseHeaderClickWhenViewing(t *testing.T) {
	host := newHost(false, abc()...)
	b := NewTabsBlock(host)
	b.Init()

	clickZone(t, b, b.headerZone, "b")
	assert.Equal(t, 1, b.Active())
	assert.Equal(t, 0, host.selects, "viewing mode must not select the node")
	assert.Equal(t, 0, host.writes)
}

func TestTabsBlock_MouseTitleClickStartsEditing(t *testing.T) {
	host := newHost(true, abc()...)
	b := NewTabsBlock(host)
	b.Init()

	clickZone(t, b, b.titleZone, "b")
	assert.True(t, b.Editing())
	assert.Equal(t, 1, b.Active())

	_, _ = b.Update(keyMsg("!"))
	assert.Equal(t, "Tab 2!", host.props.Tabs[1].Title)
}

func TestTabsBlock_MouseDeleteClick(t *testing.T) {
	host := newHost(true, abc()...)
	b := NewTabsBlock(host)
	b.Init()

	clickZone(t, b, b.deleteZone, "b")
	assert.Equal(t, []string{"a", "c"}, tabIDs(host.props.Tabs))
	assert.Equal(t, 0, b.Active())
}

func TestTabsBlock_MouseDeleteWhileEditingOtherTitle(t *testing.T) {
	host := newHost(true,
		block.Tab{ID: "a", Title: "A"},
		block.Tab{ID: "b", Title: "B"},
		block.Tab{ID: "c", Title: "C"},
		block.Tab{ID: "d", Title: "D"},
	)
	b := NewTabsBlock(host)
	b.Init()
	_, _ = b.FocusTitle(2)

	clickZone(t, b, b.deleteZone, "a")
	assert.False(t, b.Editing())

	_, _ = b.Update(keyMsg("X"))
	assert.Equal(t, []string{"B", "C", "D"}, []string{
		host.props.Tabs[0].Title, host.props.Tabs[1].Title, host.props.Tabs[2].Title,
	})
}
