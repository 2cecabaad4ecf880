package ui

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tabsblock/internal/block"
)

func numbered(n int) []block.Tab {
	tabs := make([]block.Tab, n)
	for i := range tabs {
		tabs[i] = block.Tab{ID: fmt.Sprintf("t%d", i), Title: fmt.Sprintf("Tab %d", i+1)}
	}
	return tabs
}

func TestBuildTree_ExactlyOneVisiblePanel(t *testing.T) {
	for n := 1; n <= 5; n++ {
		for active := -1; active <= n+1; active++ {
			for _, mode := range []Mode{ModeViewing, ModeAuthoring} {
				tree := BuildTree(block.Props{Tabs: numbered(n)}, active, mode, -1)
				require.Len(t, tree.Panels, n)

				visible := 0
				for i, p := range tree.Panels {
					if !p.Hidden {
						visible++
						assert.Equal(t, tree.Active, i)
						assert.True(t, p.Active)
					}
					assert.Equal(t, block.RegionID(p.TabID), p.RegionID)
				}
				assert.Equal(t, 1, visible, "n=%d active=%d", n, active)
				assert.GreaterOrEqual(t, tree.Active, 0)
				assert.Less(t, tree.Active, n)
			}
		}
	}
}

func TestBuildTree_Affordances(t *testing.T) {
	for n := 1; n <= 4; n++ {
		for _, mode := range []Mode{ModeViewing, ModeAuthoring} {
			tree := BuildTree(block.Props{Tabs: numbered(n)}, 0, mode, -1)
			for _, p := range tree.Panels {
				assert.Equal(t, mode == ModeAuthoring, p.Editable)
				assert.Equal(t, mode == ModeAuthoring && n > 1, p.Deletable, "n=%d mode=%s", n, mode)
			}
		}
	}
}

func TestBuildTree_Empty(t *testing.T) {
	tree := BuildTree(block.Props{}, 3, ModeAuthoring, -1)
	assert.True(t, tree.Empty)
	assert.Equal(t, -1, tree.Active)
	_, ok := tree.Visible()
	assert.False(t, ok)
}

func TestBuildTree_Style(t *testing.T) {
	assert.Equal(t, "default", BuildTree(block.Props{Variant: block.VariantModern}, 0, ModeViewing, -1).Style)
	assert.Equal(t, "secondary", BuildTree(block.Props{Variant: block.VariantClassic}, 0, ModeViewing, -1).Style)
	assert.Equal(t, "secondary", BuildTree(block.Props{Variant: "fancy"}, 0, ModeViewing, -1).Style)
}

func TestBuildTree_EditingOnlyWhenAuthoring(t *testing.T) {
	tree := BuildTree(block.Props{Tabs: numbered(3)}, 1, ModeAuthoring, 1)
	assert.True(t, tree.Panels[1].Editing)
	assert.False(t, tree.Panels[0].Editing)

	tree = BuildTree(block.Props{Tabs: numbered(3)}, 1, ModeViewing, 1)
	assert.False(t, tree.Panels[1].Editing)
}
