package ui

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/stretchr/testify/assert"
)

func TestKeyMap_HelpForMode(t *testing.T) {
	keys := DefaultKeyMap()

	viewing := keys.HelpFor(ModeViewing)
	for _, b := range viewing.ShortHelp() {
		assert.NotEqual(t, keys.DeleteTab.Help(), b.Help())
		assert.NotEqual(t, keys.EditTitle.Help(), b.Help())
	}
	assert.Len(t, viewing.FullHelp(), 2)

	authoring := keys.HelpFor(ModeAuthoring)
	assert.Len(t, authoring.FullHelp(), 4)
	assert.Contains(t, helpKeys(authoring.ShortHelp()), "x")
}

func TestKeyMap_Bindings(t *testing.T) {
	keys := DefaultKeyMap()
	assert.True(t, key.Matches(keyMsg("7"), keys.Jump))
	assert.False(t, key.Matches(keyMsg("0"), keys.Jump))
	assert.True(t, key.Matches(keyMsg("delete"), keys.DeleteTab))
	assert.True(t, key.Matches(keyMsg("enter"), keys.FocusBody))
	assert.True(t, key.Matches(keyMsg("ctrl+c"), keys.Quit))
}

func helpKeys(bindings []key.Binding) []string {
	out := make([]string, 0, len(bindings))
	for _, b := range bindings {
		out = append(out, b.Help().Key)
	}
	return out
}
