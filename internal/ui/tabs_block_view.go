package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"tabsblock/internal/ui/textutil"
)

// maxTitleWidth caps a header title so long titles do not push the row off screen.
const maxTitleWidth = 24

// Render returns the render tree for the current props, selection and mode.
func (b *TabsBlock) Render() Tree {
	props := b.host.Props()
	editing := -1
	if b.editingID != "" {
		editing = indexOf(props.Tabs, b.editingID)
	}
	return BuildTree(props, b.selection.Active(), b.Mode(), editing)
}

// View implements View.
func (b *TabsBlock) View() string {
	tree := b.Render()
	if tree.Empty {
		return Styles.Empty.Render("No tabs")
	}
	styles := StylesFor(tree.Variant)

	headers := make([]string, 0, len(tree.Panels))
	for _, p := range tree.Panels {
		// Every region stays instantiated; only the visible one is drawn.
		b.region(p.RegionID)
		headers = append(headers, b.renderHeader(p, styles))
	}
	row := lipgloss.JoinHorizontal(lipgloss.Bottom, headers...)

	var body string
	if visible, ok := tree.Visible(); ok {
		if r := b.region(visible.RegionID); r != nil {
			body = r.View()
		}
	}
	panel := styles.Panel
	if b.width > 2 {
		panel = panel.Width(b.width - 2)
	}
	return lipgloss.JoinVertical(lipgloss.Left, row, panel.Render(body))
}

func (b *TabsBlock) renderHeader(p Panel, styles TabStyles) string {
	var title string
	switch {
	case p.Editing:
		title = Styles.Editing.Render(b.title.View())
	case p.Editable:
		title = b.mark(b.titleZone(p.TabID), displayTitle(p.Title))
	default:
		title = displayTitle(p.Title)
	}
	if p.Deletable {
		title += " " + b.mark(b.deleteZone(p.TabID), Styles.Delete.Render("×"))
	}
	style := styles.Tab
	if p.Active {
		style = styles.ActiveTab
	}
	return b.mark(b.headerZone(p.TabID), style.Render(title))
}

// displayTitle renders title markup as a single truncated line.
func displayTitle(markup string) string {
	text := textutil.PlainText(markup)
	if text == "" {
		return " "
	}
	return textutil.Truncate(strings.TrimSpace(text), maxTitleWidth)
}

func (b *TabsBlock) mark(id, s string) string {
	if b.zones == nil {
		return s
	}
	return b.zones.Mark(id, s)
}
