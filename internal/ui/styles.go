package ui

import (
	"github.com/charmbracelet/lipgloss"

	"tabsblock/internal/block"
)

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - for titles, highlights
	ColorHighlight = "205" // Magenta - for selected items, borders
	ColorDanger    = "196" // Red - for delete affordances
	ColorMuted     = "241" // Gray - for dimmed text, hints
	ColorText      = "252" // Light gray - for normal text
)

// TabStyles is the set of styles for one tab variant.
type TabStyles struct {
	Tab       lipgloss.Style // inactive header
	ActiveTab lipgloss.Style // active header
	Panel     lipgloss.Style // box around the visible panel body
}

// Styles contains shared style definitions used across the widget and app.
var Styles = struct {
	Modern    TabStyles // "default" tab style
	Secondary TabStyles // "secondary" tab style, used by every non-modern variant

	Delete  lipgloss.Style // delete affordance
	Editing lipgloss.Style // title field while editing
	Hint    lipgloss.Style // Help/hint text (muted color)
	Status  lipgloss.Style // Status line (accent color)
	Error   lipgloss.Style // Status line for failures
	Empty   lipgloss.Style // Empty state text (muted, italic)
	Toolbar lipgloss.Style // Toolbar row
}{
	Modern: TabStyles{
		Tab: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(ColorMuted)).
			Foreground(lipgloss.Color(ColorText)).
			Padding(0, 1),
		ActiveTab: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(ColorHighlight)).
			Foreground(lipgloss.Color(ColorHighlight)).
			Bold(true).
			Padding(0, 1),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(ColorHighlight)).
			Padding(0, 1),
	},
	Secondary: TabStyles{
		Tab: lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorMuted)).
			Padding(0, 1),
		ActiveTab: lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorAccent)).
			Bold(true).
			Underline(true).
			Padding(0, 1),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), true, false, false, false).
			BorderForeground(lipgloss.Color(ColorMuted)).
			Padding(0, 1),
	},
	Delete: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDanger)),
	Editing: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Status: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)),
	Error: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDanger)),
	Empty: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Italic(true),
	Toolbar: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
}

// StylesFor returns the tab styles a variant renders with.
func StylesFor(v block.Variant) TabStyles {
	if v.TabStyle() == "default" {
		return Styles.Modern
	}
	return Styles.Secondary
}
