package ui

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
)

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - for titles, highlights
	ColorHighlight = "205" // Magenta - for selected items, borders
	ColorDanger    = "196" // Red - for advisory messages
	ColorMuted     = "241" // Gray - for dimmed text, hints
	ColorText      = "252" // Light gray - for normal text
	ColorWarning   = "208" // Orange - for prices
)

// Styles contains shared style definitions used across views.
var Styles = struct {
	Title    lipgloss.Style // Bold accent color - for the app title
	Section  lipgloss.Style // Section headings
	Label    lipgloss.Style // Field labels ("Flight Price:")
	Price    lipgloss.Style // Price values
	Advisory lipgloss.Style // Service advisory message on a card
	Muted    lipgloss.Style
	Normal   lipgloss.Style
	Hint     lipgloss.Style
	Selected lipgloss.Style
	Empty    lipgloss.Style // Empty state text (muted, italic)

	DayCard   lipgloss.Style // One itinerary day
	DayHeader lipgloss.Style
	ImageCell lipgloss.Style // One cell of the image grid
	Focused   lipgloss.Style // Focused form field label
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Section: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorHighlight)),
	Label: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Price: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorWarning)),
	Advisory: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDanger)).
		Italic(true),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Selected: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	Empty: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Italic(true),
	DayCard: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Padding(0, 1).
		MarginBottom(1),
	DayHeader: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	ImageCell: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(0, 1),
	Focused: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
}

// NewCardListDelegate returns the delegate used for destination cards:
// the title is the destination name, the description holds the detail lines.
func NewCardListDelegate() list.DefaultDelegate {
	d := list.NewDefaultDelegate()
	d.SetSpacing(1)
	d.ShowDescription = true
	d.Styles.SelectedTitle = d.Styles.SelectedTitle.Foreground(lipgloss.Color(ColorHighlight)).
		BorderForeground(lipgloss.Color(ColorHighlight)).Bold(true)
	d.Styles.SelectedDesc = d.Styles.SelectedDesc.Foreground(lipgloss.Color(ColorText)).
		BorderForeground(lipgloss.Color(ColorHighlight))
	d.Styles.NormalTitle = d.Styles.NormalTitle.Foreground(lipgloss.Color(ColorText))
	d.Styles.NormalDesc = d.Styles.NormalDesc.Foreground(lipgloss.Color(ColorMuted))
	return d
}
