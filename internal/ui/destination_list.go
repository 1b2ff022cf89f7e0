package ui

import (
	"fmt"
	"strings"

	"tripplanner/internal/planner"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

// destinationItem implements list.Item for one destination card.
type destinationItem struct {
	planner.Destination
}

func (d destinationItem) FilterValue() string { return d.DisplayName() }
func (d destinationItem) Title() string       { return d.DisplayName() }

// Description holds the card's detail lines, each shown only when the
// service supplied it. The default delegate renders a single line, so the
// parts are joined with separators.
func (d destinationItem) Description() string {
	return strings.Join(cardLines(d.Destination), "  ·  ")
}

// cardLines returns the detail lines of a destination card in display order.
func cardLines(d planner.Destination) []string {
	var lines []string
	if d.FlightPrice != nil {
		lines = append(lines, "Flight Price: $"+d.FlightPrice.String())
	}
	if d.HotelName != "" {
		lines = append(lines, "Hotel Name: "+d.HotelName)
	}
	if d.HotelPrice != nil {
		lines = append(lines, "Hotel Price: $"+d.HotelPrice.String())
	}
	if d.Message != "" {
		lines = append(lines, d.Message)
	}
	return lines
}

// DestinationListView renders one card per destination candidate.
type DestinationListView struct {
	list         list.Model
	Destinations []planner.Destination
}

// Ensure DestinationListView implements View.
var _ View = (*DestinationListView)(nil)

// NewDestinationListView creates the list in response order.
func NewDestinationListView(dests []planner.Destination) *DestinationListView {
	l := list.New(nil, NewCardListDelegate(), 80, 20)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()

	v := &DestinationListView{list: l, Destinations: dests}
	items := make([]list.Item, len(dests))
	for i, d := range dests {
		items[i] = destinationItem{Destination: d}
	}
	v.list.SetItems(items)
	return v
}

// Selected returns the index of the highlighted card.
func (v *DestinationListView) Selected() int {
	return v.list.Index()
}

// SelectedDestination returns the highlighted destination, if any.
func (v *DestinationListView) SelectedDestination() (planner.Destination, bool) {
	idx := v.list.Index()
	if idx < 0 || idx >= len(v.Destinations) {
		return planner.Destination{}, false
	}
	return v.Destinations[idx], true
}

// SetSize fits the list into the area below the header.
func (v *DestinationListView) SetSize(width, height int) {
	v.list.SetWidth(width)
	v.list.SetHeight(max(height-4, 3))
}

// Init implements View.
func (v *DestinationListView) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (v *DestinationListView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetSize(msg.Width, msg.Height)
		return v, nil
	case tea.KeyMsg:
		if msg.String() == "enter" {
			d, ok := v.SelectedDestination()
			if !ok {
				return v, nil
			}
			name := d.DisplayName()
			return v, func() tea.Msg { return SelectDestinationMsg{Name: name} }
		}
	}
	var cmd tea.Cmd
	v.list, cmd = v.list.Update(msg)
	return v, cmd
}

// View implements View.
func (v *DestinationListView) View() string {
	if len(v.Destinations) == 0 {
		return Styles.Empty.Render("No destinations matched your search.") + "\n\n" +
			Styles.Hint.Render("n: new search  q: quit")
	}
	var b strings.Builder
	b.WriteString(Styles.Section.Render(
		fmt.Sprintf("Here are %d flight destinations that match your search:", len(v.Destinations))) + "\n\n")
	b.WriteString(v.list.View() + "\n")
	b.WriteString(Styles.Hint.Render("Enter: select destination  j/k: move  n: new search  q: quit  SPC: commands"))
	return b.String()
}
