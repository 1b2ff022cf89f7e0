package ui

import (
	"strings"

	"tripplanner/internal/itinerary"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	defaultDetailWidth  = 80
	defaultDetailHeight = 20
)

// DestinationDetailView shows the itinerary and image grid of the selected
// destination inside a scrollable viewport.
type DestinationDetailView struct {
	Destination string
	Days        []itinerary.Day
	ImageURLs   []string

	planPending   bool
	imagesPending bool
	spinner       spinner.Model
	viewport      viewport.Model
	width         int
}

// Ensure DestinationDetailView implements View.
var _ View = (*DestinationDetailView)(nil)

// NewDestinationDetailView creates a detail view waiting for its plan.
func NewDestinationDetailView(name string) *DestinationDetailView {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = Styles.Title
	v := &DestinationDetailView{
		Destination: name,
		planPending: true,
		spinner:     s,
		viewport:    viewport.New(defaultDetailWidth, defaultDetailHeight),
		width:       defaultDetailWidth,
	}
	v.refreshContent()
	return v
}

// SetSize fits the viewport below the header and hint lines.
func (v *DestinationDetailView) SetSize(width, height int) {
	v.width = width
	v.viewport.Width = width
	v.viewport.Height = max(height-5, 3)
	v.refreshContent()
}

// SetPlan shows the parsed itinerary. The image request follows.
func (v *DestinationDetailView) SetPlan(days []itinerary.Day) {
	v.Days = days
	v.planPending = false
	v.imagesPending = true
	v.refreshContent()
}

// SetImages shows the image grid.
func (v *DestinationDetailView) SetImages(urls []string) {
	v.ImageURLs = urls
	v.imagesPending = false
	v.refreshContent()
}

// StopLoading clears the pending indicators after a failed request.
func (v *DestinationDetailView) StopLoading() {
	v.planPending = false
	v.imagesPending = false
	v.refreshContent()
}

// Loading reports whether a plan or image response is still expected.
func (v *DestinationDetailView) Loading() bool {
	return v.planPending || v.imagesPending
}

// Init implements View.
func (v *DestinationDetailView) Init() tea.Cmd {
	return v.spinner.Tick
}

// Update implements View.
func (v *DestinationDetailView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetSize(msg.Width, msg.Height)
		return v, nil
	case spinner.TickMsg:
		if !v.Loading() {
			return v, nil
		}
		var cmd tea.Cmd
		v.spinner, cmd = v.spinner.Update(msg)
		v.refreshContent()
		return v, cmd
	case tea.KeyMsg:
		switch msg.String() {
		case "g":
			v.viewport.GotoTop()
			return v, nil
		case "G":
			v.viewport.GotoBottom()
			return v, nil
		}
	}
	var cmd tea.Cmd
	v.viewport, cmd = v.viewport.Update(msg)
	return v, cmd
}

// View implements View.
func (v *DestinationDetailView) View() string {
	var b strings.Builder
	b.WriteString(Styles.Section.Render("Let's look at your daily plan trip to: "+v.Destination) + "\n\n")
	b.WriteString(v.viewport.View() + "\n")
	b.WriteString(Styles.Hint.Render("j/k: scroll  Esc: back to destinations  n: new search  q: quit"))
	return b.String()
}

// refreshContent rebuilds the viewport content from the plan and images.
func (v *DestinationDetailView) refreshContent() {
	var sections []string
	if v.planPending {
		sections = append(sections, v.spinner.View()+" "+Styles.Muted.Render("Planning your trip…"))
	}
	if plan := renderItinerary(v.Days, v.width); plan != "" {
		sections = append(sections, plan)
	}
	if v.imagesPending {
		sections = append(sections, v.spinner.View()+" "+Styles.Muted.Render("Generating trip images…"))
	}
	if grid := renderImageGrid(v.ImageURLs, v.width); grid != "" {
		sections = append(sections, grid)
	}
	v.viewport.SetContent(strings.Join(sections, "\n"))
}

// renderItinerary draws one card per day. No days renders nothing.
func renderItinerary(days []itinerary.Day, width int) string {
	if len(days) == 0 {
		return ""
	}
	cardWidth := max(width-2, 20)
	cards := make([]string, 0, len(days))
	for _, d := range days {
		var body strings.Builder
		body.WriteString(Styles.DayHeader.Render(d.Label()))
		for _, a := range d.Activities {
			body.WriteString("\n" + Styles.Normal.Render("- "+a))
		}
		cards = append(cards, Styles.DayCard.Width(cardWidth).Render(body.String()))
	}
	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}
