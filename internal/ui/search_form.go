package ui

import (
	"strings"

	"tripplanner/internal/trip"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Form field indexes, in focus order.
const (
	fieldStartDate = iota
	fieldEndDate
	fieldBudget
	fieldTripType
	fieldCount
)

var fieldLabels = [fieldCount]string{
	fieldStartDate: "Start Date:",
	fieldEndDate:   "End Date:",
	fieldBudget:    "Budget:",
	fieldTripType:  "Trip Type:",
}

// SearchFormView collects the four search fields.
type SearchFormView struct {
	inputs    [fieldCount]textinput.Model
	focus     int
	searching bool // a destinations request is in flight
	spinner   spinner.Model
}

// Ensure SearchFormView implements View.
var _ View = (*SearchFormView)(nil)

// NewSearchFormView creates a form with every field empty and the start
// date focused.
func NewSearchFormView() *SearchFormView {
	f := &SearchFormView{}
	placeholders := [fieldCount]string{
		fieldStartDate: "YYYY-MM-DD",
		fieldEndDate:   "YYYY-MM-DD",
		fieldBudget:    "Enter your budget",
		fieldTripType:  "ski / beach / city (ctrl+t cycles)",
	}
	for i := range f.inputs {
		ti := textinput.New()
		ti.Placeholder = placeholders[i]
		ti.Width = 36
		ti.Prompt = "› "
		f.inputs[i] = ti
	}
	f.inputs[fieldStartDate].Focus()

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = Styles.Title
	f.spinner = s
	return f
}

// Criteria returns the form values as typed, trimmed of surrounding space.
func (f *SearchFormView) Criteria() trip.Criteria {
	return trip.Criteria{
		StartDate: strings.TrimSpace(f.inputs[fieldStartDate].Value()),
		EndDate:   strings.TrimSpace(f.inputs[fieldEndDate].Value()),
		Budget:    strings.TrimSpace(f.inputs[fieldBudget].Value()),
		TripType:  strings.TrimSpace(f.inputs[fieldTripType].Value()),
	}
}

// Focused returns the index of the focused field.
func (f *SearchFormView) Focused() int {
	return f.focus
}

// Searching reports whether a submitted search has not answered yet.
func (f *SearchFormView) Searching() bool {
	return f.searching
}

// SetSearching toggles the in-flight indicator. It does not block submits.
func (f *SearchFormView) SetSearching(searching bool) tea.Cmd {
	f.searching = searching
	if searching {
		return f.spinner.Tick
	}
	return nil
}

// Init implements View.
func (f *SearchFormView) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements View.
func (f *SearchFormView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !f.searching {
			return f, nil
		}
		var cmd tea.Cmd
		f.spinner, cmd = f.spinner.Update(msg)
		return f, cmd
	case tea.KeyMsg:
		switch msg.String() {
		case "tab", "down":
			return f, f.setFocus((f.focus + 1) % fieldCount)
		case "shift+tab", "up":
			return f, f.setFocus((f.focus + fieldCount - 1) % fieldCount)
		case "ctrl+t":
			f.cycleTripType()
			return f, nil
		case "enter":
			c := f.Criteria()
			return f, func() tea.Msg { return SubmitSearchMsg{Criteria: c} }
		}
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd
}

func (f *SearchFormView) setFocus(idx int) tea.Cmd {
	f.inputs[f.focus].Blur()
	f.focus = idx
	return f.inputs[f.focus].Focus()
}

// cycleTripType replaces the trip type with the next suggested option.
func (f *SearchFormView) cycleTripType() {
	current := strings.ToLower(strings.TrimSpace(f.inputs[fieldTripType].Value()))
	next := trip.TripTypes[0]
	for i, t := range trip.TripTypes {
		if t == current {
			next = trip.TripTypes[(i+1)%len(trip.TripTypes)]
			break
		}
	}
	f.inputs[fieldTripType].SetValue(next)
	f.inputs[fieldTripType].CursorEnd()
}

// View implements View.
func (f *SearchFormView) View() string {
	var b strings.Builder
	for i := range f.inputs {
		label := Styles.Label.Render(fieldLabels[i])
		if i == f.focus {
			label = Styles.Focused.Render(fieldLabels[i])
		}
		b.WriteString(label + "\n")
		b.WriteString(f.inputs[i].View() + "\n\n")
	}
	if f.searching {
		b.WriteString(f.spinner.View() + " " + Styles.Muted.Render("Getting suggestions…") + "\n")
	}
	b.WriteString(Styles.Hint.Render("Enter: get suggestions  Tab: next field  ctrl+t: trip type  ctrl+c: quit"))
	return b.String()
}
