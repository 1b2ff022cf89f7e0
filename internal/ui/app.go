package ui

import (
	"strings"

	"tripplanner/internal/trip"

	tea "github.com/charmbracelet/bubbletea"
)

// AppModel is the root model. It owns the session and switches between the
// search form, the destination list and the destination detail.
type AppModel struct {
	Mode       AppMode
	Session    trip.Session
	Form       *SearchFormView
	Results    *DestinationListView
	Detail     *DestinationDetailView
	KeyHandler *KeyHandler
	Client     Planner

	width, height int
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return a.currentView().Init()
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return a.handleWindowSize(msg)
	case SubmitSearchMsg:
		return a.handleSubmitSearch(msg)
	case DestinationsLoadedMsg:
		return a.handleDestinationsLoaded(msg)
	case SelectDestinationMsg:
		return a.handleSelectDestination(msg)
	case DailyPlanLoadedMsg:
		return a.handleDailyPlanLoaded(msg)
	case TripImagesLoadedMsg:
		return a.handleTripImagesLoaded(msg)
	case NewSearchMsg:
		return a.handleNewSearch()
	case BackMsg:
		return a.handleBack()
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		// The form receives every other key so SPC and q can be typed.
		if a.Mode != ModeSearchForm {
			if a.KeyHandler != nil {
				if consumed, keyCmd := a.KeyHandler.Handle(msg, a.Mode); consumed {
					return a, keyCmd
				}
			}
			if msg.String() == "esc" {
				switch a.Mode {
				case ModeResults:
					return a, func() tea.Msg { return NewSearchMsg{} }
				case ModeDestination:
					return a, func() tea.Msg { return BackMsg{} }
				}
			}
		}
	}

	v, cmd := a.currentView().Update(msg)
	a.setCurrentView(v)
	return a, cmd
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	var b strings.Builder
	b.WriteString(Styles.Title.Render("Trip Planner") + "\n\n")
	b.WriteString(a.currentView().View())
	if a.KeyHandler != nil && a.KeyHandler.LeaderWaiting {
		if help := RenderKeybindHelp(a.KeyHandler, a.Mode); help != "" {
			b.WriteString("\n" + help)
		}
	}
	return b.String()
}

func (a *appModelAdapter) currentView() View {
	switch a.Mode {
	case ModeResults:
		if a.Results != nil {
			return a.Results
		}
	case ModeDestination:
		if a.Detail != nil {
			return a.Detail
		}
	}
	if a.Form == nil {
		a.Form = NewSearchFormView()
	}
	return a.Form
}

func (a *appModelAdapter) setCurrentView(v View) {
	switch v := v.(type) {
	case *SearchFormView:
		a.Form = v
	case *DestinationListView:
		a.Results = v
	case *DestinationDetailView:
		a.Detail = v
	}
}

// NewAppModel creates the root application model showing an empty search form.
func NewAppModel(client Planner) *AppModel {
	browsing := []AppMode{ModeResults, ModeDestination}
	newSearch := func() tea.Msg { return NewSearchMsg{} }

	reg := NewKeybindRegistry()
	reg.BindWithDescForMode("q", tea.Quit, "Quit", browsing)
	reg.BindWithDescForMode("SPC q", tea.Quit, "Quit", browsing)
	reg.BindWithDescForMode("n", newSearch, "New search", browsing)
	reg.BindWithDescForMode("SPC n", newSearch, "New search", browsing)
	return &AppModel{
		Mode:       ModeSearchForm,
		Form:       NewSearchFormView(),
		KeyHandler: NewKeyHandler(reg),
		Client:     client,
	}
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}
