package ui

import (
	"tripplanner/internal/planner"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
)

// handleWindowSize records the terminal size and resizes every live view.
func (a *appModelAdapter) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	a.width, a.height = msg.Width, msg.Height
	// Title line and its blank separator.
	h := max(msg.Height-2, 1)
	if a.Results != nil {
		a.Results.SetSize(msg.Width, h)
	}
	if a.Detail != nil {
		a.Detail.SetSize(msg.Width, h)
	}
	return a, nil
}

// handleSubmitSearch handles SubmitSearchMsg by posting the criteria.
// Repeated submits are not blocked; the last response to arrive wins.
func (a *appModelAdapter) handleSubmitSearch(msg SubmitSearchMsg) (tea.Model, tea.Cmd) {
	a.Session.Criteria = msg.Criteria
	log.Debug().
		Str("start_date", msg.Criteria.StartDate).
		Str("end_date", msg.Criteria.EndDate).
		Str("trip_type", msg.Criteria.TripType).
		Msg("submitting search")
	if a.Client == nil {
		return a, nil
	}
	var spin tea.Cmd
	if a.Form != nil {
		spin = a.Form.SetSearching(true)
	}
	return a, tea.Batch(spin, fetchDestinationsCmd(a.Client, msg.Criteria))
}

// handleDestinationsLoaded handles DestinationsLoadedMsg. A failed request
// is logged and leaves the screen as it was.
func (a *appModelAdapter) handleDestinationsLoaded(msg DestinationsLoadedMsg) (tea.Model, tea.Cmd) {
	if a.Form != nil {
		a.Form.SetSearching(false)
	}
	if msg.Err != nil {
		log.Error().Err(msg.Err).
			Str("endpoint", planner.PathDestinations).
			Str("kind", planner.Kind(msg.Err)).
			Msg("destination search failed")
		return a, nil
	}
	log.Info().Int("count", len(msg.Destinations)).Msg("destinations loaded")

	a.Session.Destinations = msg.Destinations
	a.Session.Deselect()
	a.Detail = nil
	a.Results = NewDestinationListView(msg.Destinations)
	if a.width > 0 {
		a.Results.SetSize(a.width, max(a.height-2, 1))
	}
	a.Mode = ModeResults
	return a, a.Results.Init()
}

// handleSelectDestination handles SelectDestinationMsg by showing the
// destination and requesting its daily plan. Images are requested only once
// the plan has arrived.
func (a *appModelAdapter) handleSelectDestination(msg SelectDestinationMsg) (tea.Model, tea.Cmd) {
	a.Session.Select(msg.Name)
	a.Detail = NewDestinationDetailView(msg.Name)
	if a.width > 0 {
		a.Detail.SetSize(a.width, max(a.height-2, 1))
	}
	a.Mode = ModeDestination
	if a.Client == nil {
		a.Detail.StopLoading()
		return a, nil
	}
	return a, tea.Batch(a.Detail.Init(), fetchDailyPlanCmd(a.Client, a.Session.Criteria, msg.Name))
}

// handleDailyPlanLoaded handles DailyPlanLoadedMsg: store and render the
// itinerary, then request trip images for its summary.
func (a *appModelAdapter) handleDailyPlanLoaded(msg DailyPlanLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		log.Error().Err(msg.Err).
			Str("endpoint", planner.PathDailyPlan).
			Str("kind", planner.Kind(msg.Err)).
			Str("destination", msg.Destination).
			Msg("daily plan request failed")
		if a.Detail != nil && a.Detail.Destination == msg.Destination {
			a.Detail.StopLoading()
		}
		return a, nil
	}

	// TODO: tag requests with a selection generation so a plan for a
	// destination the user has since left is dropped instead of stored.
	a.Session.DailyPlan = msg.Plan.DailyPlan
	a.Session.Summary = msg.Plan.Summary
	if a.Detail != nil && a.Detail.Destination == msg.Destination {
		a.Detail.SetPlan(a.Session.Days())
	}
	log.Debug().Str("destination", msg.Destination).Int("days", len(a.Session.Days())).Msg("daily plan loaded")

	if a.Client == nil {
		return a, nil
	}
	return a, fetchTripImagesCmd(a.Client, msg.Criteria, msg.Destination, msg.Plan.Summary)
}

// handleTripImagesLoaded handles TripImagesLoadedMsg by filling the image grid.
func (a *appModelAdapter) handleTripImagesLoaded(msg TripImagesLoadedMsg) (tea.Model, tea.Cmd) {
	current := a.Detail != nil && a.Detail.Destination == msg.Destination
	if msg.Err != nil {
		log.Error().Err(msg.Err).
			Str("endpoint", planner.PathTripImages).
			Str("kind", planner.Kind(msg.Err)).
			Str("destination", msg.Destination).
			Msg("trip images request failed")
		if current {
			a.Detail.StopLoading()
		}
		return a, nil
	}
	a.Session.ImageURLs = msg.ImageURLs
	if current {
		a.Detail.SetImages(msg.ImageURLs)
	}
	return a, nil
}

// handleNewSearch handles NewSearchMsg: discard the session and show an empty form.
func (a *appModelAdapter) handleNewSearch() (tea.Model, tea.Cmd) {
	a.Session.Reset()
	a.Form = NewSearchFormView()
	a.Results = nil
	a.Detail = nil
	a.Mode = ModeSearchForm
	return a, a.Form.Init()
}

// handleBack handles BackMsg by returning from a destination to the list.
func (a *appModelAdapter) handleBack() (tea.Model, tea.Cmd) {
	if a.Mode != ModeDestination {
		return a, nil
	}
	a.Session.Deselect()
	a.Detail = nil
	if a.Results == nil {
		a.Results = NewDestinationListView(a.Session.Destinations)
	}
	a.Mode = ModeResults
	return a, nil
}
