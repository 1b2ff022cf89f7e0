package ui

import (
	"context"

	"tripplanner/internal/planner"
	"tripplanner/internal/trip"

	tea "github.com/charmbracelet/bubbletea"
)

// Planner is the subset of the planning service client the UI needs.
type Planner interface {
	Destinations(ctx context.Context, req planner.DestinationsRequest) ([]planner.Destination, error)
	DailyPlan(ctx context.Context, req planner.DailyPlanRequest) (planner.DailyPlanResponse, error)
	TripImages(ctx context.Context, req planner.TripImagesRequest) (planner.TripImagesResponse, error)
}

// fetchDestinationsCmd posts the search criteria and returns DestinationsLoadedMsg.
func fetchDestinationsCmd(p Planner, c trip.Criteria) tea.Cmd {
	return func() tea.Msg {
		dests, err := p.Destinations(context.Background(), c.DestinationsRequest())
		return DestinationsLoadedMsg{Destinations: dests, Err: err}
	}
}

// fetchDailyPlanCmd requests the itinerary for a destination and returns
// DailyPlanLoadedMsg. The image request is issued only from its handler.
func fetchDailyPlanCmd(p Planner, c trip.Criteria, destination string) tea.Cmd {
	return func() tea.Msg {
		plan, err := p.DailyPlan(context.Background(), c.DailyPlanRequest(destination))
		return DailyPlanLoadedMsg{Destination: destination, Criteria: c, Plan: plan, Err: err}
	}
}

// fetchTripImagesCmd requests images for the trip summary and returns TripImagesLoadedMsg.
func fetchTripImagesCmd(p Planner, c trip.Criteria, destination, summary string) tea.Cmd {
	return func() tea.Msg {
		resp, err := p.TripImages(context.Background(), c.TripImagesRequest(destination, summary))
		return TripImagesLoadedMsg{Destination: destination, ImageURLs: resp.ImageURLs, Err: err}
	}
}
