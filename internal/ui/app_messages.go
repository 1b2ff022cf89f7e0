package ui

import (
	"tripplanner/internal/planner"
	"tripplanner/internal/trip"
)

// SubmitSearchMsg is sent when the user submits the search form.
type SubmitSearchMsg struct {
	Criteria trip.Criteria
}

// DestinationsLoadedMsg carries the result of POST /destinations.
type DestinationsLoadedMsg struct {
	Destinations []planner.Destination
	Err          error
}

// SelectDestinationMsg is sent when the user picks a destination card.
// Name is the display name (markers already stripped).
type SelectDestinationMsg struct {
	Name string
}

// DailyPlanLoadedMsg carries the result of POST /daily-plan. Criteria are the
// ones the request was built from; the image request reuses them.
type DailyPlanLoadedMsg struct {
	Destination string
	Criteria    trip.Criteria
	Plan        planner.DailyPlanResponse
	Err         error
}

// TripImagesLoadedMsg carries the result of POST /trip-images.
type TripImagesLoadedMsg struct {
	Destination string
	ImageURLs   []string
	Err         error
}

// NewSearchMsg discards the session and shows an empty search form (SPC n).
type NewSearchMsg struct{}

// BackMsg returns from a destination to the destination list (Esc).
type BackMsg struct{}
