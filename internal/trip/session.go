// Package trip holds the per-session state of the trip planner screen.
package trip

import (
	"math"
	"strconv"
	"strings"

	"tripplanner/internal/itinerary"
	"tripplanner/internal/planner"
)

// TripTypes are the suggested trip types. Free text is accepted as well.
var TripTypes = []string{"ski", "beach", "city"}

// Criteria are the search form values as the user typed them.
type Criteria struct {
	StartDate string
	EndDate   string
	Budget    string
	TripType  string
}

// BudgetValue parses Budget leniently: the longest numeric prefix wins and
// anything unparsable (including NaN and infinities, which JSON cannot carry) is 0.
func (c Criteria) BudgetValue() float64 {
	s := strings.TrimSpace(c.Budget)
	s = strings.TrimPrefix(s, "$")
	for end := len(s); end > 0; end-- {
		v, err := strconv.ParseFloat(s[:end], 64)
		if err == nil && !math.IsInf(v, 0) && !math.IsNaN(v) {
			return v
		}
	}
	return 0
}

// DestinationsRequest builds the body for the destinations endpoint.
func (c Criteria) DestinationsRequest() planner.DestinationsRequest {
	return planner.DestinationsRequest{
		StartDate: c.StartDate,
		EndDate:   c.EndDate,
		Budget:    c.BudgetValue(),
		TripType:  c.TripType,
	}
}

// DailyPlanRequest builds the body for the daily plan endpoint.
func (c Criteria) DailyPlanRequest(destination string) planner.DailyPlanRequest {
	return planner.DailyPlanRequest{
		DestinationName: destination,
		StartDate:       c.StartDate,
		EndDate:         c.EndDate,
		TripType:        c.TripType,
	}
}

// TripImagesRequest builds the body for the trip images endpoint.
func (c Criteria) TripImagesRequest(destination, summary string) planner.TripImagesRequest {
	return planner.TripImagesRequest{
		DestinationName: destination,
		TripMonth:       itinerary.MonthName(c.StartDate),
		TripType:        c.TripType,
		Summary:         summary,
	}
}

// Session is everything the screen knows about the current search.
// The zero value is an empty session.
type Session struct {
	Criteria     Criteria
	Destinations []planner.Destination
	Selected     string // display name of the selected destination, "" if none
	DailyPlan    string
	Summary      string
	ImageURLs    []string
}

// Reset discards all state, as a new search does.
func (s *Session) Reset() {
	*s = Session{}
}

// Days parses the stored itinerary.
func (s *Session) Days() []itinerary.Day {
	return itinerary.Parse(s.DailyPlan)
}

// Destination returns the destination with the given airport code.
func (s *Session) Destination(code string) (planner.Destination, bool) {
	for _, d := range s.Destinations {
		if d.Code == code {
			return d, true
		}
	}
	return planner.Destination{}, false
}

// Select records a destination and clears the previous selection's plan.
func (s *Session) Select(name string) {
	s.Selected = name
	s.DailyPlan = ""
	s.Summary = ""
	s.ImageURLs = nil
}

// Deselect returns to the destination list, keeping the destinations.
func (s *Session) Deselect() {
	s.Select("")
}
