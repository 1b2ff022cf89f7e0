package ui

// AppMode is the screen currently shown: the search form, the destination
// list, or one destination's itinerary and images.
type AppMode int

const (
	ModeSearchForm AppMode = iota
	ModeResults
	ModeDestination
)

func (m AppMode) String() string {
	switch m {
	case ModeSearchForm:
		return "SearchForm"
	case ModeResults:
		return "Results"
	case ModeDestination:
		return "Destination"
	default:
		return "Unknown"
	}
}
