package trip

import (
	"testing"

	"tripplanner/internal/planner"

	"github.com/stretchr/testify/assert"
)

func TestCriteria_BudgetValue(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"1500", 1500},
		{" 2500.75 ", 2500.75},
		{"$900", 900},
		{"1200 usd", 1200},
		{"", 0},
		{"lots", 0},
		{"Inf", 0},
		{"NaN", 0},
	}
	for _, tt := range tests {
		got := Criteria{Budget: tt.in}.BudgetValue()
		assert.Equal(t, tt.want, got, "BudgetValue(%q)", tt.in)
	}
}

func TestCriteria_Requests(t *testing.T) {
	c := Criteria{StartDate: "2023-07-04", EndDate: "2023-07-10", Budget: "2000", TripType: "beach"}

	assert.Equal(t, planner.DestinationsRequest{
		StartDate: "2023-07-04", EndDate: "2023-07-10", Budget: 2000, TripType: "beach",
	}, c.DestinationsRequest())

	assert.Equal(t, planner.DailyPlanRequest{
		DestinationName: "Nice", StartDate: "2023-07-04", EndDate: "2023-07-10", TripType: "beach",
	}, c.DailyPlanRequest("Nice"))

	assert.Equal(t, planner.TripImagesRequest{
		DestinationName: "Nice", TripMonth: "July", TripType: "beach", Summary: "blue water",
	}, c.TripImagesRequest("Nice", "blue water"))
}

func TestSession_ResetClearsEverything(t *testing.T) {
	s := Session{
		Criteria:     Criteria{StartDate: "2023-07-04", Budget: "10"},
		Destinations: []planner.Destination{{Code: "NCE", Name: "Nice"}},
		Selected:     "Nice",
		DailyPlan:    "Day 1: - swim",
		Summary:      "sun",
		ImageURLs:    []string{"https://img.example/1.png"},
	}
	s.Reset()
	assert.Equal(t, Session{}, s)
	assert.Empty(t, s.Days())
}

func TestSession_SelectAndLookup(t *testing.T) {
	s := Session{Destinations: []planner.Destination{{Code: "NCE", Name: "*Nice*"}, {Code: "BCN", Name: "Barcelona"}}}
	s.DailyPlan = "old"
	s.ImageURLs = []string{"old"}

	s.Select("Nice")
	assert.Equal(t, "Nice", s.Selected)
	assert.Empty(t, s.DailyPlan)
	assert.Nil(t, s.ImageURLs)

	d, ok := s.Destination("BCN")
	assert.True(t, ok)
	assert.Equal(t, "Barcelona", d.DisplayName())
	_, ok = s.Destination("XXX")
	assert.False(t, ok)

	s.Deselect()
	assert.Empty(t, s.Selected)
	assert.Len(t, s.Destinations, 2, "going back keeps the destinations")
}

func TestSession_Days(t *testing.T) {
	s := Session{DailyPlan: "Day 1:\n- a\n- b\nDay 2:\n- c"}
	days := s.Days()
	if assert.Len(t, days, 2) {
		assert.Equal(t, []string{"a", "b"}, days[0].Activities)
		assert.Equal(t, "Day 2", days[1].Label())
	}
}
