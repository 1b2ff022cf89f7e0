package planner

import (
	"strings"

	"tripplanner/internal/jsonutil"

	"github.com/tidwall/gjson"
)

// Endpoint paths on the planning service.
const (
	PathDestinations = "/destinations"
	PathDailyPlan    = "/daily-plan"
	PathTripImages   = "/trip-images"
)

// DestinationsRequest is the body of POST /destinations.
type DestinationsRequest struct {
	StartDate string  `json:"start_date"`
	EndDate   string  `json:"end_date"`
	Budget    float64 `json:"budget"`
	TripType  string  `json:"trip_type"`
}

// DailyPlanRequest is the body of POST /daily-plan.
type DailyPlanRequest struct {
	DestinationName string `json:"destination_name"`
	StartDate       string `json:"start_date"`
	EndDate         string `json:"end_date"`
	TripType        string `json:"trip_type"`
}

// DailyPlanResponse is the body returned by POST /daily-plan.
type DailyPlanResponse struct {
	DailyPlan string `json:"daily_plan"`
	Summary   string `json:"summary"`
}

// TripImagesRequest is the body of POST /trip-images.
type TripImagesRequest struct {
	DestinationName string `json:"destination_name"`
	TripMonth       string `json:"trip_month"`
	TripType        string `json:"trip_type"`
	Summary         string `json:"summary"`
}

// TripImagesResponse is the body returned by POST /trip-images.
type TripImagesResponse struct {
	ImageURLs []string `json:"image_urls"`
}

// Amount is a price reported either as a number or as a placeholder string
// (the service sends "---" when no hotel fits the budget).
type Amount struct {
	Value float64
	Text  string
}

// String renders the amount without a currency sign.
func (a Amount) String() string {
	if a.Text != "" {
		return a.Text
	}
	return jsonutil.FormatNumber(a.Value)
}

// amountFrom returns nil when the field is missing, null, zero, or empty.
func amountFrom(r gjson.Result) *Amount {
	switch r.Type {
	case gjson.Number:
		if r.Float() == 0 {
			return nil
		}
		return &Amount{Value: r.Float()}
	case gjson.String:
		if r.String() == "" {
			return nil
		}
		return &Amount{Text: r.String()}
	default:
		return nil
	}
}

// markerChars are stripped from destination names before display.
const markerChars = "*"

// Destination is one suggested destination keyed by its airport code.
type Destination struct {
	Code        string
	Name        string // raw name, may carry markdown emphasis markers
	FlightPrice *Amount
	HotelName   string
	HotelPrice  *Amount
	Message     string
}

// DisplayName returns Name with every marker character removed.
func (d Destination) DisplayName() string {
	return CleanName(d.Name)
}

// CleanName removes every marker character from name.
func CleanName(name string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(markerChars, r) {
			return -1
		}
		return r
	}, name)
}

// destinationFrom decodes one entry of destination_details.
func destinationFrom(code string, v gjson.Result) Destination {
	return Destination{
		Code:        code,
		Name:        jsonutil.ToString(v.Get("name")),
		FlightPrice: amountFrom(v.Get("flight_price")),
		HotelName:   jsonutil.ToString(v.Get("hotel_name")),
		HotelPrice:  amountFrom(v.Get("hotel_price")),
		Message:     jsonutil.ToString(v.Get("message")),
	}
}
