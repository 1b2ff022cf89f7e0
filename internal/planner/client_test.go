package planner

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

// newTestServer serves a fixed status and body on path and records the
// decoded request body into got.
func newTestServer(t *testing.T, path string, status int, body string, got interface{}) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if r.URL.Path != path {
			t.Errorf("expected path %s, got %s", path, r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("expected JSON content type, got %q", ct)
		}
		if got != nil {
			if err := json.NewDecoder(r.Body).Decode(got); err != nil {
				t.Errorf("decode request: %v", err)
			}
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestDestinations_PreservesOrderAndFields(t *testing.T) {
	var got map[string]interface{}
	body := `{"destination_details": {
		"ZRH": {"name": "**Zurich**", "flight_price": 420, "hotel_name": "Alpine Lodge", "hotel_price": 610.5},
		"CDG": {"name": "Paris", "flight_price": 1900, "message": "The flight price alone exceeds the entire budget."},
		"INN": {"name": "Innsbruck", "flight_price": 300, "hotel_name": "---", "hotel_price": "---"},
		"AAA": {"name": "Nowhere", "message": "Failed to retrieve flight price insights."}
	}}`
	srv := newTestServer(t, PathDestinations, http.StatusOK, body, &got)

	c := NewClient(srv.URL + "/")
	dests, err := c.Destinations(context.Background(), DestinationsRequest{
		StartDate: "2023-07-04",
		EndDate:   "2023-07-11",
		Budget:    1500,
		TripType:  "ski",
	})
	require.NoError(t, err)

	assert.Equal(t, "2023-07-04", got["start_date"])
	assert.Equal(t, "2023-07-11", got["end_date"])
	assert.Equal(t, 1500.0, got["budget"])
	assert.Equal(t, "ski", got["trip_type"])

	require.Len(t, dests, 4)
	codes := []string{dests[0].Code, dests[1].Code, dests[2].Code, dests[3].Code}
	assert.Equal(t, []string{"ZRH", "CDG", "INN", "AAA"}, codes, "response key order must be kept")

	zrh := dests[0]
	assert.Equal(t, "**Zurich**", zrh.Name)
	assert.Equal(t, "Zurich", zrh.DisplayName())
	require.NotNil(t, zrh.FlightPrice)
	assert.Equal(t, "420", zrh.FlightPrice.String())
	assert.Equal(t, "Alpine Lodge", zrh.HotelName)
	require.NotNil(t, zrh.HotelPrice)
	assert.Equal(t, "610.5", zrh.HotelPrice.String())
	assert.Empty(t, zrh.Message)

	assert.Nil(t, dests[1].HotelPrice)
	assert.Equal(t, "The flight price alone exceeds the entire budget.", dests[1].Message)

	require.NotNil(t, dests[2].HotelPrice)
	assert.Equal(t, "---", dests[2].HotelPrice.String())

	assert.Nil(t, dests[3].FlightPrice)
}

func TestDestinations_EmptyMapping(t *testing.T) {
	for _, body := range []string{`{"destination_details": {}}`, `{"destination_details": null}`} {
		srv := newTestServer(t, PathDestinations, http.StatusOK, body, nil)
		dests, err := NewClient(srv.URL).Destinations(context.Background(), DestinationsRequest{})
		require.NoError(t, err, body)
		assert.NotNil(t, dests)
		assert.Empty(t, dests)
	}
}

func TestDestinations_MissingDetailsIsMalformed(t *testing.T) {
	srv := newTestServer(t, PathDestinations, http.StatusOK, `{"something_else": 1}`, nil)
	_, err := NewClient(srv.URL).Destinations(context.Background(), DestinationsRequest{})
	assert.ErrorIs(t, err, ErrMalformedResponse)
	assert.Equal(t, "malformed", Kind(err))
}

func TestDailyPlan(t *testing.T) {
	var got DailyPlanRequest
	body := `{"daily_plan": "Day 1:\n- Museum\n- Dinner", "summary": "Sunlit streets, cafes, river boats, old towers."}`
	srv := newTestServer(t, PathDailyPlan, http.StatusOK, body, &got)

	req := DailyPlanRequest{DestinationName: "Paris", StartDate: "2023-07-04", EndDate: "2023-07-06", TripType: "city"}
	resp, err := NewClient(srv.URL).DailyPlan(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, req, got)
	assert.Equal(t, "Day 1:\n- Museum\n- Dinner", resp.DailyPlan)
	assert.Equal(t, "Sunlit streets, cafes, river boats, old towers.", resp.Summary)
}

func TestDailyPlan_ServiceError(t *testing.T) {
	srv := newTestServer(t, PathDailyPlan, http.StatusOK, `{"error": "Failed to generate daily plan."}`, nil)
	_, err := NewClient(srv.URL).DailyPlan(context.Background(), DailyPlanRequest{})

	var serviceErr *ServiceError
	require.ErrorAs(t, err, &serviceErr)
	assert.Equal(t, PathDailyPlan, serviceErr.Endpoint)
	assert.Equal(t, "Failed to generate daily plan.", serviceErr.Message)
	assert.Equal(t, "service", Kind(err))
}

func TestTripImages(t *testing.T) {
	var got TripImagesRequest
	body := `{"image_urls": ["https://img.example/1.png", "https://img.example/2.png"]}`
	srv := newTestServer(t, PathTripImages, http.StatusOK, body, &got)

	req := TripImagesRequest{DestinationName: "Paris", TripMonth: "July", TripType: "city", Summary: "s"}
	resp, err := NewClient(srv.URL).TripImages(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, req, got)
	assert.Equal(t, []string{"https://img.example/1.png", "https://img.example/2.png"}, resp.ImageURLs)
}

func TestPost_StatusError(t *testing.T) {
	srv := newTestServer(t, PathTripImages, http.StatusBadGateway, `upstream exploded`, nil)
	_, err := NewClient(srv.URL).TripImages(context.Background(), TripImagesRequest{})

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusBadGateway, statusErr.Code)
	assert.Equal(t, "upstream exploded", statusErr.Body)
	assert.Equal(t, "status", Kind(err))
}

func TestPost_InvalidJSONIsMalformed(t *testing.T) {
	srv := newTestServer(t, PathTripImages, http.StatusOK, `<html>oops</html>`, nil)
	_, err := NewClient(srv.URL).TripImages(context.Background(), TripImagesRequest{})
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestPost_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(func() {
		close(release)
		srv.Close()
	})

	c := NewClient(srv.URL, WithTimeout(50*time.Millisecond))
	_, err := c.DailyPlan(context.Background(), DailyPlanRequest{})
	assert.ErrorIs(t, err, ErrTimeout)
	assert.Equal(t, "timeout", Kind(err))
}

func TestPost_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close() // nothing listens any more

	_, err := NewClient(url).Destinations(context.Background(), DestinationsRequest{})
	assert.ErrorIs(t, err, ErrNetwork)
	assert.False(t, errors.Is(err, ErrTimeout))
}

func TestPost_RecordsSpans(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	srv := newTestServer(t, PathTripImages, http.StatusInternalServerError, ``, nil)
	c := NewClient(srv.URL, WithTracer(tp.Tracer("test")))
	_, err := c.TripImages(context.Background(), TripImagesRequest{})
	require.Error(t, err)

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "POST /trip-images", spans[0].Name())
	assert.Equal(t, "Error", spans[0].Status().Code.String())
	assert.Equal(t, "status", spans[0].Status().Description)
}

func TestKind(t *testing.T) {
	assert.Equal(t, "", Kind(nil))
	assert.Equal(t, "other", Kind(errors.New("boom")))
	assert.Equal(t, "timeout", Kind(ErrTimeout))
	assert.Equal(t, "network", Kind(ErrNetwork))
}

func TestCleanName(t *testing.T) {
	tests := map[string]string{
		"**Paris**":  "Paris",
		"Paris":      "Paris",
		"*Rome* **":  "Rome ",
		"":           "",
		"Tel*Aviv**": "TelAviv",
	}
	for in, want := range tests {
		if got := CleanName(in); got != want {
			t.Errorf("CleanName(%q) = %q, want %q", in, got, want)
		}
	}
}
