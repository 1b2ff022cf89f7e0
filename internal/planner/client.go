// Package planner is the HTTP client for the external trip planning service.
//
// The service exposes three POST endpoints. The client decodes their bodies,
// keeps the key order of destination_details, and sorts failures into the
// error categories in errors.go. It never retries.
package planner

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"tripplanner/internal/jsonutil"

	"github.com/tidwall/gjson"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const (
	// DefaultTimeout bounds a single request. Image generation is slow.
	DefaultTimeout = 120 * time.Second
	// maxBodyBytes caps how much of a response body is read.
	maxBodyBytes = 4 << 20
	// maxErrorBodyBytes caps the body excerpt kept in a StatusError.
	maxErrorBodyBytes = 256
)

// Client talks to the planning service.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tracer     oteltrace.Tracer
	timeout    time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTracer records one client span per request.
func WithTracer(t oteltrace.Tracer) Option {
	return func(c *Client) { c.tracer = t }
}

// WithTimeout sets the per-request deadline.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// NewClient creates a client for the service at baseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		tracer:     noop.NewTracerProvider().Tracer(""),
		timeout:    DefaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the service root the client posts to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Destinations asks for destination suggestions. The result keeps the order
// in which the service listed the airport codes. An empty mapping yields an
// empty, non-nil slice.
func (c *Client) Destinations(ctx context.Context, req DestinationsRequest) ([]Destination, error) {
	body, err := c.post(ctx, PathDestinations, req)
	if err != nil {
		return nil, err
	}
	details := gjson.GetBytes(body, "destination_details")
	if !details.Exists() {
		return nil, fmt.Errorf("%w: %s: missing destination_details", ErrMalformedResponse, PathDestinations)
	}
	if details.Type == gjson.Null {
		return []Destination{}, nil
	}
	if !details.IsObject() {
		return nil, fmt.Errorf("%w: %s: destination_details is not an object", ErrMalformedResponse, PathDestinations)
	}

	out := make([]Destination, 0, 8)
	details.ForEach(func(key, value gjson.Result) bool {
		out = append(out, destinationFrom(key.String(), value))
		return true
	})
	return out, nil
}

// DailyPlan asks for the itinerary of a destination.
func (c *Client) DailyPlan(ctx context.Context, req DailyPlanRequest) (DailyPlanResponse, error) {
	var resp DailyPlanResponse
	body, err := c.post(ctx, PathDailyPlan, req)
	if err != nil {
		return resp, err
	}
	if !gjson.GetBytes(body, "daily_plan").Exists() {
		return resp, fmt.Errorf("%w: %s: missing daily_plan", ErrMalformedResponse, PathDailyPlan)
	}
	if err := jsonutil.UnmarshalWithContext(body, &resp, PathDailyPlan); err != nil {
		return resp, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return resp, nil
}

// TripImages asks for images illustrating the trip summary.
func (c *Client) TripImages(ctx context.Context, req TripImagesRequest) (TripImagesResponse, error) {
	var resp TripImagesResponse
	body, err := c.post(ctx, PathTripImages, req)
	if err != nil {
		return resp, err
	}
	if err := jsonutil.UnmarshalWithContext(body, &resp, PathTripImages); err != nil {
		return resp, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return resp, nil
}

// post sends payload as JSON and returns the body of a successful response.
func (c *Client) post(ctx context.Context, path string, payload interface{}) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	url := c.baseURL + path
	ctx, span := c.tracer.Start(ctx, "POST "+path,
		oteltrace.WithSpanKind(oteltrace.SpanKindClient),
		oteltrace.WithAttributes(
			attribute.String("http.method", http.MethodPost),
			attribute.String("http.url", url),
		),
	)
	defer span.End()

	body, err := c.do(ctx, path, url, payload, span)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, Kind(err))
		return nil, err
	}
	return body, nil
}

func (c *Client) do(ctx context.Context, path, url string, payload interface{}, span oteltrace.Span) ([]byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("planner: encode %s request: %w", path, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("planner: build %s request: %w", path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, classifyTransportError(path, err)
	}
	defer resp.Body.Close()
	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, classifyTransportError(path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		excerpt := strings.TrimSpace(string(body))
		if len(excerpt) > maxErrorBodyBytes {
			excerpt = excerpt[:maxErrorBodyBytes] + "..."
		}
		return nil, &StatusError{Endpoint: path, Code: resp.StatusCode, Body: excerpt}
	}
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("%w: %s: body is not valid JSON", ErrMalformedResponse, path)
	}
	if msg := jsonutil.ErrorMessage(body); msg != "" {
		return nil, &ServiceError{Endpoint: path, Message: msg}
	}
	return body, nil
}

// classifyTransportError maps a transport failure to ErrTimeout or ErrNetwork.
func classifyTransportError(path string, err error) error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return fmt.Errorf("%w: %s: %v", ErrTimeout, path, err)
	}
	return fmt.Errorf("%w: %s: %v", ErrNetwork, path, err)
}
