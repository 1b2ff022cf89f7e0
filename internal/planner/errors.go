package planner

import (
	"errors"
	"fmt"
)

var (
	// ErrTimeout is returned when a request exceeds its deadline.
	ErrTimeout = errors.New("planner: request timed out")
	// ErrNetwork is returned when the request never produced an HTTP response.
	ErrNetwork = errors.New("planner: network failure")
	// ErrMalformedResponse is returned when a 2xx body cannot be decoded.
	ErrMalformedResponse = errors.New("planner: malformed response")
)

// StatusError is returned for non-2xx responses.
type StatusError struct {
	Endpoint string
	Code     int
	Body     string // truncated excerpt
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("planner: %s returned status %d", e.Endpoint, e.Code)
	}
	return fmt.Sprintf("planner: %s returned status %d: %s", e.Endpoint, e.Code, e.Body)
}

// ServiceError is returned when the service answers 2xx with an "error" field.
type ServiceError struct {
	Endpoint string
	Message  string
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("planner: %s: %s", e.Endpoint, e.Message)
}

// Kind names the error category for log fields.
func Kind(err error) string {
	var statusErr *StatusError
	var serviceErr *ServiceError
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrTimeout):
		return "timeout"
	case errors.Is(err, ErrNetwork):
		return "network"
	case errors.Is(err, ErrMalformedResponse):
		return "malformed"
	case errors.As(err, &statusErr):
		return "status"
	case errors.As(err, &serviceErr):
		return "service"
	default:
		return "other"
	}
}
