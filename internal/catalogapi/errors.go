package catalogapi

import (
	"errors"
	"fmt"
)

// ErrUnexpectedResponse is wrapped when a response body cannot be decoded.
var ErrUnexpectedResponse = errors.New("unexpected response from catalog API")

// StatusError is returned for non-2xx responses.
type StatusError struct {
	Endpoint   string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s: HTTP error! Status: %d", e.Endpoint, e.StatusCode)
	}
	return fmt.Sprintf("%s: HTTP error! Status: %d: %s", e.Endpoint, e.StatusCode, e.Body)
}

// APIError is returned when the API answers {"success": false}. Message is
// the raw API message and may be empty.
type APIError struct {
	Endpoint string
	Message  string
	Debug    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return defaultErrorMessage
	}
	return e.Message
}

// MessageOf returns the API message carried by err, or fallback when err is
// not an *APIError or has no message.
func MessageOf(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
