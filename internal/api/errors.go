package api

import (
	"fmt"
	"net/http"
)

// maxBodyExcerpt caps how much of an error response body is carried
// in the error value. Enough to diagnose, never a full page dump.
const maxBodyExcerpt = 400

// APIError is a non-2xx response from the backend. The request
// completed; the server said no.
type APIError struct {
	// Status is the HTTP status code.
	Status int

	// StatusText is the standard reason phrase for Status.
	StatusText string

	// Message is the server's own error message, when the body carried
	// a parseable one.
	Message string

	// BodyExcerpt is the leading part of the response body, capped at
	// maxBodyExcerpt characters.
	BodyExcerpt string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("API error %d %s: %s", e.Status, e.StatusText, e.Message)
	}
	if e.BodyExcerpt != "" {
		return fmt.Sprintf("API error %d %s: %s", e.Status, e.StatusText, e.BodyExcerpt)
	}
	return fmt.Sprintf("API error %d %s", e.Status, e.StatusText)
}

// HTTPStatus returns the response status code.
func (e *APIError) HTTPStatus() int {
	return e.Status
}

// NewAPIError builds an APIError from a status code and raw body.
func NewAPIError(status int, message, body string) *APIError {
	excerpt := body
	if len(excerpt) > maxBodyExcerpt {
		excerpt = excerpt[:maxBodyExcerpt]
	}
	return &APIError{
		Status:      status,
		StatusText:  http.StatusText(status),
		Message:     message,
		BodyExcerpt: excerpt,
	}
}

// IsStatus reports whether err is an APIError with the given status.
func IsStatus(err error, status int) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.Status == status
}

// NetworkError means the request never produced a response: DNS
// failure, connection refused, timeout, cancelled context.
type NetworkError struct {
	// URL is the request URL, for the log line and the error message.
	URL string

	// Cause is the underlying transport error.
	Cause error
}

// Error implements the error interface.
func (e *NetworkError) Error() string {
	return fmt.Sprintf("network failure calling %s: %v", e.URL, e.Cause)
}

// Unwrap returns the underlying error.
func (e *NetworkError) Unwrap() error {
	return e.Cause
}
