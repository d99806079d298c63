// ABOUTME: Error types returned by the API client
// ABOUTME: APIError matches the sentinel errors by HTTP status via errors.Is

package client

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrUnauthorized matches 401 responses. The session is already cleared when it surfaces.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrForbidden matches 403 responses
	ErrForbidden = errors.New("forbidden")
	// ErrNotFound matches 404 responses
	ErrNotFound = errors.New("not found")
)

// ErrorResponse is the error body the backend returns
type ErrorResponse struct {
	Timestamp string `json:"timestamp,omitempty"`
	Status    int    `json:"status"`
	Error     string `json:"error"`
	Message   string `json:"message,omitempty"`
	Path      string `json:"path,omitempty"`
}

// APIError is a non-2xx backend response
type APIError struct {
	StatusCode int
	Message    string
	Path       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend error: %s (status %d)", e.Message, e.StatusCode)
}

// Is maps status codes onto the package sentinels
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized
	case ErrForbidden:
		return e.StatusCode == http.StatusForbidden
	case ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	}
	return false
}
