// ABOUTME: Built-in interceptors: request IDs, bearer credential, 401 handling
// ABOUTME: The 401 step clears the session and navigates to login before the caller sees the error

package client

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/shopdemo/storefront/internal/guard"
)

// RequestIDHeader carries a per-request correlation ID
const RequestIDHeader = "X-Request-ID"

// TokenSource supplies the current credential, or "" when absent
type TokenSource interface {
	Token() string
}

// Session is the part of the session store the client needs
type Session interface {
	TokenSource
	Logout()
}

// RequestID sets X-Request-ID unless the caller already set one
func RequestID() RequestInterceptor {
	return func(req *http.Request) error {
		if req.Header.Get(RequestIDHeader) == "" {
			req.Header.Set(RequestIDHeader, uuid.NewString())
		}
		return nil
	}
}

// Accept asks the backend for JSON
func Accept() RequestInterceptor {
	return func(req *http.Request) error {
		if req.Header.Get("Accept") == "" {
			req.Header.Set("Accept", "application/json")
		}
		return nil
	}
}

// BearerToken attaches the current credential to requests bound for host.
// Redirect hops to any other host go out without it. It never fails.
func BearerToken(src TokenSource, host string) RequestInterceptor {
	return func(req *http.Request) error {
		if req.URL.Host != host {
			req.Header.Del("Authorization")
			return nil
		}
		if token := src.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		return nil
	}
}

// Unauthorized logs out and navigates to the login route when the backend
// answers 401. The response is passed on unchanged so callers still see it.
// Every 401 runs logout+navigate itself; both steps are idempotent.
func Unauthorized(s Session, nav guard.Navigator, logger *slog.Logger) ResponseInterceptor {
	if logger == nil {
		logger = slog.Default()
	}

	return func(req *http.Request, resp *http.Response, err error) (*http.Response, error) {
		if resp == nil || resp.StatusCode != http.StatusUnauthorized {
			return resp, err
		}

		logger.Info("Backend rejected credential, logging out",
			"method", req.Method,
			"path", req.URL.Path,
		)
		s.Logout()
		if nav != nil {
			nav.Navigate(guard.LoginRoute)
		}
		return resp, err
	}
}

// LogResponses writes one debug line per round trip
func LogResponses(logger *slog.Logger) ResponseInterceptor {
	return func(req *http.Request, resp *http.Response, err error) (*http.Response, error) {
		attrs := []any{
			"method", req.Method,
			"path", req.URL.Path,
			"request_id", req.Header.Get(RequestIDHeader),
		}
		if err != nil {
			logger.Debug("Request failed", append(attrs, "error", err)...)
		} else if resp != nil {
			logger.Debug("Request completed", append(attrs, "status", resp.StatusCode)...)
		}
		return resp, err
	}
}
