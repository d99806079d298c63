// ABOUTME: Tests for the interceptor chain and transport construction
// ABOUTME: Verifies ordering, short-circuiting and proxy URL validation

package client

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func TestTransport_Order(t *testing.T) {
	var calls []string
	tr := &Transport{
		Base: roundTripFunc(func(req *http.Request) (*http.Response, error) {
			calls = append(calls, "send")
			return &http.Response{StatusCode: http.StatusOK, Body: http.NoBody, Request: req}, nil
		}),
		Request: []RequestInterceptor{
			func(*http.Request) error { calls = append(calls, "req1"); return nil },
			func(*http.Request) error { calls = append(calls, "req2"); return nil },
		},
		Response: []ResponseInterceptor{
			func(_ *http.Request, r *http.Response, err error) (*http.Response, error) {
				calls = append(calls, "resp1")
				return r, err
			},
			func(_ *http.Request, r *http.Response, err error) (*http.Response, error) {
				calls = append(calls, "resp2")
				return r, err
			},
		},
	}

	req := httptest.NewRequest(http.MethodGet, "http://backend/api/products", nil)
	if _, err := tr.RoundTrip(req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "req1,req2,send,resp1,resp2"
	if got := strings.Join(calls, ","); got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestTransport_RequestErrorShortCircuits(t *testing.T) {
	sent := false
	boom := errors.New("boom")
	tr := &Transport{
		Base: roundTripFunc(func(*http.Request) (*http.Response, error) {
			sent = true
			return nil, nil
		}),
		Request: []RequestInterceptor{func(*http.Request) error { return boom }},
	}

	_, err := tr.RoundTrip(httptest.NewRequest(http.MethodGet, "http://backend/", nil))
	if !errors.Is(err, boom) {
		t.Errorf("expected interceptor error, got %v", err)
	}
	if sent {
		t.Error("request should not be sent")
	}
}

func TestTransport_DoesNotMutateCallerRequest(t *testing.T) {
	tr := &Transport{
		Base: roundTripFunc(func(req *http.Request) (*http.Response, error) {
			return &http.Response{StatusCode: http.StatusOK, Body: http.NoBody, Request: req}, nil
		}),
		Request: []RequestInterceptor{BearerToken(staticToken("abc"), "backend")},
	}

	req := httptest.NewRequest(http.MethodGet, "http://backend/", nil)
	if _, err := tr.RoundTrip(req); err != nil {
		t.Fatal(err)
	}
	if req.Header.Get("Authorization") != "" {
		t.Error("caller request was modified")
	}
}

func TestBearerToken_OnlyForBaseHost(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{"base host", "http://backend/products", "Bearer abc"},
		{"other host", "http://elsewhere/products", ""},
		{"same host other port", "http://backend:9090/products", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			req.Header.Set("Authorization", "Bearer stale")
			if err := BearerToken(staticToken("abc"), "backend")(req); err != nil {
				t.Fatal(err)
			}
			if got := req.Header.Get("Authorization"); got != tt.want {
				t.Errorf("Authorization = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTransport_TransportFailureReachesResponseChain(t *testing.T) {
	netErr := errors.New("connection refused")
	var seen error
	tr := &Transport{
		Base: roundTripFunc(func(*http.Request) (*http.Response, error) { return nil, netErr }),
		Response: []ResponseInterceptor{
			func(_ *http.Request, r *http.Response, err error) (*http.Response, error) {
				seen = err
				return r, err
			},
		},
	}

	_, err := tr.RoundTrip(httptest.NewRequest(http.MethodGet, "http://backend/", nil))
	if !errors.Is(err, netErr) || !errors.Is(seen, netErr) {
		t.Errorf("expected transport error to pass through unchanged, got %v", err)
	}
}

type staticToken string

func (s staticToken) Token() string { return string(s) }

func TestNewTransport_NoProxy(t *testing.T) {
	tr, err := NewTransport("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tr == nil {
		t.Fatal("expected transport")
	}
}

func TestNewTransport_InvalidProxy(t *testing.T) {
	tests := []struct {
		name     string
		allProxy string
	}{
		{"wrong scheme", "ssh+http://jumpbox:22?private-key=/tmp/key"},
		{"missing key", "ssh+socks5://ubuntu@jumpbox:22"},
		{"unreadable key", "ssh+socks5://ubuntu@jumpbox:22?private-key=/nonexistent/key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewTransport(tt.allProxy); err == nil {
				t.Error("expected error")
			}
		})
	}
}
