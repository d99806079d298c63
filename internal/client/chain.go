// ABOUTME: Ordered request/response interceptor chain run by an http.RoundTripper
// ABOUTME: Request steps run in order before sending, response steps in order after

package client

import "net/http"

// RequestInterceptor mutates an outbound request. Returning an error aborts the send.
type RequestInterceptor func(req *http.Request) error

// ResponseInterceptor observes the outcome of a round trip and returns the
// outcome handed to the next step. resp is nil when err is a transport failure.
type ResponseInterceptor func(req *http.Request, resp *http.Response, err error) (*http.Response, error)

// Transport runs the interceptor chain around a base RoundTripper
type Transport struct {
	Base     http.RoundTripper
	Request  []RequestInterceptor
	Response []ResponseInterceptor
}

// RoundTrip implements http.RoundTripper
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	// RoundTrippers must not modify the caller's request
	req = req.Clone(req.Context())

	for _, intercept := range t.Request {
		if err := intercept(req); err != nil {
			if req.Body != nil {
				req.Body.Close()
			}
			return nil, err
		}
	}

	resp, err := t.base().RoundTrip(req)

	for _, intercept := range t.Response {
		resp, err = intercept(req, resp, err)
	}
	return resp, err
}

func (t *Transport) base() http.RoundTripper {
	if t.Base != nil {
		return t.Base
	}
	return http.DefaultTransport
}
