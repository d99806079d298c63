// ABOUTME: HTTP client for the storefront backend API
// ABOUTME: Wraps API calls with the interceptor chain and CLI-friendly errors

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/shopdemo/storefront/internal/guard"
)

// DefaultTimeout bounds each request when no timeout option is given
const DefaultTimeout = 30 * time.Second

// Client is the API client for the storefront backend
type Client struct {
	baseURL    string
	httpClient *http.Client
	validate   *validator.Validate
}

type options struct {
	session   Session
	navigator guard.Navigator
	timeout   time.Duration
	base      http.RoundTripper
	logger    *slog.Logger
	request   []RequestInterceptor
	response  []ResponseInterceptor
}

// Option configures a Client
type Option func(*options)

// WithSession attaches the bearer credential from s and clears s on 401
func WithSession(s Session) Option {
	return func(o *options) {
		o.session = s
	}
}

// WithNavigator receives the login redirect issued on 401
func WithNavigator(n guard.Navigator) Option {
	return func(o *options) {
		o.navigator = n
	}
}

// WithTimeout overrides DefaultTimeout
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		o.timeout = d
	}
}

// WithTransport sets the RoundTripper the chain sends through
func WithTransport(rt http.RoundTripper) Option {
	return func(o *options) {
		o.base = rt
	}
}

// WithLogger enables per-request debug logging
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithRequestInterceptor appends request steps after the built-in ones
func WithRequestInterceptor(ics ...RequestInterceptor) Option {
	return func(o *options) {
		o.request = append(o.request, ics...)
	}
}

// WithResponseInterceptor appends response steps after the built-in ones
func WithResponseInterceptor(ics ...ResponseInterceptor) Option {
	return func(o *options) {
		o.response = append(o.response, ics...)
	}
}

// New creates a client bound to baseURL
func New(baseURL string, opts ...Option) *Client {
	o := options{timeout: DefaultTimeout}
	for _, opt := range opts {
		opt(&o)
	}

	chain := &Transport{
		Base:    o.base,
		Request: []RequestInterceptor{RequestID(), Accept()},
	}
	if o.session != nil {
		chain.Request = append(chain.Request, BearerToken(o.session, hostOf(baseURL)))
		chain.Response = append(chain.Response, Unauthorized(o.session, o.navigator, o.logger))
	}
	if o.logger != nil {
		chain.Response = append(chain.Response, LogResponses(o.logger))
	}
	chain.Request = append(chain.Request, o.request...)
	chain.Response = append(chain.Response, o.response...)

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout:   o.timeout,
			Transport: chain,
		},
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// hostOf returns the host[:port] of baseURL, or "" when it does not parse
func hostOf(baseURL string) string {
	u, err := url.Parse(baseURL)
	if err != nil {
		return ""
	}
	return u.Host
}

// BaseURL returns the backend address the client is bound to
func (c *Client) BaseURL() string {
	return c.baseURL
}

// do sends a JSON request and decodes a JSON response into out.
// body is validated before anything is sent.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		if err := c.validate.Struct(body); err != nil {
			return fmt.Errorf("invalid request: %w", err)
		}
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal input: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.send(ctx, req, out)
}

// send executes req and decodes a 2xx JSON body into out
func (c *Client) send(ctx context.Context, req *http.Request, out interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return c.handleRequestError(ctx, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.handleErrorResponse(req, resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("invalid response from backend: %w", err)
	}
	return nil
}

// handleRequestError converts context errors to user-friendly messages
func (c *Client) handleRequestError(ctx context.Context, err error) error {
	if ctx.Err() == context.Canceled {
		return fmt.Errorf("request canceled: %w", ctx.Err())
	}
	if ctx.Err() == context.DeadlineExceeded {
		return fmt.Errorf("request timed out: %w", ctx.Err())
	}
	return fmt.Errorf("cannot connect to backend at %s: %w", c.baseURL, err)
}

// handleErrorResponse parses API error responses
func (c *Client) handleErrorResponse(req *http.Request, resp *http.Response) error {
	apiErr := &APIError{
		StatusCode: resp.StatusCode,
		Path:       req.URL.Path,
	}

	var errResp ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&errResp); err == nil {
		apiErr.Message = errResp.Message
		if apiErr.Message == "" {
			apiErr.Message = errResp.Error
		}
		if errResp.Path != "" {
			apiErr.Path = errResp.Path
		}
	}
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(resp.StatusCode)
	}
	return apiErr
}
