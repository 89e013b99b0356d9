package dummyjson

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// UserFetcher defines the interface for fetching the user roster.
// This interface is implemented by *Client and can be used for testing.
type UserFetcher interface {
	FetchUsers(ctx context.Context) ([]User, error)
}

// Ensure Client implements UserFetcher at compile time.
var _ UserFetcher = (*Client)(nil)

// Client talks to a DummyJSON-compatible users endpoint.
type Client struct {
	endpoint  *url.URL
	limit     int
	http      *http.Client
	userAgent string
	newID     func() string
}

const (
	// DefaultEndpoint is the public users listing used when none is configured.
	DefaultEndpoint  = "https://dummyjson.com/users"
	defaultUserAgent = "roster/0.1"
	defaultTimeout   = 10 * time.Second
)

// Option customizes a Client.
type Option func(*Client)

// WithTimeout overrides the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

// WithLimit asks the server for at most n users. Zero keeps the server default.
func WithLimit(n int) Option {
	return func(c *Client) {
		if n >= 0 {
			c.limit = n
		}
	}
}

// WithHTTPClient swaps the underlying transport.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// NewClient builds a Client for the given users endpoint.
func NewClient(endpoint string, opts ...Option) (*Client, error) {
	u, err := parseEndpoint(endpoint)
	if err != nil {
		return nil, err
	}
	c := &Client{
		endpoint: u,
		http: &http.Client{
			Timeout: defaultTimeout,
		},
		userAgent: defaultUserAgent,
		newID:     NewRequestID,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Endpoint returns the resolved users URL, including the limit parameter.
func (c *Client) Endpoint() string {
	if c == nil {
		return ""
	}
	return c.usersURL().String()
}

// FetchUsers retrieves the full roster. Every failure is returned as a
// *FetchError.
func (c *Client) FetchUsers(ctx context.Context) ([]User, error) {
	if c == nil {
		return nil, &FetchError{Err: fmt.Errorf("client is nil")}
	}
	var payload UsersResponse
	if err := c.get(ctx, c.usersURL(), &payload); err != nil {
		return nil, err
	}
	return payload.Users, nil
}

func (c *Client) usersURL() *url.URL {
	u := *c.endpoint
	if c.limit > 0 {
		values := u.Query()
		values.Set("limit", strconv.Itoa(c.limit))
		u.RawQuery = values.Encode()
	}
	return &u
}

func (c *Client) get(ctx context.Context, reqURL *url.URL, dest any) error {
	requestID := c.newID()
	fail := func(status int, err error) error {
		return &FetchError{URL: reqURL.String(), StatusCode: status, RequestID: requestID, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return fail(0, fmt.Errorf("create request: %w", err))
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-ID", requestID)

	resp, err := c.http.Do(req)
	if err != nil {
		return fail(0, fmt.Errorf("execute request: %w", err))
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fail(resp.StatusCode, fmt.Errorf("api %s returned status %d", reqURL.Path, resp.StatusCode))
	}
	if dest == nil {
		return nil
	}
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		return fail(resp.StatusCode, fmt.Errorf("decode response: %w", err))
	}
	return nil
}

func parseEndpoint(endpoint string) (*url.URL, error) {
	trimmed := strings.TrimSpace(endpoint)
	if trimmed == "" {
		trimmed = DefaultEndpoint
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse endpoint %q: %w", endpoint, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse endpoint %q: missing host", endpoint)
	}
	if u.Path == "" {
		u.Path = "/users"
	}
	u.Fragment = ""
	return u, nil
}
