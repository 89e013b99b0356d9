package dummyjson

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

func TestParseEndpoint_DefaultsAndNormalizes(t *testing.T) {
	u, err := parseEndpoint("")
	if err != nil {
		t.Fatalf("parseEndpoint returned error: %v", err)
	}
	if u.String() != DefaultEndpoint {
		t.Fatalf("endpoint = %q, want %q", u.String(), DefaultEndpoint)
	}

	u, err = parseEndpoint("127.0.0.1:8080")
	if err != nil {
		t.Fatalf("parseEndpoint returned error: %v", err)
	}
	if u.Scheme != "http" || u.Path != "/users" {
		t.Fatalf("endpoint = %q, want http scheme and /users path", u.String())
	}

	u, err = parseEndpoint("http://example.com/api/people#frag")
	if err != nil {
		t.Fatalf("parseEndpoint returned error: %v", err)
	}
	if u.Path != "/api/people" || u.Fragment != "" {
		t.Fatalf("endpoint not normalized: %q", u.String())
	}

	if _, err := parseEndpoint("http://"); err == nil {
		t.Fatalf("parseEndpoint(http://) returned nil error, want missing host")
	}
}

func TestClient_FetchUsersDecodesAndSendsHeaders(t *testing.T) {
	t.Parallel()

	var gotUserAgent, gotRequestID, gotLimit string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/users" {
			http.NotFound(w, r)
			return
		}
		gotUserAgent = r.Header.Get("User-Agent")
		gotRequestID = r.Header.Get("X-Request-ID")
		gotLimit = r.URL.Query().Get("limit")
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(UsersResponse{
			Users: []User{
				{ID: 3, FirstName: "Bob", LastName: "Lee", Age: 40, Address: Address{City: "Austin", Address: "1 Main St"}},
				{ID: 1, FirstName: "Ann", LastName: "Zed", Age: 28},
			},
			Total: 2,
		})
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL+"/users", WithLimit(50), WithTimeout(2*time.Second))
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	users, err := c.FetchUsers(context.Background())
	if err != nil {
		t.Fatalf("FetchUsers returned error: %v", err)
	}
	if len(users) != 2 || users[0].ID != 3 || users[1].ID != 1 {
		t.Fatalf("FetchUsers = %#v, want ids [3 1] in source order", users)
	}
	if users[0].Address.City != "Austin" {
		t.Fatalf("address city = %q, want Austin", users[0].Address.City)
	}
	if !strings.HasPrefix(gotUserAgent, "roster/") {
		t.Fatalf("User-Agent = %q, want roster/*", gotUserAgent)
	}
	if len(gotRequestID) != 26 {
		t.Fatalf("X-Request-ID = %q, want a 26 char ULID", gotRequestID)
	}
	if gotLimit != "50" {
		t.Fatalf("limit = %q, want 50", gotLimit)
	}
	if !strings.Contains(c.Endpoint(), "limit=50") {
		t.Fatalf("Endpoint() = %q, want limit parameter", c.Endpoint())
	}
}

func TestClient_HTTPErrorAndDecodeError(t *testing.T) {
	t.Parallel()

	var status atomic.Int32
	status.Store(http.StatusInternalServerError)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if code := int(status.Load()); code != 0 {
			http.Error(w, "nope", code)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte("{not-json"))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	_, err = c.FetchUsers(context.Background())
	var fe *FetchError
	if !errors.As(err, &fe) {
		t.Fatalf("FetchUsers error = %v, want *FetchError", err)
	}
	if fe.StatusCode != http.StatusInternalServerError {
		t.Fatalf("StatusCode = %d, want 500", fe.StatusCode)
	}
	if !strings.Contains(err.Error(), "returned status 500") {
		t.Fatalf("error = %q, want status 500 message", err.Error())
	}
	if fe.RequestID == "" {
		t.Fatalf("RequestID is empty")
	}
	if got := Describe(err); got != "HTTP 500 INTERNAL SERVER ERROR" {
		t.Fatalf("Describe = %q, want HTTP 500 INTERNAL SERVER ERROR", got)
	}

	status.Store(0)
	_, err = c.FetchUsers(context.Background())
	if !errors.As(err, &fe) || !strings.Contains(err.Error(), "decode response") {
		t.Fatalf("FetchUsers error = %v, want decode response FetchError", err)
	}
}

func TestClient_TransportFailureIsFetchError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	addr := server.URL
	server.Close()

	c, err := NewClient(addr)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	_, err = c.FetchUsers(context.Background())
	var fe *FetchError
	if !errors.As(err, &fe) {
		t.Fatalf("FetchUsers error = %v, want *FetchError", err)
	}
	if fe.StatusCode != 0 {
		t.Fatalf("StatusCode = %d, want 0 for transport failure", fe.StatusCode)
	}
	if !strings.Contains(err.Error(), "execute request") {
		t.Fatalf("error = %q, want execute request", err.Error())
	}
}

func TestClient_NilReceiver(t *testing.T) {
	var c *Client
	if _, err := c.FetchUsers(context.Background()); err == nil {
		t.Fatalf("FetchUsers on nil client returned nil error")
	}
	if c.Endpoint() != "" {
		t.Fatalf("Endpoint on nil client = %q, want empty", c.Endpoint())
	}
}

func TestDescribe(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"refused", errors.New("dial tcp: connection refused"), "OFFLINE"},
		{"dns", errors.New("lookup x: no such host"), "HOST NOT FOUND"},
		{"client timeout", errors.New("context deadline exceeded (Client.Timeout exceeded while awaiting headers)"), "TIMEOUT"},
		{"io timeout", errors.New("read tcp: i/o timeout"), "TIMEOUT"},
		{"deadline", errors.New("context deadline exceeded"), "TIMEOUT"},
		{"status", &FetchError{StatusCode: 404, Err: errors.New("x")}, "HTTP 404 NOT FOUND"},
		{"unknown status", &FetchError{StatusCode: 599, Err: errors.New("x")}, "HTTP 599"},
		{"other", errors.New("boom"), "ERROR"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Describe(tc.err); got != tc.want {
				t.Fatalf("Describe(%v) = %q, want %q", tc.err, got, tc.want)
			}
		})
	}
}
