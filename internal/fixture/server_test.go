package fixture

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/five82/roster/internal/dummyjson"
)

func newTestServer(t *testing.T, opts Options) (*Server, *httptest.Server) {
	t.Helper()
	if opts.Users == nil {
		users, err := DefaultUsers()
		if err != nil {
			t.Fatalf("DefaultUsers returned error: %v", err)
		}
		opts.Users = users
	}
	s := New(opts)
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return s, ts
}

func TestDefaultUsers_Embedded(t *testing.T) {
	users, err := DefaultUsers()
	if err != nil {
		t.Fatalf("DefaultUsers returned error: %v", err)
	}
	if len(users) != 12 {
		t.Fatalf("len(users) = %d, want 12", len(users))
	}
	seen := map[int64]bool{}
	for _, u := range users {
		if seen[u.ID] {
			t.Fatalf("duplicate id %d", u.ID)
		}
		seen[u.ID] = true
		if u.FirstName == "" || u.Address.City == "" {
			t.Fatalf("user %d is missing name or city", u.ID)
		}
	}
}

func TestLoadUsers_ObjectAndArray(t *testing.T) {
	dir := t.TempDir()
	obj := filepath.Join(dir, "obj.json")
	arr := filepath.Join(dir, "arr.json")
	if err := os.WriteFile(obj, []byte(`{"users":[{"id":4,"firstName":"Dee"}]}`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if err := os.WriteFile(arr, []byte(` [{"id":5},{"id":6}]`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	users, err := LoadUsers(obj)
	if err != nil || len(users) != 1 || users[0].FirstName != "Dee" {
		t.Fatalf("LoadUsers(obj) = %+v, %v", users, err)
	}
	users, err = LoadUsers(arr)
	if err != nil || len(users) != 2 {
		t.Fatalf("LoadUsers(arr) = %+v, %v", users, err)
	}
	if _, err := LoadUsers(filepath.Join(dir, "missing.json")); err == nil {
		t.Fatalf("LoadUsers(missing) returned nil error")
	}
}

func TestServer_ClientRoundTrip(t *testing.T) {
	_, ts := newTestServer(t, Options{})

	client, err := dummyjson.NewClient(ts.URL + "/users")
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	users, err := client.FetchUsers(context.Background())
	if err != nil {
		t.Fatalf("FetchUsers returned error: %v", err)
	}
	if len(users) != 12 || users[0].ID != 1 {
		t.Fatalf("FetchUsers returned %d users, first id %d", len(users), users[0].ID)
	}

	limited, err := dummyjson.NewClient(ts.URL+"/users", dummyjson.WithLimit(5))
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	users, err = limited.FetchUsers(context.Background())
	if err != nil || len(users) != 5 {
		t.Fatalf("limited FetchUsers = %d users, %v; want 5", len(users), err)
	}
}

func TestServer_FailureInjection(t *testing.T) {
	s, ts := newTestServer(t, Options{FailStatus: http.StatusInternalServerError})

	client, err := dummyjson.NewClient(ts.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	_, err = client.FetchUsers(context.Background())
	var fe *dummyjson.FetchError
	if !errors.As(err, &fe) || fe.StatusCode != http.StatusInternalServerError {
		t.Fatalf("FetchUsers error = %v, want 500 FetchError", err)
	}

	s.SetFailStatus(0)
	if _, err := client.FetchUsers(context.Background()); err != nil {
		t.Fatalf("FetchUsers after clearing failure returned error: %v", err)
	}
}

func TestServer_GetUserAndSearch(t *testing.T) {
	_, ts := newTestServer(t, Options{})

	resp, err := http.Get(ts.URL + "/users/3")
	if err != nil {
		t.Fatalf("GET /users/3: %v", err)
	}
	var u dummyjson.User
	err = json.NewDecoder(resp.Body).Decode(&u)
	resp.Body.Close()
	if err != nil || u.FirstName != "Sophia" {
		t.Fatalf("GET /users/3 = %+v, %v", u, err)
	}

	resp, err = http.Get(ts.URL + "/users/999")
	if err != nil {
		t.Fatalf("GET /users/999: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("GET /users/999 status = %d, want 404", resp.StatusCode)
	}

	resp, err = http.Get(ts.URL + "/users/search?q=jacksonville")
	if err != nil {
		t.Fatalf("GET /users/search: %v", err)
	}
	var payload dummyjson.UsersResponse
	err = json.NewDecoder(resp.Body).Decode(&payload)
	resp.Body.Close()
	if err != nil || payload.Total != 2 {
		t.Fatalf("search total = %d, %v; want 2", payload.Total, err)
	}
}

func TestServer_SkipBeyondEnd(t *testing.T) {
	_, ts := newTestServer(t, Options{})
	resp, err := http.Get(ts.URL + "/users?skip=50&limit=5")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer resp.Body.Close()
	var payload dummyjson.UsersResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(payload.Users) != 0 || payload.Total != 12 || payload.Skip != 12 {
		t.Fatalf("payload = %+v, want empty page with total 12", payload)
	}
}

func TestServer_ListenAndServeStopsOnCancel(t *testing.T) {
	s := New(Options{Users: []dummyjson.User{{ID: 1}}})
	ctx, cancel := context.WithCancel(context.Background())

	addrCh := make(chan net.Addr, 1)
	done := make(chan error, 1)
	go func() {
		done <- s.ListenAndServe(ctx, "127.0.0.1:0", func(a net.Addr) { addrCh <- a })
	}()

	var addr net.Addr
	select {
	case addr = <-addrCh:
	case err := <-done:
		t.Fatalf("ListenAndServe returned early: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatalf("server did not start")
	}

	resp, err := http.Get("http://" + addr.String() + "/")
	if err != nil {
		t.Fatalf("GET /: %v", err)
	}
	resp.Body.Close()

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("ListenAndServe returned error: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("server did not stop")
	}
}
