// Package fixture serves a local DummyJSON-compatible users API for offline
// development and tests. Failures can be injected to exercise the viewer's
// error path.
package fixture

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/gorilla/mux"

	"github.com/five82/roster/internal/dummyjson"
	"github.com/five82/roster/internal/table"
)

//go:embed users.json
var embeddedUsers []byte

// DefaultUsers returns the embedded sample roster.
func DefaultUsers() ([]dummyjson.User, error) {
	return decodeUsers(embeddedUsers)
}

// LoadUsers reads a roster from path. The file may hold a users response
// object or a bare array of users.
func LoadUsers(path string) ([]dummyjson.User, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture: %w", err)
	}
	users, err := decodeUsers(data)
	if err != nil {
		return nil, fmt.Errorf("parse fixture %s: %w", path, err)
	}
	return users, nil
}

func decodeUsers(data []byte) ([]dummyjson.User, error) {
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, "[") {
		var users []dummyjson.User
		if err := json.Unmarshal(data, &users); err != nil {
			return nil, err
		}
		return users, nil
	}
	var payload dummyjson.UsersResponse
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, err
	}
	return payload.Users, nil
}

// Options configures a Server.
type Options struct {
	Users      []dummyjson.User
	FailStatus int           // non-zero makes every users route answer with this status
	Delay      time.Duration // added before each users response
	Logger     *slog.Logger
}

// Server is the fixture users API.
type Server struct {
	router     *mux.Router
	users      []dummyjson.User
	failStatus atomic.Int32
	delay      time.Duration
	logger     *slog.Logger
}

// New builds a Server and registers its routes.
func New(opts Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &Server{
		router: mux.NewRouter(),
		users:  opts.Users,
		delay:  opts.Delay,
		logger: logger,
	}
	s.failStatus.Store(int32(opts.FailStatus))
	s.routes()
	return s
}

// Handler exposes the router.
func (s *Server) Handler() http.Handler {
	return s.router
}

// SetFailStatus switches failure injection on (non-zero) or off (zero).
func (s *Server) SetFailStatus(status int) {
	s.failStatus.Store(int32(status))
}

// ListenAndServe serves on addr until ctx is cancelled. ready, when non-nil,
// receives the bound address once the listener is open.
func (s *Server) ListenAndServe(ctx context.Context, addr string, ready func(net.Addr)) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", addr, err)
	}
	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	if ready != nil {
		ready(ln.Addr())
	}
	s.logger.Info("fixture server listening", "addr", ln.Addr().String(), "users", len(s.users))

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown fixture server: %w", err)
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve fixture: %w", err)
	}
}

func (s *Server) routes() {
	s.router.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, "Status: UP")
	}).Methods(http.MethodGet)

	users := s.router.PathPrefix("/users").Subrouter()
	users.Use(s.logRequests, s.injectFailure)
	users.HandleFunc("", s.listUsers).Methods(http.MethodGet)
	users.HandleFunc("/search", s.searchUsers).Methods(http.MethodGet)
	users.HandleFunc("/{id:[0-9]+}", s.getUser).Methods(http.MethodGet)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.logger.Info("fixture request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"request_id", r.Header.Get("X-Request-ID"),
			"duration", time.Since(start),
		)
	})
}

func (s *Server) injectFailure(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.delay > 0 {
			select {
			case <-time.After(s.delay):
			case <-r.Context().Done():
				return
			}
		}
		if status := int(s.failStatus.Load()); status != 0 {
			writeJSON(w, status, map[string]string{"message": http.StatusText(status)})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) listUsers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, page(s.users, r))
}

// searchUsers mirrors DummyJSON's /users/search?q= using the table's own
// matching rules.
func (s *Server) searchUsers(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	matched := make([]dummyjson.User, 0, len(s.users))
	for _, row := range table.Filter(table.Normalize(s.users), query) {
		matched = append(matched, row.User)
	}
	writeJSON(w, http.StatusOK, page(matched, r))
}

func (s *Server) getUser(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "invalid user id"})
		return
	}
	for _, u := range s.users {
		if u.ID == id {
			writeJSON(w, http.StatusOK, u)
			return
		}
	}
	writeJSON(w, http.StatusNotFound, map[string]string{"message": fmt.Sprintf("User with id '%d' not found", id)})
}

// page applies DummyJSON's limit/skip parameters. limit=0 means all users.
func page(users []dummyjson.User, r *http.Request) dummyjson.UsersResponse {
	q := r.URL.Query()
	skip, _ := strconv.Atoi(q.Get("skip"))
	limit, _ := strconv.Atoi(q.Get("limit"))
	skip = min(max(skip, 0), len(users))
	end := len(users)
	if limit > 0 {
		end = min(skip+limit, len(users))
	}
	selected := users[skip:end]
	if selected == nil {
		selected = []dummyjson.User{}
	}
	return dummyjson.UsersResponse{
		Users: selected,
		Total: len(users),
		Skip:  skip,
		Limit: len(selected),
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
