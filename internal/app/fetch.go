package app

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/five82/roster/internal/dummyjson"
	"github.com/five82/roster/internal/state"
)

// Loader runs roster fetches and turns their outcome into reducer events.
type Loader struct {
	client dummyjson.UserFetcher
	logger *slog.Logger
	now    func() time.Time
}

// NewLoader wraps client. A nil logger discards output.
func NewLoader(client dummyjson.UserFetcher, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Loader{client: client, logger: logger, now: time.Now}
}

// Load fetches the roster for generation and reports FetchSucceeded or
// FetchFailed. It never panics on a nil client; that is a failed fetch.
func (l *Loader) Load(ctx context.Context, generation uint64) state.Event {
	start := l.now()
	l.logger.Info("fetch started", "generation", generation)

	if l.client == nil {
		err := &dummyjson.FetchError{Err: errors.New("no users client configured")}
		l.logger.Error("fetch failed", "generation", generation, "error", err)
		return state.FetchFailed{Generation: generation, Err: err}
	}

	users, err := l.client.FetchUsers(ctx)
	elapsed := l.now().Sub(start)
	if err != nil {
		attrs := []any{"generation", generation, "error", err, "duration", elapsed, "reason", dummyjson.Describe(err)}
		var fe *dummyjson.FetchError
		if errors.As(err, &fe) {
			attrs = append(attrs, "request_id", fe.RequestID, "status", fe.StatusCode, "url", fe.URL)
		}
		l.logger.Error("fetch failed", attrs...)
		return state.FetchFailed{Generation: generation, Err: err}
	}

	l.logger.Info("fetch succeeded", "generation", generation, "users", len(users), "duration", elapsed)
	if len(users) == 0 {
		l.logger.Warn("fetch returned no users", "generation", generation)
	}
	return state.FetchSucceeded{Generation: generation, Users: users, At: l.now()}
}

// Settle runs the fetches requested by eff synchronously until no fetch is
// pending, and returns the resulting state.
func (l *Loader) Settle(ctx context.Context, s state.State, eff state.Effect) state.State {
	for eff.Fetch {
		s, eff = state.Reduce(s, l.Load(ctx, eff.Generation))
	}
	return s
}
