package cli

import (
	"fmt"
	"log/slog"
	"net"
	"time"

	"github.com/spf13/cobra"

	"github.com/five82/roster/internal/dummyjson"
	"github.com/five82/roster/internal/fixture"
)

func newFixtureCmd() *cobra.Command {
	var (
		addr       string
		file       string
		failStatus int
		delay      time.Duration
	)

	cmd := &cobra.Command{
		Use:   "fixture",
		Short: "Serve sample users locally",
		Long: `Run a small users API compatible with the roster client. It serves
/users, /users/search?q= and /users/{id} from the built-in sample set or
from --file, which may hold a users response or a bare JSON array.

--fail-status makes every users route answer with that HTTP status, and
--delay slows responses down, for exercising error and loading states.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				users []dummyjson.User
				err   error
			)
			if file != "" {
				users, err = fixture.LoadUsers(file)
			} else {
				users, err = fixture.DefaultUsers()
			}
			if err != nil {
				return NewError("Could not load fixture users").WithMessage(err.Error()).Wrap(err)
			}

			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), nil))
			srv := fixture.New(fixture.Options{
				Users:      users,
				FailStatus: failStatus,
				Delay:      delay,
				Logger:     logger,
			})

			out := cmd.OutOrStdout()
			err = srv.ListenAndServe(cmd.Context(), addr, func(a net.Addr) {
				fmt.Fprintf(out, "serving %d users on http://%s/users\n", len(users), a)
			})
			if err != nil {
				return NewError("Fixture server stopped").
					WithMessage(err.Error()).
					WithSuggestions("roster fixture --addr 127.0.0.1:0").
					Wrap(err)
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&addr, "addr", "127.0.0.1:8080", "listen address")
	flags.StringVar(&file, "file", "", "JSON file with users (default built-in sample)")
	flags.IntVar(&failStatus, "fail-status", 0, "answer every users request with this HTTP status")
	flags.DurationVar(&delay, "delay", 0, "delay before each users response")

	return cmd
}
