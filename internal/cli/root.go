package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/five82/roster/internal/app"
	"github.com/five82/roster/internal/dummyjson"
)

var (
	// Version information (set at build time)
	Version   = "dev"
	CommitSHA = "unknown"
	BuildDate = "unknown"
)

// globalOptions are the persistent flags shared by every command.
type globalOptions struct {
	configPath string
	prefsPath  string
	endpoint   string
	logLevel   string
}

// appOptions converts the flags to app.Options.
func (g *globalOptions) appOptions() (app.Options, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(g.logLevel))); err != nil {
		return app.Options{}, flagError("log-level", g.logLevel, err, "roster --log-level debug")
	}
	return app.Options{
		ConfigPath: g.configPath,
		PrefsPath:  g.prefsPath,
		Endpoint:   g.endpoint,
		LogLevel:   level,
	}, nil
}

// setup builds the shared environment for commands that fetch users.
func (g *globalOptions) setup() (*app.Env, error) {
	opts, err := g.appOptions()
	if err != nil {
		return nil, err
	}
	env, err := app.Setup(opts)
	if err != nil {
		return nil, NewError("Could not start roster").
			WithMessage(err.Error()).
			WithSuggestions("roster --config /path/to/config.toml").
			Wrap(err)
	}
	return env, nil
}

// NewRootCmd builds the roster command tree.
func NewRootCmd() *cobra.Command {
	g := &globalOptions{}

	root := &cobra.Command{
		Use:   "roster",
		Short: "Browse the users roster in the terminal",
		Long: `roster fetches the users list from a dummyjson-compatible API and shows it
as an interactive table: search, sort by column, resize columns within a
fixed width budget and page through the results.

When stdout is not a terminal, roster prints every user as a plain table
instead. Use "roster export" for page, sort and format control.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       Version,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !term.IsTerminal(int(os.Stdout.Fd())) {
				return runExport(cmd.Context(), g, app.ExportOptions{All: true}, cmd.OutOrStdout())
			}
			opts, err := g.appOptions()
			if err != nil {
				return err
			}
			return app.Run(cmd.Context(), opts)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&g.configPath, "config", "", "config file (default ~/.config/roster/config.toml)")
	flags.StringVar(&g.prefsPath, "prefs", "", "preferences file (default ~/.config/roster/prefs.toml)")
	flags.StringVar(&g.endpoint, "endpoint", "", "users API endpoint (overrides config)")
	flags.StringVar(&g.logLevel, "log-level", "info", "log level: debug, info, warn or error")

	root.SetVersionTemplate(fmt.Sprintf("roster version %s\n  commit: %s\n  built:  %s\n", Version, CommitSHA, BuildDate))

	root.AddCommand(
		newVersionCmd(),
		newExportCmd(g),
		newLogsCmd(g),
		newFixtureCmd(),
	)
	return root
}

// Execute runs the command line and prints any error to stderr.
func Execute(ctx context.Context) error {
	return execute(ctx, NewRootCmd(), os.Args[1:], os.Stderr)
}

func execute(ctx context.Context, root *cobra.Command, args []string, stderr io.Writer) error {
	root.SetArgs(args)
	err := root.ExecuteContext(ctx)
	if err == nil || errors.Is(err, context.Canceled) {
		return nil
	}
	var cliErr *Error
	if errors.As(err, &cliErr) {
		fmt.Fprint(stderr, cliErr.Format())
	} else {
		fmt.Fprintf(stderr, "Error: %v\n", err)
	}
	return err
}

// runExport fetches users and writes them through app.Env.Export.
func runExport(ctx context.Context, g *globalOptions, eo app.ExportOptions, w io.Writer) (err error) {
	env, err := g.setup()
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, env.Close())
	}()

	if err := env.Export(ctx, eo, w); err != nil {
		var fe *dummyjson.FetchError
		if errors.As(err, &fe) {
			return fetchError(err, env.Client.Endpoint())
		}
		return err
	}
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "roster version %s\n", Version)
			fmt.Fprintf(out, "  commit: %s\n", CommitSHA)
			fmt.Fprintf(out, "  built:  %s\n", BuildDate)
		},
	}
}
