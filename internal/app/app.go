package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/five82/roster/internal/config"
	"github.com/five82/roster/internal/dummyjson"
	"github.com/five82/roster/internal/prefs"
	"github.com/five82/roster/internal/state"
	"github.com/five82/roster/internal/ui"
)

// Options configure the roster application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/roster/prefs.toml
	Endpoint   string // overrides the configured endpoint when set
	LogLevel   slog.Level
}

// Env is the wired set of collaborators shared by every command.
type Env struct {
	Config config.Config
	Logger *slog.Logger
	Client *dummyjson.Client
	Loader *Loader
	log    io.Closer
}

// Setup loads configuration, opens the log file and builds the users client.
func Setup(opts Options) (*Env, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load roster config: %w", err)
	}
	if endpoint := strings.TrimSpace(opts.Endpoint); endpoint != "" {
		cfg.Endpoint = endpoint
	}

	logger, closer, err := OpenLog(cfg.LogFile, opts.LogLevel)
	if err != nil {
		return nil, err
	}

	client, err := dummyjson.NewClient(cfg.Endpoint,
		dummyjson.WithLimit(cfg.Limit),
		dummyjson.WithTimeout(cfg.RequestTimeout),
	)
	if err != nil {
		_ = closer.Close()
		return nil, fmt.Errorf("init users client: %w", err)
	}
	logger = logger.With("endpoint", client.Endpoint())

	return &Env{
		Config: cfg,
		Logger: logger,
		Client: client,
		Loader: NewLoader(client, logger),
		log:    closer,
	}, nil
}

// Close releases the log file.
func (e *Env) Close() error {
	if e == nil || e.log == nil {
		return nil
	}
	return e.log.Close()
}

// NewState builds an Idle controller state from the configured table settings.
func (e *Env) NewState() (state.State, error) {
	return newState(e.Config)
}

func newState(cfg config.Config) (state.State, error) {
	return state.New(state.Options{
		WidthBudget: cfg.WidthBudget,
		MinWidth:    cfg.MinColumnWidth,
		PageSize:    cfg.PageSize,
	})
}

// Run boots the roster TUI until the context is cancelled or the user quits.
func Run(ctx context.Context, opts Options) (err error) {
	env, err := Setup(opts)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, env.Close())
	}()

	initial, err := env.NewState()
	if err != nil {
		return err
	}

	store, userPrefs := openPrefs(opts.PrefsPath, env.Logger)
	env.Logger.Info("roster started", "theme", userPrefs.Theme)

	uiOpts := ui.Options{
		Context:   ctx,
		State:     initial,
		Load:      env.Loader.Load,
		Logger:    env.Logger,
		Endpoint:  env.Client.Endpoint(),
		ThemeName: userPrefs.Theme,
		Prefs:     store,
	}
	return ui.Run(uiOpts)
}

// openPrefs opens the prefs store against the UI's theme list. Problems are
// logged and leave the UI on its default theme; a nil store disables saving.
func openPrefs(path string, logger *slog.Logger) (*prefs.Store, prefs.Prefs) {
	store, err := prefs.Open(path, ui.ThemeNames())
	if err != nil {
		logger.Warn("open preferences", "error", err)
		return nil, prefs.Prefs{}
	}
	p, err := store.Load()
	if err != nil {
		logger.Warn("ignoring stored preferences", "error", err, "path", store.Path())
	}
	return store, p
}
