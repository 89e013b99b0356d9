package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/roster/internal/dummyjson"
	"github.com/five82/roster/internal/table"
)

// Config captures roster's runtime settings.
type Config struct {
	Endpoint       string
	Limit          int
	PageSize       int
	WidthBudget    int
	MinColumnWidth int
	RequestTimeout time.Duration
	LogFile        string
	ConfigPath     string
}

const (
	defaultConfigPath     = "~/.config/roster/config.toml"
	defaultLogFile        = "~/.local/state/roster/roster.log"
	defaultRequestTimeout = 10 * time.Second
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Endpoint:       dummyjson.DefaultEndpoint,
		PageSize:       table.DefaultPageSize,
		WidthBudget:    table.DefaultWidthBudget,
		MinColumnWidth: table.DefaultMinWidth,
		RequestTimeout: defaultRequestTimeout,
		LogFile:        mustExpand(defaultLogFile),
	}
}

// Load locates and parses the roster config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()
	cfg.ConfigPath = resolved

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, cfg.Validate()
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		Endpoint       string `toml:"endpoint"`
		Limit          int    `toml:"limit"`
		PageSize       int    `toml:"page_size"`
		WidthBudget    int    `toml:"width_budget"`
		MinColumnWidth int    `toml:"min_column_width"`
		RequestTimeout int    `toml:"request_timeout_seconds"`
		LogFile        string `toml:"log_file"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if endpoint := strings.TrimSpace(raw.Endpoint); endpoint != "" {
		cfg.Endpoint = endpoint
	}
	if raw.Limit > 0 {
		cfg.Limit = raw.Limit
	}
	if raw.PageSize > 0 {
		cfg.PageSize = raw.PageSize
	}
	if raw.WidthBudget > 0 {
		cfg.WidthBudget = raw.WidthBudget
	}
	if raw.MinColumnWidth > 0 {
		cfg.MinColumnWidth = raw.MinColumnWidth
	}
	if raw.RequestTimeout > 0 {
		cfg.RequestTimeout = time.Duration(raw.RequestTimeout) * time.Second
	}
	if logFile := strings.TrimSpace(raw.LogFile); logFile != "" {
		cfg.LogFile = mustExpand(logFile)
	}

	return cfg, cfg.Validate()
}

// Validate checks that every column can sit at the minimum width without
// breaking the width budget.
func (c Config) Validate() error {
	columns := len(table.DefaultColumns())
	if c.MinColumnWidth*columns > c.WidthBudget {
		return fmt.Errorf("invalid config: min_column_width %d x %d columns exceeds width_budget %d",
			c.MinColumnWidth, columns, c.WidthBudget)
	}
	return nil
}

// LogDir returns the directory holding the log file.
func (c Config) LogDir() string {
	if strings.TrimSpace(c.LogFile) == "" {
		return filepath.Dir(mustExpand(defaultLogFile))
	}
	return filepath.Dir(c.LogFile)
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return ExpandPath(defaultConfigPath)
	}
	return ExpandPath(path)
}

func mustExpand(path string) string {
	expanded, err := ExpandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

// ExpandPath trims path, expands a leading ~ to the home directory and
// makes the result absolute. Blank paths are an error.
func ExpandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
