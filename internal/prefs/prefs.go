// Package prefs persists roster's display preferences.
// Preferences are stored in ~/.config/roster/prefs.toml. Only the theme is
// kept; table state (search, sort, widths, page) is never written to disk.
package prefs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/roster/internal/config"
)

// ErrUnknownTheme reports a theme name the store was not opened with.
var ErrUnknownTheme = errors.New("unknown theme")

const defaultPath = "~/.config/roster/prefs.toml"

// Prefs holds user preferences for roster. A blank Theme means the UI default.
type Prefs struct {
	Theme string `toml:"theme"`
}

// Store reads and writes one prefs file. Theme names are matched against the
// list the store was opened with, ignoring case, and are always stored in
// that list's spelling.
type Store struct {
	path   string
	themes []string
}

// Open returns a store for path, or for the default path when path is blank.
// The file itself is not touched until Load or SaveTheme.
func Open(path string, themes []string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		path = defaultPath
	}
	resolved, err := config.ExpandPath(path)
	if err != nil {
		return nil, fmt.Errorf("prefs path: %w", err)
	}
	return &Store{path: resolved, themes: slices.Clone(themes)}, nil
}

// Path is the resolved file location.
func (s *Store) Path() string {
	return s.path
}

// Load returns the stored preferences. A missing file is not an error.
// Unreadable or malformed files and unknown theme names come back as zero
// Prefs together with an error naming what was ignored, so callers can log
// it and start with defaults.
func (s *Store) Load() (Prefs, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return Prefs{}, nil
	}
	if err != nil {
		return Prefs{}, fmt.Errorf("read prefs: %w", err)
	}

	var p Prefs
	if err := toml.Unmarshal(data, &p); err != nil {
		return Prefs{}, fmt.Errorf("parse prefs %s: %w", s.path, err)
	}
	if strings.TrimSpace(p.Theme) == "" {
		return Prefs{}, nil
	}
	theme, err := s.canonicalTheme(p.Theme)
	if err != nil {
		return Prefs{}, fmt.Errorf("prefs %s: %w", s.path, err)
	}
	return Prefs{Theme: theme}, nil
}

// SaveTheme records name as the preferred theme. Unknown names are rejected
// and leave the file as it was.
func (s *Store) SaveTheme(name string) error {
	theme, err := s.canonicalTheme(name)
	if err != nil {
		return fmt.Errorf("save theme: %w", err)
	}
	return s.write(Prefs{Theme: theme})
}

func (s *Store) canonicalTheme(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%w: name is empty", ErrUnknownTheme)
	}
	if len(s.themes) == 0 {
		return name, nil
	}
	for _, t := range s.themes {
		if strings.EqualFold(t, name) {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w %q (available: %s)", ErrUnknownTheme, name, strings.Join(s.themes, ", "))
}

// write replaces the file through a temp file and rename.
func (s *Store) write(p Prefs) (err error) {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".prefs-*.toml")
	if err != nil {
		return fmt.Errorf("create temp prefs: %w", err)
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if err := toml.NewEncoder(tmp).Encode(p); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("encode prefs: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace prefs: %w", err)
	}
	return nil
}
