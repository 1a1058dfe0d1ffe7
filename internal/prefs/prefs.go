// Package prefs persists Pokedex UI preferences in
// ~/.config/pokedex/prefs.toml. Only presentation settings live here; the
// party and search state are never saved.
package prefs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Prefs holds user preferences.
type Prefs struct {
	Theme string `toml:"theme"`
}

const (
	defaultPrefsPath = "~/.config/pokedex/prefs.toml"
	// DefaultTheme is used when no preference is stored.
	DefaultTheme = "Pokedex"
)

// DefaultPath returns the default preferences file path.
func DefaultPath() string {
	return defaultPrefsPath
}

// Load reads preferences from path. The returned Prefs are always usable:
// on any problem they hold the defaults and err explains why, so callers may
// log it and carry on.
func Load(path string) (Prefs, error) {
	prefs := Prefs{Theme: DefaultTheme}

	resolved, err := resolvePath(path)
	if err != nil {
		return prefs, err
	}

	bytes, err := os.ReadFile(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return prefs, nil
		}
		return prefs, fmt.Errorf("read prefs: %w", err)
	}

	var stored Prefs
	if err := toml.Unmarshal(bytes, &stored); err != nil {
		return prefs, fmt.Errorf("parse prefs: %w", err)
	}
	if theme := strings.TrimSpace(stored.Theme); theme != "" {
		prefs.Theme = theme
	}
	return prefs, nil
}

// Save writes preferences to path, creating directories as needed.
func Save(path string, p Prefs) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	bytes, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}

	if err := os.WriteFile(resolved, bytes, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	return nil
}

func resolvePath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		trimmed = defaultPrefsPath
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
