// Package config loads host settings for the overlay: where control
// records are stored, which script directories to scan, and which
// plugin identities are registered. Settings live in a single TOML
// file; a missing file yields defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Settings is the host configuration.
type Settings struct {
	// SettingsDir is the root directory for persisted control
	// records.
	SettingsDir string `toml:"settings_dir"`

	// ScriptDirs are directories scanned for Lua scripts.
	ScriptDirs []string `toml:"script_dirs"`

	// Plugins are the registered plugin identities. The host assigns
	// each loaded plugin its entry here; the name doubles as the
	// owner identity for unshared control records.
	Plugins []Plugin `toml:"plugins"`
}

// Plugin registers one plugin identity.
type Plugin struct {
	Name    string `toml:"name"`
	Enabled bool   `toml:"enabled"`
}

// Default returns settings rooted under the user configuration
// directory.
func Default() Settings {
	base, err := os.UserConfigDir()
	if err != nil {
		base = "."
	}
	return Settings{
		SettingsDir: filepath.Join(base, "overmenu", "settings"),
		ScriptDirs:  []string{filepath.Join(base, "overmenu", "scripts")},
	}
}

// Load reads settings from path. A missing file returns defaults; a
// file that exists but cannot be parsed returns a *ParseError.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Settings{}, fmt.Errorf("reading settings %s: %w", path, err)
	}

	settings := Default()
	if err := toml.Unmarshal(data, &settings); err != nil {
		return Settings{}, &ParseError{Path: path, Message: err.Error(), Err: err}
	}
	return settings, nil
}

// ParseError reports a settings file that exists but cannot be
// parsed.
type ParseError struct {
	Path    string
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error in %s: %s", e.Path, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
