// Package config loads the optional user configuration file and
// resolves the conventional per-user storage locations.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// databaseFileName is the fixed store file name inside the data
// directory.
const databaseFileName = "db.sqlite3"

// Config holds the settings a user may persist instead of passing
// flags on every invocation. All fields are optional; flags take
// precedence over file values, which take precedence over defaults.
type Config struct {
	// Database is the store file path.
	Database string `yaml:"database"`

	// Format is the default output format ("text" or "json").
	Format string `yaml:"format"`
}

// Load reads a config file. A missing file is not an error - it yields
// the zero Config. A present but unparseable file is an error, so a
// typo never silently reverts the user to defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Config{}, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// DefaultPath returns the conventional config file location,
// $XDG_CONFIG_HOME/habits/config.yaml (~/.config/habits/config.yaml on
// most systems).
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(dir, "habits", "config.yaml"), nil
}

// DefaultDatabasePath returns the conventional per-user store
// location, ~/.local/share/habits/db.sqlite3. The directory is created
// by the store on first open, not here.
func DefaultDatabasePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".local", "share", "habits", databaseFileName), nil
}
