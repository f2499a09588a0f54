package config

import (
	"os"
	"path/filepath"
	"strings"
)

// CurrentVersion is the config schema version written by Default.
const CurrentVersion = "1.0"

// Config represents the customizer configuration document.
type Config struct {
	Version string        `yaml:"version" validate:"required,semver"`
	Session Session       `yaml:"session"`
	Theme   ThemeSettings `yaml:"theme"`
	Store   StoreSettings `yaml:"store"`
	Locale  string        `yaml:"locale,omitempty" validate:"omitempty,locale"`
	Log     LogSettings   `yaml:"log"`
	Route   string        `yaml:"route,omitempty" validate:"omitempty,route"`
}

// Session describes the user the panel runs for.
type Session struct {
	User     string `yaml:"user,omitempty" validate:"omitempty,max=100"`
	LoggedIn bool   `yaml:"logged_in"`
}

// ThemeSettings selects the initial theme and optional user definitions.
type ThemeSettings struct {
	Default     string `yaml:"default" validate:"required,theme_id"`
	Definitions string `yaml:"definitions,omitempty"`
}

// StoreSettings selects the persistence backend.
type StoreSettings struct {
	Backend string `yaml:"backend" validate:"required,oneof=memory file git sqlite"`
	Path    string `yaml:"path,omitempty"`
}

// LogSettings controls the structured logger.
type LogSettings struct {
	Level string `yaml:"level,omitempty" validate:"omitempty,oneof=trace debug info warn error"`
	Human bool   `yaml:"human,omitempty"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Version: CurrentVersion,
		Session: Session{LoggedIn: true},
		Theme:   ThemeSettings{Default: "dark"},
		Store:   StoreSettings{Backend: "file"},
		Locale:  "en",
		Log:     LogSettings{Level: "info"},
		Route:   "#settings",
	}
}

// BaseDir returns the customizer state directory, ~/.customizer.
func BaseDir() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ".customizer"
	}
	return filepath.Join(home, ".customizer")
}

// DefaultPath returns the config file used when --config is not given.
func DefaultPath() string {
	return filepath.Join(BaseDir(), "config.yaml")
}

// StorePath resolves the backend location, expanding a leading ~ and
// falling back to a per-backend default under BaseDir.
func (c *Config) StorePath() string {
	path := expandHome(c.Store.Path)
	if path != "" {
		return path
	}
	switch c.Store.Backend {
	case "git":
		return filepath.Join(BaseDir(), "history")
	case "sqlite":
		return filepath.Join(BaseDir(), "customizer.db")
	default:
		return filepath.Join(BaseDir(), "customization.json")
	}
}

// DefinitionsPath resolves the user theme file, or "" when none is set.
func (c *Config) DefinitionsPath() string {
	return expandHome(c.Theme.Definitions)
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return path
}
