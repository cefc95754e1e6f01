// Package config handles global vtpool configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/isobus-tools/vtpool/internal/object"
)

// Config represents the global vtpool configuration.
type Config struct {
	// VTVersion is the default VT version for new projects (2 to 6).
	// Zero means the built-in default (VT3).
	VTVersion int `toml:"vt_version"`

	// SmartNames controls whether imported pools get generated display
	// names. Unset means enabled.
	SmartNames *bool `toml:"smart_names"`

	// StateFile overrides where state.toml lives. Relative paths are
	// resolved against the config file's directory.
	StateFile string `toml:"state_file"`

	// UI controls optional CLI theming preferences.
	UI UIConfig `toml:"ui"`
}

// UIConfig represents optional CLI theming preferences.
type UIConfig struct {
	// Accent is an optional accent color for CLI output and markdown rendering.
	// Supported values are ANSI color codes ("0" to "255") or hex colors ("#RRGGBB").
	Accent string `toml:"accent"`

	// CodeTheme sets the Glamour/Chroma theme used for rendered markdown code blocks.
	// Example values: "monokai", "dracula", "github", "nord".
	CodeTheme string `toml:"code_theme"`
}

// Version returns the configured default VT version.
func (c *Config) Version() (object.VTVersion, error) {
	if c.VTVersion == 0 {
		return object.DefaultVersion, nil
	}
	if c.VTVersion < 0 || c.VTVersion > 255 {
		return 0, fmt.Errorf("unsupported VT version %d", c.VTVersion)
	}
	return object.ParseVTVersion(uint8(c.VTVersion))
}

// SmartNamesEnabled reports whether imported pools get generated names.
func (c *Config) SmartNamesEnabled() bool {
	if c.SmartNames == nil {
		return true
	}
	return *c.SmartNames
}

// Load loads the configuration from the default location.
// Returns a default config if the file doesn't exist.
func Load() (*Config, error) {
	configPath := DefaultPath()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return &Config{}, nil
	}

	return LoadFrom(configPath)
}

// LoadFrom loads the configuration from a specific path.
func LoadFrom(path string) (*Config, error) {
	var config Config
	if _, err := toml.DecodeFile(path, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return &config, nil
}

// DefaultPath returns the default config file path.
// Checks ~/.config/vtpool/config.toml first (XDG style),
// then falls back to OS-specific location.
func DefaultPath() string {
	// Prefer XDG-style ~/.config/vtpool/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		xdgPath := filepath.Join(home, ".config", "vtpool", "config.toml")
		if _, err := os.Stat(xdgPath); err == nil {
			return xdgPath
		}
	}

	// Fall back to XDG config dir or OS-specific location
	if configDir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(configDir, "vtpool", "config.toml")
	}

	// Last resort fallback
	return filepath.Join(".", "config.toml")
}

// XDGPath returns the XDG-style config path (~/.config/vtpool/config.toml).
func XDGPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "vtpool", "config.toml"), nil
}

// CreateDefault creates a default config file at the default path if it
// doesn't exist.
func CreateDefault() (string, error) {
	return CreateDefaultAt(DefaultPath())
}

// CreateDefaultAt creates a commented starter config at path if missing.
func CreateDefaultAt(configPath string) (string, error) {
	if _, err := os.Stat(configPath); err == nil {
		return configPath, nil // Already exists
	}

	// Create parent directories
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	defaultConfig := `# vtpool configuration

# Default VT version for new projects (2 to 6)
# vt_version = 3

# Generate display names when importing bare .iop pools (default: true)
# smart_names = true

# Optional UI accent color for headers in terminal output.
# Supports ANSI color codes (0-255) or hex (#RRGGBB).
# [ui]
# accent = "39"
# code_theme = "monokai"
`

	if err := os.WriteFile(configPath, []byte(defaultConfig), 0644); err != nil {
		return "", fmt.Errorf("failed to write config file: %w", err)
	}

	return configPath, nil
}
