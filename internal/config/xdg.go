// Package config provides XDG path helpers.
package config

import (
	"os"
	"path/filepath"
)

const appName = "remytype"

// XDGConfigHome returns the XDG config home or a default fallback.
func XDGConfigHome() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".config")
}

// XDGStateHome returns the XDG state home or a default fallback.
func XDGStateHome() string {
	if v := os.Getenv("XDG_STATE_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".local", "state")
}

// DefaultWordListDir returns the directory scanned for extra word lists.
func DefaultWordListDir() string {
	return filepath.Join(XDGConfigHome(), appName, "wordlists")
}

// DefaultConfigPath returns the default TOML config path.
func DefaultConfigPath() string {
	return filepath.Join(XDGConfigHome(), appName, "config.toml")
}

// DefaultLogPath returns the suggested debug log location.
func DefaultLogPath() string {
	return filepath.Join(XDGStateHome(), appName, "debug.log")
}
