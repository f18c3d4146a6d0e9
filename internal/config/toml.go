// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Settings SettingsConfig `toml:"settings"`
	Text     TextConfig     `toml:"text"`
	Test     TestConfig     `toml:"test"`
}

// SettingsConfig maps the initial values of the in-app settings.
type SettingsConfig struct {
	Mode     *string `toml:"mode"`
	Words    *int    `toml:"words"`
	Time     *int    `toml:"time"`
	Language *string `toml:"language"`
	Lines    *int    `toml:"lines"`
}

// TextConfig maps text generation options.
type TextConfig struct {
	CapsPct  *float64 `toml:"caps"`
	PunctPct *float64 `toml:"punct"`
	PunctSet *string  `toml:"punct-set"`
}

// TestConfig maps session behaviour.
type TestConfig struct {
	ArmOnStart *bool `toml:"arm-on-start"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return FileConfig{}, fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	return cfg, nil
}
