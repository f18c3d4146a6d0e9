package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("expected no error for missing file, got %v", err)
	}
	if cfg.Settings.Mode != nil || cfg.Text.CapsPct != nil {
		t.Fatalf("expected empty config, got %+v", cfg)
	}
}

func TestLoadConfigValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `
[settings]
mode = "words"
words = 30
language = "english_1k"

[text]
punct = 0.25

[test]
arm-on-start = true
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Settings.Mode == nil || *cfg.Settings.Mode != "words" {
		t.Fatalf("unexpected mode: %v", cfg.Settings.Mode)
	}
	if cfg.Settings.Words == nil || *cfg.Settings.Words != 30 {
		t.Fatalf("unexpected words: %v", cfg.Settings.Words)
	}
	if cfg.Settings.Time != nil {
		t.Fatalf("expected time to stay unset")
	}
	if cfg.Text.PunctPct == nil || *cfg.Text.PunctPct != 0.25 {
		t.Fatalf("unexpected punct: %v", cfg.Text.PunctPct)
	}
	if cfg.Test.ArmOnStart == nil || !*cfg.Test.ArmOnStart {
		t.Fatalf("expected arm-on-start true")
	}
}

func TestLoadConfigRejectsUnknownKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[settings]\nspeed = 3\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	_, err := LoadConfig(path)
	if err == nil || !strings.Contains(err.Error(), "settings.speed") {
		t.Fatalf("expected unknown key error, got %v", err)
	}
}
