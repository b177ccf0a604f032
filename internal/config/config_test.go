package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFromDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("PLUSHIE_HOME", home)
	cfg, err := LoadFrom(map[string]string{})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DatabasePath != filepath.Join(home, "plushie-shop.db") {
		t.Fatalf("db path = %q", cfg.DatabasePath)
	}
	if cfg.LogLevel != "info" || cfg.LogFormat != "text" {
		t.Fatalf("log = %s/%s", cfg.LogLevel, cfg.LogFormat)
	}
	if cfg.WindowWidth != 1280 || cfg.WindowHeight != 720 {
		t.Fatalf("window = %dx%d", cfg.WindowWidth, cfg.WindowHeight)
	}
}

func TestLoadFromOverrides(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{
		"PLUSHIE_DB_PATH":       "/tmp/shop.db",
		"PLUSHIE_SEED":          "77",
		"PLUSHIE_LOG_FORMAT":    "json",
		"PLUSHIE_MEMORY_LEDGER": "true",
	})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DatabasePath != "/tmp/shop.db" || cfg.Seed != 77 || cfg.LogFormat != "json" || !cfg.MemoryLedger {
		t.Fatalf("cfg = %+v", cfg)
	}
}

func TestLoadFromRejectsBadValues(t *testing.T) {
	tests := []map[string]string{
		{"PLUSHIE_SEED": "not-a-number"},
		{"PLUSHIE_LOG_LEVEL": "loud"},
		{"PLUSHIE_LOG_FORMAT": "xml"},
		{"PLUSHIE_WINDOW_WIDTH": "100"},
		{"PLUSHIE_DB_PATH": " "},
	}
	for _, vars := range tests {
		if _, err := LoadFrom(vars); err == nil {
			t.Fatalf("expected error for %v", vars)
		}
	}
}

func TestEnsureParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deeper", "shop.db")
	if err := EnsureParentDir(path); err != nil {
		t.Fatalf("ensure: %v", err)
	}
	info, err := os.Stat(filepath.Dir(path))
	if err != nil || !info.IsDir() {
		t.Fatalf("expected directory, got %v %v", info, err)
	}
	if err := EnsureParentDir("local.db"); err != nil {
		t.Fatalf("bare file name should need no directory: %v", err)
	}
}

func TestParseFromDefersValidation(t *testing.T) {
	cfg, err := ParseFrom(map[string]string{
		"PLUSHIE_DB_PATH":   "shop.db",
		"PLUSHIE_LOG_LEVEL": "verbose",
	})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected the environment log level to be rejected")
	}
	cfg.LogLevel = "debug"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("override should make the config valid: %v", err)
	}
	if _, err := ParseFrom(map[string]string{"PLUSHIE_SEED": "x"}); err == nil {
		t.Fatal("malformed values still fail to parse")
	}
}
