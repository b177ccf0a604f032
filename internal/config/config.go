// Package config loads runtime settings for the plushie shop binaries.
package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config holds process-level settings. Game rules live in game.Config.
type Config struct {
	DatabasePath string `env:"PLUSHIE_DB_PATH"`
	MemoryLedger bool   `env:"PLUSHIE_MEMORY_LEDGER" envDefault:"false"`
	Seed         int64  `env:"PLUSHIE_SEED" envDefault:"0"`
	LogLevel     string `env:"PLUSHIE_LOG_LEVEL" envDefault:"info"`
	LogFormat    string `env:"PLUSHIE_LOG_FORMAT" envDefault:"text"`
	AssetsDir    string `env:"PLUSHIE_ASSETS_DIR" envDefault:"assets"`
	WindowWidth  int32  `env:"PLUSHIE_WINDOW_WIDTH" envDefault:"1280"`
	WindowHeight int32  `env:"PLUSHIE_WINDOW_HEIGHT" envDefault:"720"`
}

// Load reads and validates the environment.
func Load() (Config, error) {
	cfg, err := Parse()
	if err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

// Parse reads the environment without validating it, so callers can apply
// command-line overrides before calling Validate.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg.withDefaults(), nil
}

// LoadFrom reads settings from an explicit variable map, for tests and
// tools that should not see the process environment.
func LoadFrom(vars map[string]string) (Config, error) {
	cfg, err := ParseFrom(vars)
	if err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

// ParseFrom is Parse over an explicit variable map.
func ParseFrom(vars map[string]string) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: vars}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg.withDefaults(), nil
}

func (c Config) withDefaults() Config {
	if c.DatabasePath == "" {
		c.DatabasePath = DefaultDatabasePath()
	}
	return c
}

func (c Config) Validate() error {
	if !c.MemoryLedger && strings.TrimSpace(c.DatabasePath) == "" {
		return fmt.Errorf("database path is required unless the memory ledger is enabled")
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s", c.LogLevel)
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log format: %s", c.LogFormat)
	}
	if c.WindowWidth < 640 || c.WindowHeight < 480 {
		return fmt.Errorf("window must be at least 640x480, got %dx%d", c.WindowWidth, c.WindowHeight)
	}
	return nil
}
