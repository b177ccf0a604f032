package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const (
	appDirName        = "PlushieShop"
	databaseName      = "plushie-shop.db"
	appDirEnvOverride = "PLUSHIE_HOME"
)

// appDataDir is the per-user directory holding the ledger database.
// PLUSHIE_HOME replaces it outright.
func appDataDir() (string, error) {
	if dir := os.Getenv(appDirEnvOverride); dir != "" {
		return dir, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	if base == "" {
		return "", errors.New("user config directory not found")
	}
	return filepath.Join(base, appDirName), nil
}

// DefaultDatabasePath is where the ledger lives when PLUSHIE_DB_PATH is
// unset. It falls back to the working directory when there is no user
// config directory.
func DefaultDatabasePath() string {
	dir, err := appDataDir()
	if err != nil {
		return databaseName
	}
	return filepath.Join(dir, databaseName)
}

// EnsureParentDir creates the directory that will hold path.
func EnsureParentDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create storage dir: %w", err)
	}
	return nil
}
