//go:build cgo

package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/appengine-ltd/plushie-shop/internal/config"
	"github.com/appengine-ltd/plushie-shop/internal/game"
	"github.com/appengine-ltd/plushie-shop/internal/gui"
	"github.com/appengine-ltd/plushie-shop/internal/ledger"
	"github.com/appengine-ltd/plushie-shop/internal/ledger/sqlite"
	"github.com/appengine-ltd/plushie-shop/internal/obs"
)

// version, commit, date are injected at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	var (
		showVersion  bool
		seed         int64
		dbPath       string
		memoryLedger bool
		logLevel     string
		assetsDir    string
	)

	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.Int64Var(&seed, "seed", 0, "random seed (0 picks one from the clock)")
	flag.StringVar(&dbPath, "db", "", "ledger database path (overrides PLUSHIE_DB_PATH)")
	flag.BoolVar(&memoryLedger, "memory-ledger", false, "keep the ledger in memory only")
	flag.StringVar(&logLevel, "log-level", "", "debug, info, warn or error")
	flag.StringVar(&assetsDir, "assets", "", "assets directory (overrides PLUSHIE_ASSETS_DIR)")
	flag.Parse()

	if showVersion {
		fmt.Printf("Plushie Shop %s (%s) %s\n", version, commit, date)
		return
	}

	// Flags may fix what the environment got wrong, so validate after both.
	cfg, err := config.Parse()
	if err != nil {
		fatal(err)
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			cfg.Seed = seed
		case "db":
			cfg.DatabasePath = dbPath
		case "memory-ledger":
			cfg.MemoryLedger = memoryLedger
		case "log-level":
			cfg.LogLevel = logLevel
		case "assets":
			cfg.AssetsDir = assetsDir
		}
	})
	if err := cfg.Validate(); err != nil {
		fatal(err)
	}

	if err := run(cfg); err != nil {
		fatal(err)
	}
}

func run(cfg config.Config) error {
	logger := obs.NewLogger(os.Stderr, cfg.LogLevel, cfg.LogFormat).With("app", "plushie-shop", "version", version)
	slog.SetDefault(logger)

	store, closeStore, err := openLedger(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeStore(); err != nil {
			logger.Warn("close ledger", "error", err)
		}
	}()

	rules := game.DefaultConfig()
	rules.Seed = cfg.Seed
	session, err := game.NewSession(rules, game.SessionOptions{
		Palette: game.NewPalette(),
		Ledger:  store,
		Logger:  logger,
	})
	if err != nil {
		return err
	}

	app := gui.NewApp(gui.AppConfig{
		Version:   version,
		AssetsDir: cfg.AssetsDir,
		Width:     cfg.WindowWidth,
		Height:    cfg.WindowHeight,
	}, session, store, logger)
	return app.Run()
}

func openLedger(cfg config.Config) (ledger.Store, func() error, error) {
	if cfg.MemoryLedger {
		return ledger.NewMemoryStore(), func() error { return nil }, nil
	}
	if err := config.EnsureParentDir(cfg.DatabasePath); err != nil {
		return nil, nil, err
	}
	store, err := sqlite.Open(cfg.DatabasePath)
	if err != nil {
		return nil, nil, fmt.Errorf("open ledger: %w", err)
	}
	return store, store.Close, nil
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
