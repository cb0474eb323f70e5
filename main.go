// Package main provides the entry point for the Photo Markup application.
package main

import (
	"log"
	"os"
	"path/filepath"

	fyneapp "fyne.io/fyne/v2/app"
	"go.uber.org/zap"

	"photo-markup/internal/app"
	"photo-markup/internal/config"
	"photo-markup/internal/logging"
	"photo-markup/internal/store"
	"photo-markup/internal/version"
	"photo-markup/ui/mainwindow"
)

func main() {
	cfgPath := configPath()
	cfg, err := config.ReadFromFile(cfgPath)
	if err != nil {
		log.Fatalf("loading config %s: %v", cfgPath, err)
	}

	logger, err := logging.NewLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()
	logger.Info("starting photo markup",
		zap.String("version", version.Version),
		zap.String("commit", version.GitCommit))

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		logger.Fatal("creating data directory", zap.String("dir", cfg.DataDir), zap.Error(err))
	}
	st, err := store.Open(cfg.LibraryPath(), logger)
	if err != nil {
		logger.Fatal("opening markup library", zap.Error(err))
	}

	state := app.NewState(cfg, logger, st)
	defer state.Close()

	fyneApp := fyneapp.New()
	fyneApp.Settings().SetTheme(&app.MarkupTheme{})

	win := mainwindow.New(fyneApp, state)
	win.Show()
	fyneApp.Run()
}

// configPath resolves the config file location: first argument if given,
// otherwise config.toml in the user config dir.
func configPath() string {
	if len(os.Args) > 1 {
		return os.Args[1]
	}
	base, err := os.UserConfigDir()
	if err != nil {
		base = "."
	}
	return filepath.Join(base, "photo-markup", "config.toml")
}
