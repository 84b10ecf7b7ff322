package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/geoquiz/internal/config"
	"github.com/vovakirdan/geoquiz/internal/content"
	"github.com/vovakirdan/geoquiz/internal/storage"
)

// loadConfig loads the quiz config and applies the global flags over it.
func loadConfig() (config.QuizConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.QuizConfig{}, err
	}

	if flagDifficulty != "" {
		preset, err := config.ParsePreset(flagDifficulty)
		if err != nil {
			return config.QuizConfig{}, err
		}
		config.ApplyPreset(&cfg, preset)
	}

	if flagLang != "" {
		lang, err := content.ParseLanguage(flagLang)
		if err != nil {
			return config.QuizConfig{}, err
		}
		cfg.Language = lang.String()
	}

	if flagContent != "" {
		cfg.ContentDir = flagContent
	}
	if flagDBPath != "" {
		cfg.Storage.Path = flagDBPath
	}

	return cfg, cfg.Validate()
}

// loadCatalog loads the configured data set, or the embedded one.
func loadCatalog(cfg config.QuizConfig) (*content.Catalog, error) {
	if cfg.ContentDir != "" {
		return content.LoadDir(cfg.ContentDir)
	}
	return content.Default()
}

// dbPath returns the session database location.
func dbPath(cfg config.QuizConfig) string {
	if cfg.Storage.Path != "" {
		return cfg.Storage.Path
	}
	return storage.DefaultPath()
}

// newLogger returns a logger writing to --log-file, or a silent one. The
// returned func closes the file.
func newLogger() (*log.Logger, func(), error) {
	if flagLogFile == "" {
		return log.New(io.Discard), func() {}, nil
	}

	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Level:           log.DebugLevel,
		Prefix:          "geoquiz",
	})
	return logger, func() { f.Close() }, nil
}
