package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/geoquiz/internal/core"
	"github.com/vovakirdan/geoquiz/internal/platform/textui"
	"github.com/vovakirdan/geoquiz/internal/storage"
)

var flagNoSave bool

var textCmd = &cobra.Command{
	Use:   "text",
	Short: "Play the line-based text version",
	Long: `Start the quiz as a numbered-menu text game that reads one choice per
line. Works over pipes and on terminals without cursor support.

Examples:
  geoquiz text
  geoquiz text --lang gu
  geoquiz text --no-save`,
	Args: cobra.NoArgs,
	RunE: runText,
}

func init() {
	textCmd.Flags().BoolVar(&flagNoSave, "no-save", false, "Do not record finished sessions")
}

func runText(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	catalog, err := loadCatalog(cfg)
	if err != nil {
		return fmt.Errorf("loading content: %w", err)
	}

	logger, closeLog, err := newLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	var store *storage.Store
	if !flagNoSave {
		store, err = storage.Open(dbPath(cfg))
		if err != nil {
			logger.Warn("could not open session database", "error", err)
			fmt.Fprintf(os.Stderr, "Warning: scores will not be saved: %v\n", err)
			store = nil
		}
		if store != nil {
			defer store.Close()
		}
	}

	runner, err := textui.New(textui.Options{
		Content: catalog,
		Store:   store,
		Runtime: core.RuntimeConfig{
			Seed:     flagSeed,
			Language: cfg.Language,
			Player:   flagPlayer,
		},
		Quiz:   cfg,
		Logger: logger,
		In:     os.Stdin,
		Out:    os.Stdout,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := runner.Run(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}
