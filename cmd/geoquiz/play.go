package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/geoquiz/internal/core"
	"github.com/vovakirdan/geoquiz/internal/platform/tui"
	"github.com/vovakirdan/geoquiz/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the full-screen terminal UI",
	Long: `Start the quiz in the full-screen terminal UI.

Controls:
  Up/Down, Enter  - Move and select
  1-9             - Pick an option directly
  Mouse click     - Pick an option
  Esc             - Back
  ?               - Toggle help
  Q/Ctrl+C        - Quit

Difficulty options:
  easy    - 3 candidates per round
  normal  - 5 candidates per round
  hard    - 8 candidates per round

Examples:
  geoquiz play
  geoquiz play --lang hi
  geoquiz play --difficulty easy
  geoquiz play --config ./my-quiz.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
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

	// Get terminal size early for the first layout
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		Seed:     flagSeed,
		Language: cfg.Language,
		Player:   flagPlayer,
	}

	// Storage is optional; play continues without history
	store, err := storage.Open(dbPath(cfg))
	if err != nil {
		logger.Warn("could not open session database", "error", err)
		fmt.Fprintf(os.Stderr, "Warning: scores will not be saved: %v\n", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	summary, err := tui.RunQuiz(tui.AppOptions{
		Content: catalog,
		Store:   store,
		Runtime: runtime,
		Quiz:    cfg,
		Logger:  logger,
	})
	if err != nil {
		return err
	}

	if summary.RoundsPlayed > 0 {
		fmt.Printf("Score: %d  Rounds: %d  Correct: %d\n", summary.Score, summary.RoundsPlayed, summary.CorrectGuesses)
	}
	return nil
}
