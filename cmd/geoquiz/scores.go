package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/geoquiz/internal/config"
	"github.com/vovakirdan/geoquiz/internal/content"
	"github.com/vovakirdan/geoquiz/internal/platform/tui"
	"github.com/vovakirdan/geoquiz/internal/storage"
)

var (
	flagScoresLimit  int
	flagScoresRecent bool
	flagScoresTUI    bool
	flagScoresID     string
	flagScoresClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show finished sessions",
	Long: `Display the best finished sessions, optionally for one language.

Examples:
  geoquiz scores
  geoquiz scores --lang hi
  geoquiz scores --recent --limit 20
  geoquiz scores --id 0b6c...
  geoquiz scores --tui`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of sessions to show")
	scoresCmd.Flags().BoolVar(&flagScoresRecent, "recent", false, "Order by date instead of score")
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse sessions interactively")
	scoresCmd.Flags().StringVar(&flagScoresID, "id", "", "Show a single session")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all stored sessions")
}

func runScores(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// Open session storage
	store, err := storage.Open(dbPath(cfg))
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	switch {
	case flagScoresClear:
		if err := store.ClearSessions(); err != nil {
			return fmt.Errorf("clearing sessions: %w", err)
		}
		fmt.Println("All sessions deleted.")
	case flagScoresID != "":
		return showSession(store, flagScoresID)
	case flagScoresTUI:
		return browseScores(store, cfg)
	default:
		// --lang filters only when given
		lang := ""
		if flagLang != "" {
			lang = cfg.Language
		}
		return listSessions(store, lang)
	}
	return nil
}

func listSessions(store *storage.Store, lang string) error {
	var (
		sessions []storage.SessionRecord
		err      error
	)
	switch {
	case flagScoresRecent:
		sessions, err = store.RecentSessions(flagScoresLimit)
	case lang != "":
		sessions, err = store.TopSessionsByLanguage(lang, flagScoresLimit)
	default:
		sessions, err = store.TopSessions(flagScoresLimit)
	}
	if err != nil {
		return fmt.Errorf("retrieving sessions: %w", err)
	}

	title := "Best Sessions"
	if flagScoresRecent {
		title = "Recent Sessions"
	}
	if lang != "" {
		title += " - " + content.Language(lang).EnglishName()
	}
	fmt.Println(lipgloss.NewStyle().Bold(true).Render(title))
	fmt.Println()

	if len(sessions) == 0 {
		fmt.Println("No sessions recorded yet.")
		fmt.Println()
		fmt.Println("Play 'geoquiz' to set the first high score!")
		return nil
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Rank", "Player", "Lang", "Score", "Rounds", "Correct", "Date")
	for i, s := range sessions {
		t.Row(
			fmt.Sprintf("%d", i+1),
			orDash(s.Player),
			s.Language,
			fmt.Sprintf("%d", s.Score),
			fmt.Sprintf("%d", s.RoundsPlayed),
			fmt.Sprintf("%d", s.CorrectGuesses),
			s.CreatedAt.Local().Format("2006-01-02 15:04"),
		)
	}
	fmt.Println(t.String())

	// Show high score and totals
	high, err := store.HighScore(lang)
	if err == nil && high > 0 {
		fmt.Printf("\nHigh Score: %d\n", high)
	}
	if stats, err := store.Stats(); err == nil && stats.Sessions > 0 {
		fmt.Printf("Sessions: %d  Average score: %.0f  Countries guessed: %d/%d\n",
			stats.Sessions, stats.AverageScore(), stats.CorrectGuesses, stats.RoundsPlayed)
	}
	return nil
}

func showSession(store *storage.Store, id string) error {
	rec, err := store.SessionByID(id)
	if err != nil {
		return fmt.Errorf("retrieving session: %w", err)
	}
	if rec == nil {
		return fmt.Errorf("no session with id %q", id)
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Rows(
			[]string{"ID", rec.ID},
			[]string{"Player", orDash(rec.Player)},
			[]string{"Language", rec.Language},
			[]string{"Difficulty", orDash(rec.Difficulty)},
			[]string{"Score", fmt.Sprintf("%d", rec.Score)},
			[]string{"Rounds played", fmt.Sprintf("%d", rec.RoundsPlayed)},
			[]string{"Countries guessed", fmt.Sprintf("%d", rec.CorrectGuesses)},
			[]string{"Time on correct rounds", rec.TotalTime.Round(100 * time.Millisecond).String()},
			[]string{"Date", rec.CreatedAt.Local().Format("2006-01-02 15:04:05")},
		)
	fmt.Println(t.String())
	return nil
}

func browseScores(store *storage.Store, cfg config.QuizConfig) error {
	catalog, err := loadCatalog(cfg)
	if err != nil {
		return fmt.Errorf("loading content: %w", err)
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	return tui.RunScoreboard(store, catalog.Languages(), width, height)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
