package textui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/vovakirdan/geoquiz/internal/content"
	"github.com/vovakirdan/geoquiz/internal/quiz"
	"github.com/vovakirdan/geoquiz/internal/storage"
)

type styles struct {
	title    lipgloss.Style
	subtitle lipgloss.Style
	heading  lipgloss.Style
	hint     lipgloss.Style
	good     lipgloss.Style
	bad      lipgloss.Style
	muted    lipgloss.Style
}

// newStyles binds styles to the output's renderer, so plain writers get no
// escape codes.
func newStyles(re *lipgloss.Renderer) styles {
	return styles{
		title:    re.NewStyle().Foreground(lipgloss.Color("229")).Bold(true),
		subtitle: re.NewStyle().Foreground(lipgloss.Color("51")),
		heading:  re.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		hint:     re.NewStyle().Foreground(lipgloss.Color("226")).Italic(true),
		good:     re.NewStyle().Foreground(lipgloss.Color("46")).Bold(true),
		bad:      re.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
		muted:    re.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

func (r *Runner) summaryTable(s quiz.SessionSnapshot) string {
	avg := "-"
	if s.HasAverage {
		avg = fmt.Sprintf("%.1f %s", s.AverageTime.Seconds(), r.text(content.KeySeconds))
	}
	return table.New().
		Border(lipgloss.RoundedBorder()).
		Rows(
			[]string{r.text(content.KeyTotalScore), fmt.Sprintf("%d", s.Score)},
			[]string{r.text(content.KeyRoundsPlayed), fmt.Sprintf("%d", s.RoundsPlayed)},
			[]string{r.text(content.KeyCountriesGuessed), fmt.Sprintf("%d", s.CorrectGuesses)},
			[]string{r.text(content.KeyAvgTime), avg},
		).
		String()
}

// sessionsTable renders stored sessions as a ranked table.
func sessionsTable(sessions []storage.SessionRecord) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("#", "Player", "Score", "Correct", "Date")
	for i, s := range sessions {
		player := s.Player
		if player == "" {
			player = "-"
		}
		t.Row(
			fmt.Sprintf("%d", i+1),
			player,
			fmt.Sprintf("%d", s.Score),
			fmt.Sprintf("%d", s.CorrectGuesses),
			s.CreatedAt.Local().Format("2006-01-02 15:04"),
		)
	}
	return t.String()
}
