package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/geoquiz/internal/config"
	"github.com/vovakirdan/geoquiz/internal/content"
	"github.com/vovakirdan/geoquiz/internal/core"
	"github.com/vovakirdan/geoquiz/internal/quiz"
	"github.com/vovakirdan/geoquiz/internal/storage"
)

func newTestApp(t *testing.T, store *storage.Store, maxTries int) AppModel {
	t.Helper()

	catalog, err := content.Default()
	if err != nil {
		t.Fatalf("content.Default() failed: %v", err)
	}

	cfg := config.Default()
	cfg.Round.MaxTries = maxTries
	cfg.Delays.Windowed = config.ModeDelays{} // Timers fire immediately

	m, err := NewAppModel(AppOptions{
		Content: catalog,
		Store:   store,
		Runtime: core.RuntimeConfig{ScreenW: 100, ScreenH: 40, Seed: 7, Player: "tester"},
		Quiz:    cfg,
	})
	if err != nil {
		t.Fatalf("NewAppModel() failed: %v", err)
	}
	return m
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// send delivers msg and then runs any resulting timer commands to completion.
func send(t *testing.T, m AppModel, msg tea.Msg) AppModel {
	t.Helper()
	updated, cmd := m.Update(msg)
	m = updated.(AppModel)

	for cmd != nil {
		next := cmd()
		tm, ok := next.(TimerMsg)
		if !ok {
			break
		}
		updated, cmd = m.Update(tm)
		m = updated.(AppModel)
	}
	return m
}

func TestAppMenuNavigation(t *testing.T) {
	m := newTestApp(t, nil, 3)
	nav := m.Navigator()

	if !strings.Contains(m.View(), "Country Puzzle") {
		t.Error("main menu should show the game title")
	}

	// 2 = Change Language
	m = send(t, m, keyRunes("2"))
	if nav.Screen() != quiz.ScreenLanguageMenu {
		t.Fatalf("Screen() = %v, expected LanguageMenu", nav.Screen())
	}
	opts := m.options()
	if len(opts) != 4 || opts[3].Key != backKey {
		t.Fatalf("language options = %+v, expected en, gu, hi, back", opts)
	}

	// Move to Hindi and select it
	m = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if nav.Language() != "hi" || nav.Screen() != quiz.ScreenMainMenu {
		t.Fatalf("after selecting Hindi: language %v, screen %v", nav.Language(), nav.Screen())
	}
	if !strings.Contains(m.View(), "देश पहेली") {
		t.Error("main menu should show the Hindi title")
	}

	// 3 = View Score, then back
	m = send(t, m, keyRunes("3"))
	if nav.Screen() != quiz.ScreenScoreView {
		t.Fatalf("Screen() = %v, expected ScoreView", nav.Screen())
	}
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if nav.Screen() != quiz.ScreenMainMenu {
		t.Errorf("Screen() = %v after esc, expected MainMenu", nav.Screen())
	}
}

func TestAppRoundAdvancesOnTimer(t *testing.T) {
	// Enough tries to walk through every candidate
	m := newTestApp(t, nil, 10)
	nav := m.Navigator()

	m = send(t, m, keyRunes("1"))
	if nav.Screen() != quiz.ScreenInRound {
		t.Fatalf("Screen() = %v, expected InRound", nav.Screen())
	}
	if !strings.Contains(m.View(), "Hint 1/") {
		t.Error("round view should show the first hint")
	}

	candidates := len(m.options())
	for i := 0; i < candidates; i++ {
		before := nav.SessionSnapshot().RoundsPlayed
		m = send(t, m, keyRunes(string(rune('1'+i))))
		if nav.SessionSnapshot().RoundsPlayed > before {
			break
		}
	}

	// The zero delay timer already moved on to the next round
	if nav.Screen() != quiz.ScreenInRound {
		t.Errorf("Screen() = %v, expected InRound after the next-round timer", nav.Screen())
	}
	snap := nav.SessionSnapshot()
	if snap.RoundsPlayed != 1 || snap.CorrectGuesses != 1 || snap.Score <= 0 {
		t.Errorf("SessionSnapshot() = %+v, expected one scored round", snap)
	}
	if r, _ := nav.RoundSnapshot(); r.HasOutcome {
		t.Error("next round should start without an outcome")
	}
}

func TestAppGameOverSavesOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	defer store.Close()

	m := newTestApp(t, store, 1)
	nav := m.Navigator()
	m = send(t, m, keyRunes("1"))

	// With one try per round the session ends at the first miss
	for i := 0; i < 100 && nav.Screen() != quiz.ScreenGameOver; i++ {
		m = send(t, m, keyRunes("1"))
	}
	if nav.Screen() != quiz.ScreenGameOver {
		t.Fatalf("Screen() = %v, expected GameOver", nav.Screen())
	}
	view := m.View()
	if !strings.Contains(view, "GAME OVER") || !strings.Contains(view, "Countries guessed correctly") {
		t.Error("game over view is missing its summary")
	}

	sessions, err := store.TopSessions(10)
	if err != nil {
		t.Fatalf("TopSessions() failed: %v", err)
	}
	if len(sessions) != 1 {
		t.Fatalf("stored %d sessions, expected 1", len(sessions))
	}
	snap := nav.SessionSnapshot()
	rec := sessions[0]
	if rec.ID != m.LastSavedID() || rec.Score != snap.Score || rec.CorrectGuesses != snap.CorrectGuesses || rec.Player != "tester" || rec.Language != "en" {
		t.Errorf("stored record %+v does not match session %+v", rec, snap)
	}

	// Further input on the game over screen must not save again
	m = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = send(t, m, TimerMsg{Token: quiz.Token{Kind: quiz.TimerGameOver, Seq: 1}})
	if sessions, _ := store.TopSessions(10); len(sessions) != 1 {
		t.Errorf("stored %d sessions after extra events, expected 1", len(sessions))
	}

	// Back goes to the main menu
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if nav.Screen() != quiz.ScreenMainMenu {
		t.Errorf("Screen() = %v, expected MainMenu", nav.Screen())
	}
}

func TestAppMouseClick(t *testing.T) {
	m := newTestApp(t, nil, 3)
	f := m.layout()
	if len(f.buttons) != len(quiz.MainMenuItems) {
		t.Fatalf("main menu has %d buttons, expected %d", len(f.buttons), len(quiz.MainMenuItems))
	}

	// Clicking outside every button does nothing
	m = send(t, m, tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if m.Navigator().Screen() != quiz.ScreenMainMenu {
		t.Fatal("click on empty space changed the screen")
	}

	// Right clicks are ignored
	play := f.buttons[0].Bounds
	m = send(t, m, tea.MouseMsg{X: play.X, Y: play.Y, Action: tea.MouseActionPress, Button: tea.MouseButtonRight})
	if m.Navigator().Screen() != quiz.ScreenMainMenu {
		t.Fatal("right click changed the screen")
	}

	score := f.buttons[2].Bounds
	m = send(t, m, tea.MouseMsg{X: score.X + score.W - 1, Y: score.Y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if m.Navigator().Screen() != quiz.ScreenScoreView {
		t.Errorf("Screen() = %v after clicking View Score, expected ScoreView", m.Navigator().Screen())
	}
}

func TestAppQuit(t *testing.T) {
	m := newTestApp(t, nil, 3)
	updated, cmd := m.Update(keyRunes("q"))
	m = updated.(AppModel)
	if !m.IsQuitting() {
		t.Error("IsQuitting() should be true after q")
	}
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command should produce tea.QuitMsg")
	}
	if m.View() != "" {
		t.Error("View() should be empty while quitting")
	}
}

func TestAppExitFromMenu(t *testing.T) {
	m := newTestApp(t, nil, 3)
	updated, cmd := m.Update(keyRunes("4"))
	m = updated.(AppModel)
	if !m.Navigator().Exited() || !m.IsQuitting() {
		t.Error("Exit Game should end the program")
	}
	if cmd == nil {
		t.Error("Exit Game should return the quit command")
	}
}

func TestTeaScheduler(t *testing.T) {
	s := newTeaScheduler()
	if s.Flush() != nil {
		t.Error("Flush() with nothing scheduled should be nil")
	}

	tok := quiz.Token{Kind: quiz.TimerNextRound, Seq: 3}
	s.Schedule(0, tok)
	cmd := s.Flush()
	if cmd == nil {
		t.Fatal("Flush() should return the tick command")
	}
	msg, ok := cmd().(TimerMsg)
	if !ok || msg.Token != tok {
		t.Errorf("tick produced %v, expected TimerMsg %v", msg, tok)
	}

	h := s.Schedule(0, tok)
	h.Cancel()
	if got := s.Flush()(); got != nil {
		t.Errorf("cancelled tick produced %v, expected nil", got)
	}
}

func TestPickIndex(t *testing.T) {
	tests := []struct {
		msg      tea.KeyMsg
		expected int
	}{
		{keyRunes("1"), 0},
		{keyRunes("9"), 8},
		{keyRunes("0"), -1},
		{keyRunes("a"), -1},
		{tea.KeyMsg{Type: tea.KeyEnter}, -1},
	}
	for _, tt := range tests {
		if got := pickIndex(tt.msg); got != tt.expected {
			t.Errorf("pickIndex(%q) = %d, expected %d", tt.msg.String(), got, tt.expected)
		}
	}
}
