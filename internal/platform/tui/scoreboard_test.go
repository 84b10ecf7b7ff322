package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/geoquiz/internal/content"
	"github.com/vovakirdan/geoquiz/internal/storage"
)

func TestScoreboardLanguageTabs(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	defer store.Close()

	for _, rec := range []storage.SessionRecord{
		{Player: "a", Language: "en", Score: 500},
		{Player: "b", Language: "hi", Score: 900},
		{Player: "c", Language: "en", Score: 100},
	} {
		if _, err := store.SaveSession(rec); err != nil {
			t.Fatalf("SaveSession() failed: %v", err)
		}
	}

	m := NewScoreboardModel(store, []content.Language{"en", "hi"}, 100, 30)
	if got := len(m.Sessions()); got != 3 {
		t.Fatalf("All tab shows %d sessions, expected 3", got)
	}
	if m.Sessions()[0].Score != 900 {
		t.Errorf("best session score = %d, expected 900", m.Sessions()[0].Score)
	}

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = updated.(ScoreboardModel)
	if got := len(m.Sessions()); got != 2 {
		t.Errorf("English tab shows %d sessions, expected 2", got)
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = updated.(ScoreboardModel)
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = updated.(ScoreboardModel)
	if got := len(m.Sessions()); got != 1 {
		t.Errorf("Hindi tab shows %d sessions, expected 1", got)
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = updated.(ScoreboardModel)
	if !m.IsGoingBack() {
		t.Error("esc should leave the scoreboard")
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, []content.Language{"en"}, 80, 24)
	if len(m.Sessions()) != 0 {
		t.Error("scoreboard without store should be empty")
	}
	if !strings.Contains(m.Panel(), "unavailable") {
		t.Error("panel should explain that history is unavailable")
	}
}
