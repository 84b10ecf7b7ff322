// Package tui provides the Bubble Tea front end for the quiz.
// It handles the terminal UI loop, input mapping, and delayed transitions.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/geoquiz/internal/quiz"
)

// TimerMsg is sent when a scheduled quiz transition comes due.
type TimerMsg struct {
	Token quiz.Token
}

// teaScheduler turns scheduled transitions into tea.Tick commands. Commands
// accumulate while the Navigator runs and are handed to Bubble Tea by Flush,
// so timer messages arrive through the same queue as key presses.
type teaScheduler struct {
	cmds []tea.Cmd
}

type tickHandle struct {
	cancelled atomic.Bool
}

// Cancel suppresses the message if the tick has not fired yet.
func (h *tickHandle) Cancel() {
	h.cancelled.Store(true)
}

func newTeaScheduler() *teaScheduler {
	return &teaScheduler{}
}

// Schedule implements quiz.Scheduler.
func (s *teaScheduler) Schedule(after time.Duration, tok quiz.Token) quiz.Handle {
	h := &tickHandle{}
	s.cmds = append(s.cmds, tea.Tick(after, func(time.Time) tea.Msg {
		if h.cancelled.Load() {
			return nil
		}
		return TimerMsg{Token: tok}
	}))
	return h
}

// Flush returns the pending tick commands as one command, or nil.
func (s *teaScheduler) Flush() tea.Cmd {
	cmds := s.cmds
	s.cmds = nil
	return tea.Batch(cmds...)
}
