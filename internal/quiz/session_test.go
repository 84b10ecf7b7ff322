package quiz

import (
	"testing"
	"time"
)

func TestNewSession(t *testing.T) {
	s := NewSession()
	if s.Score != 0 || s.RoundsPlayed != 0 || s.CorrectGuesses != 0 || s.TotalElapsed != 0 || s.Terminated {
		t.Errorf("NewSession() = %+v, expected zero values", *s)
	}
	if _, ok := s.AverageTime(); ok {
		t.Error("AverageTime() should be undefined with no rounds played")
	}
}

func TestSessionApply(t *testing.T) {
	s := NewSession()

	s.Apply(GuessOutcome{Kind: OutcomeIncorrectWithHint})
	s.Apply(GuessOutcome{Kind: OutcomeIncorrectNoMoreHints})
	if s.RoundsPlayed != 0 {
		t.Errorf("RoundsPlayed = %d after unresolved outcomes, expected 0", s.RoundsPlayed)
	}

	s.Apply(GuessOutcome{Kind: OutcomeCorrect, Points: 483, Elapsed: 10 * time.Second})
	s.Apply(GuessOutcome{Kind: OutcomeCorrect, Points: 900, Elapsed: 4 * time.Second})
	if s.Score != 1383 {
		t.Errorf("Score = %d, expected 1383", s.Score)
	}
	if s.RoundsPlayed != 2 || s.CorrectGuesses != 2 {
		t.Errorf("RoundsPlayed = %d, CorrectGuesses = %d, expected 2 and 2", s.RoundsPlayed, s.CorrectGuesses)
	}
	if s.Terminated {
		t.Error("session should not be terminated after correct guesses")
	}

	s.Apply(GuessOutcome{Kind: OutcomeExhausted, Points: 999, Elapsed: time.Minute})
	if s.Score != 1383 {
		t.Errorf("Score = %d after exhaustion, expected 1383", s.Score)
	}
	if s.RoundsPlayed != 3 {
		t.Errorf("RoundsPlayed = %d, expected 3", s.RoundsPlayed)
	}
	if s.CorrectGuesses != 2 {
		t.Errorf("CorrectGuesses = %d, expected 2", s.CorrectGuesses)
	}
	if s.TotalElapsed != 14*time.Second {
		t.Errorf("TotalElapsed = %v, expected 14s", s.TotalElapsed)
	}
	if !s.Terminated {
		t.Error("session should be terminated after exhaustion")
	}
}

func TestSessionAverageTime(t *testing.T) {
	s := NewSession()
	s.Apply(GuessOutcome{Kind: OutcomeCorrect, Elapsed: 10 * time.Second})
	s.Apply(GuessOutcome{Kind: OutcomeCorrect, Elapsed: 20 * time.Second})

	avg, ok := s.AverageTime()
	if !ok || avg != 15*time.Second {
		t.Errorf("AverageTime() = %v, %v, expected 15s, true", avg, ok)
	}

	// Exhausted rounds count towards the divisor
	s.Apply(GuessOutcome{Kind: OutcomeExhausted})
	avg, ok = s.AverageTime()
	if !ok || avg != 10*time.Second {
		t.Errorf("AverageTime() = %v, %v, expected 10s, true", avg, ok)
	}
}
