package quiz

import "time"

// Session accumulates results across the rounds of one game.
type Session struct {
	Score          int
	RoundsPlayed   int
	CorrectGuesses int
	TotalElapsed   time.Duration
	Terminated     bool
}

// NewSession returns a zeroed session.
func NewSession() *Session {
	return &Session{}
}

// Apply folds a guess outcome into the session. Only resolving outcomes
// change it.
func (s *Session) Apply(out GuessOutcome) {
	switch out.Kind {
	case OutcomeCorrect:
		s.Score += out.Points
		s.TotalElapsed += out.Elapsed
		s.RoundsPlayed++
		s.CorrectGuesses++
	case OutcomeExhausted:
		s.RoundsPlayed++
		s.Terminated = true
	}
}

// AverageTime returns the total elapsed time divided by rounds played.
// ok is false when no round has been played.
func (s *Session) AverageTime() (avg time.Duration, ok bool) {
	if s.RoundsPlayed == 0 {
		return 0, false
	}
	return s.TotalElapsed / time.Duration(s.RoundsPlayed), true
}
