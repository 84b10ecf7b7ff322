package quiz

import (
	"errors"
	"time"
)

// ErrNoRound is returned when a round snapshot is requested before any round
// has started.
var ErrNoRound = errors.New("quiz: no round in progress")

// Option is one candidate as presented to the player.
type Option struct {
	Key  string
	Name string
	Flag string
}

// RoundSnapshot is the presentation view of the current round.
type RoundSnapshot struct {
	Candidates     []Option
	Hint           string
	HintNumber     int // 1-based
	HintCount      int
	TriesRemaining int
	MaxTries       int
	Resolved       bool
	Outcome        GuessOutcome
	HasOutcome     bool

	// Set once the round is resolved.
	TargetName string
	TargetFlag string
	Facts      []string
}

// SessionSnapshot is the presentation view of the session.
type SessionSnapshot struct {
	Score          int
	RoundsPlayed   int
	CorrectGuesses int
	TotalElapsed   time.Duration
	AverageTime    time.Duration
	HasAverage     bool
	Terminated     bool
}

// RoundSnapshot builds the view of the current round in the active language.
// Missing translations are returned as errors rather than papered over.
func (n *Navigator) RoundSnapshot() (RoundSnapshot, error) {
	r := n.round
	if r == nil {
		return RoundSnapshot{}, ErrNoRound
	}

	snap := RoundSnapshot{
		Hint:           r.CurrentHint(),
		HintNumber:     r.HintIndex() + 1,
		HintCount:      r.HintCount(),
		TriesRemaining: r.TriesRemaining(),
		MaxTries:       n.opts.MaxTries,
		Resolved:       r.Resolved(),
	}
	snap.Outcome, snap.HasOutcome = r.LastOutcome()

	for _, key := range r.Candidates() {
		opt, err := n.option(key)
		if err != nil {
			return RoundSnapshot{}, err
		}
		snap.Candidates = append(snap.Candidates, opt)
	}

	if r.Resolved() {
		target, err := n.option(r.Target())
		if err != nil {
			return RoundSnapshot{}, err
		}
		facts, err := n.store.Facts(r.Target(), n.lang)
		if err != nil {
			return RoundSnapshot{}, err
		}
		snap.TargetName = target.Name
		snap.TargetFlag = target.Flag
		snap.Facts = facts
	}
	return snap, nil
}

// SessionSnapshot returns the statistics of the current or most recent
// session. It is zero before the first game.
func (n *Navigator) SessionSnapshot() SessionSnapshot {
	s := n.session
	if s == nil {
		return SessionSnapshot{}
	}
	snap := SessionSnapshot{
		Score:          s.Score,
		RoundsPlayed:   s.RoundsPlayed,
		CorrectGuesses: s.CorrectGuesses,
		TotalElapsed:   s.TotalElapsed,
		Terminated:     s.Terminated,
	}
	snap.AverageTime, snap.HasAverage = s.AverageTime()
	return snap
}

func (n *Navigator) option(key string) (Option, error) {
	name, err := n.store.Name(key, n.lang)
	if err != nil {
		return Option{}, err
	}
	flag, err := n.store.Flag(key)
	if err != nil {
		return Option{}, err
	}
	return Option{Key: key, Name: name, Flag: flag}, nil
}
