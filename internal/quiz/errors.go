// Package quiz implements the country-guessing session engine: rounds with
// hint progression and limited tries, the cumulative session score, and the
// screen state machine that presentation layers drive.
//
// The package performs no I/O. Randomness, time and delayed transitions are
// injected so both a blocking text interface and an event-driven TUI can run
// the same state machine.
package quiz

import "errors"

var (
	// ErrInvalidCandidate is returned when a guess names a country that is not
	// among the round's candidates.
	ErrInvalidCandidate = errors.New("quiz: guess is not a candidate")

	// ErrRoundAlreadyResolved is returned when a guess arrives after the round
	// was won or its tries ran out.
	ErrRoundAlreadyResolved = errors.New("quiz: round already resolved")

	// ErrEmptyCandidatePool is returned when no countries are available.
	ErrEmptyCandidatePool = errors.New("quiz: no countries available")

	// ErrNoHints is returned when the target country has no hints.
	ErrNoHints = errors.New("quiz: country has no hints")

	// ErrInvalidTransition is returned when an event is not accepted by the
	// current screen.
	ErrInvalidTransition = errors.New("quiz: event not valid on this screen")
)
