package quiz

import (
	"fmt"
	"math"
	"math/rand"
	"slices"
	"time"

	"github.com/vovakirdan/geoquiz/internal/content"
)

// Round defaults.
const (
	DefaultCandidateCount = 5
	DefaultMaxTries       = 3
)

// Scoring constants. Points = floor((hintFactor*70 + timeFactor*30) * 10).
const (
	hintWeight  = 70.0
	timeWeight  = 30.0
	pointsScale = 10.0
	timeHorizon = 60 * time.Second
	MaxPoints   = 1000
)

// CountrySource is the part of the content store a round needs.
type CountrySource interface {
	CountryKeys() []string
	Hints(key string, lang content.Language) ([]string, error)
}

// OutcomeKind classifies the result of a guess.
type OutcomeKind int

const (
	OutcomeCorrect OutcomeKind = iota
	OutcomeIncorrectWithHint
	OutcomeIncorrectNoMoreHints
	OutcomeExhausted
)

// String returns a human-readable name for the outcome.
func (k OutcomeKind) String() string {
	switch k {
	case OutcomeCorrect:
		return "Correct"
	case OutcomeIncorrectWithHint:
		return "IncorrectWithHint"
	case OutcomeIncorrectNoMoreHints:
		return "IncorrectNoMoreHints"
	case OutcomeExhausted:
		return "Exhausted"
	default:
		return "Unknown"
	}
}

// Resolves reports whether the outcome ends the round.
func (k OutcomeKind) Resolves() bool {
	return k == OutcomeCorrect || k == OutcomeExhausted
}

// GuessOutcome is the result of one guess.
type GuessOutcome struct {
	Kind           OutcomeKind
	Guess          string
	Target         string        // Set on resolving outcomes
	Points         int           // Correct only
	Elapsed        time.Duration // Correct only
	HintIndex      int           // Hint cursor after the guess
	TriesRemaining int
}

// Round is the state of one guessing round.
type Round struct {
	target         string
	candidates     []string
	hints          []string
	hintIndex      int
	triesRemaining int
	startedAt      time.Time
	resolved       bool
	last           *GuessOutcome
}

// StartRound draws candidateCount distinct countries and picks the target
// from among them, so the target is always one of the options.
// candidateCount is clamped to the number of available countries; values
// below 1 use DefaultCandidateCount. maxTries below 1 uses DefaultMaxTries.
func StartRound(src CountrySource, lang content.Language, candidateCount, maxTries int, rng *rand.Rand, now time.Time) (*Round, error) {
	keys := src.CountryKeys()
	if len(keys) == 0 {
		return nil, ErrEmptyCandidatePool
	}

	if candidateCount < 1 {
		candidateCount = DefaultCandidateCount
	}
	if candidateCount > len(keys) {
		candidateCount = len(keys)
	}
	if maxTries < 1 {
		maxTries = DefaultMaxTries
	}

	// Sorted input keeps draws reproducible for a given seed
	slices.Sort(keys)
	rng.Shuffle(len(keys), func(i, j int) {
		keys[i], keys[j] = keys[j], keys[i]
	})
	candidates := keys[:candidateCount]
	target := candidates[rng.Intn(len(candidates))]

	hints, err := src.Hints(target, lang)
	if err != nil {
		return nil, err
	}
	if len(hints) == 0 {
		return nil, fmt.Errorf("%w: %s (%s)", ErrNoHints, target, lang)
	}

	return &Round{
		target:         target,
		candidates:     slices.Clone(candidates),
		hints:          hints,
		hintIndex:      0,
		triesRemaining: maxTries,
		startedAt:      now,
	}, nil
}

// SubmitGuess evaluates a guess at time now. A correct guess is checked
// first, so tries are only spent on wrong answers. The round is unchanged
// when an error is returned.
func (r *Round) SubmitGuess(key string, now time.Time) (GuessOutcome, error) {
	if r.resolved {
		return GuessOutcome{}, ErrRoundAlreadyResolved
	}
	if !slices.Contains(r.candidates, key) {
		return GuessOutcome{}, fmt.Errorf("%w: %q", ErrInvalidCandidate, key)
	}

	out := GuessOutcome{Guess: key}

	if key == r.target {
		out.Kind = OutcomeCorrect
		out.Elapsed = now.Sub(r.startedAt)
		out.Points = Points(len(r.hints), r.hintIndex, out.Elapsed)
		r.resolved = true
	} else {
		r.triesRemaining--
		switch {
		case r.triesRemaining <= 0:
			r.triesRemaining = 0
			out.Kind = OutcomeExhausted
			r.resolved = true
		case r.hintIndex < len(r.hints)-1:
			r.hintIndex++
			out.Kind = OutcomeIncorrectWithHint
		default:
			out.Kind = OutcomeIncorrectNoMoreHints
		}
	}

	if r.resolved {
		out.Target = r.target
	}
	out.HintIndex = r.hintIndex
	out.TriesRemaining = r.triesRemaining
	r.last = &out
	return out, nil
}

// Points computes the score for a correct guess made with the hint cursor at
// hintIndex out of maxHints hints, elapsed after the round started.
// The result is always in [0, MaxPoints].
func Points(maxHints, hintIndex int, elapsed time.Duration) int {
	if maxHints <= 0 {
		return 0
	}
	hintFactor := float64(maxHints-hintIndex) / float64(maxHints)
	timeFactor := math.Max(0, 1-elapsed.Seconds()/timeHorizon.Seconds())

	points := int(math.Floor((hintFactor*hintWeight + timeFactor*timeWeight) * pointsScale))
	if points < 0 {
		return 0
	}
	if points > MaxPoints {
		return MaxPoints
	}
	return points
}

// Target returns the key of the country to guess.
func (r *Round) Target() string {
	return r.target
}

// Candidates returns the candidate keys in presentation order.
func (r *Round) Candidates() []string {
	return slices.Clone(r.candidates)
}

// HintIndex returns the 0-based index of the most recently revealed hint.
func (r *Round) HintIndex() int {
	return r.hintIndex
}

// HintCount returns the number of hints for the target.
func (r *Round) HintCount() int {
	return len(r.hints)
}

// CurrentHint returns the text of the most recently revealed hint.
func (r *Round) CurrentHint() string {
	return r.hints[r.hintIndex]
}

// TriesRemaining returns how many wrong guesses are still allowed.
func (r *Round) TriesRemaining() int {
	return r.triesRemaining
}

// StartedAt returns when the round clock started.
func (r *Round) StartedAt() time.Time {
	return r.startedAt
}

// Resolved reports whether the round has a final outcome.
func (r *Round) Resolved() bool {
	return r.resolved
}

// LastOutcome returns the outcome of the most recent guess, if any.
func (r *Round) LastOutcome() (GuessOutcome, bool) {
	if r.last == nil {
		return GuessOutcome{}, false
	}
	return *r.last, true
}
