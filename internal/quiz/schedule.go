package quiz

import (
	"context"
	"fmt"
	"time"
)

// TimerKind identifies what a delayed transition does when it fires.
type TimerKind int

const (
	TimerNone TimerKind = iota
	TimerNextRound
	TimerGameOver
)

// String returns a human-readable name for the timer kind.
func (k TimerKind) String() string {
	switch k {
	case TimerNextRound:
		return "next-round"
	case TimerGameOver:
		return "game-over"
	default:
		return "none"
	}
}

// Token identifies one scheduled transition. Seq is unique per Navigator, so
// a token from an earlier schedule never matches the current one.
type Token struct {
	Kind TimerKind
	Seq  uint64
}

// String implements fmt.Stringer.
func (t Token) String() string {
	return fmt.Sprintf("%s#%d", t.Kind, t.Seq)
}

// Handle cancels a scheduled transition.
type Handle interface {
	Cancel()
}

// Scheduler arranges for a token to be delivered back to the Navigator via
// Navigator.Expire once the delay has elapsed.
type Scheduler interface {
	Schedule(after time.Duration, tok Token) Handle
}

// BlockingScheduler holds at most one pending timer. The caller blocks on
// Wait and then hands the token to the Navigator, which suits a turn-based
// interface that has no input to service during the delay.
type BlockingScheduler struct {
	pending *blockingTimer
}

type blockingTimer struct {
	tok       Token
	after     time.Duration
	cancelled bool
}

func (t *blockingTimer) Cancel() {
	t.cancelled = true
}

// NewBlockingScheduler creates an empty blocking scheduler.
func NewBlockingScheduler() *BlockingScheduler {
	return &BlockingScheduler{}
}

// Schedule replaces any pending timer.
func (s *BlockingScheduler) Schedule(after time.Duration, tok Token) Handle {
	if s.pending != nil {
		s.pending.cancelled = true
	}
	s.pending = &blockingTimer{tok: tok, after: after}
	return s.pending
}

// Pending returns the token of the live pending timer, if any.
func (s *BlockingScheduler) Pending() (Token, bool) {
	if s.pending == nil || s.pending.cancelled {
		return Token{}, false
	}
	return s.pending.tok, true
}

// Wait sleeps for the pending timer's delay and returns its token. ok is
// false when nothing is pending or the timer was cancelled. The timer is
// consumed either way. A cancelled context aborts the wait with ctx.Err().
func (s *BlockingScheduler) Wait(ctx context.Context) (tok Token, ok bool, err error) {
	t := s.pending
	if t == nil {
		return Token{}, false, nil
	}
	s.pending = nil
	if t.cancelled {
		return Token{}, false, nil
	}

	if t.after > 0 {
		timer := time.NewTimer(t.after)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return Token{}, false, ctx.Err()
		case <-timer.C:
		}
	}

	if t.cancelled {
		return Token{}, false, nil
	}
	return t.tok, true, nil
}
