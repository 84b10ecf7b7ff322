package quiz

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestBlockingSchedulerWait(t *testing.T) {
	s := NewBlockingScheduler()

	if _, ok, err := s.Wait(context.Background()); ok || err != nil {
		t.Errorf("Wait() with nothing pending = %v, %v", ok, err)
	}

	tok := Token{Kind: TimerNextRound, Seq: 1}
	s.Schedule(time.Millisecond, tok)
	if p, ok := s.Pending(); !ok || p != tok {
		t.Errorf("Pending() = %v, %v, expected %v", p, ok, tok)
	}

	got, ok, err := s.Wait(context.Background())
	if err != nil || !ok || got != tok {
		t.Errorf("Wait() = %v, %v, %v, expected %v", got, ok, err, tok)
	}
	if _, ok := s.Pending(); ok {
		t.Error("Wait() should consume the pending timer")
	}
}

func TestBlockingSchedulerCancel(t *testing.T) {
	s := NewBlockingScheduler()
	h := s.Schedule(time.Hour, Token{Kind: TimerGameOver, Seq: 1})
	h.Cancel()

	if _, ok := s.Pending(); ok {
		t.Error("Pending() should be false after Cancel")
	}
	// A cancelled timer returns immediately
	if _, ok, err := s.Wait(context.Background()); ok || err != nil {
		t.Errorf("Wait() after Cancel = %v, %v", ok, err)
	}
}

func TestBlockingSchedulerReplace(t *testing.T) {
	s := NewBlockingScheduler()
	first := s.Schedule(time.Hour, Token{Kind: TimerNextRound, Seq: 1})
	second := Token{Kind: TimerGameOver, Seq: 2}
	s.Schedule(0, second)

	got, ok, err := s.Wait(context.Background())
	if err != nil || !ok || got != second {
		t.Errorf("Wait() = %v, %v, %v, expected %v", got, ok, err, second)
	}
	if !first.(*blockingTimer).cancelled {
		t.Error("replaced timer should be cancelled")
	}
}

func TestBlockingSchedulerContext(t *testing.T) {
	s := NewBlockingScheduler()
	s.Schedule(time.Hour, Token{Kind: TimerNextRound, Seq: 1})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, ok, err := s.Wait(ctx)
	if ok || !errors.Is(err, context.Canceled) {
		t.Errorf("Wait(cancelled ctx) = %v, %v, expected context.Canceled", ok, err)
	}
}

func TestTokenString(t *testing.T) {
	tok := Token{Kind: TimerGameOver, Seq: 4}
	if tok.String() != "game-over#4" {
		t.Errorf("String() = %q, expected %q", tok.String(), "game-over#4")
	}
}
