package retry

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestBackoffGrowsAndCaps(t *testing.T) {
	prev := Backoff(0)
	if prev < initialDelay {
		t.Errorf("attempt 0: expected at least %v, got %v", initialDelay, prev)
	}

	for attempt := uint(1); attempt < 6; attempt++ {
		d := Backoff(attempt)
		if d <= prev-maxRandDelay {
			t.Errorf("attempt %d: expected growth over %v, got %v", attempt, prev, d)
		}
		prev = d
	}

	// Large attempts, including shift overflows, stay capped.
	for _, attempt := range []uint{10, 30, 63, 100} {
		if d := Backoff(attempt); d > maxDelay+maxRandDelay {
			t.Errorf("attempt %d: expected cap %v, got %v", attempt, maxDelay, d)
		}
	}
}

func TestDoSucceedsFirstTry(t *testing.T) {
	calls := 0
	err := Do(context.Background(), 3, func() error {
		calls++
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if calls != 1 {
		t.Errorf("expected 1 call, got %d", calls)
	}
}

func TestDoRetriesUntilSuccess(t *testing.T) {
	calls := 0
	err := Do(context.Background(), 3, func() error {
		calls++
		if calls < 2 {
			return errors.New("not yet")
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if calls != 2 {
		t.Errorf("expected 2 calls, got %d", calls)
	}
}

func TestDoReturnsLastError(t *testing.T) {
	want := errors.New("still broken")
	calls := 0
	err := Do(context.Background(), 2, func() error {
		calls++
		return want
	})
	if !errors.Is(err, want) {
		t.Errorf("expected %v, got %v", want, err)
	}
	if calls != 2 {
		t.Errorf("expected 2 calls, got %d", calls)
	}
}

func TestDoStopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Do(ctx, 5, func() error {
		return errors.New("fail")
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestDoZeroAttempts(t *testing.T) {
	if err := Do(context.Background(), 0, func() error {
		t.Fatal("fn must not run")
		return nil
	}); err != nil {
		t.Errorf("expected nil, got %v", err)
	}

	// Guard against the whole suite stalling on a backoff regression.
	if maxDelay > time.Minute {
		t.Error("cap moved past a minute")
	}
}
