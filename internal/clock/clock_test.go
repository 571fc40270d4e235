package clock

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestFixed(t *testing.T) {
	start := time.Date(2025, 1, 1, 7, 0, 0, 0, time.UTC)
	c := &Fixed{T: start}

	if !c.Now().Equal(start) {
		t.Errorf("Now() = %v, want %v", c.Now(), start)
	}

	c.Advance(90 * time.Minute)
	if want := start.Add(90 * time.Minute); !c.Now().Equal(want) {
		t.Errorf("after Advance Now() = %v, want %v", c.Now(), want)
	}

	c.Set(start)
	if !c.Now().Equal(start) {
		t.Errorf("after Set Now() = %v, want %v", c.Now(), start)
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	calls := make(chan time.Time, 16)

	done := make(chan error, 1)
	go func() {
		done <- Run(ctx, Real{}, 5*time.Millisecond, func(now time.Time) {
			select {
			case calls <- now:
			default:
			}
		})
	}()

	// immediate call plus at least one tick
	for i := 0; i < 2; i++ {
		select {
		case <-calls:
		case <-time.After(2 * time.Second):
			t.Fatal("timed out waiting for tick")
		}
	}

	cancel()
	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Run() error = %v, want context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestRunAlreadyCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	n := 0
	err := Run(ctx, &Fixed{}, time.Hour, func(time.Time) { n++ })
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, want context.Canceled", err)
	}
	if n != 1 {
		t.Errorf("fn called %d times, want 1", n)
	}
}
