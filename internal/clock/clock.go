package clock

import (
	"context"
	"time"
)

// Clock supplies the current local time.
type Clock interface {
	Now() time.Time
}

// Real reads the host clock.
type Real struct{}

func (Real) Now() time.Time {
	return time.Now()
}

// Fixed always returns the same instant. Set may move it.
type Fixed struct {
	T time.Time
}

func (f *Fixed) Now() time.Time {
	return f.T
}

// Set moves the clock to t.
func (f *Fixed) Set(t time.Time) {
	f.T = t
}

// Advance moves the clock forward by d.
func (f *Fixed) Advance(d time.Duration) {
	f.T = f.T.Add(d)
}

// Run calls fn with the clock's time every interval until ctx is cancelled.
// fn is also called once immediately. The ticker is stopped before Run returns.
func Run(ctx context.Context, c Clock, interval time.Duration, fn func(time.Time)) error {
	if interval <= 0 {
		interval = time.Second
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	fn(c.Now())
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			fn(c.Now())
		}
	}
}
