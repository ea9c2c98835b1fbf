package life

import "time"

// DefaultInterval is the evolution period used when none is configured.
const DefaultInterval = 200 * time.Millisecond

// Timer is a repeating countdown advanced by frame deltas.
type Timer struct {
	interval time.Duration
	elapsed  time.Duration
}

// NewTimer constructs a Timer firing every interval.
func NewTimer(interval time.Duration) *Timer {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Timer{interval: interval}
}

// Interval returns the configured period.
func (t *Timer) Interval() time.Duration {
	return t.interval
}

// Elapsed returns the time accumulated since the last firing.
func (t *Timer) Elapsed() time.Duration {
	return t.elapsed
}

// Advance adds delta and reports whether the interval elapsed. It fires at
// most once per call; whole intervals beyond the first are dropped and only
// the remainder is carried over.
func (t *Timer) Advance(delta time.Duration) bool {
	if delta > 0 {
		t.elapsed += delta
	}
	if t.elapsed < t.interval {
		return false
	}
	t.elapsed %= t.interval
	return true
}

// Reset clears the accumulated time.
func (t *Timer) Reset() {
	t.elapsed = 0
}
