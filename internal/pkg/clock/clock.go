package clock

import "time"

// Clock stamps booking created_at/updated_at values.
type Clock interface {
	Now() time.Time
}

// SystemClock reports UTC wall time truncated to microseconds, the precision
// timestamptz keeps, so a stamped booking compares equal after a round trip.
type SystemClock struct{}

func NewRealClock() Clock {
	return SystemClock{}
}

func (SystemClock) Now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// FixedClock always reports the same instant until moved.
type FixedClock struct {
	at time.Time
}

func NewFixedClock(at time.Time) *FixedClock {
	return &FixedClock{at: at}
}

func (c *FixedClock) Now() time.Time {
	return c.at
}

func (c *FixedClock) Advance(d time.Duration) {
	c.at = c.at.Add(d)
}
