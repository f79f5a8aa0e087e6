package sim

import (
	"sync"
	"time"
)

// Clock is a manually advanced TimeSource.
type Clock struct {
	lock sync.Mutex
	now  time.Time
}

// NewClock creates a Clock starting at t.
func NewClock(t time.Time) *Clock {
	return &Clock{now: t}
}

// Time implements TimeSource.
func (c *Clock) Time() time.Time {
	c.lock.Lock()
	defer c.lock.Unlock()
	return c.now
}

// Advance moves the clock forward, negative durations are ignored.
func (c *Clock) Advance(d time.Duration) time.Time {
	c.lock.Lock()
	defer c.lock.Unlock()
	if d > 0 {
		c.now = c.now.Add(d)
	}
	return c.now
}

// WallClock reads the system monotonic clock.
type WallClock struct{}

// Time implements TimeSource.
func (WallClock) Time() time.Time {
	return time.Now()
}
