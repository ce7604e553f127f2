package session

import (
	"math"
	"time"
)

// Clock counts a match down to zero.
// Remaining time is kept in seconds and never goes below zero.
type Clock struct {
	remaining float64
	running   bool
	expired   bool
}

// NewClock creates a stopped clock holding the given duration
func NewClock(durationSeconds float64) *Clock {
	return &Clock{remaining: math.Max(durationSeconds, 0)}
}

// Start resets the clock to durationSeconds and begins running
func (c *Clock) Start(durationSeconds float64) {
	c.remaining = math.Max(durationSeconds, 0)
	c.expired = false
	c.running = true
}

// Pause stops time from advancing
func (c *Clock) Pause() {
	c.running = false
}

// Resume lets time advance again. An expired clock stays stopped.
func (c *Clock) Resume() {
	if !c.expired {
		c.running = true
	}
}

// Advance moves the clock forward by dt seconds.
// It returns expired == true only on the call that brings the clock to zero.
func (c *Clock) Advance(dt float64) (expired bool, err error) {
	if dt < 0 {
		return false, ErrNegativeDelta
	}
	if !c.running {
		return false, nil
	}

	c.remaining -= dt
	if c.remaining > 0 {
		return false, nil
	}

	c.remaining = 0
	c.running = false
	c.expired = true
	return true, nil
}

// Running reports whether time is advancing
func (c *Clock) Running() bool {
	return c.running
}

// Expired reports whether the clock has reached zero
func (c *Clock) Expired() bool {
	return c.expired
}

// Seconds returns the remaining time in seconds
func (c *Clock) Seconds() float64 {
	return c.remaining
}

// Remaining returns the remaining time as a duration
func (c *Clock) Remaining() time.Duration {
	return time.Duration(c.remaining * float64(time.Second))
}
