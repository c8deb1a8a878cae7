package testutil

import (
	"sync"
	"time"

	"github.com/thenoetrevino/todo/internal/models"
)

// BaseTime is where test clocks start
var BaseTime = time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC)

// FixedClock always returns at
func FixedClock(at time.Time) models.Clock {
	return func() time.Time {
		return at
	}
}

// StepClock returns a clock that starts at start and advances by step on every call
func StepClock(start time.Time, step time.Duration) models.Clock {
	var mu sync.Mutex
	next := start
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		now := next
		next = next.Add(step)
		return now
	}
}

// ManualClock is a clock tests move by hand
type ManualClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewManualClock returns a ManualClock reading at
func NewManualClock(at time.Time) *ManualClock {
	return &ManualClock{now: at}
}

// Now reads the clock
func (c *ManualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Set moves the clock to at, backwards included
func (c *ManualClock) Set(at time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = at
}

// Advance moves the clock forward by d
func (c *ManualClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}
