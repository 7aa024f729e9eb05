package service

import (
	"sync"
	"time"
)

// Clock supplies the timestamps stamped onto created/updated fields.
// Implementations must be monotonically non-decreasing across calls within a
// process lifetime.
type Clock interface {
	Now() time.Time
}

type systemClock struct {
	mu   sync.Mutex
	last time.Time
}

// NewSystemClock returns a wall clock that never goes backwards: if the host
// clock steps back, the previous reading is returned until real time catches
// up.
func NewSystemClock() Clock {
	return &systemClock{}
}

func (c *systemClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := time.Now().UTC()
	if now.Before(c.last) {
		now = c.last
	}
	c.last = now
	return now
}
