// Package moderation implements the banned-term filter and its cooldown gate.
package moderation

import (
	"sync"
	"time"
)

// Clock tracks the last warning time per channel. Check and update happen
// under one lock so two near-simultaneous messages in the same channel can
// never both win the cooldown window.
type Clock struct {
	mu   sync.Mutex
	last map[string]time.Time
}

// NewClock creates an empty cooldown clock
func NewClock() *Clock {
	return &Clock{
		last: make(map[string]time.Time),
	}
}

// TryAcquire reports whether a warning may fire in the channel at the given
// time, and records the warning time when it may. Blocked while the elapsed
// time since the last warning is shorter than the cooldown.
func (c *Clock) TryAcquire(channelID string, cooldown time.Duration, now time.Time) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if last, ok := c.last[channelID]; ok && now.Sub(last) < cooldown {
		return false
	}

	c.last[channelID] = now
	return true
}

// Last returns the recorded last-warning time for a channel
func (c *Clock) Last(channelID string) (time.Time, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	t, ok := c.last[channelID]
	return t, ok
}
