// File: terminal/hold.go
package terminal

import (
	"sort"
	"time"
)

// HoldTracker emulates key releases. Terminals report presses and auto-repeats only,
// so a key counts as held until no repeat arrives within the timeout.
type HoldTracker struct {
	timeout time.Duration
	held    map[string]time.Time
}

func NewHoldTracker(timeout time.Duration) *HoldTracker {
	if timeout <= 0 {
		timeout = DefaultHoldTimeout
	}
	return &HoldTracker{timeout: timeout, held: make(map[string]time.Time)}
}

// DefaultHoldTimeout covers the usual auto-repeat interval of terminals.
const DefaultHoldTimeout = 180 * time.Millisecond

// Press refreshes key and reports whether it was not held before.
func (h *HoldTracker) Press(key string, now time.Time) bool {
	_, wasHeld := h.held[key]
	h.held[key] = now
	return !wasHeld
}

// Expired forgets and returns, sorted, every key whose last press is older than the timeout.
func (h *HoldTracker) Expired(now time.Time) []string {
	var released []string
	for key, last := range h.held {
		if now.Sub(last) >= h.timeout {
			released = append(released, key)
		}
	}
	for _, key := range released {
		delete(h.held, key)
	}
	sort.Strings(released)
	return released
}

// ReleaseAll forgets and returns every held key.
func (h *HoldTracker) ReleaseAll() []string {
	released := make([]string, 0, len(h.held))
	for key := range h.held {
		released = append(released, key)
	}
	h.held = make(map[string]time.Time)
	sort.Strings(released)
	return released
}

func (h *HoldTracker) Held() int { return len(h.held) }
