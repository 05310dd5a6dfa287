// Package gate throttles outbound calls to the remote style service with a
// minimum interval between accepted attempts.
package gate

import (
	"sync"
	"time"
)

// DefaultInterval is the minimum spacing between remote calls.
const DefaultInterval = 2000 * time.Millisecond

// Gate tracks the timestamp of the last accepted call. The clock source is
// injectable so tests can simulate time passage instead of sleeping.
type Gate struct {
	mu       sync.Mutex
	interval time.Duration
	now      func() time.Time
	lastCall time.Time
}

func New(interval time.Duration, now func() time.Time) *Gate {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if now == nil {
		now = time.Now
	}
	return &Gate{interval: interval, now: now}
}

// Allow reports whether a call may be dispatched. An accepted attempt
// records the call time; a rejected attempt returns the remaining wait and
// leaves the gate untouched.
func (g *Gate) Allow() (bool, time.Duration) {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now()
	if !g.lastCall.IsZero() {
		if elapsed := now.Sub(g.lastCall); elapsed < g.interval {
			return false, g.interval - elapsed
		}
	}
	g.lastCall = now
	return true, 0
}
