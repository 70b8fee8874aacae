package alerter

import (
	"sync"
	"time"
)

// perSourceTimestamps bounds how many alert times are remembered per source.
const perSourceTimestamps = 10

// RateLimiter suppresses alert floods per source address. Each attempt is
// recorded; an alert is denied when more than max attempts from that source
// fall inside the trailing window.
type RateLimiter struct {
	mu      sync.Mutex
	window  time.Duration
	max     int
	history map[string][]time.Time
	now     func() time.Time
}

// NewRateLimiter creates a limiter allowing at most max alerts per source
// within each window.
func NewRateLimiter(window time.Duration, max int) *RateLimiter {
	return &RateLimiter{
		window:  window,
		max:     max,
		history: make(map[string][]time.Time),
		now:     time.Now,
	}
}

// Allow records an alert attempt from source and reports whether the alert
// may be emitted. The attempt itself counts against the window.
func (r *RateLimiter) Allow(source string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	times := append(r.history[source], now)
	if len(times) > perSourceTimestamps {
		times = times[len(times)-perSourceTimestamps:]
	}
	r.history[source] = times

	recent := 0
	for _, t := range times {
		if now.Sub(t) < r.window {
			recent++
		}
	}
	return recent <= r.max
}
