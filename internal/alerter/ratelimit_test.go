package alerter

import (
	"testing"
	"time"
)

func TestRateLimiterAllowsUpToMax(t *testing.T) {
	current := time.Date(2025, 11, 3, 10, 0, 0, 0, time.UTC)
	limiter := NewRateLimiter(60*time.Second, 5)
	limiter.now = func() time.Time { return current }

	// 1. The first five alerts within the window pass.
	for i := 0; i < 5; i++ {
		current = current.Add(time.Second)
		if !limiter.Allow("192.168.1.50") {
			t.Fatalf("alert %d should be allowed", i+1)
		}
	}

	// 2. The sixth alert inside the same window is suppressed.
	current = current.Add(time.Second)
	if limiter.Allow("192.168.1.50") {
		t.Error("sixth alert within the window should be suppressed")
	}
}

func TestRateLimiterWindowExpiry(t *testing.T) {
	current := time.Date(2025, 11, 3, 10, 0, 0, 0, time.UTC)
	limiter := NewRateLimiter(60*time.Second, 5)
	limiter.now = func() time.Time { return current }

	// 1. Exhaust the window.
	for i := 0; i < 6; i++ {
		limiter.Allow("10.0.0.7")
	}
	if limiter.Allow("10.0.0.7") {
		t.Fatal("source should be suppressed while the window is saturated")
	}

	// 2. Once the old attempts age out, alerts flow again.
	current = current.Add(61 * time.Second)
	if !limiter.Allow("10.0.0.7") {
		t.Error("alert should be allowed after the window expires")
	}
}

func TestRateLimiterSourcesIndependent(t *testing.T) {
	current := time.Date(2025, 11, 3, 10, 0, 0, 0, time.UTC)
	limiter := NewRateLimiter(60*time.Second, 2)
	limiter.now = func() time.Time { return current }

	for i := 0; i < 3; i++ {
		limiter.Allow("172.16.0.1")
	}
	if limiter.Allow("172.16.0.1") {
		t.Fatal("noisy source should be suppressed")
	}
	if !limiter.Allow("172.16.0.2") {
		t.Error("a quiet source must not inherit another source's suppression")
	}
}

func TestRateLimiterHistoryBounded(t *testing.T) {
	current := time.Date(2025, 11, 3, 10, 0, 0, 0, time.UTC)
	limiter := NewRateLimiter(60*time.Second, 5)
	limiter.now = func() time.Time { return current }

	for i := 0; i < 30; i++ {
		current = current.Add(time.Second)
		limiter.Allow("198.51.100.9")
	}

	if got := len(limiter.history["198.51.100.9"]); got != perSourceTimestamps {
		t.Errorf("history length = %d, want %d", got, perSourceTimestamps)
	}
}
