package worker

import (
	"testing"
	"time"
)

func TestLimiter_New(t *testing.T) {
	limiter := NewLimiter(10, 5, time.Minute)
	if limiter.defaultBurst != 5 {
		t.Errorf("expected burst 5, got %d", limiter.defaultBurst)
	}

	l2 := NewLimiter(10, -1, 0)
	if l2.defaultBurst != 5 {
		t.Errorf("expected default burst 5 for negative input, got %d", l2.defaultBurst)
	}
}

func TestLimiter_RateLimit(t *testing.T) {
	// 1 rps, burst 1
	limiter := NewLimiter(1, 1, time.Minute)
	key := "10.0.0.1"

	if !limiter.Allow(key) {
		t.Errorf("first request should pass")
	}

	// burst 1 means the token is consumed
	if limiter.Allow(key) {
		t.Errorf("expected allow to fail (exhausted tokens)")
	}

	// Different client should be allowed
	if !limiter.Allow("10.0.0.2") {
		t.Errorf("expected allow for other client")
	}

	if got := limiter.Clients(); got != 2 {
		t.Errorf("expected 2 tracked clients, got %d", got)
	}
}

func TestLimiter_IdleClientsForgotten(t *testing.T) {
	limiter := NewLimiter(1, 1, 20*time.Millisecond)
	key := "10.0.0.1"

	if !limiter.Allow(key) {
		t.Fatal("first request should pass")
	}
	if limiter.Allow(key) {
		t.Fatal("second request should be limited")
	}

	time.Sleep(50 * time.Millisecond)

	// Expired entry means a fresh bucket with a full burst
	if !limiter.Allow(key) {
		t.Error("expected idle client to start with a fresh bucket")
	}
}
