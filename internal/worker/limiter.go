package worker

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"
)

// Limiter implements per-client rate limiting.
// Clients idle for longer than the idle TTL are forgotten.
type Limiter struct {
	clients      *gocache.Cache
	defaultRate  rate.Limit
	defaultBurst int
}

// NewLimiter creates a new rate limiter
func NewLimiter(requestsPerSecond float64, burst int, idleTTL time.Duration) *Limiter {
	if burst <= 0 {
		burst = 5
	}
	if idleTTL <= 0 {
		idleTTL = 10 * time.Minute
	}

	return &Limiter{
		clients:      gocache.New(idleTTL, idleTTL),
		defaultRate:  rate.Limit(requestsPerSecond),
		defaultBurst: burst,
	}
}

// Allow checks if a request from key is allowed without waiting
func (l *Limiter) Allow(key string) bool {
	return l.getLimiter(key).Allow()
}

// Clients returns the number of clients currently tracked
func (l *Limiter) Clients() int {
	return l.clients.ItemCount()
}

// getLimiter returns the token bucket for a client, creating it on first use
func (l *Limiter) getLimiter(key string) *rate.Limiter {
	if v, found := l.clients.Get(key); found {
		limiter := v.(*rate.Limiter)
		// touch so active clients never expire
		l.clients.SetDefault(key, limiter)
		return limiter
	}

	limiter := rate.NewLimiter(l.defaultRate, l.defaultBurst)
	if err := l.clients.Add(key, limiter, gocache.DefaultExpiration); err != nil {
		// Lost the race: another request created it first
		if v, found := l.clients.Get(key); found {
			return v.(*rate.Limiter)
		}
	}
	return limiter
}
