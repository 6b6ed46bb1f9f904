package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"

	"artgraph-backend/pkg/common"
)

// rateBucket tracks remaining tokens for one client.
type rateBucket struct {
	tokens     float64
	lastRefill time.Time
}

// RateLimiter is a token bucket limiter keyed by client IP. A zero
// per-minute limit disables it.
type RateLimiter struct {
	mu        sync.Mutex
	buckets   map[string]*rateBucket
	perMinute int
	logger    *zap.Logger
}

// NewRateLimiter creates a limiter allowing perMinute requests per
// client, with bursts up to the same amount.
func NewRateLimiter(perMinute int, logger *zap.Logger) *RateLimiter {
	rl := &RateLimiter{
		buckets:   make(map[string]*rateBucket),
		perMinute: perMinute,
		logger:    logger,
	}
	if perMinute > 0 {
		go rl.evictStale()
	}
	return rl
}

func (rl *RateLimiter) allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	b, ok := rl.buckets[key]
	if !ok {
		b = &rateBucket{tokens: float64(rl.perMinute), lastRefill: now}
		rl.buckets[key] = b
	}

	refill := now.Sub(b.lastRefill).Minutes() * float64(rl.perMinute)
	b.tokens += refill
	if b.tokens > float64(rl.perMinute) {
		b.tokens = float64(rl.perMinute)
	}
	b.lastRefill = now

	if b.tokens < 1 {
		return false
	}
	b.tokens--
	return true
}

// evictStale drops buckets idle for over an hour so the map does not
// grow with one entry per client ever seen.
func (rl *RateLimiter) evictStale() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()
	for range ticker.C {
		cutoff := time.Now().Add(-time.Hour)
		rl.mu.Lock()
		for key, b := range rl.buckets {
			if b.lastRefill.Before(cutoff) {
				delete(rl.buckets, key)
			}
		}
		rl.mu.Unlock()
	}
}

// Handler rejects over-limit requests with 429 inside the wire envelope.
func (rl *RateLimiter) Handler(next http.Handler) http.Handler {
	if rl.perMinute <= 0 {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := clientKey(r)
		if !rl.allow(key) {
			rl.logger.Warn("rate limit exceeded",
				zap.String("client", key),
				zap.String("path", r.URL.Path),
			)
			common.RespondError(w, http.StatusTooManyRequests, "Too many requests")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// clientKey is the remote IP. RealIP middleware has already resolved
// proxy headers into RemoteAddr by the time this runs.
func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
