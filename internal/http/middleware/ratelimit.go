package middleware

import (
	"net/http"
	"sync"
	"time"
)

// Bucket eviction cadence. A form submitter that has been idle for longer
// than idleEviction has long since refilled to a full burst, so dropping the
// entry loses nothing.
const (
	evictionInterval = 5 * time.Minute
	idleEviction     = 10 * time.Minute
)

// RateLimiter throttles clients per IP with a token bucket: burst tokens up
// front, refilled continuously at rate tokens per second.
type RateLimiter struct {
	mu      sync.Mutex
	buckets map[string]*bucket
	rate    float64
	burst   float64
}

type bucket struct {
	tokens   float64
	lastSeen time.Time
}

// NewRateLimiter creates a rate limiter allowing rate requests/sec with the
// given burst size per IP.
func NewRateLimiter(rate float64, burst int) *RateLimiter {
	rl := &RateLimiter{
		buckets: make(map[string]*bucket),
		rate:    rate,
		burst:   float64(burst),
	}
	go rl.evictIdle()
	return rl
}

// Allow reports whether a request from ip fits the limit, spending one token
// when it does.
func (rl *RateLimiter) Allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	b, ok := rl.buckets[ip]
	if !ok {
		b = &bucket{tokens: rl.burst, lastSeen: now}
		rl.buckets[ip] = b
	}

	b.tokens += now.Sub(b.lastSeen).Seconds() * rl.rate
	if b.tokens > rl.burst {
		b.tokens = rl.burst
	}
	b.lastSeen = now

	if b.tokens < 1 {
		return false
	}
	b.tokens--
	return true
}

func (rl *RateLimiter) evictIdle() {
	ticker := time.NewTicker(evictionInterval)
	defer ticker.Stop()
	for range ticker.C {
		cutoff := time.Now().Add(-idleEviction)
		rl.mu.Lock()
		for ip, b := range rl.buckets {
			if b.lastSeen.Before(cutoff) {
				delete(rl.buckets, ip)
			}
		}
		rl.mu.Unlock()
	}
}

// RateLimit returns an HTTP middleware that answers 429 Too Many Requests
// once a client exceeds the configured rate.
func RateLimit(rate float64, burst int) func(http.Handler) http.Handler {
	limiter := NewRateLimiter(rate, burst)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// chi's RealIP middleware has already resolved the client address
			// into X-Real-Ip when the service sits behind a proxy.
			ip := r.Header.Get("X-Real-Ip")
			if ip == "" {
				ip = r.RemoteAddr
			}
			if !limiter.Allow(ip) {
				http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
