package middleware

import (
	"encoding/json"
	"math"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"
)

// bucket is a token bucket refilled continuously.
type bucket struct {
	tokens float64
	last   time.Time
}

// RateLimiter keeps one bucket per key. Buckets that refilled completely and
// stayed unused for idleAfter are swept on the next Allow.
type RateLimiter struct {
	mu        sync.Mutex
	buckets   map[string]*bucket
	capacity  float64
	refill    float64 // tokens per second
	idleAfter time.Duration
	lastSweep time.Time
	now       func() time.Time
}

func NewRateLimiter(capacity, refillRate int) *RateLimiter {
	return &RateLimiter{
		buckets:   make(map[string]*bucket),
		capacity:  float64(capacity),
		refill:    float64(refillRate),
		idleAfter: 10 * time.Minute,
		lastSweep: time.Now(),
		now:       time.Now,
	}
}

// Allow takes a token for key. When none is left it returns how long until
// the next one.
func (rl *RateLimiter) Allow(key string) (bool, time.Duration) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	if now.Sub(rl.lastSweep) > rl.idleAfter {
		rl.sweep(now)
	}

	b, ok := rl.buckets[key]
	if !ok {
		b = &bucket{tokens: rl.capacity, last: now}
		rl.buckets[key] = b
	}
	b.tokens = math.Min(rl.capacity, b.tokens+now.Sub(b.last).Seconds()*rl.refill)
	b.last = now

	if b.tokens >= 1 {
		b.tokens--
		return true, 0
	}
	if rl.refill <= 0 {
		return false, time.Minute
	}
	wait := time.Duration((1 - b.tokens) / rl.refill * float64(time.Second))
	return false, wait
}

func (rl *RateLimiter) sweep(now time.Time) {
	for key, b := range rl.buckets {
		if now.Sub(b.last) > rl.idleAfter {
			delete(rl.buckets, key)
		}
	}
	rl.lastSweep = now
}

// clientIP strips the port from RemoteAddr (RealIP has already run).
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// limitKey buckets session traffic per session, so progress polling of one
// session cannot starve another behind the same address. Everything else is
// keyed by client + IP.
func limitKey(r *http.Request) string {
	if rest, ok := strings.CutPrefix(r.URL.Path, "/v1/sessions/"); ok {
		id, _, _ := strings.Cut(rest, "/")
		if id != "" {
			return "session:" + id
		}
	}
	return GetClientFromContext(r.Context()) + ":" + clientIP(r)
}

// RateLimitMiddleware limits requests per key.
// capacity: burst size; refillRate: tokens per second.
func RateLimitMiddleware(capacity, refillRate int) func(http.Handler) http.Handler {
	limiter := NewRateLimiter(capacity, refillRate)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isProbe(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			ok, wait := limiter.Allow(limitKey(r))
			if !ok {
				secs := int(math.Ceil(wait.Seconds()))
				if secs < 1 {
					secs = 1
				}
				w.Header().Set("Retry-After", strconv.Itoa(secs))
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				_ = json.NewEncoder(w).Encode(map[string]any{
					"error":        "rate limit exceeded",
					"notification": map[string]string{"message": "Too many requests. Please wait a moment and try again.", "type": "warning"},
				})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
