package ratelimiter

import (
	"encoding/json"
	"net/http"

	"golang.org/x/time/rate"
)

// Limiter is a single server-wide token bucket.
// Burst is set equal to the rate so no extra burst capacity is allowed
// beyond the configured per-second maximum.
type Limiter struct {
	l *rate.Limiter
}

// New creates a Limiter allowing ratePerSec requests per second.
// A non-positive rate disables limiting.
func New(ratePerSec int) *Limiter {
	if ratePerSec <= 0 {
		return &Limiter{l: rate.NewLimiter(rate.Inf, 0)}
	}
	return &Limiter{l: rate.NewLimiter(rate.Limit(ratePerSec), ratePerSec)}
}

// Allow reports whether a request may proceed now, consuming a token if so.
func (lim *Limiter) Allow() bool {
	return lim.l.Allow()
}

// Middleware rejects requests with 429 once the bucket is empty.
func (lim *Limiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !lim.Allow() {
			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("Retry-After", "1")
			w.WriteHeader(http.StatusTooManyRequests)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "rate limit exceeded"})
			return
		}
		next.ServeHTTP(w, r)
	})
}
