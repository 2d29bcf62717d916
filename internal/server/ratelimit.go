package server

import (
	"net/http"
	"os"
	"strconv"

	"golang.org/x/time/rate"

	"postcraft/internal/config"
)

// newLimiter creates a token bucket from config, with env overrides if present.
func newLimiter(cfg config.RateLimitConfig) *rate.Limiter {
	rps := cfg.RPS
	burst := cfg.Burst
	if v := os.Getenv("POSTCRAFT_RPS"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			rps = f
		}
	}
	if v := os.Getenv("POSTCRAFT_BURST"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			burst = n
		}
	}
	if rps <= 0 {
		rps = 20
	}
	if burst <= 0 {
		burst = 40
	}
	return rate.NewLimiter(rate.Limit(rps), burst)
}

func rateLimitMiddleware(l *rate.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !l.Allow() {
				w.Header().Set("Retry-After", "1")
				writeError(w, http.StatusTooManyRequests, "rate_limited", "too many requests", requestIDFromContext(r.Context()))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
