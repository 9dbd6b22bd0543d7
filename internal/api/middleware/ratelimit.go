package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/sims-navigation/backend/internal/domain"
)

// Allower decides whether a request may proceed right now.
type Allower interface {
	Allow() bool
}

// RateLimit rejects requests with 429 once limiter runs out of tokens.
func RateLimit(limiter Allower) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				w.Header().Set("Content-Type", "application/json")
				w.Header().Set("Retry-After", "1")
				w.WriteHeader(http.StatusTooManyRequests)
				_ = json.NewEncoder(w).Encode(map[string]string{"detail": domain.ErrRateLimited.Error()})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
