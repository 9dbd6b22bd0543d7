package ratelimiter

import (
	"golang.org/x/time/rate"
)

// Limiter is a process-wide token bucket for API requests.
// Burst is set equal to the rate so no extra burst capacity is allowed
// beyond the configured per-second maximum.
type Limiter struct {
	limiter *rate.Limiter
}

// New creates a Limiter admitting ratePerSec requests per second.
func New(ratePerSec int) *Limiter {
	return &Limiter{
		limiter: rate.NewLimiter(rate.Limit(ratePerSec), ratePerSec),
	}
}

// Allow reports whether a request may proceed now. It never blocks.
func (l *Limiter) Allow() bool {
	return l.limiter.Allow()
}
