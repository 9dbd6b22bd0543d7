package domain

import "errors"

// Sentinel errors used throughout the application.
// Handlers translate these to HTTP status codes via respondError; the health
// client wraps them so callers can match with errors.Is.
var (
	ErrAPI               = errors.New("api error")
	ErrUnhealthy         = errors.New("api reported an unexpected status")
	ErrRateLimited       = errors.New("rate limit exceeded")
	ErrInvalidLogLevel   = errors.New("invalid log level")
	ErrInvalidAPIBaseURL = errors.New("api base url must be an absolute http(s) url")
)
