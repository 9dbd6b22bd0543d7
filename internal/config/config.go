package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap/zapcore"

	"github.com/sims-navigation/backend/internal/domain"
)

// Config holds all runtime configuration loaded from environment variables.
// Every field has a default; nothing is required.
type Config struct {
	// Server
	HTTPPort        string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration

	LogLevel zapcore.Level

	// Origins allowed to call the API from a browser.
	CORSAllowedOrigins []string

	// Requests per second accepted under /api/v1; 0 disables limiting.
	RateLimitRPS int

	// Health probe
	APIBaseURL         string
	HealthCheckTimeout time.Duration
}

func Load() (*Config, error) {
	level, err := zapcore.ParseLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidLogLevel, err)
	}

	baseURL := strings.TrimRight(getEnv("API_BASE_URL", "http://localhost:8000"), "/")
	if u, err := url.Parse(baseURL); err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidAPIBaseURL, baseURL)
	}

	rps := getInt("RATE_LIMIT_RPS", 0)
	if rps < 0 {
		rps = 0
	}

	return &Config{
		HTTPPort:        getEnv("HTTP_PORT", "8000"),
		ReadTimeout:     getDuration("READ_TIMEOUT", 5*time.Second),
		WriteTimeout:    getDuration("WRITE_TIMEOUT", 10*time.Second),
		ShutdownTimeout: getDuration("SHUTDOWN_TIMEOUT", 30*time.Second),

		LogLevel: level,

		CORSAllowedOrigins: getList("CORS_ALLOWED_ORIGINS", []string{"*"}),

		RateLimitRPS: rps,

		APIBaseURL:         baseURL,
		HealthCheckTimeout: getDuration("HEALTHCHECK_TIMEOUT", 3*time.Second),
	}, nil
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return defaultVal
}

func getDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultVal
}

// getList splits a comma-separated value, dropping empty entries.
func getList(key string, defaultVal []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	var out []string
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return defaultVal
	}
	return out
}
