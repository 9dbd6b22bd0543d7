package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func serve(t *testing.T, status int, body string) string {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv.URL
}

func TestRun(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantCode int
		wantLog  string
	}{
		{"healthy", http.StatusOK, `{"status":"api working"}`, 0, "health check passed"},
		{"wrong status value", http.StatusOK, `{"status":"degraded"}`, 1, "health check failed"},
		{"server error", http.StatusServiceUnavailable, `{"detail":"maintenance"}`, 1, "health check failed"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("LOG_LEVEL", "")
			t.Setenv("API_BASE_URL", serve(t, tc.status, tc.body))
			core, logs := observer.New(zapcore.DebugLevel)

			if got := run(zap.New(core), zap.NewAtomicLevel()); got != tc.wantCode {
				t.Fatalf("run() = %d, want %d", got, tc.wantCode)
			}
			if n := logs.FilterMessage(tc.wantLog).Len(); n != 1 {
				t.Fatalf("expected one %q log entry, got %d", tc.wantLog, n)
			}
		})
	}
}

func TestRun_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	t.Setenv("LOG_LEVEL", "")
	t.Setenv("API_BASE_URL", url)
	t.Setenv("HEALTHCHECK_TIMEOUT", "1s")

	if got := run(zap.NewNop(), zap.NewAtomicLevel()); got != 1 {
		t.Fatalf("run() = %d, want 1", got)
	}
}

func TestRun_BadConfig(t *testing.T) {
	t.Setenv("LOG_LEVEL", "loud")
	core, logs := observer.New(zapcore.DebugLevel)

	if got := run(zap.New(core), zap.NewAtomicLevel()); got != 1 {
		t.Fatalf("run() = %d, want 1", got)
	}
	if n := logs.FilterMessage("failed to load config").Len(); n != 1 {
		t.Fatalf("expected config failure to be logged, got %d entries", n)
	}
}

func TestRun_AppliesLogLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("API_BASE_URL", serve(t, http.StatusOK, `{"status":"api working"}`))
	level := zap.NewAtomicLevel()

	if got := run(zap.NewNop(), level); got != 0 {
		t.Fatalf("run() = %d, want 0", got)
	}
	if level.Level() != zapcore.ErrorLevel {
		t.Fatalf("level = %v, want error", level.Level())
	}
}
