// Command healthcheck probes a running API's health endpoint and exits 0
// when it reports "api working", 1 otherwise. Suited to container
// HEALTHCHECK directives where no curl is available.
package main

import (
	"context"
	"os"

	"go.uber.org/zap"

	"github.com/sims-navigation/backend/internal/client"
	"github.com/sims-navigation/backend/internal/config"
	"github.com/sims-navigation/backend/internal/logging"
)

func main() {
	level := zap.NewAtomicLevel()
	logger := zap.Must(logging.New(level))

	code := run(logger, level)
	_ = logger.Sync()
	os.Exit(code)
}

// run performs one check and returns the process exit code.
func run(logger *zap.Logger, level zap.AtomicLevel) int {
	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", zap.Error(err))
		return 1
	}
	level.SetLevel(cfg.LogLevel)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.HealthCheckTimeout)
	defer cancel()

	url := cfg.APIBaseURL + client.HealthPath
	if err := client.New(cfg.APIBaseURL, cfg.HealthCheckTimeout).Check(ctx); err != nil {
		logger.Error("health check failed", zap.String("url", url), zap.Error(err))
		return 1
	}

	logger.Info("health check passed", zap.String("url", url))
	return 0
}
