package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/sims-navigation/backend/internal/api/handler"
	apimw "github.com/sims-navigation/backend/internal/api/middleware"
	"github.com/sims-navigation/backend/internal/config"
	"github.com/sims-navigation/backend/internal/metrics"
	"github.com/sims-navigation/backend/internal/ratelimiter"
)

// NewRouter wires the chi router, attaches all middleware, and registers
// every route. It is the single source of truth for the HTTP surface area.
func NewRouter(
	cfg *config.Config,
	reg prometheus.Gatherer,
	m *metrics.Metrics,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	// --- global middleware (applied to every route) ---
	r.Use(chimw.Recoverer)            // recover panics, return 500
	r.Use(chimw.RealIP)               // trust X-Forwarded-For / X-Real-IP
	r.Use(chimw.RequestSize(1 << 20)) // 1 MB max request body
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", apimw.CorrelationIDHeader},
		ExposedHeaders: []string{apimw.CorrelationIDHeader},
		MaxAge:         300,
	}))
	r.Use(apimw.CorrelationID)
	r.Use(apimw.RequestLogger(logger))

	onStart, onDone := m.HTTPHooks()
	r.Use(apimw.Metrics(apimw.MetricHooks{OnStart: onStart, OnDone: onDone}))

	// Set before any Mount so sub-routers inherit them.
	r.NotFound(handler.NotFound)
	r.MethodNotAllowed(handler.MethodNotAllowed)

	// --- handler instances ---
	hh := handler.NewHealthHandler()
	mh := handler.NewMetricsHandler(reg)

	// --- routes ---
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	r.Route("/api/v1", func(r chi.Router) {
		if cfg.RateLimitRPS > 0 {
			r.Use(apimw.RateLimit(ratelimiter.New(cfg.RateLimitRPS)))
		}

		r.Mount("/health", hh.Routes())

		// JSON snapshot of the request metrics
		r.Get("/metrics", mh.GetMetrics)
	})

	return r
}
