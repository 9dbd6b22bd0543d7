package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// unmatchedRoute labels requests chi could not route, keeping label
// cardinality bounded regardless of what paths clients probe.
const unmatchedRoute = "unmatched"

// MetricHooks are the callbacks Metrics reports through. Either may be nil.
type MetricHooks struct {
	OnStart func()
	OnDone  func(method, route string, status int, latency time.Duration)
}

// Metrics reports every request to hooks, labelled with the chi route
// pattern rather than the raw path.
func Metrics(hooks MetricHooks) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			if hooks.OnStart != nil {
				hooks.OnStart()
			}

			// Deferred so a panicking handler is still counted and in-flight
			// drops back before the panic reaches Recoverer.
			completed := false
			defer func() {
				if hooks.OnDone == nil {
					return
				}
				status := statusOf(ww)
				if !completed && ww.Status() == 0 {
					status = http.StatusInternalServerError
				}
				hooks.OnDone(r.Method, routeOf(r), status, time.Since(start))
			}()

			next.ServeHTTP(ww, r)
			completed = true
		})
	}
}

func routeOf(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if p := rctx.RoutePattern(); p != "" {
			return p
		}
	}
	return unmatchedRoute
}
