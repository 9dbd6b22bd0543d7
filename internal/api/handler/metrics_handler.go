package handler

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// MetricsHandler serves a human-readable JSON snapshot of request traffic.
// Raw Prometheus metrics (counters, histograms) are available at /metrics
// via promhttp and are separate from this endpoint.
type MetricsHandler struct {
	g prometheus.Gatherer
}

func NewMetricsHandler(g prometheus.Gatherer) *MetricsHandler {
	return &MetricsHandler{g: g}
}

// GetMetrics handles GET /api/v1/metrics
//
// @Summary  Request counts by route and status
// @Tags     metrics
// @Produce  json
// @Success  200  {object}  map[string]any
// @Failure  500  {object}  map[string]string
// @Router   /api/v1/metrics [get]
func (h *MetricsHandler) GetMetrics(w http.ResponseWriter, r *http.Request) {
	families, err := h.g.Gather()
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to gather metrics")
		return
	}

	inFlight := 0.0
	totals := map[string]map[string]float64{}
	for _, f := range families {
		switch f.GetName() {
		case "http_requests_in_flight":
			for _, m := range f.GetMetric() {
				inFlight += m.GetGauge().GetValue()
			}
		case "http_requests_total":
			for _, m := range f.GetMetric() {
				route, status := label(m, "route"), label(m, "status")
				if totals[route] == nil {
					totals[route] = map[string]float64{}
				}
				totals[route][status] += m.GetCounter().GetValue()
			}
		}
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"requests_in_flight": inFlight,
		"requests_total":     totals,
	})
}

func label(m *dto.Metric, name string) string {
	for _, lp := range m.GetLabel() {
		if lp.GetName() == name {
			return lp.GetValue()
		}
	}
	return ""
}
