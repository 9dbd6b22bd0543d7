package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sims-navigation/backend/internal/domain"
)

// HealthHandler serves the liveness probe endpoint.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler { return &HealthHandler{} }

// Routes binds the probe at "/" so the host router chooses the prefix.
func (h *HealthHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.NotFound(NotFound)
	r.MethodNotAllowed(MethodNotAllowed)
	r.Get("/", h.Health)
	return r
}

// Health handles GET /api/v1/health
//
// @Summary  health check
// @Tags     system
// @Produce  json
// @Success  200  {object}  domain.HealthStatus
// @Router   /api/v1/health [get]
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, domain.NewHealthStatus())
}
