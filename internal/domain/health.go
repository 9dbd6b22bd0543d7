package domain

// StatusAPIWorking is the only status value the health endpoint reports.
const StatusAPIWorking = "api working"

// HealthStatus is the liveness payload served by GET /api/v1/health.
type HealthStatus struct {
	Status string `json:"status"`
}

// NewHealthStatus builds the fixed liveness payload.
func NewHealthStatus() HealthStatus {
	return HealthStatus{Status: StatusAPIWorking}
}

// IsWorking reports whether s carries the expected liveness value.
func (s HealthStatus) IsWorking() bool {
	return s.Status == StatusAPIWorking
}
