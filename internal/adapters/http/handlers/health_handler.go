package handlers

import (
	"net/http"
	"sort"

	"github.com/jsamuelsen11/club-records/internal/ports"
)

const (
	statusOK       = "ok"
	statusReady    = "ready"
	statusNotReady = "not_ready"
)

// HealthHandler handles liveness and readiness HTTP endpoints.
type HealthHandler struct {
	registry ports.HealthRegistry
}

// NewHealthHandler creates a new HealthHandler with the given health registry.
func NewHealthHandler(registry ports.HealthRegistry) *HealthHandler {
	return &HealthHandler{registry: registry}
}

// ReadinessResponse is the body of GET /health/ready. Failing lists the
// names of unhealthy dependencies in sorted order.
type ReadinessResponse struct {
	Status  string            `json:"status"`
	Checks  map[string]string `json:"checks"`
	Failing []string          `json:"failing,omitempty"`
}

// Liveness handles GET /health/live. Always returns 200 OK.
func (h *HealthHandler) Liveness(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": statusOK})
}

// Readiness handles GET /health/ready. Returns 200 if all checks pass,
// 503 if any check fails.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	results := h.registry.CheckAll(r.Context())

	resp := ReadinessResponse{
		Status: statusReady,
		Checks: make(map[string]string, len(results)),
	}
	for name, err := range results {
		if err != nil {
			resp.Checks[name] = err.Error()
			resp.Failing = append(resp.Failing, name)
			continue
		}
		resp.Checks[name] = statusOK
	}

	code := http.StatusOK
	if len(resp.Failing) > 0 {
		sort.Strings(resp.Failing)
		resp.Status = statusNotReady
		code = http.StatusServiceUnavailable
	}

	writeJSON(w, code, resp)
}
