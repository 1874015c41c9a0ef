package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/pio-home/internal/ports"
)

const (
	statusOK       = "ok"
	statusReady    = "ready"
	statusDegraded = "degraded"
	statusNotReady = "not_ready"
)

// healthResponse is the body of both probe endpoints.
type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// HealthHandler handles liveness and readiness HTTP endpoints.
type HealthHandler struct {
	registry ports.HealthRegistry
	optional map[string]bool
}

// NewHealthHandler creates a HealthHandler over the given registry. Failures
// of the checks named in optional degrade readiness without failing it; the
// remote board registry is one, since board lookups fall back to installed
// platforms.
func NewHealthHandler(registry ports.HealthRegistry, optional ...string) *HealthHandler {
	opt := make(map[string]bool, len(optional))
	for _, name := range optional {
		opt[name] = true
	}
	return &HealthHandler{registry: registry, optional: opt}
}

// Liveness handles GET /health/live. Always returns 200 OK.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, healthResponse{Status: statusOK})
}

// Readiness handles GET /health/ready. Returns 503 when a required check
// fails and 200 otherwise, with status "degraded" when only optional checks
// fail.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	results := h.registry.CheckAll(r.Context())

	resp := healthResponse{Status: statusReady, Checks: make(map[string]string, len(results))}
	code := http.StatusOK
	for name, err := range results {
		switch {
		case err == nil:
			resp.Checks[name] = statusOK
		case h.optional[name]:
			resp.Checks[name] = err.Error()
			if code == http.StatusOK {
				resp.Status = statusDegraded
			}
		default:
			resp.Checks[name] = err.Error()
			resp.Status = statusNotReady
			code = http.StatusServiceUnavailable
		}
	}

	writeJSON(w, r, code, resp)
}
