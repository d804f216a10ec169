package handlers

import (
	"log/slog"
	"net/http"

	"github.com/carolinafmacedo/workflowmanagement/internal/adapters/http/dto"
	"github.com/carolinafmacedo/workflowmanagement/internal/platform/logging"
	"github.com/carolinafmacedo/workflowmanagement/internal/ports"
)

// HealthHandler serves the liveness and readiness endpoints.
type HealthHandler struct {
	registry ports.HealthRegistry
}

// NewHealthHandler creates a HealthHandler over the dependency registry.
func NewHealthHandler(registry ports.HealthRegistry) *HealthHandler {
	return &HealthHandler{registry: registry}
}

// Liveness handles GET /health/live. It never touches a dependency.
func (h *HealthHandler) Liveness(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Readiness handles GET /health/ready. It answers 503 only when a critical
// dependency (the database) fails; a failing notifier reports "degraded"
// with 200 so the instance stays in rotation. Failure causes are logged.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	results := h.registry.CheckAll(ctx)

	logger := logging.FromContext(ctx)
	for _, res := range results {
		if res.Healthy() {
			continue
		}
		logger.WarnContext(ctx, "dependency check failed",
			slog.String("dependency", res.Name),
			slog.Bool("critical", res.Critical),
			slog.String("error", res.Err.Error()),
		)
	}

	resp := dto.NewReadinessResponse(results)
	code := http.StatusOK
	if resp.Status == dto.ReadinessNotReady {
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, code, resp)
}
