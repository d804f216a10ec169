package dto

import "github.com/carolinafmacedo/workflowmanagement/internal/ports"

// Readiness states.
const (
	ReadinessReady    = "ready"
	ReadinessDegraded = "degraded"
	ReadinessNotReady = "not_ready"
)

// CheckResponse is one dependency's entry in the readiness body. Failure
// details are logged, not returned.
type CheckResponse struct {
	Status     string `json:"status"`
	Critical   bool   `json:"critical"`
	DurationMS int64  `json:"duration_ms"`
}

// ReadinessResponse is the body of GET /health/ready.
type ReadinessResponse struct {
	Status string                   `json:"status"`
	Checks map[string]CheckResponse `json:"checks"`
}

// NewReadinessResponse folds check results into a readiness body. A failed
// critical check makes the service not_ready; failed optional checks only
// degrade it.
func NewReadinessResponse(results []ports.HealthResult) ReadinessResponse {
	resp := ReadinessResponse{
		Status: ReadinessReady,
		Checks: make(map[string]CheckResponse, len(results)),
	}

	for _, res := range results {
		status := "ok"
		if !res.Healthy() {
			status = "error"
			switch {
			case res.Critical:
				resp.Status = ReadinessNotReady
			case resp.Status == ReadinessReady:
				resp.Status = ReadinessDegraded
			}
		}
		resp.Checks[res.Name] = CheckResponse{
			Status:     status,
			Critical:   res.Critical,
			DurationMS: res.Duration.Milliseconds(),
		}
	}
	return resp
}
