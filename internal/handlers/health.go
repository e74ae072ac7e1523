package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/sbilibin2017/kanban-board-api/internal/logger"
)

// HealthCheck pings one dependency.
type HealthCheck func(ctx context.Context) error

// HealthResponse is the body of GET /healthz
// swagger:model HealthResponse
type HealthResponse struct {
	// default: ok
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// NewHealthHandler returns a liveness probe running every check.
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} handlers.HealthResponse
// @Failure 503 {object} handlers.HealthResponse
// @Router /healthz [get]
func NewHealthHandler(checks map[string]HealthCheck) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		resp := HealthResponse{Status: "ok", Checks: make(map[string]string, len(checks))}
		status := http.StatusOK
		for name, check := range checks {
			if err := check(ctx); err != nil {
				logger.Log.Errorw("health check failed", "check", name, "error", err)
				resp.Checks[name] = "unavailable"
				resp.Status = "unavailable"
				status = http.StatusServiceUnavailable
				continue
			}
			resp.Checks[name] = "ok"
		}
		writeJSON(w, status, resp)
	}
}
