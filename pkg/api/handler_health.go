package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/forgeworks/forge/pkg/database"
	"github.com/forgeworks/forge/pkg/version"
)

const (
	healthStatusHealthy   = "healthy"
	healthStatusDegraded  = "degraded"
	healthStatusUnhealthy = "unhealthy"
)

// healthHandler handles GET /health.
// Returns a minimal, safe response suitable for unauthenticated access.
// Only the platform's own components (database, worker pool) are
// checked. External dependencies (LLM providers) are excluded so the
// orchestrator never restarts the process over a provider outage.
func (s *Server) healthHandler(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	checks := make(map[string]HealthCheck)
	status := healthStatusHealthy

	if _, err := database.Health(reqCtx, s.dbClient.DB()); err != nil {
		status = healthStatusUnhealthy
		checks["database"] = HealthCheck{Status: healthStatusUnhealthy, Message: err.Error()}
	} else {
		checks["database"] = HealthCheck{Status: healthStatusHealthy}
	}

	if s.workerPool != nil {
		poolHealth := s.workerPool.Health()
		if poolHealth != nil && !poolHealth.IsHealthy {
			if status == healthStatusHealthy {
				status = healthStatusDegraded
			}
			msg := healthStatusUnhealthy
			if poolHealth.DBError != "" {
				msg = poolHealth.DBError
			}
			checks["worker_pool"] = HealthCheck{Status: healthStatusDegraded, Message: msg}
		} else {
			checks["worker_pool"] = HealthCheck{Status: healthStatusHealthy}
		}
	}

	httpStatus := http.StatusOK
	if status == healthStatusUnhealthy {
		httpStatus = http.StatusServiceUnavailable
	}

	c.JSON(httpStatus, HealthResponse{
		Status:  status,
		Version: version.GitCommit,
		Checks:  checks,
	})
}
