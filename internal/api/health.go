package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthStatus is the overall or per-check health state.
type HealthStatus string

// Health states.
const (
	HealthStatusHealthy  HealthStatus = "healthy"
	HealthStatusDegraded HealthStatus = "degraded"
)

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status  HealthStatus           `json:"status"`
	Service string                 `json:"service"`
	Version string                 `json:"version"`
	Uptime  string                 `json:"uptime,omitempty"`
	Checks  map[string]CheckResult `json:"checks,omitempty"`
}

// CheckResult is one named health check.
type CheckResult struct {
	Status  HealthStatus `json:"status"`
	Message string       `json:"message,omitempty"`
}

// datasetCheck reports a failed or empty load as degraded; the server still
// answers every query, just with no results.
func (s *Server) datasetCheck() CheckResult {
	if !s.dataset.Loaded() {
		return CheckResult{Status: HealthStatusDegraded, Message: "dataset not loaded from " + s.dataset.Source()}
	}
	if s.dataset.Count() == 0 {
		return CheckResult{Status: HealthStatusDegraded, Message: "dataset is empty"}
	}
	return CheckResult{Status: HealthStatusHealthy, Message: "companies loaded"}
}

func (s *Server) handleHealth(c *gin.Context) {
	check := s.datasetCheck()
	c.JSON(http.StatusOK, HealthResponse{
		Status:  check.Status,
		Service: s.config.ServiceName,
		Version: s.config.ServiceVersion,
		Uptime:  time.Since(s.startedAt).Round(time.Second).String(),
		Checks:  map[string]CheckResult{"dataset": check},
	})
}

func (s *Server) handleReady(c *gin.Context) {
	if !s.dataset.Loaded() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"ready": false, "reason": "dataset not loaded"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ready": true, "companies": s.dataset.Count()})
}
