package httpserver

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	pkgErrors "nurse-manager/pkg/errors"
	"nurse-manager/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "Nuvanta Nurse Manager API"
	HealthVersion = "1.0.0"
	ServiceName   = "nurse-manager"
)

const readyPingTimeout = 2 * time.Second

var errNotReady = pkgErrors.NewHTTPError(http.StatusServiceUnavailable, "database unavailable")

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":      "healthy",
		"message":     HealthMessage,
		"version":     HealthVersion,
		"service":     ServiceName,
		"environment": srv.environment,
	})
}

// readyCheck reports ready once Postgres answers a ping.
// @Summary Readiness Check
// @Description Check if the API and its database are ready to serve traffic
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Failure 503 {object} response.Resp "Database unavailable"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	if srv.postgresDB == nil {
		response.Error(c, errNotReady, nil)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), readyPingTimeout)
	defer cancel()
	if err := srv.postgresDB.PingContext(ctx); err != nil {
		srv.l.Warnf(ctx, "httpserver.readyCheck: ping: %v", err)
		response.Error(c, errNotReady, nil)
		return
	}

	response.OK(c, gin.H{
		"status":  "ready",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}
