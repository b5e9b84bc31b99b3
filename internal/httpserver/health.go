package httpserver

import (
	"github.com/gin-gonic/gin"

	"github.com/3moscas/tgbot/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "Bzz bzz"
	HealthVersion = "1.0.0"
	ServiceName   = "tgbot"
)

// healthCheck handles health check requests.
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// readyCheck reports ready once the server is accepting requests.
func (srv HTTPServer) readyCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "ready",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// liveCheck handles liveness check requests.
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}
