package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Version is reported by the health check endpoint
const Version = "1.0.0"

// HealthHandler implements the liveness endpoint
type HealthHandler struct{}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// GetHealth reports that the service is alive. There are no downstream
// dependencies to check.
func (h *HealthHandler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "health-pathway-advisor",
		"version": Version,
	})
}
