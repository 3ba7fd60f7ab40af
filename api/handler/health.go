package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/wishloop/metascout/engine"
	"github.com/wishloop/metascout/models"
)

// Version is the service version reported by the health endpoint.
const Version = "0.1.0"

// Health returns a handler for GET /api/v1/health.
//
// The engine is stateless, so there is no pool or backlog to degrade on;
// the endpoint reports uptime and whether the render fallback is armed.
func Health(eng *engine.Engine, startTime time.Time) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, models.HealthResponse{
			Status:        "healthy",
			Uptime:        time.Since(startTime).Round(time.Second).String(),
			RenderEnabled: eng.RenderEnabled(),
			Version:       Version,
		})
	}
}
