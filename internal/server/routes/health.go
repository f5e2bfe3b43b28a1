package routes

import (
	"contactrelay/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// SetupHealthRoutes configures the liveness endpoint
func SetupHealthRoutes(router *gin.RouterGroup, health *handlers.HealthHandler) {
	router.GET("/", health.Check)
}
