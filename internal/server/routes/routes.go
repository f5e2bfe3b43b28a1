package routes

import (
	"contactrelay/internal/api/middleware"
	"contactrelay/internal/logging"

	"github.com/gin-gonic/gin"
)

// Setup configures all route groups
func Setup(router *gin.Engine, h *Handlers, m *Middleware) {
	logger := logging.GetLogger()

	api := router.Group("/api")

	SetupHealthRoutes(api, h.Health)
	SetupContactRoutes(api, h.Contact, m)

	logger.Info("All routes have been set up successfully")
}

// SetupGlobalMiddleware configures middleware that applies to all routes
func SetupGlobalMiddleware(router *gin.Engine, logRequests bool) {
	router.Use(gin.Recovery())
	router.Use(middleware.CORS())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(logRequests))
}
