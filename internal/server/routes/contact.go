package routes

import (
	"contactrelay/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// SetupContactRoutes configures contact form routes
func SetupContactRoutes(router *gin.RouterGroup, contact *handlers.ContactHandler, m *Middleware) {
	// Public endpoint (no auth required)
	router.POST("/contact",
		m.Validation.ValidateContactRequest(),
		contact.Submit,
	)
}
