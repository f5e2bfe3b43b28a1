package routes

import (
	"contactrelay/internal/api/handlers"
	"contactrelay/internal/api/middleware"
)

// Handlers groups all route handlers
type Handlers struct {
	Contact *handlers.ContactHandler
	Health  *handlers.HealthHandler
}

// Middleware groups middleware used during route setup
type Middleware struct {
	Validation *middleware.ValidationMiddleware
}
