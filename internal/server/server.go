package server

import (
	"io"

	"contactrelay/internal/api/handlers"
	"contactrelay/internal/api/middleware"
	"contactrelay/internal/config"
	"contactrelay/internal/server/routes"
	"contactrelay/internal/service"

	"github.com/gin-gonic/gin"
)

// Server represents the HTTP server
type Server struct {
	router *gin.Engine
	cfg    *config.Config
}

// NewServer creates a new server instance
func NewServer(cfg *config.Config) *Server {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Disable gin's own logger; requests are logged by our middleware
	gin.DefaultWriter = io.Discard

	router := gin.New()

	return &Server{
		router: router,
		cfg:    cfg,
	}
}

// Init wires middleware, handlers and routes
func (s *Server) Init() {
	routes.SetupGlobalMiddleware(s.router, s.cfg.LogRequests)

	notifier := service.NewSlackService(s.cfg.SlackBotToken, s.cfg.SlackChannelID)

	h := &routes.Handlers{
		Contact: handlers.NewContactHandler(notifier),
		Health:  handlers.NewHealthHandler(),
	}
	m := &routes.Middleware{
		Validation: middleware.NewValidationMiddleware(),
	}

	routes.Setup(s.router, h, m)
}

// Start starts the server
func (s *Server) Start() error {
	return s.router.Run(":" + s.cfg.Port)
}
