package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthResponse identifies the service as operational
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) Check(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:  "ok",
		Service: "contact-form",
	})
}
