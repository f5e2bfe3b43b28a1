package utils

import (
	"net/http"

	"contactrelay/internal/api/dto/common"

	"github.com/gin-gonic/gin"
)

// HandleSuccess sends a success response with a message
func HandleSuccess(c *gin.Context, message string) {
	c.JSON(http.StatusOK, common.NewSuccessResponse(message))
}
