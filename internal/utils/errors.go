package utils

import (
	"contactrelay/internal/api/dto/common"
	"contactrelay/internal/logging"

	"github.com/gin-gonic/gin"
)

// HandleAPIError is a utility function for consistent error handling across
// the API. The underlying error is logged server-side; the client only sees
// the generic message.
func HandleAPIError(c *gin.Context, err error, status int, message string) {
	logger := logging.GetLogger()
	logger.LogHTTPError(
		c.Request.Method,
		c.Request.URL.Path,
		GetRealIP(c),
		status,
		message,
		err,
	)

	c.JSON(status, common.NewErrorResponse(message))
}
