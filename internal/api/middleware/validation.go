package middleware

import (
	"net/http"

	"contactrelay/internal/api/constants"
	"contactrelay/internal/api/dto/common"
	"contactrelay/internal/api/dto/v1/contact"
	"contactrelay/internal/api/validation"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// ValidationMiddleware handles request validation
type ValidationMiddleware struct{}

// NewValidationMiddleware creates a new validation middleware and registers
// the custom validators on gin's binding engine
func NewValidationMiddleware() *ValidationMiddleware {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		validation.RegisterValidators(v)
	}
	return &ValidationMiddleware{}
}

// ValidateContactRequest validates a contact form submission and stores the
// parsed request in the context for the handler
func (m *ValidationMiddleware) ValidateContactRequest() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req contact.ContactRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errs := validation.FormatValidationError(err)
			if len(errs) == 0 {
				// Body was not valid JSON at all
				c.JSON(http.StatusBadRequest, common.NewErrorResponse("Invalid request body"))
				c.Abort()
				return
			}
			c.JSON(http.StatusBadRequest, common.NewValidationErrorResponse(errs))
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyContact, &req)
		c.Next()
	}
}
