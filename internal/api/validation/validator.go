package validation

import (
	"regexp"
	"strings"

	"contactrelay/internal/api/dto/common"

	"github.com/go-playground/validator/v10"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// RegisterValidators registers custom validators
func RegisterValidators(v *validator.Validate) {
	v.RegisterValidation("email", validateEmail)
}

// validateEmail checks if the email is valid
func validateEmail(fl validator.FieldLevel) bool {
	email := fl.Field().String()
	return emailRegex.MatchString(email)
}

// IsValidEmail reports whether the given string matches the email grammar
// used for contact submissions
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// FormatValidationError formats validation errors into field-level messages
// suitable for a client response
func FormatValidationError(err error) []common.ValidationError {
	var errors []common.ValidationError
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			field := strings.ToLower(e.Field())
			errors = append(errors, common.ValidationError{
				Field:   field,
				Message: messageForTag(field, e.Tag()),
			})
		}
	}
	return errors
}

// messageForTag maps a failed validator tag to a human readable message
func messageForTag(field, tag string) string {
	switch tag {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email address"
	default:
		return field + " is invalid"
	}
}
