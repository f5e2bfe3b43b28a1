package common

// APIResponse is the standard wrapper for all API responses
type APIResponse struct {
	Success bool              `json:"success"`
	Message string            `json:"message,omitempty"`
	Error   string            `json:"error,omitempty"`
	Errors  []ValidationError `json:"errors,omitempty"`
}

// ValidationError represents a single field-level validation failure
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Generic error messages returned to clients. Underlying details are
// logged server-side only.
const (
	MsgValidationFailed = "Validation failed"
	MsgConfigError      = "Server configuration error"
	MsgInternalError    = "Internal server error"
	MsgContactSubmitted = "Your message has been sent successfully!"
)

// NewSuccessResponse creates a new successful API response
func NewSuccessResponse(message string) APIResponse {
	return APIResponse{
		Success: true,
		Message: message,
	}
}

// NewErrorResponse creates a new error API response
func NewErrorResponse(message string) APIResponse {
	return APIResponse{
		Success: false,
		Error:   message,
	}
}

// NewValidationErrorResponse creates an error response enumerating the
// fields that failed validation
func NewValidationErrorResponse(errors []ValidationError) APIResponse {
	return APIResponse{
		Success: false,
		Error:   MsgValidationFailed,
		Errors:  errors,
	}
}
