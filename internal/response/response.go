package response

import "github.com/gin-gonic/gin"

// Error codes shared between the service and handler layers
const (
	ErrCodeNotFound        = "NOT_FOUND"
	ErrCodeForbidden       = "FORBIDDEN"
	ErrCodeUnauthorized    = "UNAUTHORIZED"
	ErrCodeValidation      = "VALIDATION_ERROR"
	ErrCodeAlreadyExists   = "ALREADY_EXISTS"
	ErrCodeTokenExpired    = "TOKEN_EXPIRED"
	ErrCodeDeliveryFailed  = "EMAIL_DELIVERY_FAILED"
	ErrCodeInternal        = "INTERNAL_ERROR"
)

// AppError is the error type services return to handlers. Code selects the
// HTTP status; Details is internal context and never sent to clients.
type AppError struct {
	Code    string
	Message string
	Details string
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Details != "" {
		return e.Code + ": " + e.Message + " (" + e.Details + ")"
	}
	return e.Code + ": " + e.Message
}

// NewAppError creates a new AppError
func NewAppError(code, message, details string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Details: details,
	}
}

// NewNotFoundError creates an AppError with the NOT_FOUND code
func NewNotFoundError(message, details string) *AppError {
	return NewAppError(ErrCodeNotFound, message, details)
}

// NewForbiddenError creates an AppError with the FORBIDDEN code
func NewForbiddenError(message, details string) *AppError {
	return NewAppError(ErrCodeForbidden, message, details)
}

// NewUnauthorizedError creates an AppError with the UNAUTHORIZED code
func NewUnauthorizedError(message, details string) *AppError {
	return NewAppError(ErrCodeUnauthorized, message, details)
}

// NewValidationError creates an AppError with the VALIDATION_ERROR code
func NewValidationError(message, details string) *AppError {
	return NewAppError(ErrCodeValidation, message, details)
}

// NewAlreadyExistsError creates an AppError with the ALREADY_EXISTS code
func NewAlreadyExistsError(message, details string) *AppError {
	return NewAppError(ErrCodeAlreadyExists, message, details)
}

// NewTokenExpiredError creates an AppError with the TOKEN_EXPIRED code
func NewTokenExpiredError(message, details string) *AppError {
	return NewAppError(ErrCodeTokenExpired, message, details)
}

// ErrorDetail carries the machine-readable error code and message
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse is the envelope for failed requests
type ErrorResponse struct {
	Success bool        `json:"success"`
	Error   ErrorDetail `json:"error"`
}

// SuccessResponse is the envelope for successful requests
type SuccessResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
}

// SendError writes an error envelope with the given HTTP status
func SendError(c *gin.Context, status int, code, message string) {
	c.JSON(status, ErrorResponse{
		Success: false,
		Error: ErrorDetail{
			Code:    code,
			Message: message,
		},
	})
}

// SendSuccess writes a success envelope with the given HTTP status
func SendSuccess(c *gin.Context, status int, data interface{}) {
	c.JSON(status, SuccessResponse{
		Success: true,
		Data:    data,
	})
}
