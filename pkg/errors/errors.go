package errors

import "net/http"

// AppError is a custom error type that carries an HTTP status code
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *AppError) Error() string {
	return e.Message
}

func NewAppError(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Helper constructors for route handlers
func NotFound(msg string) *AppError {
	return NewAppError(http.StatusNotFound, msg)
}

func Forbidden(msg string) *AppError {
	return NewAppError(http.StatusForbidden, msg)
}
