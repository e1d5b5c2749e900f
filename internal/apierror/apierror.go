// Package apierror provides the standardized error envelope for the API.
// All 4xx/5xx responses go through this package so that the shape
// {status, error, message, details?} is consistent and internal details
// (stack traces, SQL errors) never reach clients.
package apierror

import "net/http"

// APIError is the canonical error envelope for all 4xx/5xx HTTP responses.
// It implements error so services can return it directly and handlers can
// map it to the right status code.
type APIError struct {
	Status  int         `json:"status"`
	Err     string      `json:"error"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

func (e *APIError) Error() string { return e.Message }

func New(status int, message string) *APIError {
	return &APIError{Status: status, Err: http.StatusText(status), Message: message}
}

// WithDetails attaches structured diagnostic data (FK name, owning id, etc.)
// intended for the client, never raw driver errors.
func (e *APIError) WithDetails(details interface{}) *APIError {
	e.Details = details
	return e
}

func BadRequest(message string) *APIError   { return New(http.StatusBadRequest, message) }
func Unauthorized(message string) *APIError { return New(http.StatusUnauthorized, message) }
func Forbidden(message string) *APIError    { return New(http.StatusForbidden, message) }
func NotFound(message string) *APIError     { return New(http.StatusNotFound, message) }

// Internal deliberately carries a generic message; the real cause is logged
// server-side by the caller.
func Internal(message string) *APIError { return New(http.StatusInternalServerError, message) }

// Validation wraps multiple field errors from request binding.
func Validation(fields map[string]string) *APIError {
	return BadRequest("Error en la validación de los datos.").WithDetails(fields)
}
