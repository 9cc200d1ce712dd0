package apperrors

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// ErrorResponse is the JSON body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HTTPError is an error that carries the status it should be answered with.
type HTTPError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *HTTPError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *HTTPError) Unwrap() error {
	return e.Err
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{Error: e.Message}
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Message: message}
}

// Wrap attaches the underlying cause; it shows up in logs, never in responses.
func (e *HTTPError) Wrap(err error) *HTTPError {
	e.Err = err
	return e
}

// BadRequest is returned for missing or invalid input fields.
func BadRequest(message string) *HTTPError {
	return NewHTTPError(http.StatusBadRequest, message)
}

// Unauthenticated is returned for missing, invalid or expired tokens and
// failed credential checks.
func Unauthenticated(message string) *HTTPError {
	return NewHTTPError(http.StatusUnauthorized, message)
}

// NotFound is returned when a referenced id does not exist.
func NotFound(message string) *HTTPError {
	return NewHTTPError(http.StatusNotFound, message)
}

// Conflict is returned when a uniqueness constraint would be violated.
func Conflict(message string) *HTTPError {
	return NewHTTPError(http.StatusConflict, message)
}

// MapErrorToHTTP maps any error to an HTTPError. Unknown errors become a
// generic 500 so internal details never reach the client.
func MapErrorToHTTP(err error) *HTTPError {
	var he *HTTPError
	if errors.As(err, &he) {
		return he
	}
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return NewHTTPError(fe.Code, fe.Message)
	}
	return NewHTTPError(http.StatusInternalServerError, "internal server error").Wrap(err)
}
