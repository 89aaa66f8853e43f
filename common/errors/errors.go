// Package errors defines the storefront's HTTP-facing error taxonomy.
package errors

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error is an application error carrying the HTTP status to respond with.
// Fields holds a per-field breakdown for validation failures.
type Error struct {
	Code    int                 `json:"-"`
	Message string              `json:"message"`
	Fields  map[string][]string `json:"errors,omitempty"`
	Err     error               `json:"-"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a new Error.
func New(code int, message string, err error) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

// InvalidInput is a client-fixable schema validation failure (400).
func InvalidInput(message string, fields map[string][]string) *Error {
	return &Error{Code: http.StatusBadRequest, Message: message, Fields: fields}
}

// NotFound names a missing resource, e.g. an unknown product id (404).
func NotFound(message string) *Error {
	return &Error{Code: http.StatusNotFound, Message: message}
}

// UpstreamUnavailable is an operator-fixable misconfiguration of the
// payment provider (500). Not retryable by the caller.
func UpstreamUnavailable(message string) *Error {
	return &Error{Code: http.StatusInternalServerError, Message: message}
}

// UpstreamError wraps a provider-side failure; the provider's message is
// surfaced to the caller (500).
func UpstreamError(err error) *Error {
	message := "A apărut o problemă la crearea sesiunii de plată."
	if err != nil {
		message = err.Error()
	}
	return &Error{Code: http.StatusInternalServerError, Message: message, Err: err}
}

// Respond writes err as the JSON response. Unknown error values are
// rendered as a generic 500 without leaking internals.
func Respond(c *gin.Context, err error) {
	if appErr, ok := err.(*Error); ok {
		c.JSON(appErr.Code, appErr)
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
}
