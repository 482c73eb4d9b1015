// Package httperr carries API errors together with the HTTP status they
// should be reported with. Handlers convert any error into a JSON
// {"message": ...} body via From.
package httperr

import (
	"errors"
	"net/http"
)

type Error struct {
	Status  int    `json:"-"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return e.Message
}

// Validation reports malformed input (422).
func Validation(message string) *Error {
	return &Error{Status: http.StatusUnprocessableEntity, Message: message}
}

// Conflict reports a duplicate resource (409).
func Conflict(message string) *Error {
	return &Error{Status: http.StatusConflict, Message: message}
}

// NotFound reports a missing resource (404).
func NotFound(message string) *Error {
	return &Error{Status: http.StatusNotFound, Message: message}
}

// Unauthorized reports a missing, invalid or expired credential (401).
func Unauthorized(message string) *Error {
	return &Error{Status: http.StatusUnauthorized, Message: message}
}

// Upstream reports a database or internal failure (400).
func Upstream(err error) *Error {
	return &Error{Status: http.StatusBadRequest, Message: err.Error()}
}

// From extracts the typed error from err, or wraps it as an internal
// failure (500) when err carries no status of its own.
func From(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return &Error{Status: http.StatusInternalServerError, Message: err.Error()}
}
