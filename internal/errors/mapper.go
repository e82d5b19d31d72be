// internal/errors/mapper.go
package errors

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"gorm.io/gorm"
)

// Error is an error that already knows its HTTP status and the message
// that is safe to show the caller.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string { return e.Message }

// BadRequest creates a 400 error. Use this in service layer for bad
// input validation.
func BadRequest(msg string) error {
	return &Error{Status: http.StatusBadRequest, Message: msg}
}

// NotFound creates a 404 error.
func NotFound(msg string) error {
	return &Error{Status: http.StatusNotFound, Message: msg}
}

// Map converts repo/infra errors into an HTTP status plus a
// client-safe message. Keeps service layer clean by centralizing error
// mapping; raw DB error detail is never echoed to the caller.
func Map(err error, fallback string) (int, string) {
	var appErr *Error

	switch {
	case errors.As(err, &appErr):
		return appErr.Status, appErr.Message

	case errors.Is(err, gorm.ErrRecordNotFound):
		return http.StatusNotFound, "record not found"

	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, "request timed out"

	default:
		return http.StatusInternalServerError, fallback
	}
}

// Write maps err and writes it as a JSON error body. fallback is the
// generic message used for unrecognized (internal) errors.
func Write(w http.ResponseWriter, err error, fallback string) {
	status, msg := Map(err, fallback)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"message": msg})
}
