package chat

import (
	"errors"
	"net/http"
)

// Domain errors for chat operations.
var (
	ErrNotConfigured = errors.New("chat model not configured")
	ErrUnavailable   = errors.New("chat model unavailable")
	ErrEmptyMessage  = errors.New("message must not be empty")
)

// MapHTTPStatus maps chat domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotConfigured) {
		return http.StatusServiceUnavailable
	}
	if errors.Is(err, ErrUnavailable) {
		return http.StatusBadGateway
	}
	if errors.Is(err, ErrEmptyMessage) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
