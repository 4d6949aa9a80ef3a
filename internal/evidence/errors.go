package evidence

import (
	"errors"
	"net/http"
)

// Domain errors for evidence operations.
var (
	ErrNotFound  = errors.New("evidence file not found")
	ErrDuplicate = errors.New("evidence file already exists")
)

// MapHTTPStatus maps evidence domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrDuplicate) {
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}
