package documents

import (
	"errors"
	"net/http"
)

// Domain errors for document operations.
var (
	ErrInvalidFile  = errors.New("invalid document upload")
	ErrFileTooLarge = errors.New("document exceeds maximum upload size")
)

// MapHTTPStatus maps document domain errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrInvalidFile) {
		return http.StatusBadRequest
	}
	if errors.Is(err, ErrFileTooLarge) {
		return http.StatusRequestEntityTooLarge
	}
	return http.StatusInternalServerError
}
