package packages

import (
	"errors"
	"net/http"
)

// Domain errors for package check requests. Classification itself never
// errors; these cover the HTTP upload surface only.
var (
	ErrInvalidUpload = errors.New("invalid package upload")
	ErrFileTooLarge  = errors.New("package exceeds maximum upload size")
)

// MapHTTPStatus maps package domain errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrInvalidUpload) {
		return http.StatusBadRequest
	}
	if errors.Is(err, ErrFileTooLarge) {
		return http.StatusRequestEntityTooLarge
	}
	return http.StatusInternalServerError
}
