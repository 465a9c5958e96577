package validation

import (
	"errors"
	"net/http"
)

// Domain errors for validation operations.
var (
	ErrNotFound          = errors.New("validation job not found")
	ErrInvalidSubmission = errors.New("invalid validation submission")
	ErrFileTooLarge      = errors.New("upload exceeds maximum size")
	ErrTimedOut          = errors.New("validation engine timed out")
	ErrEngineUnavailable = errors.New("validation engine unavailable")
	ErrEngineRejected    = errors.New("validation engine rejected the request")
	ErrNoEndpoint        = errors.New("no validation engine endpoint responded")
)

// MapHTTPStatus maps validation domain errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidSubmission):
		return http.StatusBadRequest
	case errors.Is(err, ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, ErrTimedOut):
		return http.StatusGatewayTimeout
	case errors.Is(err, ErrEngineUnavailable), errors.Is(err, ErrNoEndpoint):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
