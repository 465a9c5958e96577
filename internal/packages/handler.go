package packages

import (
	"io"
	"log/slog"
	"net/http"

	"xbrlgate/pkg/handlers"
	"xbrlgate/pkg/routes"
)

// Handler provides HTTP endpoints for taxonomy-package operations.
type Handler struct {
	sys           System
	logger        *slog.Logger
	maxUploadSize int64
}

// NewHandler creates a Handler with the given system, logger, and upload size limit.
func NewHandler(sys System, logger *slog.Logger, maxUploadSize int64) *Handler {
	return &Handler{
		sys:           sys,
		logger:        logger.With("handler", "packages"),
		maxUploadSize: maxUploadSize,
	}
}

// Routes returns the route group definition for package endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/packages",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "/check", Handler: h.Check},
		},
	}
}

// Check accepts a multipart upload with a "package" file part and responds
// with the structural pre-check verdict. Negative verdicts are still 200
// responses: a rejected package is an ordinary result, not a server error.
func (h *Handler) Check(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
		handlers.RespondError(w, h.logger, http.StatusRequestEntityTooLarge, ErrFileTooLarge)
		return
	}

	file, header, err := r.FormFile("package")
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidUpload)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidUpload)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, h.sys.Check(header.Filename, data))
}
