package validation

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"xbrlgate/pkg/handlers"
	"xbrlgate/pkg/routes"
)

// Handler provides HTTP endpoints for validation operations.
type Handler struct {
	sys           System
	logger        *slog.Logger
	maxUploadSize int64
	upgrader      websocket.Upgrader
}

// NewHandler creates a Handler with the given system, logger, and upload size limit.
func NewHandler(sys System, logger *slog.Logger, maxUploadSize int64) *Handler {
	return &Handler{
		sys:           sys,
		logger:        logger.With("handler", "validations"),
		maxUploadSize: maxUploadSize,
		upgrader: websocket.Upgrader{
			// origin enforcement happens in the CORS layer; the watch
			// stream carries job status only
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Routes returns the route group definition for validation endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/validations",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "", Handler: h.Submit},
			{Method: "GET", Pattern: "/engine", Handler: h.Engine},
			{Method: "GET", Pattern: "/{id}", Handler: h.Find},
			{Method: "GET", Pattern: "/{id}/watch", Handler: h.Watch},
		},
	}
}

// Submit accepts a multipart filing (instance required, taxonomy and
// table_code optional), starts a validation job, and responds 202 with the
// job's initial state.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
		handlers.RespondError(w, h.logger, http.StatusRequestEntityTooLarge, ErrFileTooLarge)
		return
	}

	instanceName, instanceData, err := readFilePart(r, "instance")
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidSubmission)
		return
	}

	taxonomyName, taxonomyData, err := readFilePart(r, "taxonomy")
	if err != nil && !errors.Is(err, http.ErrMissingFile) {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidSubmission)
		return
	}

	job, err := h.sys.Submit(SubmitCommand{
		InstanceFilename: instanceName,
		InstanceData:     instanceData,
		TaxonomyFilename: taxonomyName,
		TaxonomyData:     taxonomyData,
		TableCode:        r.FormValue("table_code"),
	})
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusAccepted, job)
}

// Find returns a job snapshot by its UUID path parameter.
func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidSubmission)
		return
	}

	job, err := h.sys.Find(id)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, job)
}

// Watch upgrades to a websocket and streams job snapshots until the job
// reaches a terminal state or the client disconnects.
func (h *Handler) Watch(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidSubmission)
		return
	}

	updates, cancel, err := h.sys.Watch(id)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}
	defer cancel()

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	for job := range updates {
		if err := conn.WriteJSON(job); err != nil {
			return
		}
	}
}

// Engine reports the engine's discovery and health state.
func (h *Handler) Engine(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, h.sys.EngineStatus(r.Context()))
}

func readFilePart(r *http.Request, field string) (string, []byte, error) {
	file, header, err := r.FormFile(field)
	if err != nil {
		return "", nil, err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return "", nil, err
	}
	return header.Filename, data, nil
}
