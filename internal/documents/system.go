package documents

import (
	"log/slog"
	"net/http"
	"strings"
)

// System defines the public contract for document domain operations.
type System interface {
	Handler(maxUploadSize int64) *Handler
	Inspect(filename, contentType string, data []byte) Inspection
}

type system struct {
	logger *slog.Logger
}

// New creates the document domain system.
func New(logger *slog.Logger) System {
	return &system{
		logger: logger.With("system", "documents"),
	}
}

func (s *system) Handler(maxUploadSize int64) *Handler {
	return NewHandler(s, s.logger, maxUploadSize)
}

func (s *system) Inspect(filename, contentType string, data []byte) Inspection {
	format := DetectFormat(data)
	inspection := Inspection{
		Filename:    filename,
		ContentType: resolveContentType(contentType, data),
		SizeBytes:   int64(len(data)),
		Format:      format,
		IsInstance:  IsInstance(data, format),
	}

	s.logger.Info(
		"document inspected",
		"filename", filename,
		"format", inspection.Format,
		"instance", inspection.IsInstance,
		"size", inspection.SizeBytes,
	)
	return inspection
}

func resolveContentType(header string, data []byte) string {
	header = strings.TrimSpace(header)
	if header != "" && header != "application/octet-stream" {
		return header
	}
	return http.DetectContentType(data)
}
