package packages

import "log/slog"

// System defines the public contract for taxonomy-package operations.
type System interface {
	Handler(maxUploadSize int64) *Handler
	Check(filename string, data []byte) Verdict
}

type system struct {
	logger *slog.Logger
}

// New creates the package domain system.
func New(logger *slog.Logger) System {
	return &system{
		logger: logger.With("system", "packages"),
	}
}

func (s *system) Handler(maxUploadSize int64) *Handler {
	return NewHandler(s, s.logger, maxUploadSize)
}

func (s *system) Check(filename string, data []byte) Verdict {
	verdict := Classify(filename, data)
	s.logger.Info(
		"package checked",
		"filename", filename,
		"valid", verdict.IsValid,
		"convention", verdict.Diagnostics.Convention,
		"files", verdict.Diagnostics.TotalFiles,
	)
	return verdict
}
