// Package infrastructure provides core service initialization for
// application startup: lifecycle coordination and logging shared by all
// domain systems.
package infrastructure

import (
	"log/slog"
	"os"

	"xbrlgate/internal/config"
	"xbrlgate/pkg/lifecycle"
)

// Infrastructure holds the core systems required by all domain modules.
type Infrastructure struct {
	Lifecycle *lifecycle.Coordinator
	Logger    *slog.Logger
}

// New creates an Infrastructure from the application configuration.
func New(cfg *config.Config) *Infrastructure {
	return &Infrastructure{
		Lifecycle: lifecycle.New(),
		Logger: slog.New(slog.NewTextHandler(os.Stderr, nil)).With(
			"version", cfg.Version,
		),
	}
}
