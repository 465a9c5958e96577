package api

import (
	"net/http"

	"xbrlgate/internal/config"
	"xbrlgate/pkg/routes"
)

func registerRoutes(mux *http.ServeMux, domain *Domain, cfg *config.Config) {
	maxUploadSize := cfg.API.MaxUploadSizeBytes()

	routes.Register(
		mux,
		domain.Packages.Handler(maxUploadSize).Routes(),
		domain.Documents.Handler(maxUploadSize).Routes(),
		domain.Validation.Handler(maxUploadSize).Routes(),
	)
}
