// Package app serves the embedded browser client: the upload form,
// verdict rendering, and job progress views.
package app

import (
	"embed"
	"io/fs"
	"net/http"

	"xbrlgate/pkg/module"
)

//go:embed static
var staticFS embed.FS

// NewModule creates the web UI module mounted at the given prefix.
func NewModule(prefix string) *module.Module {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic("app: embedded static assets missing: " + err.Error())
	}
	return module.New(prefix, http.FileServer(http.FS(sub)))
}
