// Package module provides prefix-mounted HTTP modules, each carrying an
// inner router and its own middleware stack.
package module

import (
	"fmt"
	"net/http"
	"strings"

	"xbrlgate/pkg/middleware"
)

// Module is an HTTP handler mounted at a single-level path prefix.
// Requests are dispatched to the inner router with the prefix stripped.
type Module struct {
	prefix string
	inner  http.Handler
	stack  *middleware.Stack
}

// New creates a Module with the given single-level prefix (e.g. "/api").
// Panics if the prefix is empty, missing a leading slash, or multi-level;
// mounting is a startup-time concern and a bad prefix is a programming error.
func New(prefix string, inner http.Handler) *Module {
	if err := validatePrefix(prefix); err != nil {
		panic(err)
	}
	return &Module{
		prefix: prefix,
		inner:  inner,
		stack:  middleware.NewStack(),
	}
}

// Prefix returns the module's path prefix.
func (m *Module) Prefix() string {
	return m.prefix
}

// Use adds middleware to the module's stack.
func (m *Module) Use(mw func(http.Handler) http.Handler) {
	m.stack.Use(mw)
}

// ServeHTTP strips the module prefix and dispatches to the inner router
// wrapped with the module's middleware.
func (m *Module) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	m.stack.Apply(http.HandlerFunc(m.serveStripped)).ServeHTTP(w, r)
}

func (m *Module) serveStripped(w http.ResponseWriter, r *http.Request) {
	stripped := r.Clone(r.Context())
	stripped.URL.Path = strings.TrimPrefix(r.URL.Path, m.prefix)
	if stripped.URL.Path == "" {
		stripped.URL.Path = "/"
	}
	stripped.URL.RawPath = ""
	m.inner.ServeHTTP(w, stripped)
}

func validatePrefix(prefix string) error {
	if prefix == "" {
		return fmt.Errorf("module prefix cannot be empty")
	}
	if !strings.HasPrefix(prefix, "/") {
		return fmt.Errorf("module prefix must start with /: %s", prefix)
	}
	if strings.Count(prefix, "/") != 1 {
		return fmt.Errorf("module prefix must be a single-level sub-path: %s", prefix)
	}
	return nil
}
