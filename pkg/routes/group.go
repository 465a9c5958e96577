// Package routes provides declarative HTTP route registration for domain handlers.
package routes

import "net/http"

// Group organizes routes under a common path prefix.
type Group struct {
	Prefix string
	Routes []Route
}

// Register adds all routes from the given groups to the mux,
// prefixing each pattern with its group prefix.
func Register(mux *http.ServeMux, groups ...Group) {
	for _, group := range groups {
		for _, route := range group.Routes {
			mux.HandleFunc(route.Method+" "+group.Prefix+route.Pattern, route.Handler)
		}
	}
}
