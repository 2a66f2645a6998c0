package rest

import "net/http"

// NewRouter registers the API and probe routes.
func NewRouter(defs *DefinitionHandler, health *HealthHandler) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/definitions", defs.Definition)
	mux.HandleFunc("GET /api/v1/sections", defs.Section)
	mux.HandleFunc("GET /live", health.Live)
	mux.HandleFunc("GET /ready", health.Ready)
	mux.HandleFunc("GET /health", health.Health)
	return mux
}
