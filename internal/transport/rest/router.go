package rest

import "net/http"

// NewRouter registers every route on a fresh ServeMux.
func NewRouter(lookup *LookupHandler, health *HealthHandler) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/translate", lookup.Translate)
	mux.HandleFunc("GET /api/recent", lookup.Recent)
	mux.HandleFunc("GET /api/word/{term...}", lookup.Word)

	mux.HandleFunc("GET /health/live", health.Live)
	mux.HandleFunc("GET /health", health.Health)

	return mux
}
