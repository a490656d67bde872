// Package server wires handlers, middleware and the static client into
// the root http.Handler.
package server

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"furnitrack/internal/auth"
	"furnitrack/internal/handlers"
	"furnitrack/internal/httpx"
	"furnitrack/internal/middleware"
	"furnitrack/internal/storage"
)

// New constructs the root handler: the /api routes, the Prometheus
// endpoint, and the single-page-app fallback for everything else.
func New(store storage.Store, verifier *auth.AdminVerifier, tokens *auth.JWTManager, staticDir string) http.Handler {
	mux := http.NewServeMux()

	eh := handlers.NewEmployeeHandler(store)
	mux.HandleFunc("GET /api/employees", eh.List)
	mux.HandleFunc("POST /api/employees", eh.Create)
	mux.HandleFunc("PUT /api/employees/{id}", eh.Update)
	mux.HandleFunc("DELETE /api/employees/{id}", eh.Delete)

	lh := handlers.NewLocationHandler(store)
	mux.HandleFunc("GET /api/locations", lh.List)
	mux.HandleFunc("POST /api/locations", lh.Create)
	mux.HandleFunc("PUT /api/locations/{id}", lh.Update)
	mux.HandleFunc("DELETE /api/locations/{id}", lh.Delete)

	rh := handlers.NewRecordHandler(store)
	mux.HandleFunc("GET /api/assembly-records", rh.List)
	mux.HandleFunc("POST /api/assembly-records", rh.Create)
	mux.HandleFunc("POST /api/assembly-records/batch", rh.CreateBatch)
	mux.HandleFunc("PUT /api/assembly-records/{id}", rh.Update)
	mux.HandleFunc("DELETE /api/assembly-records/{id}", rh.Delete)

	sh := handlers.NewSettingsHandler(store)
	mux.HandleFunc("GET /api/settings", sh.Get)
	mux.HandleFunc("PUT /api/settings", sh.Update)

	login := handlers.NewLoginHandler(verifier, tokens)
	mux.HandleFunc("POST /api/login", login.Login)

	mux.Handle("GET /metrics", promhttp.Handler())

	// Unmatched API routes get a JSON 404 instead of the SPA shell.
	mux.HandleFunc("/api/", func(w http.ResponseWriter, r *http.Request) {
		httpx.Message(w, http.StatusNotFound, "API endpoint not found")
	})

	// Everything else serves the single-page app; its client-side
	// router takes over from there.
	mux.Handle("/", spaHandler(staticDir))

	return middleware.Logging(middleware.CORS(middleware.Metrics(mux)))
}

// spaHandler serves files from staticDir and falls back to index.html
// for paths that don't exist on disk.
func spaHandler(staticDir string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		urlPath := r.URL.Path
		if urlPath == "/" {
			urlPath = "/index.html"
		}

		filePath := filepath.Join(staticDir, filepath.Clean(urlPath))
		if _, err := os.Stat(filePath); os.IsNotExist(err) {
			http.ServeFile(w, r, filepath.Join(staticDir, "index.html"))
			return
		}

		http.ServeFile(w, r, filePath)
	})
}
