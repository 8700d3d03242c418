package handler

import (
	"io/fs"
	"net/http"

	"document-analyzer/internal/config"
	"document-analyzer/web"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

// NewRouter creates a new HTTP router with all routes configured
func NewRouter(container *config.Container) http.Handler {
	router := mux.NewRouter()

	// Health check endpoint
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok","service":"document-analyzer"}`))
	}).Methods("GET")

	analysisHandler := NewAnalysisHandler(
		container.Runner,
		container.Extract,
		container.Config.GetMaxFileSize(),
		container.Logger,
	)

	// API prefix
	api := router.PathPrefix("/api/v1").Subrouter()
	api.Use(LoggingMiddleware(container.Logger))

	api.HandleFunc("/analyses", analysisHandler.CreateAnalysis).Methods("POST")
	api.HandleFunc("/analyses/{id}", analysisHandler.GetAnalysis).Methods("GET")

	// Embedded UI shell at the root
	if assets, err := fs.Sub(web.Assets, "static"); err == nil {
		router.PathPrefix("/").Handler(http.FileServer(http.FS(assets)))
	}

	// Configure CORS
	c := cors.New(cors.Options{
		AllowedOrigins: []string{
			"http://localhost:5173", // Vite dev server
			"http://localhost:3000", // Alternative dev port
		},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Content-Type",
		},
		MaxAge: 300, // Maximum value not ignored by any of major browsers
	})

	return c.Handler(router)
}
