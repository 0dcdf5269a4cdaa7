package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"routecraft-service/internal/api/handlers"
	"routecraft-service/internal/ports"
	"routecraft-service/internal/services"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(engine *services.Engine, repo ports.TripRepository, corsOrigins []string) http.Handler {
	r := mux.NewRouter()

	routeHandler := &handlers.RouteHandler{Engine: engine}
	tripHandler := &handlers.TripHandler{Repo: repo}

	r.HandleFunc("/health", handlers.Health).Methods(http.MethodGet)
	r.HandleFunc("/routes/search", routeHandler.Search).Methods(http.MethodPost)
	r.HandleFunc("/trips", tripHandler.List).Methods(http.MethodGet)
	r.HandleFunc("/trips", tripHandler.Create).Methods(http.MethodPost)
	r.HandleFunc("/trips/{id}", tripHandler.Delete).Methods(http.MethodDelete)

	// The API is called from a browser UI, so CORS wraps everything.
	c := cors.New(cors.Options{
		AllowedOrigins: corsOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	})

	return c.Handler(loggingMiddleware(r))
}
