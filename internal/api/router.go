package api

import (
	"net/http"

	"github.com/go-chi/cors"

	"route-roster-service/internal/api/handlers"
	"route-roster-service/internal/ports"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(
	source ports.RosterSource,
	store ports.SelectionStore,
	creator ports.RouteCreator,
	corsOrigin string,
) http.Handler {
	mux := http.NewServeMux()

	rosterHandler := &handlers.RosterHandler{Source: source}
	historyHandler := &handlers.HistoryHandler{Source: source}
	composeHandler := &handlers.ComposeHandler{
		Store:     store,
		Locations: source,
		Creator:   creator,
	}

	mux.HandleFunc("GET /health", handlers.Health)

	mux.HandleFunc("GET /history", historyHandler.Get)

	mux.HandleFunc("GET /drivers", rosterHandler.ListDrivers)
	mux.HandleFunc("GET /drivers/{id}", rosterHandler.GetDriver)
	mux.HandleFunc("GET /recipients", rosterHandler.ListRecipients)
	mux.HandleFunc("GET /routes", rosterHandler.ListRoutes)
	mux.HandleFunc("GET /routes/{id}", rosterHandler.GetRoute)
	mux.HandleFunc("GET /locations", rosterHandler.ListLocations)
	mux.HandleFunc("GET /locations/centers", rosterHandler.ListCenters)

	mux.HandleFunc("POST /compose", composeHandler.Create)
	mux.HandleFunc("GET /compose/{id}", composeHandler.Get)
	mux.HandleFunc("POST /compose/{id}/drivers", composeHandler.ToggleDriver)
	mux.HandleFunc("POST /compose/{id}/recipients", composeHandler.ToggleRecipient)
	mux.HandleFunc("POST /compose/{id}/submit", composeHandler.Submit)

	handler := cors.Handler(cors.Options{
		AllowedOrigins:   []string{corsOrigin},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})(mux)

	return requestIDMiddleware(loggingMiddleware(handler))
}
