package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter wires every route and middleware of the service
func NewRouter(h *Handler, corsOrigins []string) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(30 * time.Second))

	// CORS configuration
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: corsOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	// Routes
	r.Get("/", h.Page)
	r.Get("/health", h.HealthCheck)

	r.Route("/api", func(r chi.Router) {
		// Odds
		r.Get("/odds/window", h.GetOddsWindow)
		r.Get("/odds/today", h.GetOddsToday)

		// NHL stats
		r.Get("/nhl/schedule", h.GetSchedule)
		r.Get("/nhl/teams/lookup", h.LookupTeam)
		r.Post("/nhl/teams/invalidate", h.InvalidateTeams)
		r.Get("/nhl/teams/{teamID}/overview", h.GetTeamOverview)
	})

	return r
}

// Routes lists the endpoints for startup output
func Routes() []string {
	return []string{
		"GET  /",
		"GET  /health",
		"GET  /api/odds/window?hours=24",
		"GET  /api/odds/today",
		"GET  /api/nhl/schedule",
		"GET  /api/nhl/teams/lookup?name=",
		"POST /api/nhl/teams/invalidate",
		"GET  /api/nhl/teams/{teamID}/overview",
	}
}
