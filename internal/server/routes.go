package server

import (
	"net/http"
)

// setupRoutes configures all HTTP routes
func (s *Server) setupRoutes() *http.ServeMux {
	mux := http.NewServeMux()

	// API routes - Itinerary planning
	mux.HandleFunc("/api/plan", s.app.PlanHandler.PlanHandler)          // POST - generate an itinerary
	mux.HandleFunc("/api/plan/latest", s.app.PlanHandler.LatestHandler) // GET - most recent itinerary
	mux.HandleFunc("/api/plan/{id}", s.app.PlanHandler.GetHandler)      // GET - itinerary by ID

	// API routes - System
	mux.HandleFunc("/api/version", s.app.APIHandler.VersionHandler)
	mux.HandleFunc("/api/health", s.app.APIHandler.HealthHandler)

	// Catch-all
	mux.HandleFunc("/", s.app.APIHandler.NotFoundHandler)

	return mux
}
