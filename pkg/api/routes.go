package api

import (
	"net/http"
)

func (s *Server) RegisterRoutes(mux *http.ServeMux) {
	// Search accepts both methods with identical semantics; POST carries the
	// parameters in a JSON body.
	mux.HandleFunc("GET /api/search", s.HandleSearch)
	mux.HandleFunc("POST /api/search", s.HandleSearch)
	mux.HandleFunc("GET /api/cities", s.HandleCities)
	mux.HandleFunc("GET /api/stats", s.HandleStats)
	mux.HandleFunc("GET /health", s.HandleHealth)
}
