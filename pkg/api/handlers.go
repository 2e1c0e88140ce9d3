package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/placera/placera/pkg/catalog"
	"github.com/placera/placera/pkg/search"
	"github.com/placera/placera/pkg/version"
)

// HandleSearch resolves a search request. GET requests carry parameters in
// the query string, POST requests in a JSON body; both run the identical
// pipeline. Invalid numeric parameters fall back to defaults rather than
// erroring.
func (s *Server) HandleSearch(w http.ResponseWriter, r *http.Request) {
	var params search.Params
	if r.Method == http.MethodPost {
		var req searchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			s.writeError(w, http.StatusBadRequest, "Invalid request body", "Request body must be valid JSON")
			return
		}
		params = search.Params{
			Query:      req.Query,
			Type:       req.Type,
			City:       req.City,
			RatingMin:  req.MinRating,
			ReviewsMin: req.MinReviews,
			Page:       req.Page,
			PageSize:   req.PageSize,
		}
	} else {
		params = search.ParseParams(r.URL.Query())
	}
	if params.PageSize < 1 {
		params.PageSize = s.pageSize
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.timeout)
	defer cancel()

	results, err := s.currentResolver().Resolve(ctx, params)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			s.logger.Warnf("search timed out: %v", err)
			s.writeError(w, http.StatusGatewayTimeout, "Search timed out", "Request timed out")
			return
		}
		if errors.Is(err, context.Canceled) {
			// Caller went away; abandon without a body.
			s.logger.Warnf("search aborted: %v", err)
			return
		}
		s.logger.Errorf("search failed: %v", err)
		s.writeError(w, http.StatusInternalServerError, "Search failed", "Internal error")
		return
	}

	response := SearchResponse{
		Query: results.Query,
		Filters: FiltersResponse{
			Type:       results.Type,
			City:       results.City,
			MinRating:  results.RatingMin,
			MinReviews: results.ReviewsMin,
		},
		Meta: MetaResponse{
			Total:      results.Total,
			Page:       results.Page,
			PageSize:   results.PageSize,
			TotalPages: results.TotalPages,
		},
		Results: results.Subjects,
	}
	if response.Results == nil {
		response.Results = []catalog.Subject{}
	}

	s.writeJSON(w, http.StatusOK, response)
}

// HandleCities lists the distinct cities present in the catalog.
func (s *Server) HandleCities(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), s.timeout)
	defer cancel()

	cities, err := s.store.DistinctCities(ctx)
	if err != nil {
		s.logger.Errorf("listing cities failed: %v", err)
		s.writeError(w, http.StatusInternalServerError, "Failed to list cities", "Internal error")
		return
	}
	if cities == nil {
		cities = []string{}
	}

	s.writeJSON(w, http.StatusOK, CitiesResponse{
		Cities: cities,
		Count:  len(cities),
	})
}

// HandleStats returns catalog summary statistics.
func (s *Server) HandleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.store.Stats()
	if err != nil {
		s.logger.Errorf("getting stats failed: %v", err)
		s.writeError(w, http.StatusInternalServerError, "Failed to get stats", "Internal error")
		return
	}

	s.writeJSON(w, http.StatusOK, stats)
}

func (s *Server) HandleHealth(w http.ResponseWriter, r *http.Request) {
	health := HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC(),
		Version:   version.APIVersion(),
	}

	s.writeJSON(w, http.StatusOK, health)
}
