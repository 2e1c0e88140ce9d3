package api

import (
	"time"

	"github.com/placera/placera/pkg/catalog"
)

// FiltersResponse echoes the filters the pipeline resolved for a request.
type FiltersResponse struct {
	Type       string  `json:"type,omitempty"`
	City       string  `json:"city,omitempty"`
	MinRating  float64 `json:"min_rating"`
	MinReviews int     `json:"min_reviews"`
}

// MetaResponse carries the paging metadata of a search response.
type MetaResponse struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalPages int `json:"total_pages"`
}

// SearchResponse is the response envelope of the search endpoint.
type SearchResponse struct {
	Query   string            `json:"query"`
	Filters FiltersResponse   `json:"filters"`
	Meta    MetaResponse      `json:"meta"`
	Results []catalog.Subject `json:"results"`
}

// searchRequest is the JSON body accepted by POST /api/search. Field
// semantics match the GET query parameters of the same names.
type searchRequest struct {
	Query      string  `json:"q"`
	Type       string  `json:"type"`
	City       string  `json:"city"`
	MinRating  float64 `json:"min_rating"`
	MinReviews int     `json:"min_reviews"`
	Page       int     `json:"page"`
	PageSize   int     `json:"page_size"`
}

type CitiesResponse struct {
	Cities []string `json:"cities"`
	Count  int      `json:"count"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
}
