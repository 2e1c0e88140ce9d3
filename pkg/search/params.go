package search

import (
	"net/url"
	"strconv"
)

// Defaults applied when a request omits paging or filter parameters, or
// supplies values that don't parse.
const (
	DefaultPage     = 1
	DefaultPageSize = 10
)

// Params represents all parameters of one search request.
type Params struct {
	// Query is the raw free-text search string.
	Query string

	// Type is an explicit category filter. When set it takes precedence over
	// any category parsed out of Query.
	Type string

	// City is an explicit city filter. When set it takes precedence over any
	// city parsed out of Query.
	City string

	// RatingMin keeps subjects rated at least this high when > 0.
	RatingMin float64

	// ReviewsMin keeps subjects with at least this many reviews when > 0.
	ReviewsMin int

	// Page is the 1-based page number.
	Page int

	// PageSize is the maximum number of results per page.
	PageSize int
}

// withDefaults replaces out-of-range values with the documented defaults.
func (p Params) withDefaults() Params {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.PageSize < 1 {
		p.PageSize = DefaultPageSize
	}
	if p.RatingMin < 0 {
		p.RatingMin = 0
	}
	if p.ReviewsMin < 0 {
		p.ReviewsMin = 0
	}
	return p
}

// ParseParams parses HTTP query parameters into Params. Invalid or missing
// numeric parameters are left unset rather than erroring; Resolve (or the
// caller, for a configured page size) substitutes defaults for unset values.
//
// Supported parameters:
//   - q: free-text search query
//   - type: explicit category filter
//   - city: explicit city filter
//   - min_rating: minimum average rating (float)
//   - min_reviews: minimum review count (positive integer)
//   - page: page number (positive integer, defaults to 1)
//   - page_size: results per page (positive integer, defaults to 10)
func ParseParams(values url.Values) Params {
	var p Params

	p.Query = values.Get("q")
	p.Type = values.Get("type")
	p.City = values.Get("city")

	if v := values.Get("min_rating"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			p.RatingMin = parsed
		}
	}
	if v := values.Get("min_reviews"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			p.ReviewsMin = parsed
		}
	}
	if v := values.Get("page"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			p.Page = parsed
		}
	}
	if v := values.Get("page_size"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			p.PageSize = parsed
		}
	}

	return p
}
