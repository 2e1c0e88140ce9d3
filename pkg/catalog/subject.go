// Package catalog defines the core data model of placera: subjects (named
// places tagged with a category and city) and the store interface the
// resolution pipeline reads them through.
package catalog

import "context"

// Subject is a single catalog entry. Subjects are owned by the store; the
// search pipeline only ever reads snapshots of them.
type Subject struct {
	ID            int64   `json:"id" toml:"id,omitempty"`
	Name          string  `json:"name" toml:"name"`
	Type          string  `json:"type" toml:"type"`
	Location      string  `json:"location,omitempty" toml:"location,omitempty"`
	City          string  `json:"city,omitempty" toml:"city,omitempty"`
	AverageRating float64 `json:"average_rating" toml:"average_rating"`
	ReviewCount   int     `json:"review_count" toml:"review_count"`
}

// Filter describes the conjunctive conditions of a filtered catalog search.
// Zero values mean "no condition".
type Filter struct {
	// NameQuery matches as a case-insensitive substring of Subject.Name.
	NameQuery string

	// City matches Subject.City exactly, case-insensitively.
	City string

	// Types matches Subject.Type against any of the listed labels,
	// case-insensitively. Typically the subtype expansion of a filter-level
	// category.
	Types []string

	// RatingMin keeps subjects with AverageRating >= RatingMin when > 0.
	RatingMin float64

	// ReviewsMin keeps subjects with ReviewCount >= ReviewsMin when > 0.
	ReviewsMin int
}

// Store provides read access to the subject catalog. Implementations must be
// safe for concurrent readers.
type Store interface {
	// FilteredSearch returns one page of subjects matching the filter plus the
	// total number of matching rows independent of pagination.
	FilteredSearch(ctx context.Context, f Filter, limit, offset int) ([]Subject, int, error)

	// DistinctCities returns the distinct lowercase city names present in the
	// catalog.
	DistinctCities(ctx context.Context) ([]string, error)

	// AllSubjects returns every subject, scoped to a city when city is
	// non-empty (case-insensitive match).
	AllSubjects(ctx context.Context, city string) ([]Subject, error)
}
