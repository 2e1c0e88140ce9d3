// Package search implements the query resolution pipeline of placera.
//
// # Overview
//
// The pipeline turns an ambiguous free-text request into structured filters
// (residual query text, category, city) and a ranked, paginated result set,
// tolerating misspellings in city names, category names and subject names.
// It serves as the search backend for both the REST API and the CLI.
//
// # Resolution steps
//
// A request flows through the following stages, each feeding the next:
//
//   - Parse the raw query into free text, category and city hints
//   - Merge with explicit filters (explicit values win over parsed ones)
//   - City correction: fuzzy-match the raw query against the catalog's
//     distinct cities when no city was recognized (strict > 0.7 rating,
//     whole-string first, then per-token)
//   - Category inference: fuzzy-match the free text against the expansion
//     table's category names when no category was recognized (any nonzero
//     rating is accepted)
//   - Category normalization: lowercase plus stripping one trailing "s"
//   - Primary filtered search against the store with LIMIT/OFFSET pagination
//     and a pagination-independent total
//   - Fuzzy fallback when the primary search matches nothing: additive
//     similarity scoring of names and types with an exact-name short circuit
//
// # Usage
//
//	resolver := search.NewResolver(store, lexicon.Default())
//	params := search.ParseParams(r.URL.Query())
//	results, err := resolver.Resolve(r.Context(), params)
//
// Store failures abort the pipeline; no partial results are ever returned.
package search
