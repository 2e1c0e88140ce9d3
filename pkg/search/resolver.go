package search

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/placera/placera/pkg/catalog"
	"github.com/placera/placera/pkg/lexicon"
	"github.com/placera/placera/pkg/log"
	"github.com/placera/placera/pkg/match"
	"github.com/placera/placera/pkg/query"
)

const (
	// cityCorrectionThreshold is the rating a fuzzy city match must strictly
	// exceed to be adopted. Exactly 0.7 is not enough.
	cityCorrectionThreshold = 0.7

	// fallbackScoreThreshold is the rating a similarity contribution must
	// strictly exceed to count toward a subject's fallback score.
	fallbackScoreThreshold = 0.4
)

// Results is the response envelope of one resolved search: the echoed query,
// the resolved filters, paging metadata and the result page.
type Results struct {
	Query      string
	Type       string
	City       string
	RatingMin  float64
	ReviewsMin int
	Total      int
	Page       int
	PageSize   int
	TotalPages int
	Subjects   []catalog.Subject
}

// Resolver orchestrates parsing, correction, filtered search and the fuzzy
// fallback into a single ranked, paginated response. It never mutates catalog
// data and keeps no per-request state, so one Resolver serves concurrent
// requests.
type Resolver struct {
	store   catalog.Store
	lex     *lexicon.Lexicon
	parser  *query.Parser
	matcher *match.Matcher
	logger  *log.Logger
}

// NewResolver creates a Resolver over the given store and lexicon.
func NewResolver(store catalog.Store, lex *lexicon.Lexicon) *Resolver {
	return &Resolver{
		store:   store,
		lex:     lex,
		parser:  query.NewParser(lex),
		matcher: match.New(),
		logger:  log.ForComponent("resolver"),
	}
}

// Resolve executes the full resolution pipeline for one request. A store
// failure aborts the request; no partial results are returned.
func (r *Resolver) Resolve(ctx context.Context, p Params) (*Results, error) {
	p = p.withDefaults()

	parsed := r.parser.Parse(p.Query)
	freeText := parsed.Query

	typ := p.Type
	if typ == "" {
		typ = parsed.Type
	}
	city := p.City
	if city == "" {
		city = parsed.City
	}

	if city == "" {
		corrected, err := r.correctCity(ctx, p.Query)
		if err != nil {
			return nil, err
		}
		city = corrected
	}

	if typ == "" && freeText != "" {
		if best, err := r.matcher.BestMatch(freeText, r.lex.Categories()); err == nil && best.Rating > 0 {
			r.logger.Debugf("inferred category %q from %q (rating %.3f)", best.Target, freeText, best.Rating)
			typ = best.Target
		}
	}

	if typ != "" {
		typ = singularize(strings.ToLower(typ))
	}

	filter := catalog.Filter{
		NameQuery:  freeText,
		City:       city,
		RatingMin:  p.RatingMin,
		ReviewsMin: p.ReviewsMin,
	}
	if typ != "" {
		filter.Types = r.lex.Expand(typ)
	}

	offset := (p.Page - 1) * p.PageSize
	subjects, total, err := r.store.FilteredSearch(ctx, filter, p.PageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("searching catalog: %w", err)
	}

	if total == 0 && (freeText != "" || typ != "" || city != "") {
		subjects, total, err = r.fuzzyFallback(ctx, freeText, typ, city, p.PageSize)
		if err != nil {
			return nil, err
		}
	}

	return &Results{
		Query:      p.Query,
		Type:       typ,
		City:       city,
		RatingMin:  p.RatingMin,
		ReviewsMin: p.ReviewsMin,
		Total:      total,
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalPages: totalPages(total, p.PageSize),
		Subjects:   subjects,
	}, nil
}

// correctCity fuzzy-matches the raw query against the catalog's distinct
// cities: the whole lowercased query first, then token by token, adopting the
// first match that strictly exceeds the threshold. An empty city list makes
// the whole pass a no-op.
func (r *Resolver) correctCity(ctx context.Context, rawQuery string) (string, error) {
	cities, err := r.store.DistinctCities(ctx)
	if err != nil {
		return "", fmt.Errorf("listing cities: %w", err)
	}

	raw := strings.ToLower(strings.TrimSpace(rawQuery))

	best, err := r.matcher.BestMatch(raw, cities)
	if err != nil {
		// No cities in the catalog, nothing to correct against.
		return "", nil
	}
	if best.Rating > cityCorrectionThreshold {
		r.logger.Debugf("corrected city to %q from full query (rating %.3f)", best.Target, best.Rating)
		return best.Target, nil
	}

	for _, tok := range strings.Fields(raw) {
		if best, err := r.matcher.BestMatch(tok, cities); err == nil && best.Rating > cityCorrectionThreshold {
			r.logger.Debugf("corrected city to %q from token %q (rating %.3f)", best.Target, tok, best.Rating)
			return best.Target, nil
		}
	}

	return "", nil
}

// fuzzyFallback ranks the whole catalog (scoped to city when set) by additive
// name and type similarity. A case-insensitive exact name match short-circuits
// scoring entirely. The returned total counts only subjects that made the page
// cut; fallback pagination never goes beyond the first page.
func (r *Resolver) fuzzyFallback(ctx context.Context, freeText, typ, city string, pageSize int) ([]catalog.Subject, int, error) {
	subjects, err := r.store.AllSubjects(ctx, city)
	if err != nil {
		return nil, 0, fmt.Errorf("loading subjects: %w", err)
	}

	if freeText == "" {
		return nil, 0, nil
	}

	for _, subject := range subjects {
		if strings.EqualFold(subject.Name, freeText) {
			return []catalog.Subject{subject}, 1, nil
		}
	}

	// Transient per-request score arena keyed by subject id. Contributions
	// from the name and type passes accumulate; both passes can score the
	// same subject.
	scores := make(map[int64]float64, len(subjects))
	byID := make(map[int64]catalog.Subject, len(subjects))
	for _, subject := range subjects {
		if err := ctx.Err(); err != nil {
			return nil, 0, err
		}

		byID[subject.ID] = subject
		if rating := r.matcher.Similarity(freeText, subject.Name); rating > fallbackScoreThreshold {
			scores[subject.ID] += rating
		}
		if typ != "" {
			if rating := r.matcher.Similarity(typ, subject.Type); rating > fallbackScoreThreshold {
				scores[subject.ID] += rating
			}
		}
	}

	type scored struct {
		id    int64
		score float64
	}
	ranked := make([]scored, 0, len(scores))
	for id, score := range scores {
		ranked = append(ranked, scored{id: id, score: score})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		return ranked[i].id < ranked[j].id
	})
	if len(ranked) > pageSize {
		ranked = ranked[:pageSize]
	}

	out := make([]catalog.Subject, 0, len(ranked))
	for _, sc := range ranked {
		out = append(out, byID[sc.id])
	}
	return out, len(out), nil
}

// singularize strips a single trailing "s". There is no exception list, so
// "bus" becomes "bu"; the expansion table is keyed accordingly.
func singularize(category string) string {
	return strings.TrimSuffix(category, "s")
}

// totalPages computes ceil(total / pageSize); zero totals yield zero pages.
func totalPages(total, pageSize int) int {
	if total <= 0 || pageSize <= 0 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}
