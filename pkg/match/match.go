// Package match wraps the string similarity primitive used by the resolution
// pipeline: a case-insensitive Sørensen–Dice bigram coefficient. Ratings are
// in [0, 1], 1 meaning identical. The metric is symmetric and degrades with
// edit distance, which is all the pipeline relies on.
package match

import (
	"errors"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

// ErrNoCandidates is returned by BestMatch when the candidate set is empty.
// Callers treat it as "nothing to correct against" rather than a failure.
var ErrNoCandidates = errors.New("match: no candidates")

// Match is the winning candidate of a BestMatch call.
type Match struct {
	Target string
	Rating float64
}

// Matcher scores string pairs. It is stateless apart from the metric
// configuration and safe for concurrent use.
type Matcher struct {
	metric *metrics.SorensenDice
}

// New creates a Matcher using bigram Sørensen–Dice, case-insensitive.
func New() *Matcher {
	m := metrics.NewSorensenDice()
	m.CaseSensitive = false
	m.NgramSize = 2
	return &Matcher{metric: m}
}

// Similarity rates the similarity of a and b in [0, 1].
func (m *Matcher) Similarity(a, b string) float64 {
	return strutil.Similarity(a, b, m.metric)
}

// BestMatch returns the highest-rated candidate for query. Ties are broken by
// first occurrence in the candidate slice. An empty candidate slice yields
// ErrNoCandidates.
func (m *Matcher) BestMatch(query string, candidates []string) (Match, error) {
	if len(candidates) == 0 {
		return Match{}, ErrNoCandidates
	}

	best := Match{Target: candidates[0], Rating: m.Similarity(query, candidates[0])}
	for _, c := range candidates[1:] {
		if rating := m.Similarity(query, c); rating > best.Rating {
			best = Match{Target: c, Rating: rating}
		}
	}
	return best, nil
}
