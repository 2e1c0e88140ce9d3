// Package lexicon holds the static vocabulary the query parser and resolution
// pipeline work with: stopwords, known cities, category synonym groups, a
// misspelling correction map and the category-to-subtype expansion table.
//
// A Lexicon is built once at startup and never mutated afterwards, so it can be
// shared freely across concurrent requests.
package lexicon

import "strings"

// Group maps a canonical category name to the synonym tokens that select it
// during query parsing. Group order matters: the first group containing a
// token wins.
type Group struct {
	Canonical string
	Synonyms  []string
}

// Expansion maps a filter-level category to the finer-grained subtype labels
// actually stored on subjects. Order matters for deterministic fuzzy
// inference over the category names.
type Expansion struct {
	Category string
	Subtypes []string
}

// Tables is the raw material a Lexicon is built from. Callers may extend the
// default tables (e.g. from configuration) before constructing the Lexicon.
type Tables struct {
	Stopwords   []string
	Cities      []string
	Groups      []Group
	Corrections map[string]string
	Expansions  []Expansion
}

type group struct {
	canonical string
	synonyms  map[string]struct{}
}

// Lexicon is an immutable set of lookup tables. All lookups are performed on
// lowercase tokens; the constructor folds every table entry accordingly.
type Lexicon struct {
	stopwords   map[string]struct{}
	cities      map[string]struct{}
	groups      []group
	corrections map[string]string
	expansions  map[string][]string
	categories  []string
}

// New builds a Lexicon from the given tables. The tables are copied; later
// modification of the input does not affect the Lexicon.
func New(t Tables) *Lexicon {
	lex := &Lexicon{
		stopwords:   make(map[string]struct{}, len(t.Stopwords)),
		cities:      make(map[string]struct{}, len(t.Cities)),
		corrections: make(map[string]string, len(t.Corrections)),
		expansions:  make(map[string][]string, len(t.Expansions)),
	}

	for _, w := range t.Stopwords {
		lex.stopwords[strings.ToLower(w)] = struct{}{}
	}
	for _, c := range t.Cities {
		lex.cities[strings.ToLower(c)] = struct{}{}
	}
	for _, g := range t.Groups {
		syn := make(map[string]struct{}, len(g.Synonyms))
		for _, s := range g.Synonyms {
			syn[strings.ToLower(s)] = struct{}{}
		}
		lex.groups = append(lex.groups, group{
			canonical: strings.ToLower(g.Canonical),
			synonyms:  syn,
		})
	}
	for miss, canon := range t.Corrections {
		lex.corrections[strings.ToLower(miss)] = strings.ToLower(canon)
	}
	for _, e := range t.Expansions {
		cat := strings.ToLower(e.Category)
		subtypes := make([]string, 0, len(e.Subtypes))
		for _, s := range e.Subtypes {
			subtypes = append(subtypes, strings.ToLower(s))
		}
		lex.expansions[cat] = subtypes
		lex.categories = append(lex.categories, cat)
	}

	return lex
}

// Default builds a Lexicon from the built-in tables.
func Default() *Lexicon {
	return New(DefaultTables())
}

// Correct returns the canonical form of token if it appears in the correction
// map, otherwise the token unchanged. The token is expected lowercase.
func (l *Lexicon) Correct(token string) string {
	if canon, ok := l.corrections[token]; ok {
		return canon
	}
	return token
}

// IsStopword reports whether token is a stopword.
func (l *Lexicon) IsStopword(token string) bool {
	_, ok := l.stopwords[token]
	return ok
}

// IsCity reports whether token is a known city.
func (l *Lexicon) IsCity(token string) bool {
	_, ok := l.cities[token]
	return ok
}

// CanonicalCategory returns the canonical name of the first group whose
// synonym set contains token.
func (l *Lexicon) CanonicalCategory(token string) (string, bool) {
	for _, g := range l.groups {
		if _, ok := g.synonyms[token]; ok {
			return g.canonical, true
		}
	}
	return "", false
}

// Expand returns the subtype labels a filter-level category stands for. A
// category with no expansion entry expands to itself.
func (l *Lexicon) Expand(category string) []string {
	category = strings.ToLower(category)
	if subtypes, ok := l.expansions[category]; ok {
		out := make([]string, len(subtypes))
		copy(out, subtypes)
		return out
	}
	return []string{category}
}

// Categories returns the expansion table's category names in declaration
// order.
func (l *Lexicon) Categories() []string {
	out := make([]string, len(l.categories))
	copy(out, l.categories)
	return out
}
