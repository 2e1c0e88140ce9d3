// Package query turns a raw search string into structured hints: residual
// free text, an inferred category and an inferred city.
package query

import (
	"strings"

	"github.com/placera/placera/pkg/lexicon"
)

// Parsed is the structured form of one raw query. Empty fields mean "not
// recognized"; callers distinguish absence from an empty string by the zero
// value.
type Parsed struct {
	// Query is the residual free text after stopwords, the recognized city
	// and the recognized category token have been removed.
	Query string

	// Type is the canonical category name of the last token that matched a
	// synonym group.
	Type string

	// City is the first token that matched a known city.
	City string
}

// Parser tokenizes raw input against an immutable lexicon. Parsing is pure:
// identical input and lexicon always produce identical output.
type Parser struct {
	lex *lexicon.Lexicon
}

// NewParser creates a Parser over the given lexicon.
func NewParser(lex *lexicon.Lexicon) *Parser {
	return &Parser{lex: lex}
}

// Parse lowercases the input, splits it on whitespace and classifies each
// token in order. Corrections apply before any matching. City assignment is
// first-wins and consumes the token; category assignment is overwrite-on-match
// (last matching token wins) and the token stays in the remaining set. The
// asymmetry mirrors the original resolution behavior and is kept on purpose.
func (p *Parser) Parse(input string) Parsed {
	var out Parsed

	tokens := strings.Fields(strings.ToLower(input))
	remaining := make([]string, 0, len(tokens))

	for _, tok := range tokens {
		tok = p.lex.Correct(tok)

		if out.City == "" && p.lex.IsCity(tok) {
			out.City = tok
			continue
		}

		if canonical, ok := p.lex.CanonicalCategory(tok); ok {
			out.Type = canonical
		}
		remaining = append(remaining, tok)
	}

	kept := make([]string, 0, len(remaining))
	for _, tok := range remaining {
		if tok == out.City || tok == out.Type || p.lex.IsStopword(tok) {
			continue
		}
		kept = append(kept, tok)
	}
	out.Query = strings.Join(kept, " ")

	return out
}
