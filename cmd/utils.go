package cmd

import (
	"sort"
	"strings"

	"github.com/placera/placera/pkg/config"
	"github.com/placera/placera/pkg/lexicon"
	"github.com/placera/placera/pkg/storage"
)

// openStore opens the catalog database referenced by the configuration.
func openStore(cfg *config.Config) (*storage.Store, error) {
	return storage.Open(cfg.DBPath)
}

// buildLexicon merges the configuration's lexicon extensions into the
// built-in tables and freezes the result.
func buildLexicon(cfg *config.Config) *lexicon.Lexicon {
	tables := lexicon.DefaultTables()
	tables.Cities = append(tables.Cities, cfg.Lexicon.ExtraCities...)
	tables.Stopwords = append(tables.Stopwords, cfg.Lexicon.ExtraStopwords...)
	for miss, canon := range cfg.Lexicon.Corrections {
		tables.Corrections[miss] = canon
	}

	// New categories append in sorted order so the expansion key order, which
	// category inference ranks against, stays deterministic across restarts.
	newExpansions := make(map[string][]string)
	for category, subtypes := range cfg.Lexicon.ExtraExpansions {
		category = strings.ToLower(category)
		merged := false
		for i := range tables.Expansions {
			if tables.Expansions[i].Category == category {
				tables.Expansions[i].Subtypes = append(tables.Expansions[i].Subtypes, subtypes...)
				merged = true
				break
			}
		}
		if !merged {
			newExpansions[category] = subtypes
		}
	}
	newCategories := make([]string, 0, len(newExpansions))
	for category := range newExpansions {
		newCategories = append(newCategories, category)
	}
	sort.Strings(newCategories)
	for _, category := range newCategories {
		tables.Expansions = append(tables.Expansions, lexicon.Expansion{
			Category: category,
			Subtypes: newExpansions[category],
		})
	}

	return lexicon.New(tables)
}
