package cmd

import (
	"reflect"
	"testing"

	"github.com/placera/placera/pkg/config"
)

func TestBuildLexiconMergesExtensions(t *testing.T) {
	cfg := &config.Config{
		Lexicon: config.LexiconConfig{
			ExtraCities:    []string{"springfield"},
			ExtraStopwords: []string{"yo"},
			Corrections:    map[string]string{"sprngfield": "springfield"},
		},
	}

	lex := buildLexicon(cfg)

	if !lex.IsCity("springfield") {
		t.Error("extra city not merged")
	}
	if !lex.IsStopword("yo") {
		t.Error("extra stopword not merged")
	}
	if got := lex.Correct("sprngfield"); got != "springfield" {
		t.Errorf("Correct(\"sprngfield\") = %q, want %q", got, "springfield")
	}
	// Built-ins survive the merge.
	if !lex.IsCity("denver") || !lex.IsStopword("in") {
		t.Error("built-in tables lost during merge")
	}
}

func TestBuildLexiconMergesExpansions(t *testing.T) {
	cfg := &config.Config{
		Lexicon: config.LexiconConfig{
			ExtraExpansions: map[string][]string{
				"cafe":   {"juice bar"},
				"museum": {"art museum", "science museum"},
			},
		},
	}

	lex := buildLexicon(cfg)

	// Subtypes for a built-in category append to its list.
	cafe := lex.Expand("cafe")
	want := []string{"cafe", "coffee shop", "bakery", "tea house", "juice bar"}
	if !reflect.DeepEqual(cafe, want) {
		t.Errorf("Expand(\"cafe\") = %v, want %v", cafe, want)
	}

	// Unknown categories become new expansion entries and join the key set
	// that category inference ranks against.
	museum := lex.Expand("museum")
	if !reflect.DeepEqual(museum, []string{"art museum", "science museum"}) {
		t.Errorf("Expand(\"museum\") = %v, want the configured subtypes", museum)
	}

	categories := lex.Categories()
	if categories[len(categories)-1] != "museum" {
		t.Errorf("categories = %v, want \"museum\" appended last", categories)
	}
}

func TestBuildLexiconWithoutExtensions(t *testing.T) {
	lex := buildLexicon(&config.Config{})

	got := lex.Categories()
	want := []string{"restaurant", "cafe", "bar", "gym", "hotel", "salon"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("categories = %v, want the built-in set %v", got, want)
	}
}
