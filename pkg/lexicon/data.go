package lexicon

// DefaultTables returns the built-in vocabulary. Multi-word city names are
// listed for completeness but the whitespace-splitting tokenizer can never
// produce them as single tokens, so they are only reachable through the
// store-driven city correction pass.
func DefaultTables() Tables {
	return Tables{
		Stopwords: []string{
			"a", "an", "the", "in", "on", "at", "near", "nearby", "me",
			"for", "of", "and", "or", "with", "around", "by", "to",
			"find", "show", "best", "top", "good", "great", "some",
			"place", "places", "spot", "spots",
		},
		Cities: []string{
			"denver", "boston", "chicago", "seattle", "portland", "austin",
			"phoenix", "miami", "atlanta", "dallas", "houston", "boulder",
			"tacoma", "omaha", "nashville",
			"new york", "san francisco",
		},
		Groups: []Group{
			{
				Canonical: "restaurants",
				Synonyms: []string{
					"restaurants", "diner", "diners", "eatery", "eateries",
					"steakhouse", "pizzeria", "bistro", "grill", "food",
				},
			},
			{
				Canonical: "cafes",
				Synonyms: []string{
					"cafes", "coffee", "espresso", "bakery", "bakeries",
				},
			},
			{
				Canonical: "bars",
				Synonyms: []string{
					"bars", "pub", "pubs", "tavern", "taverns", "brewery",
					"breweries", "drinks",
				},
			},
			{
				Canonical: "gyms",
				Synonyms: []string{
					"gyms", "fitness", "crossfit", "yoga",
				},
			},
			{
				Canonical: "hotels",
				Synonyms: []string{
					"hotels", "motel", "motels", "inn", "lodging", "stay",
				},
			},
			{
				Canonical: "salons",
				Synonyms: []string{
					"salons", "barber", "barbershop", "spa", "haircut",
				},
			},
		},
		// Corrections run before any other matching. Besides plain
		// misspellings the table routes common singular forms to the
		// canonical group token, so a recognized category token never leaks
		// into the residual free-text query.
		Corrections: map[string]string{
			"restaurant": "restaurants",
			"resturant":  "restaurants",
			"restarant":  "restaurants",
			"restaurent": "restaurants",
			"resto":      "restaurants",
			"cafe":       "cafes",
			"caffe":      "cafes",
			"cofee":      "coffee",
			"coffe":      "coffee",
			"expresso":   "espresso",
			"bar":        "bars",
			"gym":        "gyms",
			"hotel":      "hotels",
			"hotle":      "hotels",
			"salon":      "salons",
			"pizzaria":   "pizzeria",
			"denvr":      "denver",
			"bostn":      "boston",
			"seatle":     "seattle",
			"chicgo":     "chicago",
			"huston":     "houston",
		},
		Expansions: []Expansion{
			{
				Category: "restaurant",
				Subtypes: []string{
					"diner", "bistro", "steakhouse", "pizzeria", "grill",
					"fast food", "fine dining",
				},
			},
			{
				Category: "cafe",
				Subtypes: []string{
					"cafe", "coffee shop", "bakery", "tea house",
				},
			},
			{
				Category: "bar",
				Subtypes: []string{
					"pub", "tavern", "brewery", "wine bar", "cocktail bar",
				},
			},
			{
				Category: "gym",
				Subtypes: []string{
					"gym", "fitness studio", "crossfit box", "yoga studio",
				},
			},
			{
				Category: "hotel",
				Subtypes: []string{
					"hotel", "motel", "inn", "bed and breakfast",
				},
			},
			{
				Category: "salon",
				Subtypes: []string{
					"hair salon", "barbershop", "nail salon", "spa",
				},
			},
		},
	}
}
