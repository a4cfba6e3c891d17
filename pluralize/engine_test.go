package pluralize

import "testing"

func TestPlural(t *testing.T) {
	tests := []struct {
		singular string
		plural   string
	}{
		// Regular plurals (append s).
		{"cat", "cats"},
		{"dog", "dogs"},
		{"book", "books"},
		{"boy", "boys"},
		{"day", "days"},

		// Sibilant endings (append es).
		{"peach", "peaches"},
		{"church", "churches"},
		{"box", "boxes"},
		{"kiss", "kisses"},

		// Endings in us.
		{"bus", "buses"},
		{"status", "statuses"},
		{"alias", "aliases"},

		// Consonant + y.
		{"city", "cities"},
		{"baby", "babies"},

		// f and fe endings.
		{"wolf", "wolves"},
		{"knife", "knives"},
		{"life", "lives"},
		{"leaf", "leaves"},
		{"half", "halves"},

		// Consonant + o.
		{"hero", "heroes"},
		{"tomato", "tomatoes"},
		{"potato", "potatoes"},
		{"photo", "photos"},
		{"piano", "pianos"},

		// Latin and Greek endings.
		{"matrix", "matrices"},
		{"index", "indices"},
		{"vertex", "vertices"},
		{"axis", "axes"},
		{"analysis", "analyses"},
		{"thesis", "theses"},
		{"crisis", "crises"},
		{"basis", "bases"},
		{"criterion", "criteria"},
		{"phenomenon", "phenomena"},
		{"datum", "data"},
		{"bacterium", "bacteria"},
		{"curriculum", "curricula"},
		{"syllabus", "syllabi"},
		{"fungus", "fungi"},
		{"cactus", "cacti"},
		{"focus", "foci"},
		{"seraph", "seraphim"},

		// mouse/louse family.
		{"mouse", "mice"},
		{"louse", "lice"},

		// man/person/child.
		{"person", "people"},
		{"man", "men"},
		{"woman", "women"},
		{"child", "children"},

		// Emu family keeps a bare s.
		{"emu", "emus"},
		{"menu", "menus"},

		// Irregular pairs.
		{"goose", "geese"},
		{"foot", "feet"},
		{"tooth", "teeth"},
		{"die", "dice"},
		{"ox", "oxen"},
		{"quiz", "quizzes"},
		{"thief", "thieves"},
		{"echo", "echoes"},
		{"volcano", "volcanoes"},
		{"human", "humans"},
		{"proof", "proofs"},
		{"passerby", "passersby"},
		{"thou", "you"},

		// Pronouns and verbs.
		{"i", "we"},
		{"me", "us"},
		{"this", "these"},
		{"that", "those"},
		{"is", "are"},
		{"was", "were"},
		{"has", "have"},

		// Uncountable words and families.
		{"sheep", "sheep"},
		{"fish", "fish"},
		{"jellyfish", "jellyfish"},
		{"deer", "deer"},
		{"reindeer", "reindeer"},
		{"rice", "rice"},
		{"information", "information"},
		{"police", "police"},
		{"series", "series"},
		{"species", "species"},
		{"chinese", "chinese"},
		{"japanese", "japanese"},
		{"pokemon", "pokemon"},
		{"pokémon", "pokémon"},
		{"chickenpox", "chickenpox"},
		{"measles", "measles"},
		{"carnivorous", "carnivorous"},

		// Already plural forms are fixed points.
		{"cats", "cats"},
		{"churches", "churches"},
		{"wolves", "wolves"},
		{"children", "children"},
		{"people", "people"},
		{"geese", "geese"},

		// Edge cases.
		{"", ""},
	}

	engine := NewDefault()
	for _, tt := range tests {
		t.Run(tt.singular, func(t *testing.T) {
			result := engine.Plural(tt.singular)
			if result != tt.plural {
				t.Errorf("Plural(%q) = %q; want %q", tt.singular, result, tt.plural)
			}
		})
	}
}

func TestSingular(t *testing.T) {
	tests := []struct {
		plural   string
		singular string
	}{
		{"cats", "cat"},
		{"dogs", "dog"},
		{"peaches", "peach"},
		{"churches", "church"},
		{"boxes", "box"},
		{"kisses", "kiss"},
		{"buses", "bus"},
		{"statuses", "status"},
		{"aliases", "alias"},
		{"cities", "city"},
		{"babies", "baby"},
		{"wolves", "wolf"},
		{"knives", "knife"},
		{"lives", "life"},
		{"leaves", "leaf"},
		{"heroes", "hero"},
		{"tomatoes", "tomato"},
		{"matrices", "matrix"},
		{"indices", "index"},
		{"vertices", "vertex"},
		{"analyses", "analysis"},
		{"theses", "thesis"},
		{"crises", "crisis"},
		{"testes", "testis"},
		{"criteria", "criterion"},
		{"data", "datum"},
		{"bacteria", "bacterium"},
		{"curricula", "curriculum"},
		{"syllabi", "syllabus"},
		{"fungi", "fungus"},
		{"cacti", "cactus"},
		{"seraphim", "seraph"},
		{"mice", "mouse"},
		{"lice", "louse"},
		{"people", "person"},
		{"men", "man"},
		{"women", "woman"},
		{"children", "child"},
		{"movies", "movie"},
		{"monies", "money"},
		{"smilies", "smiley"},

		// Irregular pairs.
		{"geese", "goose"},
		{"feet", "foot"},
		{"teeth", "tooth"},
		{"dice", "die"},
		{"oxen", "ox"},
		{"quizzes", "quiz"},
		{"thieves", "thief"},
		{"axes", "axe"},
		{"passersby", "passerby"},

		// Pronouns and verbs.
		{"we", "i"},
		{"us", "me"},
		{"these", "this"},
		{"those", "that"},
		{"are", "is"},
		{"were", "was"},
		{"have", "has"},

		// Uncountable words and families.
		{"sheep", "sheep"},
		{"fish", "fish"},
		{"deer", "deer"},
		{"rice", "rice"},
		{"police", "police"},
		{"series", "series"},
		{"measles", "measles"},

		// Already singular forms are fixed points.
		{"cat", "cat"},
		{"church", "church"},
		{"wolf", "wolf"},
		{"child", "child"},
		{"person", "person"},
		{"goose", "goose"},

		// Edge cases.
		{"", ""},
	}

	engine := NewDefault()
	for _, tt := range tests {
		t.Run(tt.plural, func(t *testing.T) {
			result := engine.Singular(tt.plural)
			if result != tt.singular {
				t.Errorf("Singular(%q) = %q; want %q", tt.plural, result, tt.singular)
			}
		})
	}
}

func TestCasePreservation(t *testing.T) {
	tests := []struct {
		word     string
		expected string
	}{
		{"Bus", "Buses"},
		{"BUS", "BUSES"},
		{"Dog", "Dogs"},
		{"DOG", "DOGS"},
		{"Person", "People"},
		{"PERSON", "PEOPLE"},
		{"CHILD", "CHILDREN"},
		{"Woman", "Women"},
		{"i", "we"},
		{"I", "WE"},
	}

	engine := NewDefault()
	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			result := engine.Plural(tt.word)
			if result != tt.expected {
				t.Errorf("Plural(%q) = %q; want %q", tt.word, result, tt.expected)
			}
		})
	}

	// Title-case restoration through the irregular map.
	if got := engine.Singular("We"); got != "I" {
		t.Errorf("Singular(%q) = %q; want %q", "We", got, "I")
	}
}

func TestPluralIdempotent(t *testing.T) {
	words := []string{
		"cat", "church", "box", "city", "wolf", "knife", "hero",
		"matrix", "analysis", "criterion", "mouse", "person", "child",
		"sheep", "fish", "goose", "bus", "quiz", "tomato",
	}

	engine := NewDefault()
	for _, word := range words {
		once := engine.Plural(word)
		twice := engine.Plural(once)
		if once != twice {
			t.Errorf("Plural(Plural(%q)): got %q, then %q", word, once, twice)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	// Regular nouns outside the irregular and uncountable tables survive
	// a plural/singular round trip.
	words := []string{
		"cat", "church", "box", "city", "baby", "wolf", "knife",
		"hero", "bus", "movie", "matrix", "analysis",
	}

	engine := NewDefault()
	for _, word := range words {
		plural := engine.Plural(word)
		back := engine.Singular(plural)
		if back != word {
			t.Errorf("Singular(Plural(%q)) = %q via %q; want %q", word, back, plural, word)
		}
	}
}

func TestIsPluralIsSingular(t *testing.T) {
	tests := []struct {
		word       string
		isPlural   bool
		isSingular bool
	}{
		{"test", false, true},
		{"tests", true, false},
		{"dog", false, true},
		{"dogs", true, false},
		{"goose", false, true},
		{"geese", true, false},
		{"person", false, true},
		{"people", true, false},
		{"child", false, true},
		{"children", true, false},
		{"i", false, true},
		{"we", true, false},

		// Uncountables are both.
		{"sheep", true, true},
		{"fish", true, true},
		{"rice", true, true},
		{"police", true, true},
		{"series", true, true},
	}

	engine := NewDefault()
	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			if got := engine.IsPlural(tt.word); got != tt.isPlural {
				t.Errorf("IsPlural(%q) = %v; want %v", tt.word, got, tt.isPlural)
			}
			if got := engine.IsSingular(tt.word); got != tt.isSingular {
				t.Errorf("IsSingular(%q) = %v; want %v", tt.word, got, tt.isSingular)
			}
		})
	}
}

func TestPluralizeCount(t *testing.T) {
	tests := []struct {
		word      string
		count     int
		inclusive bool
		expected  string
	}{
		{"peach", 1, false, "peach"},
		{"peach", 2, false, "peaches"},
		{"peach", 2, true, "2 peaches"},
		{"peach", 0, true, "0 peaches"},
		{"peach", 1, true, "1 peach"},
		{"goose", 5, true, "5 geese"},
		{"sheep", 3, true, "3 sheep"},
		{"peaches", 1, false, "peach"},
	}

	engine := NewDefault()
	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			result := engine.Pluralize(tt.word, tt.count, tt.inclusive)
			if result != tt.expected {
				t.Errorf("Pluralize(%q, %d, %v) = %q; want %q", tt.word, tt.count, tt.inclusive, result, tt.expected)
			}
		})
	}
}

func TestEmptyEngine(t *testing.T) {
	// With no rules registered every word passes through unchanged.
	engine := New()

	for _, word := range []string{"", "cat", "geese", "Sheep"} {
		if got := engine.Plural(word); got != word {
			t.Errorf("Plural(%q) on empty engine = %q; want unchanged", word, got)
		}
		if got := engine.Singular(word); got != word {
			t.Errorf("Singular(%q) on empty engine = %q; want unchanged", word, got)
		}
	}
}

func TestDefaultEngineFunctions(t *testing.T) {
	if got := Plural("peach"); got != "peaches" {
		t.Errorf("Plural(%q) = %q; want %q", "peach", got, "peaches")
	}
	if got := Singular("geese"); got != "goose" {
		t.Errorf("Singular(%q) = %q; want %q", "geese", got, "goose")
	}
	if !IsPlural("tests") || IsSingular("tests") {
		t.Error("expected tests to be plural only")
	}
	if !IsSingular("test") || IsPlural("test") {
		t.Error("expected test to be singular only")
	}
	if got := Pluralize("peach", 2, true); got != "2 peaches" {
		t.Errorf("Pluralize(%q, 2, true) = %q; want %q", "peach", got, "2 peaches")
	}
}
