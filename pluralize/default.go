package pluralize

// defaultEngine backs the package-level convenience functions. It is
// seeded once at load; callers needing custom rules build their own engine
// with New or NewDefault so tests and libraries stay isolated.
var defaultEngine = NewDefault()

// Plural returns the plural form of word using the default engine.
func Plural(word string) string {
	return defaultEngine.Plural(word)
}

// Singular returns the singular form of word using the default engine.
func Singular(word string) string {
	return defaultEngine.Singular(word)
}

// IsPlural reports whether word is a plural form per the default engine.
func IsPlural(word string) bool {
	return defaultEngine.IsPlural(word)
}

// IsSingular reports whether word is a singular form per the default engine.
func IsSingular(word string) bool {
	return defaultEngine.IsSingular(word)
}

// Pluralize transforms word by count using the default engine. With
// inclusive set, the count prefixes the result.
func Pluralize(word string, count int, inclusive bool) string {
	return defaultEngine.Pluralize(word, count, inclusive)
}
