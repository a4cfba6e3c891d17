package pluralize

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// restoreCase reapplies the casing style of source onto candidate: exact
// match, all-lower, all-upper, or title case. Mixed-case sources (camelCase
// and friends) fall back to lower case.
func restoreCase(source, candidate string) string {
	if source == candidate {
		return candidate
	}
	if source == strings.ToLower(source) {
		return strings.ToLower(candidate)
	}
	if source == strings.ToUpper(source) {
		return strings.ToUpper(candidate)
	}
	if first, _ := utf8.DecodeRuneInString(source); unicode.IsUpper(first) {
		return titleCase(candidate)
	}
	return strings.ToLower(candidate)
}

// titleCase upper-cases the first rune and lower-cases the rest.
func titleCase(s string) string {
	first, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(first)) + strings.ToLower(s[size:])
}
