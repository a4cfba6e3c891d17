package pluralize

import (
	"regexp"
	"strconv"
)

// placeholderPattern matches $N references in rule templates. N is one or
// two digits, so templates can address capture groups 0 through 99.
var placeholderPattern = regexp.MustCompile(`\$(\d{1,2})`)

// interpolate expands $N placeholders in template against the captured
// groups of a match. captures[0] is the whole match; a reference to an
// absent group expands to the empty string.
func interpolate(template string, captures []string) string {
	return placeholderPattern.ReplaceAllStringFunc(template, func(placeholder string) string {
		index, err := strconv.Atoi(placeholder[1:])
		if err != nil || index >= len(captures) {
			return ""
		}
		return captures[index]
	})
}
