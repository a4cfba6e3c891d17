package pluralize

import (
	"fmt"
	"regexp"
)

// Pattern identifies the words a rule applies to. It is either a literal
// word, a regular-expression source, or a pre-compiled regular expression.
// Build one with Word, Expr, or Regexp.
type Pattern struct {
	kind   patternKind
	source string
	re     *regexp.Regexp
}

type patternKind int

const (
	patternWord patternKind = iota
	patternExpr
	patternRegexp
)

// Word matches a single literal word, whole and case-insensitively.
func Word(word string) Pattern {
	return Pattern{kind: patternWord, source: word}
}

// Expr matches a regular-expression source, compiled case-insensitively
// when the pattern is registered. Anchoring is the caller's responsibility;
// most rules anchor at the end of the word ("gex$").
func Expr(expr string) Pattern {
	return Pattern{kind: patternExpr, source: expr}
}

// Regexp wraps an already-compiled regular expression, used as given.
func Regexp(re *regexp.Regexp) Pattern {
	return Pattern{kind: patternRegexp, re: re}
}

// Validate reports whether the pattern compiles. Registration performs the
// same check; Validate lets callers reject a batch of patterns before
// mutating an engine.
func (p Pattern) Validate() error {
	_, err := p.compile()
	return err
}

// compile resolves the pattern to a matcher. Word sources are anchored to
// the whole word; expression sources are compiled as written apart from the
// case-insensitivity flag.
func (p Pattern) compile() (*regexp.Regexp, error) {
	switch p.kind {
	case patternWord:
		return regexp.Compile("(?i)^" + p.source + "$")
	case patternExpr:
		return regexp.Compile("(?i)" + p.source)
	default:
		if p.re == nil {
			return nil, fmt.Errorf("nil regexp in pattern")
		}
		return p.re, nil
	}
}

// isWord reports whether the pattern is a literal word. Literal words get
// exact-match treatment in the uncountable set; everything else becomes a
// self-mapping rule.
func (p Pattern) isWord() bool {
	return p.kind == patternWord
}
