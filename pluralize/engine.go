package pluralize

import (
	"fmt"
	"regexp"
	"strings"
	"sync"
)

// rule pairs a compiled matcher with a replacement template. Templates may
// reference the matcher's capture groups with $N placeholders; $0 is the
// whole match.
type rule struct {
	re       *regexp.Regexp
	template string
}

// Engine converts words between singular and plural forms. It owns two
// ordered rule lists (one per direction), an irregular-word map, and an
// uncountable-word set. Rule registration may run concurrently with
// queries; a single writer lock serializes mutations.
type Engine struct {
	mu sync.RWMutex

	pluralRules   []rule
	singularRules []rule

	// irregularSingles maps singular → plural, irregularPlurals the
	// reverse. Both sides are stored lowercased.
	irregularSingles map[string]string
	irregularPlurals map[string]string

	uncountables map[string]struct{}
}

// New returns an engine with no rules registered. An empty engine returns
// every word unchanged; most callers want NewDefault.
func New() *Engine {
	return &Engine{
		irregularSingles: make(map[string]string),
		irregularPlurals: make(map[string]string),
		uncountables:     make(map[string]struct{}),
	}
}

// Plural returns the plural form of word, preserving its casing style.
func (e *Engine) Plural(word string) string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.replaceWord(word, e.irregularSingles, e.irregularPlurals, e.pluralRules)
}

// Singular returns the singular form of word, preserving its casing style.
func (e *Engine) Singular(word string) string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.replaceWord(word, e.irregularPlurals, e.irregularSingles, e.singularRules)
}

// IsPlural reports whether word is already a plural form. Uncountable
// words count as both singular and plural.
func (e *Engine) IsPlural(word string) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.checkWord(word, e.irregularSingles, e.irregularPlurals, e.pluralRules)
}

// IsSingular reports whether word is already a singular form.
func (e *Engine) IsSingular(word string) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.checkWord(word, e.irregularPlurals, e.irregularSingles, e.singularRules)
}

// Pluralize transforms word by count: the singular form for a count of
// one, the plural form otherwise. With inclusive set, the count prefixes
// the result ("2 peaches").
func (e *Engine) Pluralize(word string, count int, inclusive bool) string {
	var result string
	if count == 1 {
		result = e.Singular(word)
	} else {
		result = e.Plural(word)
	}
	if inclusive {
		return fmt.Sprintf("%d %s", count, result)
	}
	return result
}

// AddPluralRule registers a pluralization rule. Rules registered later take
// precedence over every earlier rule, built-ins included. A pattern that
// fails to compile is rejected without touching the rule store.
func (e *Engine) AddPluralRule(pattern Pattern, template string) error {
	re, err := pattern.compile()
	if err != nil {
		return fmt.Errorf("invalid plural rule pattern: %w", err)
	}
	e.appendPlural(re, template)
	return nil
}

// AddSingularRule registers a singularization rule. It follows the same
// precedence and validation behavior as AddPluralRule.
func (e *Engine) AddSingularRule(pattern Pattern, template string) error {
	re, err := pattern.compile()
	if err != nil {
		return fmt.Errorf("invalid singular rule pattern: %w", err)
	}
	e.appendSingular(re, template)
	return nil
}

// AddIrregularRule registers a singular/plural pair that bypasses rule
// matching in both directions. Both forms are lowercased for storage;
// lookups restore the caller's casing on output.
func (e *Engine) AddIrregularRule(single, plural string) {
	single = strings.ToLower(single)
	plural = strings.ToLower(plural)

	e.mu.Lock()
	defer e.mu.Unlock()
	e.irregularSingles[single] = plural
	e.irregularPlurals[plural] = single
}

// AddUncountableRule marks a word, or a whole pattern family, as having no
// distinct plural form. A literal word becomes an exact-match exemption
// checked before anything else. A pattern is registered as a self-mapping
// rule in both directions, so it competes with other rules under the usual
// most-recent-first priority rather than as an absolute override.
func (e *Engine) AddUncountableRule(pattern Pattern) error {
	if pattern.isWord() {
		e.markUncountable(pattern.source)
		return nil
	}
	if err := e.AddPluralRule(pattern, "$0"); err != nil {
		return err
	}
	return e.AddSingularRule(pattern, "$0")
}

func (e *Engine) appendPlural(re *regexp.Regexp, template string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.pluralRules = append(e.pluralRules, rule{re: re, template: template})
}

func (e *Engine) appendSingular(re *regexp.Regexp, template string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.singularRules = append(e.singularRules, rule{re: re, template: template})
}

func (e *Engine) markUncountable(word string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.uncountables[strings.ToLower(word)] = struct{}{}
}

// replaceWord answers a transformation query. keep holds words already in
// the target form, replace maps words to their irregular counterpart.
// Callers hold at least a read lock.
func (e *Engine) replaceWord(word string, replace, keep map[string]string, rules []rule) string {
	token := strings.ToLower(word)

	if _, ok := e.uncountables[token]; ok {
		return word
	}
	if _, ok := keep[token]; ok {
		return restoreCase(word, token)
	}
	if counterpart, ok := replace[token]; ok {
		return restoreCase(word, counterpart)
	}
	return applyRules(token, word, rules)
}

// checkWord answers a form-predicate query: a word already in the target
// form is recognized either by the irregular keep side or by being a fixed
// point of the transformation. Callers hold at least a read lock.
func (e *Engine) checkWord(word string, replace, keep map[string]string, rules []rule) bool {
	token := strings.ToLower(word)

	if _, ok := e.uncountables[token]; ok {
		return true
	}
	if _, ok := keep[token]; ok {
		return true
	}
	if _, ok := replace[token]; ok {
		return false
	}
	return applyRules(token, token, rules) == token
}

// applyRules scans rules from most recently registered to earliest and
// applies the first one that matches. The rules carry the case-insensitive
// flag, so matching word directly is equivalent to matching the lowercased
// token while keeping original-case text available for capture groups.
func applyRules(token, word string, rules []rule) string {
	if token == "" {
		return word
	}
	for i := len(rules) - 1; i >= 0; i-- {
		if loc := rules[i].re.FindStringSubmatchIndex(word); loc != nil {
			return substitute(word, rules[i], loc)
		}
	}
	return word
}

// substitute splices a matched rule into word: the matched span is replaced
// by the interpolated template, case-restored against the matched text. A
// zero-width match (a bare end-of-word anchor consuming no characters)
// borrows its casing from the character immediately before the match.
func substitute(word string, r rule, loc []int) string {
	captures := make([]string, len(loc)/2)
	for i := range captures {
		if loc[2*i] >= 0 {
			captures[i] = word[loc[2*i]:loc[2*i+1]]
		}
	}

	replacement := interpolate(r.template, captures)
	start, end := loc[0], loc[1]
	if start == end {
		if start > 0 {
			replacement = restoreCase(word[start-1:start], replacement)
		}
	} else {
		replacement = restoreCase(captures[0], replacement)
	}
	return word[:start] + replacement + word[end:]
}
