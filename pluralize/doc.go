// Package pluralize converts English nouns (plus a handful of pronouns and
// verbs) between singular and plural forms.
//
// # Overview
//
// An Engine owns four mutable stores: an ordered list of pluralization
// rules, an ordered list of singularization rules, an irregular-word map,
// and an uncountable-word set. Queries are case-insensitive on lookup and
// case-preserving on output:
//
//	pluralize.Plural("Bus")        // "Buses"
//	pluralize.Singular("geese")    // "goose"
//	pluralize.Pluralize("peach", 2, true) // "2 peaches"
//
// # Custom Engines
//
// The package-level functions share one default-seeded engine. Callers that
// register their own rules should build an isolated engine instead:
//
//	engine := pluralize.NewDefault()
//	engine.AddPluralRule(pluralize.Expr("gex$"), "gexii")
//	engine.Plural("regex") // "regexii"
//
// # Rule Priority
//
// Within a direction, the matching scan starts at the most recently
// registered rule and proceeds backward: the most-recently-registered rule
// wins. The built-in catch-all rule (append "s" to anything) is registered
// first, so every later special case, including rules added at runtime,
// outranks it without an explicit priority field.
package pluralize
