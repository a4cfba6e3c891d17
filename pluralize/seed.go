package pluralize

import "regexp"

// NewDefault returns an engine seeded with the built-in irregular pairs,
// pluralization rules, singularization rules, and uncountable entries.
// Registration order is fixed: within each rule list, later entries win,
// and the uncountable pattern families are registered last of all so they
// outrank every suffix rule.
func NewDefault() *Engine {
	e := New()

	for _, pair := range seedIrregulars {
		e.AddIrregularRule(pair[0], pair[1])
	}
	for _, r := range seedPlurals {
		e.appendPlural(r.re, r.template)
	}
	for _, r := range seedSingulars {
		e.appendSingular(r.re, r.template)
	}
	for _, word := range seedUncountableWords {
		e.markUncountable(word)
	}
	for _, re := range seedUncountablePatterns {
		e.appendPlural(re, "$0")
		e.appendSingular(re, "$0")
	}

	return e
}

type seedRule struct {
	re       *regexp.Regexp
	template string
}

// expr compiles a case-insensitive seed pattern at package load.
func expr(pattern string) *regexp.Regexp {
	return regexp.MustCompile("(?i)" + pattern)
}

// literal compiles a whole-word matcher, the same shape Word patterns get.
func literal(word string) *regexp.Regexp {
	return regexp.MustCompile("(?i)^" + word + "$")
}

// seedIrregulars pairs singular forms with plurals that no suffix rule
// produces. Both sides double as exact-match keep-sets: a word already in
// the target form is returned as-is (case-restored).
var seedIrregulars = [][2]string{
	// Pronouns.
	{"I", "we"},
	{"me", "us"},
	{"he", "they"},
	{"she", "they"},
	{"them", "them"},
	{"myself", "ourselves"},
	{"yourself", "yourselves"},
	{"itself", "themselves"},
	{"herself", "themselves"},
	{"himself", "themselves"},
	{"themself", "themselves"},
	// Verb conjugations.
	{"is", "are"},
	{"was", "were"},
	{"has", "have"},
	{"this", "these"},
	{"that", "those"},
	// Words ending in a consonant and o.
	{"echo", "echoes"},
	{"dingo", "dingoes"},
	{"volcano", "volcanoes"},
	{"tornado", "tornadoes"},
	{"torpedo", "torpedoes"},
	// Ends with us.
	{"genus", "genera"},
	{"viscus", "viscera"},
	// Ends with ma.
	{"stigma", "stigmata"},
	{"stoma", "stomata"},
	{"dogma", "dogmata"},
	{"lemma", "lemmata"},
	{"schema", "schemata"},
	{"anathema", "anathemata"},
	// Other irregular pairs.
	{"ox", "oxen"},
	{"axe", "axes"},
	{"die", "dice"},
	{"yes", "yeses"},
	{"foot", "feet"},
	{"eave", "eaves"},
	{"goose", "geese"},
	{"tooth", "teeth"},
	{"quiz", "quizzes"},
	{"human", "humans"},
	{"proof", "proofs"},
	{"carve", "carves"},
	{"valve", "valves"},
	{"looey", "looies"},
	{"thief", "thieves"},
	{"groove", "grooves"},
	{"pickaxe", "pickaxes"},
	{"passerby", "passersby"},
	{"canvas", "canvases"},
}

// seedPlurals transforms singular suffixes to plural ones. The generic
// catch-all comes first and so carries the lowest priority; matching scans
// this list backward.
var seedPlurals = []seedRule{
	{expr(`s?$`), "s"},
	{expr(`[^\x00-\x7f]$`), "$0"},
	{expr(`([^aeiou]ese)$`), "$1"},
	{expr(`(ax|test)is$`), "$1es"},
	{expr(`(alias|[^aou]us|t[lm]as|gas|ris)$`), "$1es"},
	{expr(`(e[mn]u)s?$`), "$1s"},
	{expr(`([^l]ias|[aeiou]las|[ejzr]as|[iu]am)$`), "$1"},
	{expr(`(alumn|syllab|vir|radi|nucle|fung|cact|stimul|termin|bacill|foc|uter|loc|strat)(?:us|i)$`), "$1i"},
	{expr(`(alumn|alg|vertebr)(?:a|ae)$`), "$1ae"},
	{expr(`(seraph|cherub)(?:im)?$`), "$1im"},
	{expr(`(her|at|gr)o$`), "$1oes"},
	{expr(`(agend|addend|millenni|dat|extrem|bacteri|desiderat|strat|candelabr|errat|ov|symposi|curricul|automat|quor)(?:a|um)$`), "$1a"},
	{expr(`(apheli|hyperbat|periheli|asyndet|noumen|phenomen|criteri|organ|prolegomen|hedr|automat)(?:a|on)$`), "$1a"},
	{expr(`sis$`), "ses"},
	{expr(`(?:(kni|wi|li)fe|(ar|l|ea|eo|oa|hoo)f)$`), "$1$2ves"},
	{expr(`([^aeiouy]|qu)y$`), "$1ies"},
	{expr(`([^ch][ieo][ln])ey$`), "$1ies"},
	{expr(`(x|ch|ss|sh|zz)$`), "$1es"},
	{expr(`(matr|cod|mur|sil|vert|ind|append)(?:ix|ex)$`), "$1ices"},
	{expr(`\b((?:tit)?m|l)(?:ice|ouse)$`), "$1ice"},
	{expr(`(pe)(?:rson|ople)$`), "$1ople"},
	{expr(`(child)(?:ren)?$`), "$1ren"},
	{expr(`eaux$`), "$0"},
	{expr(`m[ae]n$`), "men"},
	{literal("thou"), "you"},
}

// seedSingulars transforms plural suffixes back to singular ones.
var seedSingulars = []seedRule{
	{expr(`s$`), ""},
	{expr(`(ss)$`), "$1"},
	{expr(`(wi|kni|(?:after|half|high|low|mid|non|night|[^\w]|^)li)ves$`), "$1fe"},
	{expr(`(ar|(?:wo|[ae])l|[eo][ao])ves$`), "$1f"},
	{expr(`ies$`), "y"},
	{expr(`(dg|ss|ois|lk|ok|wn|mb|th|ch|ec|oal|is|ck|ix|sser|ts|wb)ies$`), "$1ie"},
	{expr(`\b(l|(?:neck|cross)?t|coll|faer|food|gen|goon|group|hipp|junk|vegg|(?:pork)?p|charl|calor|cut)ies$`), "$1ie"},
	{expr(`\b(mon|smil)ies$`), "$1ey"},
	{expr(`\b((?:tit)?m|l)ice$`), "$1ouse"},
	{expr(`(seraph|cherub)im$`), "$1"},
	{expr(`(x|ch|ss|sh|zz|tto|go|cho|alias|[^aou]us|t[lm]as|gas|(?:her|at|gr)o|[aeiou]ris)(?:es)?$`), "$1"},
	{expr(`(analy|diagno|parenthe|progno|synop|the|empha|cri|ne)(?:sis|ses)$`), "$1sis"},
	{expr(`(movie|twelve|abuse|e[mn]u)s$`), "$1"},
	{expr(`(test)(?:is|es)$`), "$1is"},
	{expr(`(alumn|syllab|vir|radi|nucle|fung|cact|stimul|termin|bacill|foc|uter|loc|strat)(?:us|i)$`), "$1us"},
	{expr(`(agend|addend|millenni|dat|extrem|bacteri|desiderat|strat|candelabr|errat|ov|symposi|curricul|quor)a$`), "$1um"},
	{expr(`(apheli|hyperbat|periheli|asyndet|noumen|phenomen|criteri|organ|prolegomen|hedr|automat)a$`), "$1on"},
	{expr(`(alumn|alg|vertebr)ae$`), "$1a"},
	{expr(`(cod|mur|sil|vert|ind)ices$`), "$1ex"},
	{expr(`(matr|append)ices$`), "$1ix"},
	{expr(`(pe)(rson|ople)$`), "$1rson"},
	{expr(`(child)ren$`), "$1"},
	{expr(`(eau)x?$`), "$1"},
	{expr(`men$`), "man"},
}

// seedUncountableWords are exact-match exemptions: both transformations
// return them unchanged, and both form predicates report true.
var seedUncountableWords = []string{
	"adulthood",
	"advice",
	"agenda",
	"aid",
	"aircraft",
	"alcohol",
	"ammo",
	"analytics",
	"anime",
	"athletics",
	"audio",
	"bison",
	"blood",
	"bream",
	"buffalo",
	"butter",
	"carp",
	"cash",
	"chassis",
	"chess",
	"clothing",
	"cod",
	"commerce",
	"cooperation",
	"corps",
	"debris",
	"diabetes",
	"digestion",
	"elk",
	"energy",
	"equipment",
	"excretion",
	"expertise",
	"firmware",
	"flounder",
	"fun",
	"gallows",
	"garbage",
	"graffiti",
	"hardware",
	"headquarters",
	"health",
	"herpes",
	"highjinks",
	"homework",
	"housework",
	"information",
	"jeans",
	"justice",
	"kudos",
	"labour",
	"literature",
	"machinery",
	"mackerel",
	"mail",
	"media",
	"mews",
	"moose",
	"music",
	"mud",
	"manga",
	"news",
	"only",
	"personnel",
	"pike",
	"plankton",
	"pliers",
	"police",
	"pollution",
	"premises",
	"rain",
	"research",
	"rice",
	"salmon",
	"scissors",
	"series",
	"sewage",
	"shambles",
	"shrimp",
	"software",
	"species",
	"staff",
	"swine",
	"tennis",
	"traffic",
	"transportation",
	"trout",
	"tuna",
	"wealth",
	"welfare",
	"whiting",
	"wildebeest",
	"wildlife",
	"you",
}

// seedUncountablePatterns are whole suffix families with no distinct plural
// form. They are registered as self-mapping rules in both directions, after
// everything else, so they take precedence over the suffix rules above.
var seedUncountablePatterns = []*regexp.Regexp{
	expr(`pok[eé]mon$`),
	expr(`[^aeiou]ese$`), // chinese, vietnamese
	expr(`deer$`),        // deer, reindeer
	expr(`fish$`),        // fish, blowfish, angelfish
	expr(`measles$`),
	expr(`o[iu]s$`), // carnivorous
	expr(`pox$`),    // chickenpox, smallpox
	expr(`sheep$`),
}
