package usecase

import (
	"regexp"
	"strings"
)

var (
	queryPunctRegex = regexp.MustCompile(`[^\p{L}\p{N}\s]`)
	multiSpaceRegex = regexp.MustCompile(`\s+`)
)

// wordVariants maps a singular form onto its known plural spellings; both
// directions count during expansion.
var wordVariants = map[string][]string{
	"banaan":      {"bananen"},
	"appel":       {"appels"},
	"ei":          {"eieren"},
	"tomaat":      {"tomaten"},
	"aardappel":   {"aardappelen"},
	"wortel":      {"wortels"},
	"vis":         {"vissen"},
	"kip":         {"kippen"},
	"boon":        {"bonen"},
	"ui":          {"uien"},
	"kaas":        {"kazen"},
	"brood":       {"broden"},
	"fles":        {"flessen"},
	"bloem":       {"bloemen"},
	"druif":       {"druiven"},
	"peer":        {"peren"},
	"citroen":     {"citroenen"},
	"sinaasappel": {"sinaasappels"},
	"noot":        {"noten"},
	"koek":        {"koeken"},
	"worst":       {"worsten"},
	"ijs":         {"ijsjes"},
	"aardbei":     {"aardbeien"},
}

// synonyms widen a query word to related shelf vocabulary.
var synonyms = map[string][]string{
	"wc":             {"toilet", "toiletpapier", "wc papier"},
	"toiletpapier":   {"wc papier", "wc"},
	"pasta":          {"spaghetti", "penne", "macaroni"},
	"snoep":          {"chocolade", "koekjes"},
	"bier":           {"pils"},
	"melk":           {"halfvolle melk", "volle melk", "sojamelk", "havermelk"},
	"brood":          {"bolletjes", "stokbrood"},
	"vleesvervanger": {"vega", "vegetarisch"},
	"cola":           {"coke", "zero", "light"},
}

// NormalizeQuery lowercases, strips punctuation to whitespace and collapses
// runs of whitespace.
func NormalizeQuery(q string) string {
	s := strings.ToLower(q)
	s = queryPunctRegex.ReplaceAllString(s, " ")
	s = multiSpaceRegex.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// splitTokens splits on whitespace; empty tokens are dropped.
func splitTokens(s string) []string {
	return strings.Fields(strings.ToLower(strings.TrimSpace(s)))
}

// ExpandQuery returns the deduplicated set of query words plus their known
// variants and synonyms. Each expansion contributes to scoring
// independently.
func ExpandQuery(normalized string) []string {
	parts := splitTokens(normalized)
	out := make([]string, 0, len(parts))
	seen := make(map[string]bool)

	add := func(w string) {
		if w != "" && !seen[w] {
			seen[w] = true
			out = append(out, w)
		}
	}

	for _, p := range parts {
		add(p)
	}
	for _, p := range parts {
		for _, v := range wordVariants[p] {
			add(v)
		}
		for _, s := range synonyms[p] {
			add(s)
		}
	}
	return out
}
