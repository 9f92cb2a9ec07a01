package usecase

import (
	"strings"

	"github.com/schappie/backend/internal/domain"
)

// Field weights for the compositional scorer. The name dominates; brand and
// unified category only nudge.
const (
	weightName     = 0.6
	weightBrand    = 0.3
	weightCategory = 0.1
)

// Boosts applied on top of the per-token average, capped so a full-name
// score never exceeds 1.0.
const (
	substringBoost = 0.05
	prefixHitBoost = 0.03
)

// levenshteinDistance calculates the edit distance between two strings.
// Two-row rolling version to avoid the full matrix.
func levenshteinDistance(s1, s2 string) int {
	if len(s1) == 0 {
		return len(s2)
	}
	if len(s2) == 0 {
		return len(s1)
	}

	r1 := []rune(s1)
	r2 := []rune(s2)
	m := len(r1)
	n := len(r2)

	prev := make([]int, n+1)
	curr := make([]int, n+1)
	for j := 0; j <= n; j++ {
		prev[j] = j
	}

	for i := 1; i <= m; i++ {
		curr[0] = i
		for j := 1; j <= n; j++ {
			cost := 0
			if r1[i-1] != r2[j-1] {
				cost = 1
			}
			curr[j] = min(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}

	return prev[n]
}

// similarity is the normalized edit-distance similarity in [0,1].
func similarity(a, b string) float64 {
	maxLen := max(len([]rune(a)), len([]rune(b)))
	if maxLen == 0 {
		return 1
	}
	return 1 - float64(levenshteinDistance(a, b))/float64(maxLen)
}

// tokenGate is the minimum per-token score for a query token of the given
// length. Very short tokens pass freely; longer tokens must match tightly so
// fuzzy credit cannot accumulate from noise.
func tokenGate(tokenLen int) float64 {
	switch {
	case tokenLen <= 2:
		return 0.0
	case tokenLen == 3:
		return 0.68
	case tokenLen <= 5:
		return 0.74
	case tokenLen <= 7:
		return 0.77
	default:
		return 0.8
	}
}

// scoreToken scores one query token against candidate tokens. A candidate
// that starts with the token scores 1.0 when the length difference is at
// most 2 characters, else 0.8; otherwise the best normalized edit-distance
// similarity wins. The second return reports a prefix hit.
func scoreToken(queryToken string, candidates []string) (float64, bool) {
	for _, w := range candidates {
		if strings.HasPrefix(w, queryToken) {
			if abs(len([]rune(w))-len([]rune(queryToken))) <= 2 {
				return 1.0, true
			}
			return 0.8, true
		}
	}
	best := 0.0
	for _, w := range candidates {
		if s := similarity(queryToken, w); s > best {
			best = s
		}
	}
	return best, false
}

// scoreTokens computes the gated full-name score of a query against a
// candidate name: per-token scores averaged over all query tokens, with the
// length-adaptive gate rejecting the whole match when any token falls below
// its threshold. Substring containment and prefix hits add small capped
// boosts.
func scoreTokens(query, name string) float64 {
	q := strings.ToLower(strings.TrimSpace(query))
	n := strings.ToLower(strings.TrimSpace(name))
	if q == "" {
		return 0
	}
	qTokens := splitTokens(q)
	nTokens := splitTokens(n)
	if len(qTokens) == 0 || len(nTokens) == 0 {
		return 0
	}

	sum := 0.0
	anyPrefix := false
	for _, qt := range qTokens {
		score, prefix := scoreToken(qt, nTokens)
		if score < tokenGate(len([]rune(qt))) {
			return 0
		}
		sum += score
		anyPrefix = anyPrefix || prefix
	}
	avg := sum / float64(len(qTokens))

	if strings.Contains(n, q) {
		avg += substringBoost
	}
	if anyPrefix {
		avg += prefixHitBoost
	}
	return min(avg, 1.0)
}

// hybridScore blends substring containment, whole-string similarity and
// prefix bonuses for a single query word against a whole field.
func hybridScore(q, text string) float64 {
	q = strings.ToLower(q)
	text = strings.ToLower(text)
	if strings.Contains(text, q) {
		return 1.0
	}
	base := similarity(q, text)
	if strings.HasPrefix(text, q) {
		return min(1, base+0.15)
	}
	for _, w := range splitTokens(text) {
		if strings.HasPrefix(w, q) {
			return min(1, base+0.1)
		}
	}
	return base
}

// fieldWeightedScore scores one query word against the product's name,
// brand and unified category with fixed weights.
func fieldWeightedScore(q string, p domain.Product) float64 {
	total := 0.0
	if p.Name != "" {
		total += hybridScore(q, p.Name) * weightName
	}
	if p.Brand != "" {
		total += hybridScore(q, p.Brand) * weightBrand
	}
	if p.UnifiedCategory != "" {
		total += hybridScore(q, string(p.UnifiedCategory)) * weightCategory
	}
	return total
}

// multiWordScore averages the field-weighted score of every expanded query
// word. Each word contributes independently so partial matches dilute
// rather than veto.
func multiWordScore(words []string, p domain.Product) float64 {
	if len(words) == 0 {
		return 0
	}
	sum := 0.0
	for _, w := range words {
		sum += fieldWeightedScore(w, p)
	}
	return sum / float64(len(words))
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
