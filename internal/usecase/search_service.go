package usecase

import (
	"log"
	"sort"
	"strings"

	"github.com/schappie/backend/internal/domain"
)

// minQueryLength is the minimum normalized query length. Shorter queries
// return an empty result set by contract: no search is attempted.
const minQueryLength = 2

// SearchConfig holds the tunable knobs of the orchestrator.
type SearchConfig struct {
	// CategoryMissMultiplier is applied when a candidate's category does
	// not mention the query term. 1.0 (neutral) when unset; a value like
	// 0.7 turns it into a mild out-of-aisle penalty.
	CategoryMissMultiplier float64
	// LegacyDampening scales the literal-match safety-net score before it
	// is reconciled against the compositional score. 0.9 when unset.
	LegacyDampening    float64
	EnableDebugLogging bool
}

// SearchService ranks a normalized catalog against free-text queries.
type SearchService struct {
	boosts             *LearnedBoosts
	categoryMiss       float64
	legacyDampening    float64
	enableDebugLogging bool
}

// NewSearchService creates a search service. boosts may be nil; searches
// then run entirely without learned boosts.
func NewSearchService(boosts *LearnedBoosts, config SearchConfig) *SearchService {
	miss := config.CategoryMissMultiplier
	if miss <= 0 {
		miss = 1.0
	}
	damp := config.LegacyDampening
	if damp <= 0 {
		damp = 0.9
	}
	if boosts == nil {
		boosts = NewLearnedBoosts()
	}
	return &SearchService{
		boosts:             boosts,
		categoryMiss:       miss,
		legacyDampening:    damp,
		enableDebugLogging: config.EnableDebugLogging,
	}
}

// adaptiveThreshold is the minimum composite score for the normalized
// query. Multi-word queries dilute per-token scores, so their floor is
// lower; very short single tokens need a high one.
func adaptiveThreshold(normalized string) float64 {
	words := len(strings.Fields(normalized))
	length := len([]rune(normalized))
	switch {
	case words > 2:
		return 0.5
	case length <= 3:
		return 0.75
	case length <= 6:
		return 0.65
	default:
		return 0.6
	}
}

// Search runs the full scoring pipeline over the catalog and returns ranked
// copies. It never mutates the catalog. A category filter, when given, is a
// hard pre-filter; candidates outside it are never scored.
func (s *SearchService) Search(catalog []domain.Product, query string, category domain.Category, sortBy domain.SortMode) []domain.ScoredProduct {
	q := NormalizeQuery(query)
	if len([]rune(q)) < minQueryLength {
		return []domain.ScoredProduct{}
	}

	words := ExpandQuery(q)
	threshold := adaptiveThreshold(q)
	results := make([]domain.ScoredProduct, 0, 32)

	for _, p := range catalog {
		if category != "" && p.UnifiedCategory != category {
			continue
		}

		// The deny-list veto is absolute: a vetoed candidate is skipped
		// before either scoring path can rescue it.
		semantic := SemanticFactor(q, p, s.categoryMiss)
		if semantic == 0 {
			continue
		}

		score := multiWordScore(words, p)
		score *= semantic
		score *= ContextualFactor(q, p)
		score *= s.boosts.Factor(q, p.UnifiedCategory)

		// Literal substring hits must never be lost to the compositional
		// scorer; reconcile against the dampened legacy score.
		legacy := scoreTokens(q, p.Name)
		score = max(score, legacy*s.legacyDampening)

		if score >= threshold {
			results = append(results, domain.ScoredProduct{Product: p, Score: score})
		}
	}

	if s.enableDebugLogging {
		log.Printf("[SEARCH] %q → %d/%d candidates above %.2f", q, len(results), len(catalog), threshold)
	}

	s.sortResults(results, sortBy)
	return results
}

// Explanation breaks one candidate's score into its component factors.
type Explanation struct {
	MultiWord  float64 `json:"multiWord"`
	Semantic   float64 `json:"semantic"`
	Contextual float64 `json:"contextual"`
	Learned    float64 `json:"learned"`
	Legacy     float64 `json:"legacy"`
	Composite  float64 `json:"composite"`
	Threshold  float64 `json:"threshold"`
}

// Explain reports the score decomposition for one product, for diagnostics.
func (s *SearchService) Explain(query string, p domain.Product) Explanation {
	q := NormalizeQuery(query)
	e := Explanation{
		MultiWord:  multiWordScore(ExpandQuery(q), p),
		Semantic:   SemanticFactor(q, p, s.categoryMiss),
		Contextual: ContextualFactor(q, p),
		Learned:    s.boosts.Factor(q, p.UnifiedCategory),
		Legacy:     scoreTokens(q, p.Name),
		Threshold:  adaptiveThreshold(q),
	}
	if e.Semantic == 0 {
		return e
	}
	e.Composite = max(e.MultiWord*e.Semantic*e.Contextual*e.Learned, e.Legacy*s.legacyDampening)
	return e
}

// sortResults orders results in place.
//
// Convention (documented, deliberately): "price" sorts on the raw price
// field, not the effective promo-aware price; products without a price sort
// last. "ppu" and "alpha" tie-break alphabetically so equal values keep a
// deterministic order. "promo" puts promotions first and falls back to the
// default score ordering.
func (s *SearchService) sortResults(results []domain.ScoredProduct, sortBy domain.SortMode) {
	switch sortBy {
	case domain.SortPPU:
		sort.SliceStable(results, func(i, j int) bool {
			if results[i].PricePerUnit != results[j].PricePerUnit {
				return results[i].PricePerUnit < results[j].PricePerUnit
			}
			return nameLess(results[i].Product, results[j].Product)
		})
	case domain.SortPrice:
		sort.SliceStable(results, func(i, j int) bool {
			return priceLess(results[i].Product, results[j].Product)
		})
	case domain.SortAlpha:
		sort.SliceStable(results, func(i, j int) bool {
			return nameLess(results[i].Product, results[j].Product)
		})
	case domain.SortPromo:
		sort.SliceStable(results, func(i, j int) bool {
			if results[i].OnPromo() != results[j].OnPromo() {
				return results[i].OnPromo()
			}
			return defaultLess(results[i], results[j])
		})
	default:
		sort.SliceStable(results, func(i, j int) bool {
			return defaultLess(results[i], results[j])
		})
	}
}

// defaultLess: score desc, promotions first, price-per-unit asc, name.
func defaultLess(a, b domain.ScoredProduct) bool {
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	if a.OnPromo() != b.OnPromo() {
		return a.OnPromo()
	}
	if a.PricePerUnit != b.PricePerUnit {
		return a.PricePerUnit < b.PricePerUnit
	}
	return nameLess(a.Product, b.Product)
}

func priceLess(a, b domain.Product) bool {
	switch {
	case a.Price == nil && b.Price == nil:
		return nameLess(a, b)
	case a.Price == nil:
		return false
	case b.Price == nil:
		return true
	case *a.Price != *b.Price:
		return *a.Price < *b.Price
	}
	return nameLess(a, b)
}

func nameLess(a, b domain.Product) bool {
	an := strings.ToLower(a.Name)
	bn := strings.ToLower(b.Name)
	if an != bn {
		return an < bn
	}
	return a.Name < b.Name
}
