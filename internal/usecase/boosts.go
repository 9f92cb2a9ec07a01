package usecase

import (
	"context"
	"log"
	"strings"
	"sync"

	"github.com/schappie/backend/internal/domain"
)

// Boost factor shape: a category weight of 0.5 is neutral (factor 1.0), the
// full range maps to roughly 0.85-1.25 so the table re-ranks gently and
// never overrides a lexical or semantic rejection.
const (
	boostBase  = 0.85
	boostScale = 0.4
)

// LearnedBoosts is the optional query→category weight table. Written at
// most once per load, read concurrently by searches.
type LearnedBoosts struct {
	mu    sync.RWMutex
	table domain.BoostTable
}

// NewLearnedBoosts creates an empty table; Factor is neutral until a load
// succeeds.
func NewLearnedBoosts() *LearnedBoosts {
	return &LearnedBoosts{}
}

// Set replaces the table. Nil is treated as empty.
func (b *LearnedBoosts) Set(table domain.BoostTable) {
	normalized := make(domain.BoostTable, len(table))
	for q, weights := range table {
		normalized[strings.ToLower(strings.TrimSpace(q))] = weights
	}

	b.mu.Lock()
	b.table = normalized
	b.mu.Unlock()
}

// Load fetches the external boost document once. Any failure is swallowed:
// the table stays empty and searches run without learned boosts.
func (b *LearnedBoosts) Load(ctx context.Context, fetcher domain.BoostFetcher) {
	table, err := fetcher.Fetch(ctx)
	if err != nil {
		log.Printf("[BOOSTS] load skipped: %v", err)
		return
	}
	b.Set(table)
	log.Printf("[BOOSTS] loaded weights for %d queries", len(table))
}

// Factor returns the multiplier for a query/category pair. Absence of the
// query, or of the category under that query, is neutral.
func (b *LearnedBoosts) Factor(query string, category domain.Category) float64 {
	b.mu.RLock()
	weights, ok := b.table[strings.ToLower(strings.TrimSpace(query))]
	b.mu.RUnlock()
	if !ok {
		return 1.0
	}
	v, ok := weights[category]
	if !ok {
		return 1.0
	}
	return boostBase + v*boostScale
}

// Size reports the number of queries with learned weights.
func (b *LearnedBoosts) Size() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.table)
}
