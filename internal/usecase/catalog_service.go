package usecase

import (
	"context"
	"log"
	"time"

	"github.com/schappie/backend/internal/domain"
)

// catalogCacheKey is the single cache slot holding the current catalog.
const catalogCacheKey = "catalog:normalized"

// CatalogServiceConfig holds configuration for the catalog service.
type CatalogServiceConfig struct {
	CacheTTL           time.Duration
	EnableDebugLogging bool
}

// CatalogService normalizes raw store payloads and keeps the resulting
// canonical catalog available for the search path.
type CatalogService struct {
	cache              domain.CatalogRepository
	cacheTTL           time.Duration
	enableDebugLogging bool
}

// NewCatalogService creates a catalog service with dependencies.
func NewCatalogService(cache domain.CatalogRepository, config CatalogServiceConfig) *CatalogService {
	ttl := config.CacheTTL
	if ttl == 0 {
		ttl = 24 * time.Hour
	}
	return &CatalogService{
		cache:              cache,
		cacheTTL:           ttl,
		enableDebugLogging: config.EnableDebugLogging,
	}
}

// Ingest normalizes every store payload and replaces the cached catalog.
// Returns per-store record counts. Records are never dropped during
// normalization; filtering is a caller concern.
func (s *CatalogService) Ingest(ctx context.Context, raw domain.RawCatalog) (map[domain.Store]int, error) {
	if raw.Empty() {
		return nil, domain.ErrInvalidRequest
	}

	catalog := NormalizeAll(raw)

	counts := make(map[domain.Store]int, len(domain.StoreOrder))
	for _, p := range catalog {
		counts[p.Store]++
	}

	if s.enableDebugLogging {
		for _, store := range domain.StoreOrder {
			log.Printf("[CATALOG] %s: %d products", store, counts[store])
		}
	}

	if err := s.cache.Set(ctx, catalogCacheKey, catalog, s.cacheTTL); err != nil {
		return nil, err
	}
	return counts, nil
}

// Catalog returns the current normalized catalog, or ErrCatalogNotLoaded
// when nothing has been ingested (or the entry expired).
func (s *CatalogService) Catalog(ctx context.Context) ([]domain.Product, error) {
	catalog, err := s.cache.Get(ctx, catalogCacheKey)
	if err != nil {
		return nil, domain.ErrCatalogNotLoaded
	}
	return catalog, nil
}
