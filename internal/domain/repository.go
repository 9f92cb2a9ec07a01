package domain

import (
	"context"
	"time"
)

// CatalogRepository defines the interface for caching normalized catalogs
type CatalogRepository interface {
	Get(ctx context.Context, key string) ([]Product, error)
	Set(ctx context.Context, key string, catalog []Product, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// BoostTable maps a normalized query to a category-weight distribution,
// weights in [0,1].
type BoostTable map[string]map[Category]float64

// BoostFetcher defines the interface for retrieving the externally supplied
// learned-boost document.
type BoostFetcher interface {
	Fetch(ctx context.Context) (BoostTable, error)
}
