package domain

import "errors"

var (
	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrCatalogNotLoaded is returned when a search runs before any catalog ingest
	ErrCatalogNotLoaded = errors.New("no catalog has been ingested")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")

	// ErrBoostsUnavailable is returned when the learned-boost document cannot be fetched
	ErrBoostsUnavailable = errors.New("learned boosts unavailable")
)
