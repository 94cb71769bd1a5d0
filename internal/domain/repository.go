package domain

import (
	"context"
	"time"
)

// CompareClient defines the interface for the comparison backend.
type CompareClient interface {
	// Compare fetches per-retailer offers for a cleaned query. A successful
	// call with zero results returns an empty slice and nil error; transport
	// and backend failures return a categorized error.
	Compare(ctx context.Context, query string, limit int) ([]ComparisonResult, error)
}

// ResultCache defines the interface for caching normalized comparison results
// keyed by cleaned query.
type ResultCache interface {
	Get(ctx context.Context, key string) ([]ComparisonResult, error)
	Set(ctx context.Context, key string, results []ComparisonResult, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}
