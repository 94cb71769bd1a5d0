package domain

import "fmt"

// SortMode selects the ordering applied after filtering.
type SortMode string

const (
	// SortRelevance preserves the order the backend returned results in.
	SortRelevance SortMode = "relevance"
	SortPriceLow  SortMode = "price_low"
	SortPriceHigh SortMode = "price_high"
	SortRating    SortMode = "rating"
)

// Valid reports whether m is a known sort mode.
func (m SortMode) Valid() bool {
	switch m {
	case SortRelevance, SortPriceLow, SortPriceHigh, SortRating:
		return true
	}
	return false
}

// Default price window bounds, in the smallest currency unit the backend uses.
const (
	DefaultMinPrice = 0
	DefaultMaxPrice = 300000
)

// FilterSpec describes the constraints and ordering applied to a result set.
// It persists across re-fetches on the same results page and is reset only by
// an explicit reset action.
type FilterSpec struct {
	MinPrice  int        `json:"minPrice"`
	MaxPrice  int        `json:"maxPrice"`
	Platforms []Retailer `json:"platforms"`
	MinRating float64    `json:"rating"` // 0 = no rating filter
	Sort      SortMode   `json:"sort"`
}

// DefaultFilterSpec returns the spec applied before the user touches any
// control: full price window, all four retailers, no rating floor, relevance.
func DefaultFilterSpec() FilterSpec {
	return FilterSpec{
		MinPrice:  DefaultMinPrice,
		MaxPrice:  DefaultMaxPrice,
		Platforms: AllRetailers(),
		MinRating: 0,
		Sort:      SortRelevance,
	}
}

// Validate checks the spec's internal consistency.
func (s FilterSpec) Validate() error {
	if s.MinPrice < 0 {
		return fmt.Errorf("%w: min price %d is negative", ErrInvalidFilter, s.MinPrice)
	}
	if s.MinPrice > s.MaxPrice {
		return fmt.Errorf("%w: price range [%d, %d] is inverted", ErrInvalidFilter, s.MinPrice, s.MaxPrice)
	}
	if len(s.Platforms) == 0 {
		return fmt.Errorf("%w: platform set is empty", ErrInvalidFilter)
	}
	for _, p := range s.Platforms {
		if !p.Valid() {
			return fmt.Errorf("%w: unknown retailer %q", ErrInvalidFilter, p)
		}
	}
	if s.MinRating < 0 || s.MinRating > 5 {
		return fmt.Errorf("%w: rating threshold %.1f outside [0, 5]", ErrInvalidFilter, s.MinRating)
	}
	if !s.Sort.Valid() {
		return fmt.Errorf("%w: unknown sort mode %q", ErrInvalidFilter, s.Sort)
	}
	return nil
}

// AllowsPlatform reports whether any retailer in the given set is selected.
func (s FilterSpec) AllowsPlatform(available []Retailer) bool {
	for _, a := range available {
		for _, p := range s.Platforms {
			if a == p {
				return true
			}
		}
	}
	return false
}
