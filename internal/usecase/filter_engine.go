package usecase

import (
	"math"
	"sort"

	"github.com/pricescope/client/internal/domain"
)

// ApplyFilters derives the rendered subset and ordering from a normalized
// result collection. Pure: the input slice is never mutated, and identical
// arguments always produce identical output.
//
// Pipeline: price window on the minimum positive canonical price, platform
// intersection, rating threshold, then sort. Relevance performs no
// reordering, so re-sorting by relevance restores backend order.
func ApplyFilters(results []domain.ComparisonResult, spec domain.FilterSpec) []domain.ComparisonResult {
	filtered := make([]domain.ComparisonResult, 0, len(results))

	for _, r := range results {
		// Price filter. A record with no positive price anywhere is dropped:
		// a zero canonical price means "no offer", not "free".
		min, ok := r.MinPositivePrice()
		if !ok || min < spec.MinPrice || min > spec.MaxPrice {
			continue
		}

		// Platform filter. Stated independently of the price filter even
		// though a priced record always has at least one retailer.
		available := r.AvailableRetailers()
		if len(available) == 0 || !spec.AllowsPlatform(available) {
			continue
		}

		// Rating filter on the primary retailer's rating only.
		if spec.MinRating > 0 && r.PrimaryRating() < spec.MinRating {
			continue
		}

		filtered = append(filtered, r)
	}

	sortResults(filtered, spec.Sort)
	return filtered
}

func sortResults(results []domain.ComparisonResult, mode domain.SortMode) {
	switch mode {
	case domain.SortPriceLow:
		sort.SliceStable(results, func(i, j int) bool {
			return minOrInf(results[i]) < minOrInf(results[j])
		})
	case domain.SortPriceHigh:
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].MaxPrice() > results[j].MaxPrice()
		})
	case domain.SortRating:
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].PrimaryRating() > results[j].PrimaryRating()
		})
	case domain.SortRelevance:
		// Backend order is relevance order; leave it alone.
	}
}

// minOrInf keys price_low ordering: records with no positive price sort last.
func minOrInf(r domain.ComparisonResult) int {
	if min, ok := r.MinPositivePrice(); ok {
		return min
	}
	return math.MaxInt
}
