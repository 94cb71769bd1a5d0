package compare

import (
	"encoding/json"
	"log"

	"github.com/pricescope/client/internal/domain"
)

// MapResults converts the backend's raw result entries into unified
// ComparisonResult records. Each entry carries up to one offer object per
// retailer key, with the canonical price derived from currentPrice or the
// legacy price field. Malformed offer objects are dropped individually so one
// bad retailer payload cannot sink an otherwise valid result.
func MapResults(raw []json.RawMessage) []domain.ComparisonResult {
	results := make([]domain.ComparisonResult, 0, len(raw))
	for _, entry := range raw {
		results = append(results, mapResult(entry))
	}
	return results
}

func mapResult(entry json.RawMessage) domain.ComparisonResult {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(entry, &fields); err != nil {
		log.Printf("[COMPARE] Skipping malformed result entry: %v", err)
		return domain.NewComparisonResult(map[domain.Retailer]*domain.RetailerOffer{})
	}

	offers := make(map[domain.Retailer]*domain.RetailerOffer, 4)
	for _, retailer := range domain.AllRetailers() {
		offerJSON, ok := fields[string(retailer)]
		if !ok || string(offerJSON) == "null" {
			continue
		}

		var offer domain.RetailerOffer
		if err := json.Unmarshal(offerJSON, &offer); err != nil {
			log.Printf("[COMPARE] Dropping malformed %s offer: %v", retailer, err)
			continue
		}
		offers[retailer] = &offer
	}

	return domain.NewComparisonResult(offers)
}
