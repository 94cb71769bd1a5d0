package domain

import "encoding/json"

// placeholderImage is shown when no retailer supplied a product image.
const placeholderImage = "https://via.placeholder.com/300x300?text=No+Image"

// RetailerOffer is one retailer's listing for a product, with the retailer's
// native field formatting preserved. Price is reachable at CurrentPrice or,
// for older scraper payloads, Price.
type RetailerOffer struct {
	Title         string `json:"title,omitempty"`
	Image         string `json:"image,omitempty"`
	URL           string `json:"url,omitempty"`
	Rating        Flex   `json:"rating,omitempty"`
	Reviews       Flex   `json:"reviews,omitempty"`
	CurrentPrice  Flex   `json:"currentPrice,omitempty"`
	Price         Flex   `json:"price,omitempty"`
	OriginalPrice Flex   `json:"originalPrice,omitempty"`
	Discount      string `json:"discount,omitempty"`
}

// RawPrice returns the offer's native price representation, preferring
// currentPrice over the legacy price field.
func (o *RetailerOffer) RawPrice() string {
	if o == nil {
		return ""
	}
	if o.CurrentPrice != "" {
		return o.CurrentPrice.String()
	}
	return o.Price.String()
}

// ReviewCount returns the offer's review count as a non-negative integer.
// Review counts ride the same inconsistent formatting as prices ("1,200").
func (o *RetailerOffer) ReviewCount() int {
	if o == nil {
		return 0
	}
	return ParsePrice(o.Reviews.String())
}

// ComparisonResult is the unified record for one product's offers across all
// tracked retailers. Prices holds the canonical integer price per retailer,
// with 0 meaning "no offer from this retailer".
type ComparisonResult struct {
	Offers map[Retailer]*RetailerOffer
	Prices map[Retailer]int
}

// NewComparisonResult builds a result from per-retailer offers, deriving the
// canonical price table via ParsePrice.
func NewComparisonResult(offers map[Retailer]*RetailerOffer) ComparisonResult {
	prices := make(map[Retailer]int, len(allRetailers))
	for _, r := range allRetailers {
		prices[r] = ParsePrice(offers[r].RawPrice())
	}
	return ComparisonResult{Offers: offers, Prices: prices}
}

// MinPositivePrice returns the cheapest positive canonical price and whether
// any retailer offers the product at all.
func (c ComparisonResult) MinPositivePrice() (int, bool) {
	min, found := 0, false
	for _, r := range allRetailers {
		p := c.Prices[r]
		if p <= 0 {
			continue
		}
		if !found || p < min {
			min = p
			found = true
		}
	}
	return min, found
}

// MaxPrice returns the highest canonical price across retailers, 0 when no
// retailer offers the product.
func (c ComparisonResult) MaxPrice() int {
	max := 0
	for _, r := range allRetailers {
		if p := c.Prices[r]; p > max {
			max = p
		}
	}
	return max
}

// AvailableRetailers returns the retailers with a positive canonical price,
// in canonical order.
func (c ComparisonResult) AvailableRetailers() []Retailer {
	var out []Retailer
	for _, r := range allRetailers {
		if c.Prices[r] > 0 {
			out = append(out, r)
		}
	}
	return out
}

// PrimaryRating derives the product rating from the primary retailer's offer
// alone, even when other retailers report one. Known simplification carried
// over from the original system; do not widen it to other retailers.
func (c ComparisonResult) PrimaryRating() float64 {
	offer := c.Offers[RetailerFlipkart]
	if offer == nil {
		return 0
	}
	return ParseRating(offer.Rating.String())
}

// Title returns the first known product title, preferring the primary
// retailer's listing.
func (c ComparisonResult) Title() string {
	for _, r := range allRetailers {
		if o := c.Offers[r]; o != nil && o.Title != "" && o.Title != "N/A" {
			return o.Title
		}
	}
	return "Product"
}

// Image returns the first usable product image across retailers, falling back
// to a placeholder.
func (c ComparisonResult) Image() string {
	for _, r := range allRetailers {
		if o := c.Offers[r]; o != nil && o.Image != "" && o.Image != "N/A" {
			return o.Image
		}
	}
	return placeholderImage
}

// Savings returns the absolute spread between the highest and lowest positive
// canonical prices, 0 when fewer than two retailers offer the product.
func (c ComparisonResult) Savings() int {
	min, ok := c.MinPositivePrice()
	if !ok {
		return 0
	}
	return c.MaxPrice() - min
}

// MarshalJSON emits the flattened shape the presentation layer consumes:
// one object per retailer key plus a canonical <retailer>_price field each.
func (c ComparisonResult) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{}, len(allRetailers)*2)
	for _, r := range allRetailers {
		out[string(r)] = c.Offers[r]
		out[string(r)+"_price"] = c.Prices[r]
	}
	return json.Marshal(out)
}
