package domain

import "fmt"

// Retailer identifies one of the tracked e-commerce platforms.
// The set is closed: the comparison backend scrapes exactly these four.
type Retailer string

const (
	// RetailerFlipkart is the primary retailer: the backend uses it as the
	// reference product for matching, and rating derivation reads only its offer.
	RetailerFlipkart        Retailer = "flipkart"
	RetailerAmazon          Retailer = "amazon"
	RetailerCroma           Retailer = "croma"
	RetailerRelianceDigital Retailer = "reliancedigital"
)

// RetailerInfo holds display metadata for a retailer.
type RetailerInfo struct {
	DisplayName string `json:"displayName"`
	Accent      string `json:"accent"` // UI accent gradient class
}

// retailerTable maps each retailer to its display metadata. Adding a fifth
// retailer means adding a row here and to allRetailers, nothing else.
var retailerTable = map[Retailer]RetailerInfo{
	RetailerFlipkart:        {DisplayName: "Flipkart", Accent: "from-blue-600 to-blue-500"},
	RetailerAmazon:          {DisplayName: "Amazon", Accent: "from-orange-600 to-orange-500"},
	RetailerCroma:           {DisplayName: "Croma", Accent: "from-red-600 to-red-500"},
	RetailerRelianceDigital: {DisplayName: "Reliance Digital", Accent: "from-purple-600 to-purple-500"},
}

// allRetailers is the canonical iteration order (matches the backend's
// comparison payload and the price field order in responses).
var allRetailers = []Retailer{
	RetailerFlipkart,
	RetailerAmazon,
	RetailerCroma,
	RetailerRelianceDigital,
}

// AllRetailers returns the tracked retailers in canonical order.
// The returned slice is a copy and safe to modify.
func AllRetailers() []Retailer {
	out := make([]Retailer, len(allRetailers))
	copy(out, allRetailers)
	return out
}

// Info returns display metadata for the retailer.
func (r Retailer) Info() RetailerInfo {
	return retailerTable[r]
}

// Valid reports whether r is one of the tracked retailers.
func (r Retailer) Valid() bool {
	_, ok := retailerTable[r]
	return ok
}

// ParseRetailer converts a retailer identifier string to a Retailer.
func ParseRetailer(s string) (Retailer, error) {
	r := Retailer(s)
	if !r.Valid() {
		return "", fmt.Errorf("%w: unknown retailer %q", ErrInvalidFilter, s)
	}
	return r, nil
}
