package domain

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// ParsePrice converts a retailer-native price representation into a canonical
// non-negative integer. Currency symbols, separators and whitespace are
// stripped; anything that does not yield digits collapses to 0, which
// downstream logic reads as "no offer from this retailer", never as "free".
//
// ParsePrice("₹51,999") == 51999 and ParsePrice("₹1,00,000") == 100000.
func ParsePrice(raw string) int {
	if raw == "" || raw == "N/A" {
		return 0
	}

	var digits strings.Builder
	for i := 0; i < len(raw); i++ {
		if raw[i] >= '0' && raw[i] <= '9' {
			digits.WriteByte(raw[i])
		}
	}
	if digits.Len() == 0 {
		return 0
	}

	n, err := strconv.Atoi(digits.String())
	if err != nil {
		// Overflow on absurdly long digit runs.
		return 0
	}
	return n
}

// ParseRating converts a retailer-native rating representation into a float.
// Unparseable, negative or non-finite values collapse to 0 ("unrated").
// ParseFloat accepts "NaN" and "Inf", and a NaN rating would slip past every
// threshold comparison, so those are rejected here.
func ParseRating(raw string) float64 {
	if raw == "" || raw == "N/A" {
		return 0
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return 0
	}
	return f
}

// Flex is a JSON scalar that retailers send inconsistently: sometimes a
// string ("₹51,999", "4.5"), sometimes a bare number (48500, 4.5). It decodes
// either form into its string representation so ParsePrice/ParseRating can
// treat all payloads uniformly.
type Flex string

// UnmarshalJSON accepts a JSON string, number, or null.
func (f *Flex) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*f = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = Flex(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = Flex(n.String())
	return nil
}

// MarshalJSON renders the raw value back as a JSON string.
func (f Flex) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(f))
}

// String returns the raw scalar text.
func (f Flex) String() string {
	return string(f)
}
