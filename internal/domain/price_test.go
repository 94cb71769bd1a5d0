package domain

import (
	"encoding/json"
	"strconv"
	"testing"
)

func TestParsePrice(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want int
	}{
		{"empty string", "", 0},
		{"not available sentinel", "N/A", 0},
		{"rupee with thousands separator", "₹51,999", 51999},
		{"indian grouping", "₹1,00,000", 100000},
		{"plain digits", "48500", 48500},
		{"leading and trailing space", " ₹ 2,499 ", 2499},
		{"no digits at all", "coming soon", 0},
		{"currency word mixed with digits", "Rs. 999", 999},
		{"zero", "0", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParsePrice(tt.raw); got != tt.want {
				t.Errorf("ParsePrice(%q) = %d, want %d", tt.raw, got, tt.want)
			}
		})
	}
}

func TestParsePrice_Idempotent(t *testing.T) {
	// Re-parsing the decimal rendering of a parsed price must not change it.
	inputs := []string{"₹51,999", "₹1,00,000", "48500", "N/A", ""}
	for _, raw := range inputs {
		once := ParsePrice(raw)
		twice := ParsePrice(strconv.Itoa(once))
		if once != twice {
			t.Errorf("ParsePrice not idempotent for %q: %d then %d", raw, once, twice)
		}
	}
}

func TestParseRating(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
	}{
		{"4.5", 4.5},
		{"4", 4},
		{"", 0},
		{"N/A", 0},
		{"not a rating", 0},
		{"-1", 0},
		{"NaN", 0},
		{"Inf", 0},
		{"-Inf", 0},
	}

	for _, tt := range tests {
		if got := ParseRating(tt.raw); got != tt.want {
			t.Errorf("ParseRating(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

func TestFlexUnmarshal(t *testing.T) {
	t.Run("accepts string", func(t *testing.T) {
		var f Flex
		if err := json.Unmarshal([]byte(`"₹50,000"`), &f); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if f.String() != "₹50,000" {
			t.Errorf("Flex = %q, want ₹50,000", f)
		}
	})

	t.Run("accepts integer number", func(t *testing.T) {
		var f Flex
		if err := json.Unmarshal([]byte(`48500`), &f); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ParsePrice(f.String()) != 48500 {
			t.Errorf("ParsePrice(%q) != 48500", f)
		}
	})

	t.Run("accepts float number", func(t *testing.T) {
		var f Flex
		if err := json.Unmarshal([]byte(`4.5`), &f); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ParseRating(f.String()) != 4.5 {
			t.Errorf("ParseRating(%q) != 4.5", f)
		}
	})

	t.Run("accepts null", func(t *testing.T) {
		var f Flex
		if err := json.Unmarshal([]byte(`null`), &f); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if f != "" {
			t.Errorf("Flex = %q, want empty", f)
		}
	})
}
