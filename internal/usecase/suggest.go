package usecase

import "strings"

// maxSuggestions caps the dropdown length.
const maxSuggestions = 5

// defaultCandidates is the client-resident suggestion list. It is fixed and
// intentionally unrelated to the live catalog: a suggestion may match nothing
// on the backend, and that is fine.
var defaultCandidates = []string{
	"iPhone 15 Pro Max",
	`MacBook Pro 14"`,
	"Sony WH-1000XM5",
	`Samsung 55" QLED`,
	"iPad Air",
	"AirPods Pro",
	"Dell XPS 13",
	"OnePlus 12",
	"Canon EOS R5",
	"DJI Air 3S",
}

// trendingTerms backs the trending chips on the landing page.
var trendingTerms = []string{
	"iPhone 15",
	"MacBook Pro",
	"Sony Headphones",
	"Samsung TV",
}

// noResultsSuggestions backs the "try one of these" chips on the empty state.
var noResultsSuggestions = []string{
	"iPhone 15",
	"Samsung Galaxy S24",
	"Sony WH-1000XM5",
	"MacBook Pro",
	"iPad Air",
	"Dell XPS 13",
}

// Suggester matches partial input against a fixed candidate list.
type Suggester struct {
	candidates []string
}

// NewSuggester creates a suggester over the given candidates, falling back to
// the built-in product list when none are supplied.
func NewSuggester(candidates []string) *Suggester {
	if len(candidates) == 0 {
		candidates = defaultCandidates
	}
	return &Suggester{candidates: candidates}
}

// Match returns every candidate containing the trimmed input as a
// case-insensitive substring, preserving candidate order, capped at five.
// Empty input yields no suggestions. Pure and deterministic; no network.
func (s *Suggester) Match(input string) []string {
	needle := strings.ToLower(strings.TrimSpace(input))
	if needle == "" {
		return nil
	}

	var matches []string
	for _, candidate := range s.candidates {
		if strings.Contains(strings.ToLower(candidate), needle) {
			matches = append(matches, candidate)
			if len(matches) == maxSuggestions {
				break
			}
		}
	}
	return matches
}

// TrendingTerms returns the trending search chips.
func (s *Suggester) TrendingTerms() []string {
	out := make([]string, len(trendingTerms))
	copy(out, trendingTerms)
	return out
}

// NoResultsSuggestions returns the chips offered when a query matched nothing.
func (s *Suggester) NoResultsSuggestions() []string {
	out := make([]string, len(noResultsSuggestions))
	copy(out, noResultsSuggestions)
	return out
}
