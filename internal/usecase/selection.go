package usecase

import (
	"sync"

	"github.com/pricescope/client/internal/domain"
)

// Selection tracks which single product, if any, is under detailed
// inspection. Selecting replaces any prior selection.
type Selection struct {
	mu       sync.Mutex
	selected *domain.ComparisonResult
}

// NewSelection creates an empty selection.
func NewSelection() *Selection {
	return &Selection{}
}

// Select puts a result under inspection, replacing any prior one.
func (s *Selection) Select(result domain.ComparisonResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = &result
}

// Deselect clears the selection.
func (s *Selection) Deselect() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = nil
}

// Selected returns the inspected result, if any.
func (s *Selection) Selected() (domain.ComparisonResult, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selected == nil {
		return domain.ComparisonResult{}, false
	}
	return *s.selected, true
}
