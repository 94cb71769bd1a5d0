package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"regexp"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/pricescope/client/internal/domain"
)

// Package-level compiled regex pattern for performance
var multipleSpacesRegex = regexp.MustCompile(`\s+`)

// Query bounds enforced before any network call. The backend rejects queries
// outside [2, 100], so short ones short-circuit to the empty-results case.
const (
	minQueryLength = 2
	maxQueryLength = 100
)

// CleanQuery trims the query, collapses internal whitespace to single spaces
// and caps the length at 100 characters. The cap counts runes, not bytes, so
// multibyte input is never cut mid-character.
func CleanQuery(query string) string {
	cleaned := multipleSpacesRegex.ReplaceAllString(strings.TrimSpace(query), " ")
	if utf8.RuneCountInString(cleaned) > maxQueryLength {
		runes := []rune(cleaned)
		cleaned = string(runes[:maxQueryLength])
	}
	return cleaned
}

// ComparisonServiceConfig holds configuration for the comparison service
type ComparisonServiceConfig struct {
	ResultLimit        int
	CacheTTL           time.Duration
	EnableDebugLogging bool
}

// ComparisonService fetches and normalizes per-retailer offers for a query.
// Flow: clean query -> short-circuit if too short -> check cache -> fetch ->
// cache -> return.
type ComparisonService struct {
	client   domain.CompareClient
	cache    domain.ResultCache
	limit    int
	cacheTTL time.Duration
	debug    bool
}

// NewComparisonService creates a comparison service with dependencies.
func NewComparisonService(
	client domain.CompareClient,
	cache domain.ResultCache,
	config ComparisonServiceConfig,
) *ComparisonService {
	limit := config.ResultLimit
	if limit <= 0 {
		limit = 10
	}

	cacheTTL := config.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = 5 * time.Minute
	}

	return &ComparisonService{
		client:   client,
		cache:    cache,
		limit:    limit,
		cacheTTL: cacheTTL,
		debug:    config.EnableDebugLogging,
	}
}

// FetchComparison returns the normalized result collection for a query.
// Too-short queries yield an empty collection without touching the network.
// Transport and backend failures come back as categorized errors,
// distinguishable from the zero-results case.
func (s *ComparisonService) FetchComparison(ctx context.Context, query string) ([]domain.ComparisonResult, error) {
	cleaned := CleanQuery(query)
	if utf8.RuneCountInString(cleaned) < minQueryLength {
		if s.debug {
			log.Printf("[COMPARE] Query too short after cleaning: %q", cleaned)
		}
		return []domain.ComparisonResult{}, nil
	}

	cacheKey := fmt.Sprintf("compare:%s", strings.ToLower(cleaned))
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, cacheKey); err == nil {
			if s.debug {
				log.Printf("[COMPARE] Cache hit for %q (%d results)", cleaned, len(cached))
			}
			return cached, nil
		} else if !errors.Is(err, domain.ErrCacheMiss) {
			log.Printf("[COMPARE] Cache read error for %q: %v", cleaned, err)
		}
	}

	results, err := s.client.Compare(ctx, cleaned, s.limit)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKey, results, s.cacheTTL); err != nil {
			log.Printf("[COMPARE] Cache write error for %q: %v", cleaned, err)
		}
	}

	return results, nil
}

// Snapshot is the single observable outcome of a session at a point in time.
// Exactly one of loading, error, empty and populated holds.
type Snapshot struct {
	Query   string
	Loading bool
	Err     error
	Results []domain.ComparisonResult
}

// RenderState names the mutually exclusive render states.
type RenderState string

const (
	RenderLoading   RenderState = "loading"
	RenderError     RenderState = "error"
	RenderEmpty     RenderState = "empty"
	RenderPopulated RenderState = "populated"
)

// RenderState derives which of the four states the snapshot is in.
func (s Snapshot) RenderState() RenderState {
	switch {
	case s.Loading:
		return RenderLoading
	case s.Err != nil:
		return RenderError
	case len(s.Results) == 0:
		return RenderEmpty
	default:
		return RenderPopulated
	}
}

// Session tracks the result collection for one results page. Each fetch is
// tagged with a monotonically increasing request id; a completion whose id is
// no longer current is discarded, so a slow response for an old query can
// never overwrite a newer query's results. Async completions are not assumed
// to arrive in issue order.
type Session struct {
	mu  sync.Mutex
	svc *ComparisonService

	activeID    uint64
	activeQuery string
	loading     bool
	err         error
	results     []domain.ComparisonResult
}

// NewSession creates an empty session.
func NewSession(svc *ComparisonService) *Session {
	return &Session{svc: svc}
}

// Submit fetches results for a query and installs them if the query is still
// current on completion. Re-submitting the query already in flight is
// rejected; a different query supersedes the in-flight one, whose completion
// will then be discarded with ErrStaleQuery.
func (s *Session) Submit(ctx context.Context, query string) error {
	cleaned := CleanQuery(query)

	s.mu.Lock()
	if s.loading && cleaned == s.activeQuery {
		s.mu.Unlock()
		return domain.ErrSubmitInFlight
	}
	s.activeID++
	id := s.activeID
	s.activeQuery = cleaned
	s.loading = true
	s.err = nil
	s.mu.Unlock()

	// The only suspension point in the pipeline.
	results, err := s.svc.FetchComparison(ctx, query)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.activeID != id {
		// A newer query took over while this fetch was pending.
		return fmt.Errorf("%w: %q", domain.ErrStaleQuery, cleaned)
	}

	s.loading = false
	s.err = err
	if err != nil {
		s.results = nil
		return err
	}
	s.results = results
	return nil
}

// Snapshot returns the current observable state. The result slice is a copy.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	results := make([]domain.ComparisonResult, len(s.results))
	copy(results, s.results)
	return Snapshot{
		Query:   s.activeQuery,
		Loading: s.loading,
		Err:     s.err,
		Results: results,
	}
}

// Loading reports whether a fetch is pending.
func (s *Session) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Reset discards the session's state, e.g. on navigation away.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.activeID++ // invalidates any in-flight fetch
	s.activeQuery = ""
	s.loading = false
	s.err = nil
	s.results = nil
}
