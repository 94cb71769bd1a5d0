package compare

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"net/url"
	"syscall"
	"time"

	"github.com/pricescope/client/internal/domain"
	"golang.org/x/time/rate"
)

// StatusError carries a non-2xx backend response verbatim. Unwrap yields the
// error category so callers keep using errors.Is on the domain sentinels.
type StatusError struct {
	Code     int
	Body     string
	category error
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("backend returned status %d: %s", e.Code, e.Body)
}

func (e *StatusError) Unwrap() error {
	return e.category
}

// Client handles communication with the comparison backend.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	rateLimiter *rate.Limiter
	debug       bool
}

// NewClient creates a comparison backend client. The backend fans each query
// out to four retailer scrapers, so outbound calls are throttled to keep a
// burst of page loads from piling up scraper work.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL:     baseURL,
		rateLimiter: rate.NewLimiter(rate.Limit(2), 5),
	}
}

// SetDebug toggles per-request logging.
func (c *Client) SetDebug(debug bool) {
	c.debug = debug
}

// envelope is the backend's response wrapper. Fields beyond results are
// informational; per-result match metadata (scores, cheaper_on) is ignored.
type envelope struct {
	Success bool              `json:"success"`
	Query   string            `json:"query"`
	Results []json.RawMessage `json:"results"`
	Count   int               `json:"count"`
	Error   string            `json:"error"`
}

// Compare fetches per-retailer offers for the given query.
// A 2xx response with zero results is the empty-results case, not an error.
func (c *Client) Compare(ctx context.Context, query string, limit int) ([]domain.ComparisonResult, error) {
	if c.debug {
		log.Printf("[COMPARE] Compare called with query: %q, limit: %d", query, limit)
	}

	endpoint := fmt.Sprintf("%s/api/compare", c.baseURL)
	params := url.Values{}
	params.Add("query", query)
	params.Add("limit", fmt.Sprintf("%d", limit))
	reqURL := fmt.Sprintf("%s?%s", endpoint, params.Encode())

	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter error: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "PriceScope/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, categorizeTransportError(err)
	}

	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return nil, fmt.Errorf("%w: reading response: %v", domain.ErrBackendFailure, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if c.debug {
			log.Printf("[COMPARE] Backend error - Status: %d, Body: %s", resp.StatusCode, string(body))
		}
		return nil, &StatusError{
			Code:     resp.StatusCode,
			Body:     string(body),
			category: categorizeStatus(resp.StatusCode),
		}
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", domain.ErrBackendFailure, err)
	}

	results := MapResults(env.Results)
	if c.debug {
		log.Printf("[COMPARE] Backend returned %d results for query: %q", len(results), query)
	}
	return results, nil
}

// categorizeStatus maps a non-2xx status to the domain error taxonomy.
func categorizeStatus(code int) error {
	switch {
	case code == http.StatusNotFound:
		return domain.ErrEndpointNotFound
	case code == http.StatusRequestTimeout || code == http.StatusGatewayTimeout:
		// 504 must win over the generic 5xx case.
		return domain.ErrRequestTimeout
	case code >= 500:
		return domain.ErrBackendFailure
	default:
		return domain.ErrBackendFailure
	}
}

// categorizeTransportError maps a transport-level failure to the domain error
// taxonomy so the search box can render a useful message.
func categorizeTransportError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", domain.ErrRequestTimeout, err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("%w: %v", domain.ErrRequestTimeout, err)
	}
	if errors.Is(err, syscall.ECONNREFUSED) {
		return fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err)
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err)
	}
	return fmt.Errorf("%w: %v", domain.ErrBackendFailure, err)
}
