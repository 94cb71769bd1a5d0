package http

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/pricescope/client/internal/domain"
	"github.com/pricescope/client/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	comparison *usecase.ComparisonService
	suggester  *usecase.Suggester
}

// NewHandler creates a new HTTP handler
func NewHandler(comparison *usecase.ComparisonService, suggester *usecase.Suggester) *Handler {
	if suggester == nil {
		suggester = usecase.NewSuggester(nil)
	}
	return &Handler{
		comparison: comparison,
		suggester:  suggester,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "pricescope-client",
		"version": "1.0.0",
	})
}

// Suggestions serves the incremental search dropdown plus the trending chips.
// Matching is in-memory against the fixed candidate list; no backend call.
func (h *Handler) Suggestions(c *gin.Context) {
	query := c.Query("q")
	matches := h.suggester.Match(query)
	if matches == nil {
		matches = []string{}
	}

	c.JSON(http.StatusOK, gin.H{
		"query":       query,
		"suggestions": matches,
		"trending":    h.suggester.TrendingTerms(),
	})
}

// SubmitSearch validates a search-box submission and answers with the results
// navigation target. Blank input never reaches the comparison backend.
func (h *Handler) SubmitSearch(c *gin.Context) {
	var req struct {
		Text string `json:"text"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	var handedOff string
	controller := usecase.NewSearchController(h.suggester, func(query string) error {
		handedOff = query
		return nil
	})
	controller.HandleChange(req.Text)

	if err := controller.Submit(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": controller.LastError()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"query":    handedOff,
		"redirect": "/products?q=" + url.QueryEscape(handedOff),
	})
}

// Compare runs the full pipeline for a query: fetch and normalize offers from
// the comparison backend, then apply the requested filter/sort spec. Exactly
// one of the error / empty / populated shapes comes back; loading is the
// caller's pending request itself.
func (h *Handler) Compare(c *gin.Context) {
	query := c.Query("q")
	if strings.TrimSpace(query) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please enter a search term"})
		return
	}

	spec, err := bindFilterSpec(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// A fresh session per request; the HTTP surface holds no cross-request
	// state, so the session's staleness discipline is trivially satisfied.
	session := usecase.NewSession(h.comparison)
	if err := session.Submit(c.Request.Context(), query); err != nil {
		status := http.StatusBadGateway
		if errors.Is(err, domain.ErrRequestTimeout) {
			status = http.StatusGatewayTimeout
		}
		c.JSON(status, gin.H{
			"error":  usecase.ErrorMessage(err),
			"detail": err.Error(),
		})
		return
	}

	filtered := usecase.ApplyFilters(session.Snapshot().Results, spec)

	response := gin.H{
		"query":   query,
		"count":   len(filtered),
		"results": filtered,
	}
	if len(filtered) == 0 {
		// Dedicated no-results affordance, distinct from the error state.
		response["suggestions"] = h.suggester.NoResultsSuggestions()
	}
	c.JSON(http.StatusOK, response)
}

// bindFilterSpec reads the filter/sort spec from query parameters, applying
// the defaults for anything omitted.
func bindFilterSpec(c *gin.Context) (domain.FilterSpec, error) {
	spec := domain.DefaultFilterSpec()

	if raw := c.Query("min_price"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return spec, errors.New("min_price must be an integer")
		}
		spec.MinPrice = v
	}
	if raw := c.Query("max_price"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return spec, errors.New("max_price must be an integer")
		}
		spec.MaxPrice = v
	}
	if raw := c.Query("platforms"); raw != "" {
		var platforms []domain.Retailer
		for _, part := range strings.Split(raw, ",") {
			r, err := domain.ParseRetailer(strings.TrimSpace(part))
			if err != nil {
				return spec, err
			}
			platforms = append(platforms, r)
		}
		spec.Platforms = platforms
	}
	if raw := c.Query("rating"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return spec, errors.New("rating must be a number")
		}
		spec.MinRating = v
	}
	if raw := c.Query("sort"); raw != "" {
		spec.Sort = domain.SortMode(raw)
	}

	if err := spec.Validate(); err != nil {
		return spec, err
	}
	return spec, nil
}
