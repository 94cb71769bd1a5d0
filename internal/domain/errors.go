package domain

import "errors"

var (
	// ErrEmptyQuery is returned when a submit is attempted with a blank search box
	ErrEmptyQuery = errors.New("please enter a search term")

	// ErrInvalidFilter is returned when a filter spec fails validation
	ErrInvalidFilter = errors.New("invalid filter parameters")

	// ErrBackendUnavailable maps connection-refused-like transport failures
	ErrBackendUnavailable = errors.New("comparison backend not running")

	// ErrEndpointNotFound maps 404 responses from the comparison backend
	ErrEndpointNotFound = errors.New("comparison endpoint not found")

	// ErrBackendFailure maps server-fault responses from the comparison backend
	ErrBackendFailure = errors.New("comparison backend error")

	// ErrRequestTimeout maps transport-level timeouts on the comparison call
	ErrRequestTimeout = errors.New("comparison request timeout")

	// ErrStaleQuery is returned when a fetch completes after its query has been superseded
	ErrStaleQuery = errors.New("query superseded by a newer search")

	// ErrSubmitInFlight rejects re-entrant submissions while a fetch is pending
	ErrSubmitInFlight = errors.New("a search is already in progress")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")
)
