package usecase

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/pricescope/client/internal/domain"
)

// SearchState is the observable state of the search box.
type SearchState string

const (
	StateIdle       SearchState = "idle"
	StateEditing    SearchState = "editing" // suggestions may be visible
	StateSubmitting SearchState = "submitting"
	StateError      SearchState = "error"
)

// Key identifiers understood by HandleKey.
const (
	KeyEnter     = "Enter"
	KeyArrowDown = "ArrowDown"
	KeyArrowUp   = "ArrowUp"
)

// noSelection is the cursor value when no suggestion is highlighted.
const noSelection = -1

// SubmitFunc hands a normalized query off to the owning page. The page owns
// navigation and the fetch outcome; the controller only reports hand-off
// failures.
type SubmitFunc func(query string) error

// SearchController owns the mutable state of the search box: raw text, the
// suggestion dropdown, the selection cursor, the in-flight flag and the last
// error. Suggestion clicks and trending-term clicks go through Submit
// directly instead of poking at the rendered form.
type SearchController struct {
	mu sync.Mutex

	suggester *Suggester
	submit    SubmitFunc

	// settle, when set, runs after a suggestion's text lands in the input and
	// before the follow-up submit, standing in for the original UI's
	// let-the-input-settle delay. The text mutation is always observable
	// before the submit reads it.
	settle func()

	state       SearchState
	text        string
	suggestions []string
	cursor      int
	submitting  bool
	lastError   string
	debug       bool
}

// NewSearchController creates a controller in its initial (Idle) state.
func NewSearchController(suggester *Suggester, submit SubmitFunc) *SearchController {
	return &SearchController{
		suggester: suggester,
		submit:    submit,
		state:     StateIdle,
		cursor:    noSelection,
	}
}

// SetDebug toggles state-transition logging.
func (c *SearchController) SetDebug(debug bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.debug = debug
}

// SetSettleHook installs a hook invoked between suggestion selection and the
// follow-up submit.
func (c *SearchController) SetSettleHook(settle func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.settle = settle
}

// HandleChange records an edit to the input, recomputes suggestions and
// clears any prior error. Clearing the input resets to the initial state.
func (c *SearchController) HandleChange(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.text = text
	c.cursor = noSelection
	c.lastError = ""

	if strings.TrimSpace(text) == "" {
		c.suggestions = nil
		c.state = StateIdle
		return
	}

	c.suggestions = c.suggester.Match(text)
	c.state = StateEditing
	if c.debug {
		log.Printf("[SEARCH] edit %q -> %d suggestions", text, len(c.suggestions))
	}
}

// Submit validates the current text and hands the query off. Blank input is a
// local validation error and never reaches the hand-off. A submit while one
// is already in flight is rejected.
func (c *SearchController) Submit() error {
	c.mu.Lock()

	if c.submitting {
		c.mu.Unlock()
		return domain.ErrSubmitInFlight
	}

	query := strings.TrimSpace(c.text)
	if query == "" {
		c.state = StateError
		c.lastError = "Please enter a search term"
		c.mu.Unlock()
		return domain.ErrEmptyQuery
	}

	c.submitting = true
	c.state = StateSubmitting
	c.suggestions = nil
	c.cursor = noSelection
	c.lastError = ""
	submit := c.submit
	c.mu.Unlock()

	err := submit(query)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.submitting = false

	if err != nil {
		c.state = StateError
		c.lastError = ErrorMessage(err)
		if c.debug {
			log.Printf("[SEARCH] submit failed for %q: %v", query, err)
		}
		return err
	}

	// Hand-off succeeded; the page owns the rest.
	c.state = StateEditing
	return nil
}

// HandleKey processes keyboard navigation. ArrowDown/ArrowUp move the cursor
// circularly through the suggestions; Enter submits the current text as-is.
// Enter does not substitute the highlighted suggestion; only a selection
// action replaces the text.
func (c *SearchController) HandleKey(key string) error {
	switch key {
	case KeyEnter:
		return c.Submit()
	case KeyArrowDown:
		c.moveCursor(+1)
	case KeyArrowUp:
		c.moveCursor(-1)
	}
	return nil
}

func (c *SearchController) moveCursor(delta int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := len(c.suggestions)
	if n == 0 {
		return
	}

	switch {
	case c.cursor == noSelection:
		if delta > 0 {
			c.cursor = 0
		} else {
			c.cursor = n - 1
		}
	default:
		c.cursor = ((c.cursor+delta)%n + n) % n
	}
}

// SelectSuggestion replaces the input text with the chosen suggestion, hides
// the dropdown and submits through the same path as an explicit submit. The
// text mutation completes before the submit reads it.
func (c *SearchController) SelectSuggestion(index int) error {
	c.mu.Lock()

	if index < 0 || index >= len(c.suggestions) {
		c.mu.Unlock()
		return fmt.Errorf("suggestion index %d out of range", index)
	}

	c.text = c.suggestions[index]
	c.suggestions = nil
	c.cursor = noSelection
	settle := c.settle
	c.mu.Unlock()

	if settle != nil {
		settle()
	}
	return c.Submit()
}

// SubmitTerm is the direct-call path for trending-term chips: set the text,
// then submit. No DOM archaeology.
func (c *SearchController) SubmitTerm(term string) error {
	c.HandleChange(term)
	return c.Submit()
}

// Clear resets the search box to its initial form.
func (c *SearchController) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state = StateIdle
	c.text = ""
	c.suggestions = nil
	c.cursor = noSelection
	c.lastError = ""
}

// State returns the current state.
func (c *SearchController) State() SearchState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Text returns the current input text.
func (c *SearchController) Text() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.text
}

// Suggestions returns the visible suggestion list.
func (c *SearchController) Suggestions() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, len(c.suggestions))
	copy(out, c.suggestions)
	return out
}

// SelectedIndex returns the suggestion cursor, -1 when none is highlighted.
func (c *SearchController) SelectedIndex() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cursor
}

// LastError returns the user-facing error message, empty when there is none.
func (c *SearchController) LastError() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastError
}

// ErrorMessage maps a pipeline failure to the message shown to the user,
// categorized by failure kind with a generic fallback.
func ErrorMessage(err error) string {
	const prefix = "Search failed. "
	switch {
	case errors.Is(err, domain.ErrBackendUnavailable):
		return prefix + "Backend not running. Start the comparison backend."
	case errors.Is(err, domain.ErrEndpointNotFound):
		return prefix + "API endpoint not found. Check backend."
	case errors.Is(err, domain.ErrBackendFailure):
		return prefix + "Backend error. Check server logs."
	case errors.Is(err, domain.ErrRequestTimeout):
		return prefix + "Request timeout. Backend might be slow."
	default:
		return prefix + err.Error()
	}
}
