package itunes

import (
	"errors"
	"fmt"

	"github.com/goccy/go-json"
)

// Record is one raw object from the "results" array. Field sets vary by media
// kind, so it is kept untyped; numbers decode as json.Number.
type Record map[string]any

// Limits accepted by the search endpoint.
const (
	MinLimit = 1
	MaxLimit = 50
)

// ErrInvalidLimit is returned when limit falls outside [MinLimit, MaxLimit].
var ErrInvalidLimit = errors.New("limit must be between 1 and 50")

// SearchFailedError reports any failure to obtain a result set: transport
// errors, timeouts, non-2xx responses and undecodable bodies.
type SearchFailedError struct {
	Term       string
	StatusCode int // 0 when no response was received
	Err        error
}

func (e *SearchFailedError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("search for %q failed (status %d): %v", e.Term, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("search for %q failed: %v", e.Term, e.Err)
}

func (e *SearchFailedError) Unwrap() error { return e.Err }

// Result pairs a decoded record with the bytes it was decoded from. Raw is
// empty for results built in memory.
type Result struct {
	Record Record
	Raw    json.RawMessage
}

type searchResponse struct {
	ResultCount int               `json:"resultCount"`
	Results     []json.RawMessage `json:"results"`
}
