package session

import (
	"errors"
	"fmt"

	"github.com/gndm/itunesSearch/internal/itunes"
)

// Errors returned when resolving a selection.
var (
	ErrEmptyResults     = errors.New("no results to select from")
	ErrSelectionInvalid = errors.New("selection out of range")
)

// State is the position of the interactive loop.
type State int

const (
	// AwaitingTerm has no active result list.
	AwaitingTerm State = iota
	// AwaitingSelection has a non-empty result list to pick from.
	AwaitingSelection
	Terminated
)

func (s State) String() string {
	switch s {
	case AwaitingTerm:
		return "awaiting_term"
	case AwaitingSelection:
		return "awaiting_selection"
	case Terminated:
		return "terminated"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// ResultList holds the raw records of the current search in display order.
// Positions are 1-based to match the numbers printed next to each entry.
type ResultList struct {
	records []itunes.Record
}

// Reset empties the list.
func (l *ResultList) Reset() { l.records = nil }

// Append adds rec as the next numbered entry.
func (l *ResultList) Append(rec itunes.Record) { l.records = append(l.records, rec) }

// Len returns the number of entries.
func (l *ResultList) Len() int { return len(l.records) }

// Get returns the entry numbered n.
func (l *ResultList) Get(n int) (itunes.Record, error) {
	if len(l.records) == 0 {
		return nil, ErrEmptyResults
	}
	if n < 1 || n > len(l.records) {
		return nil, fmt.Errorf("%w: %d not in [1, %d]", ErrSelectionInvalid, n, len(l.records))
	}
	return l.records[n-1], nil
}

// Records returns a copy of the entries.
func (l *ResultList) Records() []itunes.Record {
	out := make([]itunes.Record, len(l.records))
	copy(out, l.records)
	return out
}
