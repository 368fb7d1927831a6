// Package parser interprets lines typed at the interactive prompts.
package parser

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gndm/itunesSearch/internal/itunes"
	"github.com/gndm/itunesSearch/internal/validation"
)

// ExitCommand ends the session from any prompt.
const ExitCommand = "exit"

// Errors returned by ResultCount.
var (
	ErrNotANumber  = errors.New("not a number")
	ErrOutOfBounds = errors.New("out of bounds")
)

// CountError explains why a result count was rejected. Message is
// user-facing.
type CountError struct {
	Input   string
	Message string
	Err     error
}

func (e *CountError) Error() string {
	return fmt.Sprintf("invalid result count %q: %v", e.Input, e.Err)
}

func (e *CountError) Unwrap() error { return e.Err }

var countRule = fmt.Sprintf("min=%d,max=%d", itunes.MinLimit, itunes.MaxLimit)

// ResultCount parses how many results to request. Surrounding whitespace is
// ignored; anything else that is not an integer in [1, 50] is rejected.
func ResultCount(input string) (int, error) {
	s := strings.TrimSpace(input)
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, &CountError{
			Input:   input,
			Message: "Please enter a valid number greater than 0.",
			Err:     ErrNotANumber,
		}
	}
	if err := validation.ValidateVar("count", n, countRule); err != nil {
		return 0, &CountError{
			Input:   input,
			Message: fmt.Sprintf("Please enter a valid number between %d and %d, inclusive.", itunes.MinLimit, itunes.MaxLimit),
			Err:     fmt.Errorf("%w: %v", ErrOutOfBounds, err),
		}
	}
	return n, nil
}

// Selection parses a 1-based result number. ok is false when input is not
// an integer; range checking is left to the caller, which knows the list.
func Selection(input string) (n int, ok bool) {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, false
	}
	return n, true
}

// IsExit reports whether input is the exit command. The match is exact.
func IsExit(input string) bool {
	return input == ExitCommand
}
