package parser

import (
	"errors"
	"strconv"
	"testing"

	"github.com/gndm/itunesSearch/internal/itunes"
)

func TestResultCount(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr error
		wantMsg string
	}{
		{name: "lower bound", input: "1", want: 1},
		{name: "upper bound", input: "50", want: 50},
		{name: "middle", input: "10", want: 10},
		{name: "surrounding spaces", input: " 7 ", want: 7},
		{name: "zero", input: "0", wantErr: ErrOutOfBounds, wantMsg: "Please enter a valid number between 1 and 50, inclusive."},
		{name: "above max", input: "51", wantErr: ErrOutOfBounds, wantMsg: "Please enter a valid number between 1 and 50, inclusive."},
		{name: "negative", input: "-4", wantErr: ErrOutOfBounds, wantMsg: "Please enter a valid number between 1 and 50, inclusive."},
		{name: "letters", input: "abc", wantErr: ErrNotANumber, wantMsg: "Please enter a valid number greater than 0."},
		{name: "empty", input: "", wantErr: ErrNotANumber, wantMsg: "Please enter a valid number greater than 0."},
		{name: "decimal", input: "2.5", wantErr: ErrNotANumber, wantMsg: "Please enter a valid number greater than 0."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResultCount(tt.input)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("ResultCount(%q) error = %v", tt.input, err)
				}
				if got != tt.want {
					t.Errorf("ResultCount(%q) = %d, want %d", tt.input, got, tt.want)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ResultCount(%q) error = %v, want %v", tt.input, err, tt.wantErr)
			}
			var ce *CountError
			if !errors.As(err, &ce) {
				t.Fatalf("expected *CountError, got %T", err)
			}
			if ce.Message != tt.wantMsg {
				t.Errorf("Message = %q, want %q", ce.Message, tt.wantMsg)
			}
		})
	}
}

func TestResultCountFollowsSearchLimits(t *testing.T) {
	for _, n := range []int{itunes.MinLimit, itunes.MaxLimit} {
		if got, err := ResultCount(strconv.Itoa(n)); err != nil || got != n {
			t.Errorf("ResultCount(%d) = %d, %v", n, got, err)
		}
	}
	for _, n := range []int{itunes.MinLimit - 1, itunes.MaxLimit + 1} {
		if _, err := ResultCount(strconv.Itoa(n)); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("ResultCount(%d) error = %v, want ErrOutOfBounds", n, err)
		}
	}
	if want := "min=1,max=50"; countRule != want {
		t.Errorf("countRule = %q, want %q", countRule, want)
	}
}

func TestSelection(t *testing.T) {
	tests := []struct {
		input  string
		want   int
		wantOK bool
	}{
		{"2", 2, true},
		{" 3\t", 3, true},
		{"0", 0, true},
		{"-1", -1, true},
		{"banana", 0, false},
		{"2 songs", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, ok := Selection(tt.input)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("Selection(%q) = (%d, %v), want (%d, %v)", tt.input, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestIsExit(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"exit", true},
		{"Exit", false},
		{" exit", false},
		{"exited", false},
	}
	for _, tt := range tests {
		if got := IsExit(tt.input); got != tt.want {
			t.Errorf("IsExit(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
