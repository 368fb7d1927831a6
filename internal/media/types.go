// Package media turns raw search records into typed views and renders them.
package media

import "fmt"

// Category is the bucket a record is displayed under.
type Category int

const (
	Song Category = iota
	Movie
	Other
)

// Categories lists every category in display order.
var Categories = []Category{Song, Movie, Other}

func (c Category) String() string {
	switch c {
	case Song:
		return "song"
	case Movie:
		return "movie"
	default:
		return "other"
	}
}

// Heading is the section title printed above the category's entries.
func (c Category) Heading() string {
	switch c {
	case Song:
		return "SONGS"
	case Movie:
		return "MOVIES"
	default:
		return "OTHER MEDIA"
	}
}

// View is a normalized record of one category.
type View interface {
	Category() Category
	// Info is the one-line summary shown in listings.
	Info() string
	// Length is seconds for songs, minutes for movies and 0 otherwise.
	Length() int
	Base() Media
}

// Media holds the fields every category shares.
type Media struct {
	Title       string
	Author      string
	ReleaseYear string
	URL         string
}

// SongView is a music track.
type SongView struct {
	Media
	Album         string
	Genre         string
	TrackLengthMS int
}

// MovieView is a feature film.
type MovieView struct {
	Media
	Rating        string
	MovieLengthMS int
}

// MissingFieldError means a required key was absent or unusable.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("record is missing field %q", e.Field)
}

// InvalidFieldError means a key was present but held an unusable value.
type InvalidFieldError struct {
	Field string
	Value any
}

func (e *InvalidFieldError) Error() string {
	return fmt.Sprintf("record field %q has invalid value %v", e.Field, e.Value)
}
