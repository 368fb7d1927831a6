package media

import (
	"math"
	"strconv"

	"github.com/goccy/go-json"

	"github.com/gndm/itunesSearch/internal/itunes"
)

// Normalize builds the view of rec for category c.
func Normalize(rec itunes.Record, c Category) (View, error) {
	var (
		v   View
		err error
	)
	switch c {
	case Song:
		var s *SongView
		s, err = NewSong(rec)
		v = s
	case Movie:
		var m *MovieView
		m, err = NewMovie(rec)
		v = m
	default:
		var m *Media
		m, err = NewMedia(rec)
		v = m
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}

// NewMedia builds the generic view. Track-level fields win over
// collection-level ones.
func NewMedia(rec itunes.Record) (*Media, error) {
	title, err := firstOf(rec, FieldTrackName, FieldCollectionName)
	if err != nil {
		return nil, err
	}
	author, err := required(rec, FieldArtistName)
	if err != nil {
		return nil, err
	}
	date := str(rec, FieldReleaseDate)
	if len(date) < 4 {
		return nil, &MissingFieldError{Field: FieldReleaseDate}
	}
	u, err := ResolveURL(rec)
	if err != nil {
		return nil, err
	}
	return &Media{
		Title:       title,
		Author:      author,
		ReleaseYear: date[:4],
		URL:         u,
	}, nil
}

// NewSong builds a song view.
func NewSong(rec itunes.Record) (*SongView, error) {
	m, err := NewMedia(rec)
	if err != nil {
		return nil, err
	}
	album, err := required(rec, FieldCollectionName)
	if err != nil {
		return nil, err
	}
	genre, err := required(rec, FieldGenre)
	if err != nil {
		return nil, err
	}
	length, err := millis(rec, FieldTrackTimeMillis)
	if err != nil {
		return nil, err
	}
	return &SongView{Media: *m, Album: album, Genre: genre, TrackLengthMS: length}, nil
}

// NewMovie builds a movie view.
func NewMovie(rec itunes.Record) (*MovieView, error) {
	m, err := NewMedia(rec)
	if err != nil {
		return nil, err
	}
	rating, err := required(rec, FieldRating)
	if err != nil {
		return nil, err
	}
	length, err := millis(rec, FieldTrackTimeMillis)
	if err != nil {
		return nil, err
	}
	return &MovieView{Media: *m, Rating: rating, MovieLengthMS: length}, nil
}

// ResolveURL returns the record's launchable URL.
func ResolveURL(rec itunes.Record) (string, error) {
	return firstOf(rec, FieldTrackViewURL, FieldCollectionURL)
}

func required(rec itunes.Record, key string) (string, error) {
	if s := str(rec, key); s != "" {
		return s, nil
	}
	return "", &MissingFieldError{Field: key}
}

// firstOf returns the first non-empty string among keys. A miss reports
// the preferred key.
func firstOf(rec itunes.Record, keys ...string) (string, error) {
	for _, k := range keys {
		if s := str(rec, k); s != "" {
			return s, nil
		}
	}
	return "", &MissingFieldError{Field: keys[0]}
}

// millis reads a non-negative integer duration that may arrive as a JSON
// number or a numeric string.
func millis(rec itunes.Record, key string) (int, error) {
	v, ok := rec[key]
	if !ok || v == nil {
		return 0, &MissingFieldError{Field: key}
	}

	var n int64
	var err error
	switch t := v.(type) {
	case json.Number:
		n, err = t.Int64()
		if err != nil {
			n, err = integral(t.Float64())
		}
	case float64:
		n, err = integral(t, nil)
	case int:
		n = int64(t)
	case int64:
		n = t
	case string:
		n, err = strconv.ParseInt(t, 10, 64)
	default:
		err = strconv.ErrSyntax
	}
	if err != nil || n < 0 || n > math.MaxInt {
		return 0, &InvalidFieldError{Field: key, Value: v}
	}
	return int(n), nil
}

func integral(f float64, err error) (int64, error) {
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) || math.IsInf(f, 0) || math.Abs(f) >= math.MaxInt64 {
		return 0, strconv.ErrSyntax
	}
	return int64(f), nil
}
