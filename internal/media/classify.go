package media

import (
	"strings"

	"github.com/gndm/itunesSearch/internal/itunes"
)

// Raw field names in the search API's vocabulary.
const (
	FieldWrapperType     = "wrapperType"
	FieldKind            = "kind"
	FieldTrackName       = "trackName"
	FieldCollectionName  = "collectionName"
	FieldArtistName      = "artistName"
	FieldReleaseDate     = "releaseDate"
	FieldTrackViewURL    = "trackViewUrl"
	FieldCollectionURL   = "collectionViewUrl"
	FieldTrackTimeMillis = "trackTimeMillis"
	FieldGenre           = "primaryGenreName"
	FieldRating          = "contentAdvisoryRating"
)

// Classify buckets rec. Only "track" wrappers can be songs or movies; the
// kind is matched by substring, so "song" also matches e.g. "song-like" kinds.
func Classify(rec itunes.Record) Category {
	if str(rec, FieldWrapperType) != "track" {
		return Other
	}
	kind := str(rec, FieldKind)
	switch {
	case strings.Contains(kind, "song"):
		return Song
	case strings.Contains(kind, "feature-movie"):
		return Movie
	default:
		return Other
	}
}

// str returns the string value at key, or "" if absent or not a string.
func str(rec itunes.Record, key string) string {
	s, _ := rec[key].(string)
	return s
}
