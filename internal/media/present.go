package media

import "fmt"

// Messages printed for empty categories and empty searches.
const (
	NoSongsMessage   = "There are no songs that match your search."
	NoMoviesMessage  = "There are no movies that match your search."
	NoOtherMessage   = "There is no other media that matches your search."
	NoResultsMessage = "There are no results for your search."
)

// EmptyMessage returns the message for a category with no entries.
func (c Category) EmptyMessage() string {
	switch c {
	case Song:
		return NoSongsMessage
	case Movie:
		return NoMoviesMessage
	default:
		return NoOtherMessage
	}
}

func (m *Media) Category() Category { return Other }
func (m *Media) Base() Media        { return *m }
func (m *Media) Length() int        { return 0 }

func (m *Media) Info() string {
	return fmt.Sprintf("%s by %s (%s)", m.Title, m.Author, m.ReleaseYear)
}

func (s *SongView) Category() Category { return Song }
func (s *SongView) Base() Media        { return s.Media }

func (s *SongView) Info() string {
	return s.Media.Info() + fmt.Sprintf(" [%s]", s.Genre)
}

// Length is the track length in whole seconds.
func (s *SongView) Length() int { return s.TrackLengthMS / 1000 }

func (m *MovieView) Category() Category { return Movie }
func (m *MovieView) Base() Media        { return m.Media }

func (m *MovieView) Info() string {
	return m.Media.Info() + fmt.Sprintf(" [%s]", m.Rating)
}

// Length is the running time in whole minutes.
func (m *MovieView) Length() int { return m.MovieLengthMS / 60000 }

// FormatEntry renders a numbered listing line.
func FormatEntry(n int, v View) string {
	return fmt.Sprintf("%d %s", n, v.Info())
}
