package model

import "strconv"

type Movie struct {
	ID                 string             `json:"movie_id"`
	Title              string             `json:"title"`
	Year               int                `json:"year"`
	Genres             []string           `json:"genres"`
	StreamingPlatforms []string           `json:"streaming_platforms"`
	Ratings            map[string]float64 `json:"ratings,omitempty"`
	Summary            string             `json:"summary,omitempty"`
}

// Decade returns the decade marker of the release year, e.g. "1990" for 1994.
func (m Movie) Decade() string {
	return DecadeOf(m.Year)
}

func DecadeOf(year int) string {
	return strconv.Itoa(year - year%10)
}

// GenreIndex maps movie id to its catalog genres.
type GenreIndex map[string][]string

func NewGenreIndex(catalog []Movie) GenreIndex {
	idx := make(GenreIndex, len(catalog))
	for _, m := range catalog {
		idx[m.ID] = m.Genres
	}
	return idx
}

func (idx GenreIndex) LookupGenres(movieID string) ([]string, bool) {
	genres, ok := idx[movieID]
	return genres, ok
}
