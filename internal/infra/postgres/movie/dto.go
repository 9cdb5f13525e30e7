package infra_postgres_movie

import (
	json "github.com/goccy/go-json"
	"github.com/humanbelnik/popcorn/core/internal/model"
	"github.com/lib/pq"
)

type MovieDB struct {
	ID                 string         `db:"id"`
	Title              string         `db:"title"`
	Year               int            `db:"year"`
	Genres             pq.StringArray `db:"genres"`
	StreamingPlatforms pq.StringArray `db:"streaming_platforms"`
	Ratings            []byte         `db:"ratings"`
	Summary            string         `db:"summary"`
}

func (m *MovieDB) ToDomain() (model.Movie, error) {
	movie := model.Movie{
		ID:                 m.ID,
		Title:              m.Title,
		Year:               m.Year,
		Genres:             []string(m.Genres),
		StreamingPlatforms: []string(m.StreamingPlatforms),
		Summary:            m.Summary,
	}
	if len(m.Ratings) > 0 {
		if err := json.Unmarshal(m.Ratings, &movie.Ratings); err != nil {
			return model.Movie{}, err
		}
	}
	return movie, nil
}

func FromDomain(m model.Movie) (MovieDB, error) {
	dto := MovieDB{
		ID:                 m.ID,
		Title:              m.Title,
		Year:               m.Year,
		Genres:             pq.StringArray(nonNil(m.Genres)),
		StreamingPlatforms: pq.StringArray(nonNil(m.StreamingPlatforms)),
		Summary:            m.Summary,
	}
	if len(m.Ratings) > 0 {
		raw, err := json.Marshal(m.Ratings)
		if err != nil {
			return MovieDB{}, err
		}
		dto.Ratings = raw
	}
	return dto, nil
}

func toDomain(rows []MovieDB) ([]model.Movie, error) {
	movies := make([]model.Movie, 0, len(rows))
	for i := range rows {
		m, err := rows[i].ToDomain()
		if err != nil {
			return nil, err
		}
		movies = append(movies, m)
	}
	return movies, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
