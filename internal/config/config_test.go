//go:build !integration

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRatingSource(t *testing.T) {
	tt := []struct {
		name     string
		raw      string
		expected RatingSource
	}{
		{name: "unset", raw: "", expected: RatingSourceMovieThenGenre},
		{name: "movie", raw: "movie", expected: RatingSourceMovie},
		{name: "genre", raw: "genre", expected: RatingSourceGenre},
		{name: "unknown value falls back", raw: "genre_then_movie", expected: RatingSourceMovieThenGenre},
		{name: "case matters", raw: "MOVIE", expected: RatingSourceMovieThenGenre},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("SELECTION_RATING_SOURCE", tc.raw)

			assert.Equal(t, tc.expected, newSelection().RatingSource)
		})
	}
}

func TestDefaultSelectionIsValid(t *testing.T) {
	assert.True(t, DefaultSelection().RatingSource.Valid())
}
