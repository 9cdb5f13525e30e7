package candidate_ranker

import (
	"testing"

	"github.com/humanbelnik/popcorn/core/internal/config"
	"github.com/humanbelnik/popcorn/core/internal/model"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type RankerUnitSuite struct {
	suite.Suite
}

func movie(id string, year int, genres ...string) model.Movie {
	return model.Movie{ID: id, Title: id, Year: year, Genres: genres}
}

func ids(scored []model.ScoredMovie) []string {
	out := make([]string, 0, len(scored))
	for _, s := range scored {
		out = append(out, s.Movie.ID)
	}
	return out
}

func dramaNineties() model.PartyPreferenceSummary {
	return model.PartyPreferenceSummary{
		GenrePreferences:  model.NewStringSet("Drama"),
		GenreDealbreakers: model.NewStringSet(),
		DecadePreferences: model.NewStringSet("1990"),
	}
}

func (s *RankerUnitSuite) TestScore(t provider.T) {
	t.Parallel()

	summary := dramaNineties()
	ratings := &model.RatingAggregate{
		RatedMovies:  model.NewStringSet("rated"),
		GenreRatings: map[string]float64{"Drama": 6.0, "Comedy": 8.0},
		MovieRatings: map[string]float64{"rated": 9.0},
	}

	testCases := []struct {
		name      string
		movie     model.Movie
		ratings   *model.RatingAggregate
		wantScore float64
		wantRated bool
	}{
		{name: "Should give full points without ratings", movie: movie("x", 1994, "Drama"), wantScore: 3},
		{name: "Should give decade points only", movie: movie("x", 1994, "Western"), wantScore: 1},
		{name: "Should give nothing on a miss", movie: movie("x", 2004, "Western"), wantScore: 0},
		{name: "Should add half the direct rating", movie: movie("rated", 1994, "Drama"), ratings: ratings, wantScore: 7.5, wantRated: true},
		{name: "Should fall back to genre averages", movie: movie("y", 2004, "Drama", "Comedy"), ratings: ratings, wantScore: 2 + 3.5},
		{name: "Should ignore unknown genres", movie: movie("z", 2004, "Western"), ratings: ratings, wantScore: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			score, rated := New().Score(tc.movie, summary, tc.ratings)
			assert.InDelta(t, tc.wantScore, score, 1e-9)
			assert.Equal(t, tc.wantRated, rated)
		})
	}
}

func (s *RankerUnitSuite) TestScoreRatingSource(t provider.T) {
	t.Parallel()

	summary := dramaNineties()
	ratings := &model.RatingAggregate{
		RatedMovies:  model.NewStringSet("m"),
		GenreRatings: map[string]float64{"Drama": 4.0},
		MovieRatings: map[string]float64{"m": 10.0},
	}
	rated := movie("m", 1994, "Drama")
	unrated := movie("n", 1994, "Drama")

	t.Run("Should use direct ratings only", func(t provider.T) {
		r := New(WithRatingSource(config.RatingSourceMovie))
		got, _ := r.Score(rated, summary, ratings)
		assert.Equal(t, 8.0, got)
		got, _ = r.Score(unrated, summary, ratings)
		assert.Equal(t, 3.0, got)
	})
	t.Run("Should use genre averages only", func(t provider.T) {
		r := New(WithRatingSource(config.RatingSourceGenre))
		got, isRated := r.Score(rated, summary, ratings)
		assert.Equal(t, 5.0, got)
		assert.True(t, isRated)
	})
}

func (s *RankerUnitSuite) TestRankPrefersRated(t provider.T) {
	t.Parallel()

	// Unrated movies outscore the rated ones, yet the rated bucket wins its slots.
	candidates := []model.Movie{
		movie("u1", 1994, "Drama"),
		movie("r1", 2004, "Western"),
		movie("u2", 1995, "Drama"),
		movie("r2", 2005, "Western"),
		movie("u3", 1996, "Drama"),
		movie("r3", 2006, "Western"),
		movie("r4", 2007, "Western"),
		movie("u4", 1997, "Drama"),
	}
	ratings := &model.RatingAggregate{
		RatedMovies:  model.NewStringSet("r1", "r2", "r3", "r4"),
		GenreRatings: map[string]float64{},
		MovieRatings: map[string]float64{"r1": 2, "r2": 6, "r3": 4, "r4": 1},
	}

	got := New().Rank(candidates, dramaNineties(), ratings)

	require.Len(t, got, 5)
	assert.Equal(t, []string{"r2", "r3", "r1", "u1", "u2"}, ids(got))
	assert.True(t, got[0].Rated)
	assert.False(t, got[4].Rated)
}

func (s *RankerUnitSuite) TestRankFillsFromRated(t provider.T) {
	t.Parallel()

	candidates := []model.Movie{
		movie("r1", 1994, "Drama"),
		movie("r2", 1994, "Drama"),
		movie("r3", 1994, "Drama"),
		movie("r4", 1994, "Drama"),
		movie("u1", 1994, "Drama"),
	}
	ratings := &model.RatingAggregate{
		RatedMovies:  model.NewStringSet("r1", "r2", "r3", "r4"),
		GenreRatings: map[string]float64{},
		MovieRatings: map[string]float64{"r1": 5, "r2": 5, "r3": 5, "r4": 9},
	}

	got := New().Rank(candidates, dramaNineties(), ratings)

	assert.Equal(t, []string{"r4", "r1", "r2", "u1"}, ids(got))
}

func (s *RankerUnitSuite) TestRankShortInput(t provider.T) {
	t.Parallel()

	candidates := []model.Movie{
		movie("a", 1994, "Drama"),
		movie("b", 2004, "Drama"),
		movie("c", 2014, "Western"),
	}

	got := New().Rank(candidates, dramaNineties(), nil)

	assert.Equal(t, []string{"a", "b", "c"}, ids(got))
	assert.Empty(t, New().Rank(nil, dramaNineties(), nil))
}

func (s *RankerUnitSuite) TestRankStableTies(t provider.T) {
	t.Parallel()

	candidates := []model.Movie{
		movie("first", 1994, "Drama"),
		movie("second", 1994, "Drama"),
		movie("third", 1994, "Drama"),
	}

	got := New(WithFinalSize(2)).Rank(candidates, dramaNineties(), nil)

	assert.Equal(t, []string{"first", "second"}, ids(got))
	for _, sm := range got {
		assert.LessOrEqual(t, sm.Score, 3.0)
	}
}

func (s *RankerUnitSuite) TestNewClampsOptions(t provider.T) {
	t.Parallel()

	r := New(WithFinalSize(2), WithRatedSlots(7))
	assert.Equal(t, 2, r.ratedSlots)

	r = New(WithFinalSize(-1))
	assert.Equal(t, 0, r.finalSize)
	assert.Empty(t, r.Rank([]model.Movie{movie("a", 1994)}, dramaNineties(), nil))
}

func TestRankerUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(RankerUnitSuite))
}
