package candidate_ranker

import (
	"slices"

	"github.com/humanbelnik/popcorn/core/internal/config"
	"github.com/humanbelnik/popcorn/core/internal/model"
)

const (
	genreMatchPoints  = 2.0
	decadeMatchPoints = 1.0
	ratingDivisor     = 2.0
)

type Ranker struct {
	finalSize    int
	ratedSlots   int
	ratingSource config.RatingSource
}

type Option func(*Ranker)

func WithFinalSize(n int) Option {
	return func(r *Ranker) {
		r.finalSize = n
	}
}

func WithRatedSlots(n int) Option {
	return func(r *Ranker) {
		r.ratedSlots = n
	}
}

func WithRatingSource(src config.RatingSource) Option {
	return func(r *Ranker) {
		r.ratingSource = src
	}
}

func New(opts ...Option) *Ranker {
	r := &Ranker{
		finalSize:    5,
		ratedSlots:   3,
		ratingSource: config.RatingSourceMovieThenGenre,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.finalSize = max(r.finalSize, 0)
	r.ratedSlots = max(r.ratedSlots, 0)
	if r.ratedSlots > r.finalSize {
		r.ratedSlots = r.finalSize
	}
	return r
}

// Score returns the fit of one movie and whether the party rated it directly.
// Without any rating the score tops out at 3.
func (r *Ranker) Score(movie model.Movie, summary model.PartyPreferenceSummary, ratings *model.RatingAggregate) (float64, bool) {
	var score float64
	if summary.GenrePreferences.Intersects(movie.Genres) {
		score += genreMatchPoints
	}
	if summary.DecadePreferences.Has(movie.Decade()) {
		score += decadeMatchPoints
	}

	if ratings == nil {
		return score, false
	}

	direct, rated := ratings.MovieRatings[movie.ID]
	if avg, ok := r.knownRating(movie, ratings, direct, rated); ok {
		score += avg / ratingDivisor
	}
	return score, rated
}

func (r *Ranker) knownRating(movie model.Movie, ratings *model.RatingAggregate, direct float64, rated bool) (float64, bool) {
	switch r.ratingSource {
	case config.RatingSourceMovie:
		return direct, rated
	case config.RatingSourceGenre:
		return genreAverage(movie, ratings)
	default:
		if rated {
			return direct, true
		}
		return genreAverage(movie, ratings)
	}
}

func genreAverage(movie model.Movie, ratings *model.RatingAggregate) (float64, bool) {
	var sum float64
	var n int
	seen := make(map[string]struct{}, len(movie.Genres))
	for _, g := range movie.Genres {
		if _, dup := seen[g]; dup {
			continue
		}
		seen[g] = struct{}{}
		if avg, ok := ratings.GenreRatings[g]; ok {
			sum += avg
			n++
		}
	}
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}

/*
Rank orders candidates into the final shortlist. Directly rated movies go
first (up to ratedSlots of them), the rest is filled from unrated ones. Each
bucket is sorted by score, ties keep input order. Never returns more than
the candidates it was given.
*/
func (r *Ranker) Rank(candidates []model.Movie, summary model.PartyPreferenceSummary, ratings *model.RatingAggregate) []model.ScoredMovie {
	rated := make([]model.ScoredMovie, 0)
	unrated := make([]model.ScoredMovie, 0, len(candidates))

	for _, m := range candidates {
		score, isRated := r.Score(m, summary, ratings)
		sm := model.ScoredMovie{Movie: m, Score: score, Rated: isRated}
		if isRated {
			rated = append(rated, sm)
		} else {
			unrated = append(unrated, sm)
		}
	}

	byScore := func(a, b model.ScoredMovie) int {
		switch {
		case a.Score > b.Score:
			return -1
		case a.Score < b.Score:
			return 1
		}
		return 0
	}
	slices.SortStableFunc(rated, byScore)
	slices.SortStableFunc(unrated, byScore)

	out := make([]model.ScoredMovie, 0, r.finalSize)
	out = append(out, rated[:min(r.ratedSlots, len(rated))]...)
	remaining := r.finalSize - len(out)
	out = append(out, unrated[:min(remaining, len(unrated))]...)
	return out
}
