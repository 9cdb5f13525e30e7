package rating_aggregator

import (
	"fmt"

	"github.com/humanbelnik/popcorn/core/internal/model"
	"github.com/shopspring/decimal"
)

var ErrWrongSuite = fmt.Errorf("%w: record is not a suite 2 submission", model.ErrInvalidInput)

type GenreLookup interface {
	LookupGenres(movieID string) (genres []string, found bool)
}

type Aggregator struct{}

func New() *Aggregator {
	return &Aggregator{}
}

type accumulator struct {
	sum   int64
	count int64
}

func (a *accumulator) add(v int) {
	a.sum += int64(v)
	a.count++
}

func (a accumulator) mean() float64 {
	avg, _ := decimal.NewFromInt(a.sum).
		Div(decimal.NewFromInt(a.count)).
		Round(2).
		Float64()
	return avg
}

// Aggregate folds rating events into per-genre and per-movie averages. A movie
// with N genres contributes its rating once to each of them; a movie missing
// from the catalog is still marked as rated.
func (a *Aggregator) Aggregate(records []model.PreferenceRecord, lookup GenreLookup) (model.RatingAggregate, error) {
	agg := model.NewRatingAggregate()
	genres := map[string]*accumulator{}
	movies := map[string]*accumulator{}

	for _, r := range records {
		p, ok := suite2(r.Payload)
		if !ok {
			return model.RatingAggregate{}, fmt.Errorf("%w: %s", ErrWrongSuite, r.ID())
		}

		for _, mr := range p.MovieRatings {
			agg.RatedMovies.Add(mr.MovieID)
			accumulate(movies, mr.MovieID, mr.Rating)

			if lookup == nil {
				continue
			}
			movieGenres, found := lookup.LookupGenres(mr.MovieID)
			if !found {
				continue
			}
			for _, g := range movieGenres {
				accumulate(genres, g, mr.Rating)
			}
		}
	}

	for g, acc := range genres {
		agg.GenreRatings[g] = acc.mean()
	}
	for m, acc := range movies {
		agg.MovieRatings[m] = acc.mean()
	}

	return agg, nil
}

func accumulate(into map[string]*accumulator, key string, v int) {
	acc, ok := into[key]
	if !ok {
		acc = &accumulator{}
		into[key] = acc
	}
	acc.add(v)
}

func suite2(p model.Payload) (model.Suite2Payload, bool) {
	switch v := p.(type) {
	case model.Suite2Payload:
		return v, true
	case *model.Suite2Payload:
		if v == nil {
			return model.Suite2Payload{}, false
		}
		return *v, true
	}
	return model.Suite2Payload{}, false
}
