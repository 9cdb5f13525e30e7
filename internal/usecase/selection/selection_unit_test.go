package usecase_selection

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"github.com/humanbelnik/popcorn/core/internal/config"
	"github.com/humanbelnik/popcorn/core/internal/metrics"
	"github.com/humanbelnik/popcorn/core/internal/model"
	cache_mocks "github.com/humanbelnik/popcorn/core/internal/usecase/selection/mocks/selection/cache"
	catalog_mocks "github.com/humanbelnik/popcorn/core/internal/usecase/selection/mocks/selection/catalog"
	gateway_mocks "github.com/humanbelnik/popcorn/core/internal/usecase/selection/mocks/selection/gateway"
	party_mocks "github.com/humanbelnik/popcorn/core/internal/usecase/selection/mocks/selection/party"
	preference_mocks "github.com/humanbelnik/popcorn/core/internal/usecase/selection/mocks/selection/preference"
	summary_mocks "github.com/humanbelnik/popcorn/core/internal/usecase/selection/mocks/selection/summary"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type UsecaseSelectionUnitSuite struct {
	suite.Suite
}

type resources struct {
	catalog     *catalog_mocks.CatalogRepository
	preferences *preference_mocks.PreferenceRepository
	summaries   *summary_mocks.SummaryProvider
	parties     *party_mocks.PartyRepository
	cache       *cache_mocks.SelectionCache
	gateway     *gateway_mocks.Gateway
	ctx         context.Context
}

func initResources(t provider.T) *resources {
	return &resources{
		catalog:     catalog_mocks.NewCatalogRepository(t),
		preferences: preference_mocks.NewPreferenceRepository(t),
		summaries:   summary_mocks.NewSummaryProvider(t),
		parties:     party_mocks.NewPartyRepository(t),
		cache:       cache_mocks.NewSelectionCache(t),
		gateway:     gateway_mocks.NewGateway(t),
		ctx:         context.Background(),
	}
}

func (r *resources) usecase(withGateway bool) *Usecase {
	opts := []Option{
		WithRand(rand.New(rand.NewSource(1))),
		WithMetrics(metrics.NewSelectionMetrics(prometheus.NewRegistry())),
		WithPolicy(config.DefaultSelection()),
	}
	if withGateway {
		opts = append(opts, WithGateway(r.gateway))
	}
	return New(r.catalog, r.preferences, r.summaries, r.parties, r.cache, opts...)
}

type MovieBuilder struct {
	movie model.Movie
}

func NewMovieBuilder(id string) *MovieBuilder {
	return &MovieBuilder{movie: model.Movie{ID: id, Title: "Movie " + id, Year: 1995, Genres: []string{"Drama"}}}
}

func (b *MovieBuilder) Year(y int) *MovieBuilder {
	b.movie.Year = y
	return b
}

func (b *MovieBuilder) Genres(g ...string) *MovieBuilder {
	b.movie.Genres = g
	return b
}

func (b *MovieBuilder) On(platforms ...string) *MovieBuilder {
	b.movie.StreamingPlatforms = platforms
	return b
}

func (b *MovieBuilder) Build() model.Movie {
	return b.movie
}

func dramas(n int) []model.Movie {
	out := make([]model.Movie, 0, n)
	for i := range n {
		out = append(out, NewMovieBuilder(fmt.Sprintf("d%02d", i+1)).Build())
	}
	return out
}

func dramaNineties() model.PartyPreferenceSummary {
	s := model.NewPartyPreferenceSummary()
	s.GenrePreferences.Add("Drama")
	s.GenreDealbreakers.Add("Horror")
	s.DecadePreferences.Add("1990")
	return s
}

func rated(movieID string, rating int) []model.PreferenceRecord {
	return []model.PreferenceRecord{{
		PartyID: "party",
		UserID:  "user",
		Payload: model.Suite2Payload{MovieRatings: []model.MovieRating{{MovieID: movieID, Rating: rating}}},
	}}
}

func ids(movies []model.SelectedMovie) []string {
	out := make([]string, 0, len(movies))
	for _, m := range movies {
		out = append(out, m.ID)
	}
	return out
}

func (s *UsecaseSelectionUnitSuite) TestSuite2(t provider.T) {
	t.Parallel()

	t.Run("Should keep valid gateway picks", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		r.summaries.On("PartySummary", mock.Anything, "party").Return(dramaNineties(), nil).Once()
		r.catalog.On("Load", mock.Anything).Return(dramas(12), nil).Once()
		r.gateway.On("Recommend", r.ctx, mock.MatchedBy(func(req model.RecommendationRequest) bool {
			return len(req.Candidates) == 12 && !req.BlindSummaries && req.Limit == 5
		})).Return([]model.Recommendation{
			{MovieID: "d03"}, {MovieID: "ghost"}, {MovieID: "d03"}, {MovieID: "d07"},
		}, nil).Once()

		sel, err := r.usecase(true).Suite2(r.ctx, "party")

		require.NoError(t, err)
		assert.Equal(t, model.SourceGateway, sel.Source)
		assert.Equal(t, []string{"d03", "d07"}, ids(sel.Movies))
		assert.Equal(t, 3.0, sel.Movies[0].Score)
	})

	t.Run("Should cap gateway picks", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		r.summaries.On("PartySummary", mock.Anything, "party").Return(dramaNineties(), nil).Once()
		r.catalog.On("Load", mock.Anything).Return(dramas(12), nil).Once()
		var recs []model.Recommendation
		for _, m := range dramas(8) {
			recs = append(recs, model.Recommendation{MovieID: m.ID})
		}
		r.gateway.On("Recommend", r.ctx, mock.Anything).Return(recs, nil).Once()

		sel, err := r.usecase(true).Suite2(r.ctx, "party")

		require.NoError(t, err)
		assert.Len(t, sel.Movies, 5)
	})

	t.Run("Should rank locally when gateway fails", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		r.summaries.On("PartySummary", mock.Anything, "party").Return(dramaNineties(), nil).Once()
		r.catalog.On("Load", mock.Anything).Return(dramas(12), nil).Once()
		r.gateway.On("Recommend", r.ctx, mock.Anything).Return(nil, fmt.Errorf("%w: timeout", model.ErrExternalDependency)).Once()

		sel, err := r.usecase(true).Suite2(r.ctx, "party")

		require.NoError(t, err)
		assert.Equal(t, model.SourceRanker, sel.Source)
		assert.Equal(t, []string{"d01", "d02", "d03", "d04", "d05"}, ids(sel.Movies))
	})

	t.Run("Should rank locally when gateway names unknown movies", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		r.summaries.On("PartySummary", mock.Anything, "party").Return(dramaNineties(), nil).Once()
		r.catalog.On("Load", mock.Anything).Return(dramas(12), nil).Once()
		r.gateway.On("Recommend", r.ctx, mock.Anything).Return([]model.Recommendation{{MovieID: "x"}, {MovieID: "y"}}, nil).Once()

		sel, err := r.usecase(true).Suite2(r.ctx, "party")

		require.NoError(t, err)
		assert.Equal(t, model.SourceRanker, sel.Source)
		assert.Len(t, sel.Movies, 5)
	})

	t.Run("Should widen to random sample", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		catalog := append(dramas(3),
			NewMovieBuilder("c1").Year(2005).Genres("Comedy").Build(),
			NewMovieBuilder("c2").Year(2006).Genres("Comedy").Build(),
			NewMovieBuilder("c3").Year(2007).Genres("Comedy").Build(),
			NewMovieBuilder("c4").Year(2008).Genres("Comedy").Build(),
		)
		r.summaries.On("PartySummary", mock.Anything, "party").Return(dramaNineties(), nil).Once()
		r.catalog.On("Load", mock.Anything).Return(catalog, nil).Once()

		sel, err := r.usecase(false).Suite2(r.ctx, "party")

		require.NoError(t, err)
		assert.Equal(t, model.SourceRanker, sel.Source)
		require.Len(t, sel.Movies, 5)
		assert.Equal(t, []string{"d01", "d02", "d03"}, ids(sel.Movies)[:3])
	})

	t.Run("Should surface missing preferences", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		r.summaries.On("PartySummary", mock.Anything, "party").
			Return(model.PartyPreferenceSummary{}, fmt.Errorf("%w: no preferences", model.ErrInsufficientData)).Once()
		r.catalog.On("Load", mock.Anything).Return(dramas(1), nil).Maybe()

		_, err := r.usecase(true).Suite2(r.ctx, "party")

		assert.ErrorIs(t, err, model.ErrInsufficientData)
	})

	t.Run("Should wrap catalog failure", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		r.summaries.On("PartySummary", mock.Anything, "party").Return(dramaNineties(), nil).Maybe()
		r.catalog.On("Load", mock.Anything).Return(nil, errors.New("db down")).Once()

		_, err := r.usecase(true).Suite2(r.ctx, "party")

		assert.ErrorIs(t, err, ErrInternal)
	})
}

func (s *UsecaseSelectionUnitSuite) TestSuite3(t provider.T) {
	t.Parallel()

	t.Run("Should exclude rated movies and store blind picks", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		r.summaries.On("PartySummary", mock.Anything, "party").Return(dramaNineties(), nil).Once()
		r.catalog.On("Load", mock.Anything).Return(dramas(8), nil).Once()
		r.preferences.On("ListByParty", mock.Anything, "party", model.SuiteRatings).Return(rated("d01", 9), nil).Once()
		r.gateway.On("Recommend", r.ctx, mock.MatchedBy(func(req model.RecommendationRequest) bool {
			for _, m := range req.Candidates {
				if m.ID == "d01" {
					return false
				}
			}
			return req.BlindSummaries && len(req.Candidates) == 7 && req.GenreRatings["Drama"] == 9
		})).Return([]model.Recommendation{{MovieID: "d02", BlindSummary: "A quiet story."}}, nil).Once()
		r.parties.On("SaveSelection", r.ctx, "party", mock.MatchedBy(func(movies []model.SelectedMovie) bool {
			return len(movies) == 1 && movies[0].BlindSummary == "A quiet story."
		})).Return(nil).Once()
		r.cache.On("Save", "party", mock.Anything).Return(nil).Once()

		sel, err := r.usecase(true).Suite3(r.ctx, "party")

		require.NoError(t, err)
		assert.Equal(t, []string{"d02"}, ids(sel.Movies))
		assert.Equal(t, 7.5, sel.Movies[0].Score)
	})

	t.Run("Should fail when too few candidates", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		r.summaries.On("PartySummary", mock.Anything, "party").Return(dramaNineties(), nil).Once()
		r.catalog.On("Load", mock.Anything).Return(dramas(4), nil).Once()
		r.preferences.On("ListByParty", mock.Anything, "party", model.SuiteRatings).Return(nil, nil).Once()

		_, err := r.usecase(true).Suite3(r.ctx, "party")

		assert.ErrorIs(t, err, ErrInsufficientCandidates)
		assert.ErrorIs(t, err, model.ErrInsufficientData)
	})

	t.Run("Should tolerate cache failure", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		r.summaries.On("PartySummary", mock.Anything, "party").Return(dramaNineties(), nil).Once()
		r.catalog.On("Load", mock.Anything).Return(dramas(6), nil).Once()
		r.preferences.On("ListByParty", mock.Anything, "party", model.SuiteRatings).Return(nil, nil).Once()
		r.parties.On("SaveSelection", r.ctx, "party", mock.Anything).Return(nil).Once()
		r.cache.On("Save", "party", mock.Anything).Return(errors.New("redis down")).Once()

		sel, err := r.usecase(false).Suite3(r.ctx, "party")

		require.NoError(t, err)
		assert.Len(t, sel.Movies, 5)
	})

	t.Run("Should report missing party on save", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		r.summaries.On("PartySummary", mock.Anything, "party").Return(dramaNineties(), nil).Once()
		r.catalog.On("Load", mock.Anything).Return(dramas(6), nil).Once()
		r.preferences.On("ListByParty", mock.Anything, "party", model.SuiteRatings).Return(nil, nil).Once()
		r.parties.On("SaveSelection", r.ctx, "party", mock.Anything).Return(ErrResourceNotFound).Once()

		_, err := r.usecase(false).Suite3(r.ctx, "party")

		assert.ErrorIs(t, err, ErrResourceNotFound)
	})
}

func (s *UsecaseSelectionUnitSuite) TestStreaming(t provider.T) {
	t.Parallel()

	catalog := []model.Movie{
		NewMovieBuilder("n1").On("netflix").Build(),
		NewMovieBuilder("n2").On("netflix").Build(),
		NewMovieBuilder("h1").On("hulu").Build(),
		NewMovieBuilder("c1").Year(2005).Genres("Comedy").On("netflix").Build(),
		NewMovieBuilder("c2").Year(2005).Genres("Comedy").On("netflix").Build(),
		NewMovieBuilder("c3").Year(2005).Genres("Comedy").On("netflix", "hulu").Build(),
		NewMovieBuilder("x1").Genres("Horror").On("netflix").Build(),
	}

	t.Run("Should relax and rank without gateway", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		r.summaries.On("PartySummary", mock.Anything, "party").Return(dramaNineties(), nil).Once()
		r.catalog.On("Load", mock.Anything).Return(catalog, nil).Once()
		r.preferences.On("ListByParty", mock.Anything, "party", model.SuiteRatings).Return(rated("c1", 8), nil).Once()
		r.parties.On("Load", mock.Anything, "party").Return(model.Party{ID: "party", StreamingServices: []string{"netflix"}}, nil).Once()
		r.parties.On("SaveSelection", r.ctx, "party", mock.Anything).Return(nil).Once()
		r.cache.On("Save", "party", mock.Anything).Return(nil).Once()

		sel, err := r.usecase(true).Streaming(r.ctx, "party")

		require.NoError(t, err)
		assert.Equal(t, model.SourceRanker, sel.Source)
		assert.Equal(t, []string{"c1", "c2", "c3", "n1", "n2"}, ids(sel.Movies))
	})

	t.Run("Should report missing party", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		r.summaries.On("PartySummary", mock.Anything, "ghost").Return(dramaNineties(), nil).Maybe()
		r.catalog.On("Load", mock.Anything).Return(catalog, nil).Maybe()
		r.preferences.On("ListByParty", mock.Anything, "ghost", model.SuiteRatings).Return(nil, nil).Maybe()
		r.parties.On("Load", mock.Anything, "ghost").Return(model.Party{}, ErrResourceNotFound).Once()

		_, err := r.usecase(false).Streaming(r.ctx, "ghost")

		assert.ErrorIs(t, err, ErrResourceNotFound)
	})
}

func (s *UsecaseSelectionUnitSuite) TestSelected(t provider.T) {
	t.Parallel()

	stored := []model.SelectedMovie{{Movie: NewMovieBuilder("d01").Build(), Score: 3}}

	t.Run("Should serve cached list", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		r.cache.On("Load", "party").Return(stored, true, nil).Once()

		sel, err := r.usecase(false).Selected(r.ctx, "party")

		require.NoError(t, err)
		assert.Equal(t, stored, sel.Movies)
	})

	t.Run("Should read party record and backfill", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		r.cache.On("Load", "party").Return(nil, false, errors.New("redis down")).Once()
		r.parties.On("Load", r.ctx, "party").Return(model.Party{ID: "party", SelectedMovies: stored}, nil).Once()
		r.cache.On("Save", "party", stored).Return(nil).Once()

		sel, err := r.usecase(false).Selected(r.ctx, "party")

		require.NoError(t, err)
		assert.Equal(t, []string{"d01"}, ids(sel.Movies))
	})

	t.Run("Should report nothing selected", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		r.cache.On("Load", "party").Return(nil, false, nil).Once()
		r.parties.On("Load", r.ctx, "party").Return(model.Party{ID: "party"}, nil).Once()

		_, err := r.usecase(false).Selected(r.ctx, "party")

		assert.ErrorIs(t, err, ErrResourceNotFound)
	})
}

func TestUsecaseSelectionUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(UsecaseSelectionUnitSuite))
}
