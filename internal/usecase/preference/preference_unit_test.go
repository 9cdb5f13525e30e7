package usecase_preference

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/humanbelnik/popcorn/core/internal/model"
	counter_mocks "github.com/humanbelnik/popcorn/core/internal/usecase/preference/mocks/preference/counter"
	repo_mocks "github.com/humanbelnik/popcorn/core/internal/usecase/preference/mocks/preference/repository"
	summary_mocks "github.com/humanbelnik/popcorn/core/internal/usecase/preference/mocks/preference/summary"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type UsecasePreferenceUnitSuite struct {
	suite.Suite
}

type resources struct {
	usecase *Usecase
	repo    *repo_mocks.PreferenceRepository
	summary *summary_mocks.SummaryCache
	counter *counter_mocks.RatingCounter
	ctx     context.Context
	now     time.Time
}

func initResources(t provider.T) *resources {
	repo := repo_mocks.NewPreferenceRepository(t)
	summary := summary_mocks.NewSummaryCache(t)
	counter := counter_mocks.NewRatingCounter(t)
	now := time.Date(2024, 3, 1, 20, 0, 0, 0, time.UTC)

	return &resources{
		usecase: New(repo, summary, counter, WithClock(func() time.Time { return now })),
		repo:    repo,
		summary: summary,
		counter: counter,
		ctx:     context.Background(),
		now:     now,
	}
}

func validPayload() model.Suite1Payload {
	return model.Suite1Payload{
		GenrePreferences:  []string{"Drama", "Comedy"},
		GenreDealbreakers: []string{"Horror"},
		DecadePreferences: []string{"1990", "2000"},
		YearCutoff:        1980,
	}
}

func ratingsRecord(version int, ratings ...model.MovieRating) model.PreferenceRecord {
	return model.PreferenceRecord{
		PartyID: "party",
		UserID:  "user",
		Payload: model.Suite2Payload{MovieRatings: ratings},
		Version: version,
	}
}

func (s *UsecasePreferenceUnitSuite) TestSubmitPreferences(t provider.T) {
	t.Parallel()

	testCases := []struct {
		name          string
		payload       model.Suite1Payload
		setupMocks    func(r *resources)
		expectedError error
	}{
		{
			name:    "Should store and invalidate summary",
			payload: validPayload(),
			setupMocks: func(r *resources) {
				r.repo.On("Upsert", r.ctx, mock.MatchedBy(func(rec model.PreferenceRecord) bool {
					return rec.ID() == "party#user#suite1" && rec.ExpiresAt.Equal(r.now.Add(24*time.Hour))
				})).Return(nil).Once()
				r.summary.On("Invalidate", "party").Return(nil).Once()
			},
		},
		{
			name: "Should reject malformed payload before storing",
			payload: func() model.Suite1Payload {
				p := validPayload()
				p.GenrePreferences = []string{"Drama"}
				return p
			}(),
			setupMocks:    func(r *resources) {},
			expectedError: model.ErrInvalidInput,
		},
		{
			name:    "Should wrap store failure",
			payload: validPayload(),
			setupMocks: func(r *resources) {
				r.repo.On("Upsert", r.ctx, mock.Anything).Return(errors.New("boom")).Once()
			},
			expectedError: ErrInternal,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			r := initResources(t)
			tc.setupMocks(r)

			rec, err := r.usecase.SubmitPreferences(r.ctx, "party", "user", tc.payload)

			if tc.expectedError != nil {
				assert.ErrorIs(t, err, tc.expectedError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, model.SuitePreferences, rec.Suite())
		})
	}
}

func (s *UsecasePreferenceUnitSuite) TestPartySummary(t provider.T) {
	t.Parallel()

	t.Run("Should serve cached summary", func(t provider.T) {
		r := initResources(t)
		cached := model.NewPartyPreferenceSummary()
		cached.GenrePreferences.Add("Drama")
		r.summary.On("Load", "party").Return(cached, true, nil).Once()

		got, err := r.usecase.PartySummary(r.ctx, "party")

		require.NoError(t, err)
		assert.Equal(t, cached, got)
	})

	t.Run("Should aggregate and fill cache on miss", func(t provider.T) {
		r := initResources(t)
		r.summary.On("Load", "party").Return(model.PartyPreferenceSummary{}, false, errors.New("redis down")).Once()
		r.repo.On("ListByParty", r.ctx, "party", model.SuitePreferences).Return([]model.PreferenceRecord{
			{PartyID: "party", UserID: "a", Payload: validPayload()},
		}, nil).Once()
		r.summary.On("Save", "party", mock.AnythingOfType("model.PartyPreferenceSummary")).Return(nil).Once()

		got, err := r.usecase.PartySummary(r.ctx, "party")

		require.NoError(t, err)
		assert.Equal(t, []string{"Comedy", "Drama"}, got.GenrePreferences.Sorted())
	})

	t.Run("Should report empty party", func(t provider.T) {
		r := initResources(t)
		r.summary.On("Load", "party").Return(model.PartyPreferenceSummary{}, false, nil).Once()
		r.repo.On("ListByParty", r.ctx, "party", model.SuitePreferences).Return(nil, nil).Once()

		_, err := r.usecase.PartySummary(r.ctx, "party")

		assert.ErrorIs(t, err, model.ErrInsufficientData)
	})
}

func (s *UsecasePreferenceUnitSuite) TestSubmitRating(t provider.T) {
	t.Parallel()

	t.Run("Should create the first rating", func(t provider.T) {
		r := initResources(t)
		r.repo.On("Load", r.ctx, "party", "user", model.SuiteRatings).Return(model.PreferenceRecord{}, ErrResourceNotFound).Once()
		r.repo.On("CompareAndSwap", r.ctx, mock.MatchedBy(func(rec model.PreferenceRecord) bool {
			return rec.Version == 0 && rec.ID() == "party#user#suite2"
		})).Return(nil).Once()
		r.counter.On("AddRating", "party", "m1", 1, 8).Return(true, nil).Once()

		rec, err := r.usecase.SubmitRating(r.ctx, "party", "user", "m1", 8)

		require.NoError(t, err)
		assert.Equal(t, 1, rec.Version)
		assert.Equal(t, []model.MovieRating{{MovieID: "m1", Rating: 8}}, rec.Payload.(model.Suite2Payload).MovieRatings)
	})

	t.Run("Should overwrite without double counting", func(t provider.T) {
		r := initResources(t)
		r.repo.On("Load", r.ctx, "party", "user", model.SuiteRatings).
			Return(ratingsRecord(4, model.MovieRating{MovieID: "m1", Rating: 8}, model.MovieRating{MovieID: "m2", Rating: 3}), nil).Once()
		r.repo.On("CompareAndSwap", r.ctx, mock.MatchedBy(func(rec model.PreferenceRecord) bool {
			ratings := rec.Payload.(model.Suite2Payload).MovieRatings
			return rec.Version == 4 && len(ratings) == 2 && ratings[0].Rating == 5
		})).Return(nil).Once()
		r.counter.On("AddRating", "party", "m1", 0, -3).Return(true, nil).Once()

		_, err := r.usecase.SubmitRating(r.ctx, "party", "user", "m1", 5)

		require.NoError(t, err)
	})

	t.Run("Should retry on version conflict", func(t provider.T) {
		r := initResources(t)
		r.repo.On("Load", r.ctx, "party", "user", model.SuiteRatings).Return(ratingsRecord(1), nil).Once()
		r.repo.On("Load", r.ctx, "party", "user", model.SuiteRatings).
			Return(ratingsRecord(2, model.MovieRating{MovieID: "m9", Rating: 2}), nil).Once()
		r.repo.On("CompareAndSwap", r.ctx, mock.MatchedBy(func(rec model.PreferenceRecord) bool { return rec.Version == 1 })).
			Return(ErrVersionConflict).Once()
		r.repo.On("CompareAndSwap", r.ctx, mock.MatchedBy(func(rec model.PreferenceRecord) bool {
			return rec.Version == 2 && len(rec.Payload.(model.Suite2Payload).MovieRatings) == 2
		})).Return(nil).Once()
		r.counter.On("AddRating", "party", "m1", 1, 7).Return(true, nil).Once()

		_, err := r.usecase.SubmitRating(r.ctx, "party", "user", "m1", 7)

		require.NoError(t, err)
	})

	t.Run("Should give up after retries", func(t provider.T) {
		r := initResources(t)
		r.repo.On("Load", r.ctx, "party", "user", model.SuiteRatings).Return(ratingsRecord(1), nil).Times(casRetries)
		r.repo.On("CompareAndSwap", r.ctx, mock.Anything).Return(ErrVersionConflict).Times(casRetries)

		_, err := r.usecase.SubmitRating(r.ctx, "party", "user", "m1", 7)

		assert.ErrorIs(t, err, ErrConcurrentUpdate)
	})

	t.Run("Should reject out of range rating", func(t provider.T) {
		r := initResources(t)

		_, err := r.usecase.SubmitRating(r.ctx, "party", "user", "m1", 11)

		assert.ErrorIs(t, err, model.ErrInvalidInput)
	})

	t.Run("Should tolerate counter failure", func(t provider.T) {
		r := initResources(t)
		r.repo.On("Load", r.ctx, "party", "user", model.SuiteRatings).Return(model.PreferenceRecord{}, ErrResourceNotFound).Once()
		r.repo.On("CompareAndSwap", r.ctx, mock.Anything).Return(nil).Once()
		r.counter.On("AddRating", "party", "m1", 1, 1).Return(false, errors.New("redis down")).Once()

		_, err := r.usecase.SubmitRating(r.ctx, "party", "user", "m1", 1)

		assert.NoError(t, err)
	})
}

func (s *UsecasePreferenceUnitSuite) TestSubmitRatingAfterCounterExpiry(t provider.T) {
	t.Parallel()

	t.Run("Should rebuild instead of applying a bare overwrite delta", func(t provider.T) {
		r := initResources(t)
		r.repo.On("Load", r.ctx, "party", "user", model.SuiteRatings).
			Return(ratingsRecord(2, model.MovieRating{MovieID: "m1", Rating: 8}), nil).Once()
		r.repo.On("CompareAndSwap", r.ctx, mock.Anything).Return(nil).Once()
		r.counter.On("AddRating", "party", "m1", 0, -3).Return(false, nil).Once()
		r.repo.On("ListByParty", r.ctx, "party", model.SuiteRatings).Return([]model.PreferenceRecord{
			ratingsRecord(3, model.MovieRating{MovieID: "m1", Rating: 5}),
			ratingsRecord(1, model.MovieRating{MovieID: "m1", Rating: 9}),
		}, nil).Once()
		r.counter.On("SetRatings", "party", "m1", model.RatingStats{Total: 2, Sum: 14}).Return(nil).Once()

		_, err := r.usecase.SubmitRating(r.ctx, "party", "user", "m1", 5)

		require.NoError(t, err)
	})

	t.Run("Should count other members on a first rating", func(t provider.T) {
		r := initResources(t)
		r.repo.On("Load", r.ctx, "party", "user", model.SuiteRatings).Return(model.PreferenceRecord{}, ErrResourceNotFound).Once()
		r.repo.On("CompareAndSwap", r.ctx, mock.Anything).Return(nil).Once()
		r.counter.On("AddRating", "party", "m1", 1, 6).Return(false, nil).Once()
		r.repo.On("ListByParty", r.ctx, "party", model.SuiteRatings).Return([]model.PreferenceRecord{
			ratingsRecord(1, model.MovieRating{MovieID: "m1", Rating: 6}),
			ratingsRecord(2, model.MovieRating{MovieID: "m1", Rating: 10}),
			ratingsRecord(1, model.MovieRating{MovieID: "m2", Rating: 2}),
		}, nil).Once()
		r.counter.On("SetRatings", "party", "m1", model.RatingStats{Total: 2, Sum: 16}).Return(nil).Once()

		_, err := r.usecase.SubmitRating(r.ctx, "party", "user", "m1", 6)

		require.NoError(t, err)
	})

	t.Run("Should keep the rating when the rebuild fails", func(t provider.T) {
		r := initResources(t)
		r.repo.On("Load", r.ctx, "party", "user", model.SuiteRatings).Return(model.PreferenceRecord{}, ErrResourceNotFound).Once()
		r.repo.On("CompareAndSwap", r.ctx, mock.Anything).Return(nil).Once()
		r.counter.On("AddRating", "party", "m1", 1, 4).Return(false, nil).Once()
		r.repo.On("ListByParty", r.ctx, "party", model.SuiteRatings).Return(nil, errors.New("conn reset")).Once()

		rec, err := r.usecase.SubmitRating(r.ctx, "party", "user", "m1", 4)

		require.NoError(t, err)
		assert.Equal(t, 1, rec.Version)
	})
}

func (s *UsecasePreferenceUnitSuite) TestMovieRating(t provider.T) {
	t.Parallel()

	t.Run("Should read counters", func(t provider.T) {
		r := initResources(t)
		r.counter.On("Ratings", "party", "m1").Return(model.RatingStats{Total: 2, Sum: 15}, true, nil).Once()

		stats, err := r.usecase.MovieRating(r.ctx, "party", "m1")

		require.NoError(t, err)
		assert.Equal(t, 7.5, stats.Average)
	})

	t.Run("Should recompute and backfill", func(t provider.T) {
		r := initResources(t)
		r.counter.On("Ratings", "party", "m1").Return(model.RatingStats{}, false, nil).Once()
		r.repo.On("ListByParty", r.ctx, "party", model.SuiteRatings).Return([]model.PreferenceRecord{
			ratingsRecord(1, model.MovieRating{MovieID: "m1", Rating: 9}),
			ratingsRecord(1, model.MovieRating{MovieID: "m2", Rating: 1}, model.MovieRating{MovieID: "m1", Rating: 4}),
		}, nil).Once()
		r.counter.On("SetRatings", "party", "m1", model.RatingStats{Total: 2, Sum: 13}).Return(nil).Once()

		stats, err := r.usecase.MovieRating(r.ctx, "party", "m1")

		require.NoError(t, err)
		assert.Equal(t, 2, stats.Total)
		assert.Equal(t, 6.5, stats.Average)
	})

	t.Run("Should return zeros for unrated movie", func(t provider.T) {
		r := initResources(t)
		r.counter.On("Ratings", "party", "m1").Return(model.RatingStats{}, false, nil).Once()
		r.repo.On("ListByParty", r.ctx, "party", model.SuiteRatings).Return(nil, nil).Once()

		stats, err := r.usecase.MovieRating(r.ctx, "party", "m1")

		require.NoError(t, err)
		assert.Equal(t, model.RatingStats{}, stats)
	})
}

func TestUsecasePreferenceUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(UsecasePreferenceUnitSuite))
}
