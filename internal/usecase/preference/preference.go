package usecase_preference

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/humanbelnik/popcorn/core/internal/model"
	"github.com/humanbelnik/popcorn/core/internal/service/preference_aggregator"
)

var (
	// Returned by PreferenceRepository.CompareAndSwap when the stored version moved.
	ErrVersionConflict  = errors.New("preference version conflict")
	ErrConcurrentUpdate = fmt.Errorf("%w: ratings were updated concurrently, try again", model.ErrInternal)

	ErrInternal         = model.ErrInternal
	ErrResourceNotFound = model.ErrResourceNotFound
)

const (
	defaultLifetime = 24 * time.Hour
	casRetries      = 3
)

//go:generate mockery --name=PreferenceRepository --output=./mocks/preference/repository --filename=repository.go
type PreferenceRepository interface {
	// Upsert replaces the record stored under rec.ID().
	Upsert(ctx context.Context, rec model.PreferenceRecord) error
	Load(ctx context.Context, partyID string, userID string, suite model.SuiteNumber) (model.PreferenceRecord, error)
	// CompareAndSwap writes rec only if the stored version still equals
	// rec.Version. Version 0 means the record must not exist yet.
	CompareAndSwap(ctx context.Context, rec model.PreferenceRecord) error
	ListByParty(ctx context.Context, partyID string, suite model.SuiteNumber) ([]model.PreferenceRecord, error)
}

//go:generate mockery --name=SummaryCache --output=./mocks/preference/summary --filename=summary.go
type SummaryCache interface {
	Save(partyID string, summary model.PartyPreferenceSummary) error
	Load(partyID string) (model.PartyPreferenceSummary, bool, error)
	Invalidate(partyID string) error
}

//go:generate mockery --name=RatingCounter --output=./mocks/preference/counter --filename=counter.go
type RatingCounter interface {
	// AddRating applies the deltas and reports whether the counter existed
	// before them.
	AddRating(partyID string, movieID string, countDelta int, sumDelta int) (bool, error)
	Ratings(partyID string, movieID string) (model.RatingStats, bool, error)
	SetRatings(partyID string, movieID string, stats model.RatingStats) error
}

type Usecase struct {
	PreferenceRepository PreferenceRepository
	SummaryCache         SummaryCache
	RatingCounter        RatingCounter

	aggregator *preference_aggregator.Aggregator
	lifetime   time.Duration
	logger     *slog.Logger
	now        func() time.Time
}

type Option func(*Usecase)

func WithLogger(logger *slog.Logger) Option {
	return func(u *Usecase) {
		u.logger = logger
	}
}

func WithLifetime(d time.Duration) Option {
	return func(u *Usecase) {
		if d > 0 {
			u.lifetime = d
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(u *Usecase) {
		u.now = now
	}
}

func New(
	PreferenceRepository PreferenceRepository,
	SummaryCache SummaryCache,
	RatingCounter RatingCounter,
	opts ...Option,
) *Usecase {
	u := &Usecase{
		PreferenceRepository: PreferenceRepository,
		SummaryCache:         SummaryCache,
		RatingCounter:        RatingCounter,
		aggregator:           preference_aggregator.New(),
		lifetime:             defaultLifetime,
		logger:               slog.Default(),
		now:                  time.Now,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// SubmitPreferences stores the member's suite-1 intake, replacing any earlier one.
func (u *Usecase) SubmitPreferences(ctx context.Context, partyID string, userID string, payload model.Suite1Payload) (model.PreferenceRecord, error) {
	if err := model.ValidatePayload(payload); err != nil {
		return model.PreferenceRecord{}, err
	}

	now := u.now()
	rec := model.PreferenceRecord{
		PartyID:   partyID,
		UserID:    userID,
		Payload:   payload,
		Timestamp: now,
		ExpiresAt: now.Add(u.lifetime),
	}
	if err := u.PreferenceRepository.Upsert(ctx, rec); err != nil {
		return model.PreferenceRecord{}, errors.Join(ErrInternal, err)
	}

	if err := u.SummaryCache.Invalidate(partyID); err != nil {
		u.logger.Warn("summary cache invalidation failed",
			slog.String("party_id", partyID),
			slog.String("error", err.Error()),
		)
	}

	u.logger.Info("preferences stored",
		slog.String("party_id", partyID),
		slog.String("preference_id", rec.ID()),
	)
	return rec, nil
}

// PartySummary is the merged suite-1 view of the party, served from cache when possible.
func (u *Usecase) PartySummary(ctx context.Context, partyID string) (model.PartyPreferenceSummary, error) {
	summary, ok, err := u.SummaryCache.Load(partyID)
	if err != nil {
		u.logger.Warn("summary cache read failed",
			slog.String("party_id", partyID),
			slog.String("error", err.Error()),
		)
	}
	if ok {
		return summary, nil
	}

	summary, err = u.Summarize(ctx, partyID)
	if err != nil {
		return model.PartyPreferenceSummary{}, err
	}

	if err := u.SummaryCache.Save(partyID, summary); err != nil {
		u.logger.Warn("summary cache write failed",
			slog.String("party_id", partyID),
			slog.String("error", err.Error()),
		)
	}
	return summary, nil
}

// Summarize aggregates the stored suite-1 records without touching the cache.
func (u *Usecase) Summarize(ctx context.Context, partyID string) (model.PartyPreferenceSummary, error) {
	records, err := u.PreferenceRepository.ListByParty(ctx, partyID, model.SuitePreferences)
	if err != nil {
		return model.PartyPreferenceSummary{}, errors.Join(ErrInternal, err)
	}
	return u.aggregator.Aggregate(records)
}

// SubmitRating records one suite-2 rating. A later rating of the same movie
// by the same member overwrites the earlier one.
func (u *Usecase) SubmitRating(ctx context.Context, partyID string, userID string, movieID string, rating int) (model.PreferenceRecord, error) {
	if err := model.ValidatePayload(model.Suite2Payload{
		MovieRatings: []model.MovieRating{{MovieID: movieID, Rating: rating}},
	}); err != nil {
		return model.PreferenceRecord{}, err
	}

	for range casRetries {
		rec, previous, err := u.applyRating(ctx, partyID, userID, movieID, rating)
		if errors.Is(err, ErrVersionConflict) {
			continue
		}
		if err != nil {
			return model.PreferenceRecord{}, errors.Join(ErrInternal, err)
		}

		u.countRating(ctx, partyID, movieID, previous, rating)
		u.logger.Info("rating stored",
			slog.String("party_id", partyID),
			slog.String("movie_id", movieID),
			slog.Int("rating", rating),
			slog.Int("total_rated", len(rec.Payload.(model.Suite2Payload).MovieRatings)),
		)
		return rec, nil
	}

	u.logger.Warn("rating update lost to concurrent writers",
		slog.String("party_id", partyID),
		slog.String("user_id", userID),
	)
	return model.PreferenceRecord{}, ErrConcurrentUpdate
}

// applyRating does one read-modify-write round and returns the previous
// rating of the movie, 0 when it was not rated before.
func (u *Usecase) applyRating(ctx context.Context, partyID string, userID string, movieID string, rating int) (model.PreferenceRecord, int, error) {
	rec, err := u.PreferenceRepository.Load(ctx, partyID, userID, model.SuiteRatings)
	switch {
	case errors.Is(err, ErrResourceNotFound):
		rec = model.PreferenceRecord{PartyID: partyID, UserID: userID}
	case err != nil:
		return model.PreferenceRecord{}, 0, err
	}

	var payload model.Suite2Payload
	switch p := rec.Payload.(type) {
	case model.Suite2Payload:
		payload = p
	case *model.Suite2Payload:
		payload = *p
	}

	previous := payload.Upsert(movieID, rating)
	now := u.now()
	rec.Payload = payload
	rec.Timestamp = now
	rec.ExpiresAt = now.Add(u.lifetime)

	if err := u.PreferenceRepository.CompareAndSwap(ctx, rec); err != nil {
		return model.PreferenceRecord{}, 0, err
	}
	rec.Version++
	return rec, previous, nil
}

// countRating moves the party counter by the change in rating. A counter that
// had expired is rebuilt from the stored records instead, since the deltas
// alone would only describe this member.
func (u *Usecase) countRating(ctx context.Context, partyID string, movieID string, previous int, rating int) {
	countDelta, sumDelta := 1, rating
	if previous != 0 {
		countDelta, sumDelta = 0, rating-previous
	}

	existed, err := u.RatingCounter.AddRating(partyID, movieID, countDelta, sumDelta)
	if err != nil {
		u.logger.Warn("rating counter update failed",
			slog.String("party_id", partyID),
			slog.String("movie_id", movieID),
			slog.String("error", err.Error()),
		)
		return
	}
	if existed {
		return
	}

	u.logger.Info("rating counter missing, rebuilding from store",
		slog.String("party_id", partyID),
		slog.String("movie_id", movieID),
	)
	if _, err := u.recountRatings(ctx, partyID, movieID); err != nil {
		u.logger.Warn("rating counter rebuild failed",
			slog.String("party_id", partyID),
			slog.String("movie_id", movieID),
			slog.String("error", err.Error()),
		)
	}
}

// MovieRating reports how the party rated one movie so far.
func (u *Usecase) MovieRating(ctx context.Context, partyID string, movieID string) (model.RatingStats, error) {
	stats, ok, err := u.RatingCounter.Ratings(partyID, movieID)
	if err != nil {
		u.logger.Warn("rating counter read failed",
			slog.String("party_id", partyID),
			slog.String("error", err.Error()),
		)
	}
	if ok {
		return withAverage(stats), nil
	}

	stats, err = u.recountRatings(ctx, partyID, movieID)
	if err != nil {
		return model.RatingStats{}, errors.Join(ErrInternal, err)
	}
	return withAverage(stats), nil
}

// recountRatings sums the movie's ratings over the stored suite-2 records and
// overwrites the counter with the result.
func (u *Usecase) recountRatings(ctx context.Context, partyID string, movieID string) (model.RatingStats, error) {
	records, err := u.PreferenceRepository.ListByParty(ctx, partyID, model.SuiteRatings)
	if err != nil {
		return model.RatingStats{}, err
	}

	var stats model.RatingStats
	for _, rec := range records {
		payload, ok := rec.Payload.(model.Suite2Payload)
		if !ok {
			continue
		}
		for _, r := range payload.MovieRatings {
			if r.MovieID == movieID {
				stats.Total++
				stats.Sum += r.Rating
			}
		}
	}

	if stats.Total > 0 {
		if err := u.RatingCounter.SetRatings(partyID, movieID, stats); err != nil {
			u.logger.Warn("rating counter backfill failed",
				slog.String("party_id", partyID),
				slog.String("error", err.Error()),
			)
		}
	}
	return stats, nil
}

func withAverage(stats model.RatingStats) model.RatingStats {
	if stats.Total > 0 {
		stats.Average = float64(stats.Sum) / float64(stats.Total)
	}
	return stats
}
