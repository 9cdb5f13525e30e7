package usecase_selection

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/humanbelnik/popcorn/core/internal/config"
	"github.com/humanbelnik/popcorn/core/internal/metrics"
	"github.com/humanbelnik/popcorn/core/internal/model"
	"github.com/humanbelnik/popcorn/core/internal/service/candidate_ranker"
	"github.com/humanbelnik/popcorn/core/internal/service/catalog_matcher"
	"github.com/humanbelnik/popcorn/core/internal/service/rating_aggregator"
	"golang.org/x/sync/errgroup"
)

var (
	ErrInsufficientCandidates = fmt.Errorf("%w: not enough movies match the party preferences", model.ErrInsufficientData)

	ErrInternal         = model.ErrInternal
	ErrResourceNotFound = model.ErrResourceNotFound
)

const (
	suite2Label    = "suite2"
	suite3Label    = "suite3"
	streamingLabel = "streaming"
	emptySource    = "empty"
)

//go:generate mockery --name=CatalogRepository --output=./mocks/selection/catalog --filename=catalog.go
type CatalogRepository interface {
	Load(ctx context.Context) ([]model.Movie, error)
}

//go:generate mockery --name=PreferenceRepository --output=./mocks/selection/preference --filename=preference.go
type PreferenceRepository interface {
	ListByParty(ctx context.Context, partyID string, suite model.SuiteNumber) ([]model.PreferenceRecord, error)
}

//go:generate mockery --name=SummaryProvider --output=./mocks/selection/summary --filename=summary.go
type SummaryProvider interface {
	PartySummary(ctx context.Context, partyID string) (model.PartyPreferenceSummary, error)
}

//go:generate mockery --name=PartyRepository --output=./mocks/selection/party --filename=party.go
type PartyRepository interface {
	Load(ctx context.Context, partyID string) (model.Party, error)
	SaveSelection(ctx context.Context, partyID string, movies []model.SelectedMovie) error
}

//go:generate mockery --name=SelectionCache --output=./mocks/selection/cache --filename=cache.go
type SelectionCache interface {
	Save(partyID string, movies []model.SelectedMovie) error
	Load(partyID string) ([]model.SelectedMovie, bool, error)
}

//go:generate mockery --name=Gateway --output=./mocks/selection/gateway --filename=gateway.go
type Gateway interface {
	Recommend(ctx context.Context, req model.RecommendationRequest) ([]model.Recommendation, error)
}

type Usecase struct {
	catalog     CatalogRepository
	preferences PreferenceRepository
	summaries   SummaryProvider
	parties     PartyRepository
	cache       SelectionCache

	// Nil means shortlists always come from the ranker.
	gateway Gateway

	policy  config.Selection
	matcher *catalog_matcher.Matcher
	ranker  *candidate_ranker.Ranker
	ratings *rating_aggregator.Aggregator

	rngMu sync.Mutex
	rng   *rand.Rand

	metrics *metrics.SelectionMetrics
	logger  *slog.Logger
}

type Option func(*Usecase)

func WithLogger(logger *slog.Logger) Option {
	return func(u *Usecase) {
		u.logger = logger
	}
}

func WithGateway(g Gateway) Option {
	return func(u *Usecase) {
		u.gateway = g
	}
}

func WithPolicy(policy config.Selection) Option {
	return func(u *Usecase) {
		u.policy = policy
	}
}

func WithMetrics(m *metrics.SelectionMetrics) Option {
	return func(u *Usecase) {
		u.metrics = m
	}
}

func WithRand(rng *rand.Rand) Option {
	return func(u *Usecase) {
		u.rng = rng
	}
}

func New(
	catalog CatalogRepository,
	preferences PreferenceRepository,
	summaries SummaryProvider,
	parties PartyRepository,
	cache SelectionCache,
	opts ...Option,
) *Usecase {
	u := &Usecase{
		catalog:     catalog,
		preferences: preferences,
		summaries:   summaries,
		parties:     parties,
		cache:       cache,
		policy:      config.DefaultSelection(),
		matcher:     catalog_matcher.New(),
		ratings:     rating_aggregator.New(),
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(u)
	}
	u.ranker = candidate_ranker.New(
		candidate_ranker.WithFinalSize(u.policy.FinalSize),
		candidate_ranker.WithRatedSlots(u.policy.RatedSlots),
		candidate_ranker.WithRatingSource(u.policy.RatingSource),
	)
	return u
}

// inputs is everything one shortlist is computed from.
type inputs struct {
	party   model.Party
	summary model.PartyPreferenceSummary
	ratings *model.RatingAggregate
	catalog []model.Movie
}

type fetchPlan struct {
	party   bool
	ratings bool
}

func (u *Usecase) fetch(ctx context.Context, partyID string, plan fetchPlan) (inputs, error) {
	var in inputs
	var ratingRecords []model.PreferenceRecord

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		summary, err := u.summaries.PartySummary(gctx, partyID)
		in.summary = summary
		return err
	})
	g.Go(func() error {
		catalog, err := u.catalog.Load(gctx)
		if err != nil {
			return errors.Join(ErrInternal, err)
		}
		in.catalog = catalog
		return nil
	})
	if plan.ratings {
		g.Go(func() error {
			records, err := u.preferences.ListByParty(gctx, partyID, model.SuiteRatings)
			if err != nil {
				return errors.Join(ErrInternal, err)
			}
			ratingRecords = records
			return nil
		})
	}
	if plan.party {
		g.Go(func() error {
			party, err := u.parties.Load(gctx, partyID)
			if errors.Is(err, ErrResourceNotFound) {
				return ErrResourceNotFound
			}
			if err != nil {
				return errors.Join(ErrInternal, err)
			}
			in.party = party
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return inputs{}, err
	}

	if plan.ratings {
		agg, err := u.ratings.Aggregate(ratingRecords, model.NewGenreIndex(in.catalog))
		if err != nil {
			return inputs{}, err
		}
		in.ratings = &agg
	}
	return in, nil
}

// Suite2 picks the movies the party is asked to rate.
func (u *Usecase) Suite2(ctx context.Context, partyID string) (model.Selection, error) {
	defer u.observe(suite2Label, time.Now())

	in, err := u.fetch(ctx, partyID, fetchPlan{})
	if err != nil {
		return model.Selection{}, err
	}

	candidates := u.matcher.Match(in.catalog, in.summary)
	candidates, err = u.widen(suite2Label, u.policy.Suite2, candidates, in)
	if err != nil {
		return model.Selection{}, err
	}

	sel := u.choose(ctx, suite2Label, partyID, candidates, candidates, in, false)
	return sel, nil
}

/*
Suite3 builds the blind-voting shortlist. Movies the party already rated are
excluded; their ratings only steer the scoring. The result is persisted on the
party and cached for the voting screens.
*/
func (u *Usecase) Suite3(ctx context.Context, partyID string) (model.Selection, error) {
	defer u.observe(suite3Label, time.Now())

	in, err := u.fetch(ctx, partyID, fetchPlan{ratings: true})
	if err != nil {
		return model.Selection{}, err
	}

	candidates := u.matcher.Match(in.catalog, in.summary, catalog_matcher.WithExcluded(in.ratings.RatedMovies))
	candidates, err = u.widen(suite3Label, u.policy.Suite3, candidates, in, catalog_matcher.WithExcluded(in.ratings.RatedMovies))
	if err != nil {
		return model.Selection{}, err
	}

	pool := u.matcher.Narrow(candidates, in.summary, u.policy.PreSortLimit)
	sel := u.choose(ctx, suite3Label, partyID, pool, candidates, in, true)
	if err := u.store(ctx, sel); err != nil {
		return model.Selection{}, err
	}
	return sel, nil
}

// Streaming shortlists movies available on the party's services. It never
// calls the gateway.
func (u *Usecase) Streaming(ctx context.Context, partyID string) (model.Selection, error) {
	defer u.observe(streamingLabel, time.Now())

	in, err := u.fetch(ctx, partyID, fetchPlan{party: true, ratings: true})
	if err != nil {
		return model.Selection{}, err
	}

	var opts []catalog_matcher.Option
	if len(in.party.StreamingServices) > 0 {
		opts = append(opts, catalog_matcher.WithStreamingServices(in.party.StreamingServices))
	}
	candidates := u.matcher.Match(in.catalog, in.summary, opts...)
	candidates, err = u.widen(streamingLabel, u.policy.Streaming, candidates, in, opts...)
	if err != nil {
		return model.Selection{}, err
	}

	sel := u.rank(streamingLabel, partyID, candidates, in)
	if err := u.store(ctx, sel); err != nil {
		return model.Selection{}, err
	}
	return sel, nil
}

// Selected returns the last stored shortlist of the party.
func (u *Usecase) Selected(ctx context.Context, partyID string) (model.Selection, error) {
	movies, ok, err := u.cache.Load(partyID)
	if err != nil {
		u.logger.Warn("selection cache read failed",
			slog.String("party_id", partyID),
			slog.String("error", err.Error()),
		)
	}
	if ok {
		return model.Selection{PartyID: partyID, Movies: movies}, nil
	}

	party, err := u.parties.Load(ctx, partyID)
	if err != nil {
		if errors.Is(err, ErrResourceNotFound) {
			return model.Selection{}, ErrResourceNotFound
		}
		return model.Selection{}, errors.Join(ErrInternal, err)
	}
	if len(party.SelectedMovies) == 0 {
		return model.Selection{}, fmt.Errorf("%w: no movies selected yet", ErrResourceNotFound)
	}

	if err := u.cache.Save(partyID, party.SelectedMovies); err != nil {
		u.logger.Warn("selection cache backfill failed",
			slog.String("party_id", partyID),
			slog.String("error", err.Error()),
		)
	}
	return model.Selection{PartyID: partyID, Movies: party.SelectedMovies}, nil
}

// widen applies the suite's fallback policy when too few candidates matched.
func (u *Usecase) widen(suite string, policy config.FallbackPolicy, candidates []model.Movie, in inputs, opts ...catalog_matcher.Option) ([]model.Movie, error) {
	if len(candidates) >= policy.Threshold {
		return candidates, nil
	}

	u.logger.Info("too few candidates",
		slog.String("suite", suite),
		slog.Int("candidates", len(candidates)),
		slog.Int("threshold", policy.Threshold),
		slog.String("fallback", string(policy.Mode)),
	)
	u.metrics.IncFallback(suite, string(policy.Mode))

	switch policy.Mode {
	case config.FallbackRandomSample:
		u.rngMu.Lock()
		candidates = u.matcher.Sample(in.catalog, policy.SampleSize, u.rng)
		u.rngMu.Unlock()
	case config.FallbackRelax:
		opts = append(opts, catalog_matcher.WithRelaxedPreferences())
		candidates = u.matcher.Match(in.catalog, in.summary, opts...)
	default:
		u.metrics.IncSelection(suite, emptySource)
		return nil, fmt.Errorf("%w: %d found, %d needed", ErrInsufficientCandidates, len(candidates), policy.Threshold)
	}

	if len(candidates) == 0 {
		u.metrics.IncSelection(suite, emptySource)
		return nil, ErrInsufficientCandidates
	}
	return candidates, nil
}

/*
choose asks the gateway to pick from pool and falls back to ranking
candidates when the gateway is off, fails, or names nothing from pool.
*/
func (u *Usecase) choose(ctx context.Context, suite string, partyID string, pool []model.Movie, candidates []model.Movie, in inputs, blind bool) model.Selection {
	if u.gateway == nil {
		return u.rank(suite, partyID, candidates, in)
	}

	req := model.RecommendationRequest{
		Candidates:     pool,
		Summary:        in.summary,
		Limit:          u.policy.FinalSize,
		BlindSummaries: blind,
	}
	if in.ratings != nil {
		req.GenreRatings = in.ratings.GenreRatings
	}

	recs, err := u.gateway.Recommend(ctx, req)
	if err != nil {
		u.logger.Warn("gateway failed, ranking locally",
			slog.String("suite", suite),
			slog.String("party_id", partyID),
			slog.String("error", err.Error()),
		)
		u.metrics.IncFallback(suite, "gateway_error")
		return u.rank(suite, partyID, candidates, in)
	}

	picked := u.accept(recs, pool, in)
	if len(picked) == 0 {
		u.logger.Warn("gateway picked no known movie, ranking locally",
			slog.String("suite", suite),
			slog.String("party_id", partyID),
			slog.Int("returned", len(recs)),
		)
		u.metrics.IncFallback(suite, "gateway_invalid")
		return u.rank(suite, partyID, candidates, in)
	}

	u.metrics.IncSelection(suite, string(model.SourceGateway))
	return model.Selection{PartyID: partyID, Source: model.SourceGateway, Movies: picked}
}

// accept keeps gateway picks that name a pool movie, in gateway order, without
// repeats and at most FinalSize of them.
func (u *Usecase) accept(recs []model.Recommendation, pool []model.Movie, in inputs) []model.SelectedMovie {
	byID := make(map[string]model.Movie, len(pool))
	for _, m := range pool {
		byID[m.ID] = m
	}

	seen := model.NewStringSet()
	out := make([]model.SelectedMovie, 0, u.policy.FinalSize)
	dropped := 0
	for _, rec := range recs {
		if len(out) == u.policy.FinalSize {
			break
		}
		m, ok := byID[rec.MovieID]
		if !ok || seen.Has(rec.MovieID) {
			dropped++
			continue
		}
		seen.Add(rec.MovieID)
		score, _ := u.ranker.Score(m, in.summary, in.ratings)
		out = append(out, model.SelectedMovie{Movie: m, Score: score, BlindSummary: rec.BlindSummary})
	}
	if dropped > 0 {
		u.logger.Info("discarded gateway picks", slog.Int("dropped", dropped))
	}
	return out
}

func (u *Usecase) rank(suite string, partyID string, candidates []model.Movie, in inputs) model.Selection {
	ranked := u.ranker.Rank(candidates, in.summary, in.ratings)
	movies := make([]model.SelectedMovie, 0, len(ranked))
	for _, sm := range ranked {
		movies = append(movies, model.SelectedMovie{Movie: sm.Movie, Score: sm.Score})
	}

	u.metrics.IncSelection(suite, string(model.SourceRanker))
	return model.Selection{PartyID: partyID, Source: model.SourceRanker, Movies: movies}
}

// store persists the shortlist on the party, then refreshes the cache copy.
func (u *Usecase) store(ctx context.Context, sel model.Selection) error {
	if err := u.parties.SaveSelection(ctx, sel.PartyID, sel.Movies); err != nil {
		if errors.Is(err, ErrResourceNotFound) {
			return ErrResourceNotFound
		}
		return errors.Join(ErrInternal, err)
	}
	if err := u.cache.Save(sel.PartyID, sel.Movies); err != nil {
		u.logger.Warn("selection cache write failed",
			slog.String("party_id", sel.PartyID),
			slog.String("error", err.Error()),
		)
	}

	u.logger.Info("selection stored",
		slog.String("party_id", sel.PartyID),
		slog.String("source", string(sel.Source)),
		slog.Int("movies", len(sel.Movies)),
	)
	return nil
}

func (u *Usecase) observe(suite string, start time.Time) {
	u.metrics.ObserveDuration(suite, time.Since(start))
}
