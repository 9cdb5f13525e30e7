package usecase_vote

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/humanbelnik/popcorn/core/internal/model"
)

var (
	ErrInvalidVote     = fmt.Errorf("%w: vote must be one of yes, no, seen", model.ErrInvalidInput)
	ErrMovieIDRequired = fmt.Errorf("%w: movie_id is required", model.ErrInvalidInput)

	ErrInternal         = model.ErrInternal
	ErrResourceNotFound = model.ErrResourceNotFound
)

//go:generate mockery --name=VoteRepository --output=./mocks/vote/repository --filename=repository.go
type VoteRepository interface {
	// Upsert stores the vote under v.ID() and returns the choice it replaced,
	// empty for a first vote.
	Upsert(ctx context.Context, v model.Vote) (model.VoteChoice, error)
	Counts(ctx context.Context, partyID string, movieID string) (model.VoteCounts, error)
}

//go:generate mockery --name=PartyRepository --output=./mocks/vote/party --filename=party.go
type PartyRepository interface {
	Load(ctx context.Context, partyID string) (model.Party, error)
}

//go:generate mockery --name=VoteCounter --output=./mocks/vote/counter --filename=counter.go
type VoteCounter interface {
	// MoveVote shifts one vote from previous to next and returns the new counts.
	// An empty previous counts a new voter. The bool is false when the counter
	// did not exist before the move.
	MoveVote(partyID string, movieID string, previous model.VoteChoice, next model.VoteChoice) (model.VoteCounts, bool, error)
	Votes(partyID string, movieID string) (model.VoteCounts, bool, error)
	SetVotes(partyID string, movieID string, counts model.VoteCounts) error
}

//go:generate mockery --name=PartyCache --output=./mocks/vote/cache --filename=cache.go
type PartyCache interface {
	Set(partyID string, field string, value string) error
}

type Usecase struct {
	voteRepository  VoteRepository
	partyRepository PartyRepository
	voteCounter     VoteCounter
	partyCache      PartyCache

	logger *slog.Logger
	now    func() time.Time
}

type Option func(*Usecase)

func WithLogger(logger *slog.Logger) Option {
	return func(u *Usecase) {
		u.logger = logger
	}
}

func WithClock(now func() time.Time) Option {
	return func(u *Usecase) {
		u.now = now
	}
}

func New(
	r VoteRepository,
	p PartyRepository,
	c VoteCounter,
	pc PartyCache,
	opts ...Option,
) *Usecase {
	u := &Usecase{
		voteRepository:  r,
		partyRepository: p,
		voteCounter:     c,
		partyCache:      pc,
		logger:          slog.Default(),
		now:             time.Now,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Vote records a blind vote on one shortlisted movie. Re-voting replaces the
// member's earlier choice.
func (u *Usecase) Vote(ctx context.Context, partyID string, userID string, movieID string, choice model.VoteChoice) (model.VoteStatus, error) {
	if strings.TrimSpace(movieID) == "" {
		return model.VoteStatus{}, ErrMovieIDRequired
	}
	if !choice.Valid() {
		return model.VoteStatus{}, ErrInvalidVote
	}

	party, err := u.loadParty(ctx, partyID)
	if err != nil {
		return model.VoteStatus{}, err
	}

	vote := model.Vote{
		PartyID:   partyID,
		UserID:    userID,
		MovieID:   movieID,
		Choice:    choice,
		Timestamp: u.now(),
	}
	previous, err := u.voteRepository.Upsert(ctx, vote)
	if err != nil {
		return model.VoteStatus{}, errors.Join(ErrInternal, err)
	}

	counts, existed, err := u.voteCounter.MoveVote(partyID, movieID, previous, choice)
	switch {
	case err != nil:
		u.logger.Warn("vote counter update failed",
			slog.String("party_id", partyID),
			slog.String("movie_id", movieID),
			slog.String("error", err.Error()),
		)
		counts, err = u.recount(ctx, partyID, movieID)
	case !existed:
		u.logger.Info("vote counter missing, rebuilding from store",
			slog.String("party_id", partyID),
			slog.String("movie_id", movieID),
		)
		counts, err = u.recount(ctx, partyID, movieID)
	}
	if err != nil {
		return model.VoteStatus{}, errors.Join(ErrInternal, err)
	}

	status := model.VoteStatus{
		PartyID:        partyID,
		MovieID:        movieID,
		Counts:         counts,
		VotingComplete: counts.Total >= len(party.Participants),
	}
	if status.VotingComplete {
		if err := u.partyCache.Set(partyID, "voting_complete", "true"); err != nil {
			u.logger.Warn("party cache write failed",
				slog.String("party_id", partyID),
				slog.String("error", err.Error()),
			)
		}
	}

	u.logger.Info("vote recorded",
		slog.String("vote_id", vote.ID()),
		slog.String("vote", string(choice)),
		slog.Int("total", counts.Total),
	)
	return status, nil
}

// Status returns the tally for one movie, rebuilding the counter from the
// store when it has expired.
func (u *Usecase) Status(ctx context.Context, partyID string, movieID string) (model.VoteStatus, error) {
	party, err := u.loadParty(ctx, partyID)
	if err != nil {
		return model.VoteStatus{}, err
	}

	counts, ok, err := u.voteCounter.Votes(partyID, movieID)
	if err != nil {
		u.logger.Warn("vote counter read failed",
			slog.String("party_id", partyID),
			slog.String("error", err.Error()),
		)
	}
	if !ok {
		if counts, err = u.recount(ctx, partyID, movieID); err != nil {
			return model.VoteStatus{}, errors.Join(ErrInternal, err)
		}
	}

	return model.VoteStatus{
		PartyID:        partyID,
		MovieID:        movieID,
		Counts:         counts,
		VotingComplete: len(party.Participants) > 0 && counts.Total >= len(party.Participants),
	}, nil
}

// recount reads the tally from the store and overwrites the counter with it.
func (u *Usecase) recount(ctx context.Context, partyID string, movieID string) (model.VoteCounts, error) {
	counts, err := u.voteRepository.Counts(ctx, partyID, movieID)
	if err != nil {
		return model.VoteCounts{}, err
	}

	if counts.Total > 0 {
		if err := u.voteCounter.SetVotes(partyID, movieID, counts); err != nil {
			u.logger.Warn("vote counter backfill failed",
				slog.String("party_id", partyID),
				slog.String("error", err.Error()),
			)
		}
	}
	return counts, nil
}

func (u *Usecase) loadParty(ctx context.Context, partyID string) (model.Party, error) {
	party, err := u.partyRepository.Load(ctx, partyID)
	if err != nil {
		if errors.Is(err, ErrResourceNotFound) {
			return model.Party{}, ErrResourceNotFound
		}
		return model.Party{}, errors.Join(ErrInternal, err)
	}
	return party, nil
}
