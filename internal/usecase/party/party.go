package usecase_party

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/humanbelnik/popcorn/core/internal/model"
)

var (
	ErrPartyClosed   = fmt.Errorf("%w: party is no longer accepting new participants", model.ErrInvalidInput)
	ErrInvalidStatus = fmt.Errorf("%w: status must be one of lobby, active, inactive", model.ErrInvalidInput)
	ErrInvalidSuite  = fmt.Errorf("%w: current_suite must be 1, 2 or 3", model.ErrInvalidInput)
	ErrNameRequired  = fmt.Errorf("%w: name is required", model.ErrInvalidInput)

	ErrInternal         = model.ErrInternal
	ErrResourceNotFound = model.ErrResourceNotFound
)

const (
	defaultLifetime = 24 * time.Hour
	cleanupPeriod   = 20
)

//go:generate mockery --name=PartyRepository --output=./mocks/party/repository --filename=repository.go
type PartyRepository interface {
	Create(ctx context.Context, party model.Party) error
	Load(ctx context.Context, partyID string) (model.Party, error)
	AddParticipant(ctx context.Context, partyID string, p model.Participant) error
	UpdateStatus(ctx context.Context, partyID string, status model.PartyStatus, suite model.SuiteNumber) error
	IsParticipant(ctx context.Context, partyID string, userID string) (bool, error)

	DeleteExpired(ctx context.Context, now time.Time) error
}

// PartyCache holds the real-time copy of a party. Every call is best effort.
//
//go:generate mockery --name=PartyCache --output=./mocks/party/cache --filename=cache.go
type PartyCache interface {
	Save(partyID string, state model.PartyState) error
	Set(partyID string, field string, value string) error
	State(partyID string) (model.PartyState, error)
}

type Usecase struct {
	PartyRepository PartyRepository
	PartyCache      PartyCache

	lifetime time.Duration
	logger   *slog.Logger
	now      func() time.Time

	// Expired parties are purged on every Nth creation
	createdCount atomic.Int64
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
	PartyRepository PartyRepository,
	PartyCache PartyCache,
	opts ...Option,
) *Usecase {
	u := &Usecase{
		PartyRepository: PartyRepository,
		PartyCache:      PartyCache,
		lifetime:        defaultLifetime,
		logger:          slog.Default(),
		now:             time.Now,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Create opens a lobby with the host as its first participant.
func (u *Usecase) Create(ctx context.Context, hostName string, streamingServices []string) (model.Party, error) {
	hostName = strings.TrimSpace(hostName)
	if hostName == "" {
		return model.Party{}, ErrNameRequired
	}

	if u.createdCount.Add(1)%cleanupPeriod == 0 {
		if err := u.PartyRepository.DeleteExpired(ctx, u.now()); err != nil {
			u.logger.Warn("expired parties cleanup failed", slog.String("error", err.Error()))
		}
	}

	now := u.now()
	hostID := uuid.NewString()
	if streamingServices == nil {
		streamingServices = []string{}
	}
	party := model.Party{
		ID:                uuid.NewString(),
		HostID:            hostID,
		HostName:          hostName,
		Status:            model.StatusLobby,
		CurrentSuite:      model.SuitePreferences,
		StreamingServices: streamingServices,
		Participants: []model.Participant{{
			UserID: hostID,
			Name:   hostName,
			Status: model.ParticipantActive,
		}},
		CreatedAt: now,
		ExpiresAt: now.Add(u.lifetime),
	}

	if err := u.PartyRepository.Create(ctx, party); err != nil {
		return model.Party{}, errors.Join(ErrInternal, err)
	}

	if err := u.PartyCache.Save(party.ID, model.PartyState{
		"host_id":       hostID,
		"status":        party.Status,
		"current_suite": strconv.Itoa(int(party.CurrentSuite)),
	}); err != nil {
		u.logger.Warn("party cache write failed",
			slog.String("party_id", party.ID),
			slog.String("error", err.Error()),
		)
	}

	u.logger.Info("party created",
		slog.String("party_id", party.ID),
		slog.Int("streaming_services", len(streamingServices)),
	)
	return party, nil
}

// Join adds a participant while the party is still in its lobby.
func (u *Usecase) Join(ctx context.Context, partyID string, userName string) (string, error) {
	userName = strings.TrimSpace(userName)
	if userName == "" {
		return "", ErrNameRequired
	}

	party, err := u.load(ctx, partyID)
	if err != nil {
		return "", err
	}
	if party.Status != model.StatusLobby {
		return "", ErrPartyClosed
	}

	userID := uuid.NewString()
	if err := u.PartyRepository.AddParticipant(ctx, partyID, model.Participant{
		UserID: userID,
		Name:   userName,
		Status: model.ParticipantActive,
	}); err != nil {
		if errors.Is(err, ErrResourceNotFound) {
			return "", ErrResourceNotFound
		}
		return "", errors.Join(ErrInternal, err)
	}

	if err := u.PartyCache.Set(partyID, "user:"+userID, model.ParticipantActive); err != nil {
		u.logger.Warn("party cache write failed",
			slog.String("party_id", partyID),
			slog.String("error", err.Error()),
		)
	}
	return userID, nil
}

// Status returns the stored party together with whatever real-time fields
// the cache still holds. A cold cache yields an empty state.
func (u *Usecase) Status(ctx context.Context, partyID string) (model.Party, model.PartyState, error) {
	party, err := u.load(ctx, partyID)
	if err != nil {
		return model.Party{}, nil, err
	}

	state, err := u.PartyCache.State(partyID)
	if err != nil {
		u.logger.Warn("party cache read failed",
			slog.String("party_id", partyID),
			slog.String("error", err.Error()),
		)
		state = nil
	}
	return party, state, nil
}

func (u *Usecase) UpdateStatus(ctx context.Context, partyID string, status model.PartyStatus, suite model.SuiteNumber) error {
	if !model.IsValidStatus(status) {
		return ErrInvalidStatus
	}
	if suite < model.SuitePreferences || suite > model.SuiteVoting {
		return ErrInvalidSuite
	}

	if err := u.PartyRepository.UpdateStatus(ctx, partyID, status, suite); err != nil {
		if errors.Is(err, ErrResourceNotFound) {
			return ErrResourceNotFound
		}
		return errors.Join(ErrInternal, err)
	}

	if err := u.PartyCache.Save(partyID, model.PartyState{
		"status":        status,
		"current_suite": strconv.Itoa(int(suite)),
	}); err != nil {
		u.logger.Warn("party cache write failed",
			slog.String("party_id", partyID),
			slog.String("error", err.Error()),
		)
	}

	u.logger.Info("party updated",
		slog.String("party_id", partyID),
		slog.String("status", status),
		slog.Int("current_suite", int(suite)),
	)
	return nil
}

func (u *Usecase) IsParticipant(ctx context.Context, partyID string, userID string) (bool, error) {
	isParticipant, err := u.PartyRepository.IsParticipant(ctx, partyID, userID)
	if err != nil {
		if errors.Is(err, ErrResourceNotFound) {
			return false, ErrResourceNotFound
		}
		return false, errors.Join(ErrInternal, err)
	}
	return isParticipant, nil
}

func (u *Usecase) load(ctx context.Context, partyID string) (model.Party, error) {
	party, err := u.PartyRepository.Load(ctx, partyID)
	if err != nil {
		if errors.Is(err, ErrResourceNotFound) {
			return model.Party{}, ErrResourceNotFound
		}
		return model.Party{}, errors.Join(ErrInternal, err)
	}
	return party, nil
}
