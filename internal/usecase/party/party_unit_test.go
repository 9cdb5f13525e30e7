package usecase_party

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/humanbelnik/popcorn/core/internal/model"
	cache_mocks "github.com/humanbelnik/popcorn/core/internal/usecase/party/mocks/party/cache"
	repo_mocks "github.com/humanbelnik/popcorn/core/internal/usecase/party/mocks/party/repository"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type UsecasePartyUnitSuite struct {
	suite.Suite
}

type resources struct {
	usecase   *Usecase
	partyRepo *repo_mocks.PartyRepository
	cache     *cache_mocks.PartyCache
	ctx       context.Context
	now       time.Time
}

func initResources(t provider.T) *resources {
	partyRepo := repo_mocks.NewPartyRepository(t)
	cache := cache_mocks.NewPartyCache(t)
	now := time.Date(2024, 3, 1, 20, 0, 0, 0, time.UTC)
	usecase := New(partyRepo, cache, WithClock(func() time.Time { return now }))

	return &resources{
		usecase:   usecase,
		partyRepo: partyRepo,
		cache:     cache,
		ctx:       context.Background(),
		now:       now,
	}
}

func lobbyParty() model.Party {
	return model.Party{
		ID:           "party-1",
		HostID:       "host-1",
		HostName:     "Host",
		Status:       model.StatusLobby,
		CurrentSuite: model.SuitePreferences,
		Participants: []model.Participant{{UserID: "host-1", Name: "Host", Status: model.ParticipantActive}},
	}
}

func (s *UsecasePartyUnitSuite) TestCreate(t provider.T) {
	t.Parallel()

	testCases := []struct {
		name          string
		hostName      string
		setupMocks    func(r *resources)
		expectedError error
	}{
		{
			name:     "Should create party",
			hostName: "Host",
			setupMocks: func(r *resources) {
				r.partyRepo.On("Create", r.ctx, mock.MatchedBy(func(p model.Party) bool {
					return p.Status == model.StatusLobby &&
						p.CurrentSuite == model.SuitePreferences &&
						len(p.Participants) == 1 &&
						p.Participants[0].UserID == p.HostID &&
						p.ExpiresAt.Equal(r.now.Add(24*time.Hour))
				})).Return(nil).Once()
				r.cache.On("Save", mock.AnythingOfType("string"), mock.MatchedBy(func(st model.PartyState) bool {
					return st["status"] == model.StatusLobby && st["current_suite"] == "1" && st["host_id"] != ""
				})).Return(nil).Once()
			},
		},
		{
			name:     "Should survive a cache failure",
			hostName: "Host",
			setupMocks: func(r *resources) {
				r.partyRepo.On("Create", r.ctx, mock.AnythingOfType("model.Party")).Return(nil).Once()
				r.cache.On("Save", mock.Anything, mock.Anything).Return(errors.New("redis down")).Once()
			},
		},
		{
			name:          "Should reject empty host name",
			hostName:      "  ",
			setupMocks:    func(r *resources) {},
			expectedError: ErrNameRequired,
		},
		{
			name:     "Should wrap store failure",
			hostName: "Host",
			setupMocks: func(r *resources) {
				r.partyRepo.On("Create", r.ctx, mock.AnythingOfType("model.Party")).Return(errors.New("boom")).Once()
			},
			expectedError: ErrInternal,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			r := initResources(t)
			tc.setupMocks(r)

			party, err := r.usecase.Create(r.ctx, tc.hostName, []string{"netflix"})

			if tc.expectedError != nil {
				assert.ErrorIs(t, err, tc.expectedError)
				assert.Empty(t, party.ID)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, party.ID)
			assert.NotEmpty(t, party.HostID)
			assert.Equal(t, []string{"netflix"}, party.StreamingServices)
		})
	}
}

func (s *UsecasePartyUnitSuite) TestCreatePurgesExpired(t provider.T) {
	t.Parallel()
	r := initResources(t)

	r.partyRepo.On("Create", r.ctx, mock.AnythingOfType("model.Party")).Return(nil).Times(cleanupPeriod)
	r.cache.On("Save", mock.Anything, mock.Anything).Return(nil).Times(cleanupPeriod)
	r.partyRepo.On("DeleteExpired", r.ctx, r.now).Return(nil).Once()

	for range cleanupPeriod {
		_, err := r.usecase.Create(r.ctx, "Host", nil)
		require.NoError(t, err)
	}
}

func (s *UsecasePartyUnitSuite) TestJoin(t provider.T) {
	t.Parallel()

	testCases := []struct {
		name          string
		setupMocks    func(r *resources)
		expectedError error
	}{
		{
			name: "Should join lobby",
			setupMocks: func(r *resources) {
				r.partyRepo.On("Load", r.ctx, "party-1").Return(lobbyParty(), nil).Once()
				r.partyRepo.On("AddParticipant", r.ctx, "party-1", mock.MatchedBy(func(p model.Participant) bool {
					return p.Name == "Guest" && p.Status == model.ParticipantActive
				})).Return(nil).Once()
				r.cache.On("Set", "party-1", mock.MatchedBy(func(f string) bool { return len(f) > len("user:") }), model.ParticipantActive).
					Return(nil).Once()
			},
		},
		{
			name: "Should refuse once voting started",
			setupMocks: func(r *resources) {
				p := lobbyParty()
				p.Status = model.StatusActive
				r.partyRepo.On("Load", r.ctx, "party-1").Return(p, nil).Once()
			},
			expectedError: ErrPartyClosed,
		},
		{
			name: "Should report missing party",
			setupMocks: func(r *resources) {
				r.partyRepo.On("Load", r.ctx, "party-1").Return(model.Party{}, ErrResourceNotFound).Once()
			},
			expectedError: ErrResourceNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			r := initResources(t)
			tc.setupMocks(r)

			userID, err := r.usecase.Join(r.ctx, "party-1", "Guest")

			if tc.expectedError != nil {
				assert.ErrorIs(t, err, tc.expectedError)
				assert.Empty(t, userID)
				return
			}
			assert.NoError(t, err)
			assert.NotEmpty(t, userID)
		})
	}
}

func (s *UsecasePartyUnitSuite) TestStatus(t provider.T) {
	t.Parallel()

	t.Run("Should merge cached state", func(t provider.T) {
		r := initResources(t)
		r.partyRepo.On("Load", r.ctx, "party-1").Return(lobbyParty(), nil).Once()
		r.cache.On("State", "party-1").Return(model.PartyState{"voting_complete": "true"}, nil).Once()

		party, state, err := r.usecase.Status(r.ctx, "party-1")

		require.NoError(t, err)
		assert.Equal(t, "party-1", party.ID)
		assert.Equal(t, "true", state["voting_complete"])
	})

	t.Run("Should ignore cache errors", func(t provider.T) {
		r := initResources(t)
		r.partyRepo.On("Load", r.ctx, "party-1").Return(lobbyParty(), nil).Once()
		r.cache.On("State", "party-1").Return(nil, errors.New("redis down")).Once()

		_, state, err := r.usecase.Status(r.ctx, "party-1")

		require.NoError(t, err)
		assert.Nil(t, state)
	})
}

func (s *UsecasePartyUnitSuite) TestUpdateStatus(t provider.T) {
	t.Parallel()

	testCases := []struct {
		name          string
		status        string
		suite         model.SuiteNumber
		setupMocks    func(r *resources)
		expectedError error
	}{
		{
			name:   "Should update status",
			status: model.StatusActive,
			suite:  model.SuiteRatings,
			setupMocks: func(r *resources) {
				r.partyRepo.On("UpdateStatus", r.ctx, "party-1", model.StatusActive, model.SuiteRatings).Return(nil).Once()
				r.cache.On("Save", "party-1", model.PartyState{"status": "active", "current_suite": "2"}).Return(nil).Once()
			},
		},
		{
			name:          "Should reject unknown status",
			status:        "finished",
			suite:         model.SuiteRatings,
			setupMocks:    func(r *resources) {},
			expectedError: ErrInvalidStatus,
		},
		{
			name:          "Should reject unknown suite",
			status:        model.StatusActive,
			suite:         4,
			setupMocks:    func(r *resources) {},
			expectedError: ErrInvalidSuite,
		},
		{
			name:   "Should report missing party",
			status: model.StatusInactive,
			suite:  model.SuiteVoting,
			setupMocks: func(r *resources) {
				r.partyRepo.On("UpdateStatus", r.ctx, "party-1", model.StatusInactive, model.SuiteVoting).Return(ErrResourceNotFound).Once()
			},
			expectedError: ErrResourceNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			r := initResources(t)
			tc.setupMocks(r)

			err := r.usecase.UpdateStatus(r.ctx, "party-1", tc.status, tc.suite)

			if tc.expectedError != nil {
				assert.ErrorIs(t, err, tc.expectedError)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestUsecasePartyUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(UsecasePartyUnitSuite))
}
