//go:build !integration

package http_selection

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	http_common "github.com/humanbelnik/popcorn/core/internal/delivery/http/common"
	http_participant_middleware "github.com/humanbelnik/popcorn/core/internal/delivery/http/middleware/participant"
	mocks_participant "github.com/humanbelnik/popcorn/core/internal/delivery/http/middleware/participant/mocks/participant"
	mocks_usecase "github.com/humanbelnik/popcorn/core/internal/delivery/http/selection/mocks/selection/usecase"
	"github.com/humanbelnik/popcorn/core/internal/model"
	usecase_selection "github.com/humanbelnik/popcorn/core/internal/usecase/selection"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type SelectionControllerSuite struct {
	suite.Suite
}

type resources struct {
	uc        *mocks_usecase.Usecase
	validator *mocks_participant.ParticipantValidator
	router    *gin.Engine
}

func initResources(t provider.T) *resources {
	gin.SetMode(gin.TestMode)
	r := &resources{
		uc:        mocks_usecase.NewUsecase(t),
		validator: mocks_participant.NewParticipantValidator(t),
		router:    gin.New(),
	}
	guard := http_participant_middleware.New(r.validator).Required()
	New(r.uc, guard).RegisterRoutes(r.router.Group("/api/v1"))
	return r
}

func (r *resources) do(method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, nil)
	req.Header.Set(http_common.UserTokenHeader, "u1")
	r.router.ServeHTTP(w, req)
	return w
}

func shortlist() model.Selection {
	return model.Selection{
		PartyID: "p1",
		Source:  model.SourceGateway,
		Movies: []model.SelectedMovie{
			{Movie: model.Movie{ID: "m1", Title: "Heat"}, Score: 7.5, BlindSummary: "A heist goes wrong."},
		},
	}
}

func (s *SelectionControllerSuite) TestRoutes(t provider.T) {
	t.Parallel()

	tt := []struct {
		name   string
		method string
		path   string
		call   string
	}{
		{"suite 2 candidates", http.MethodGet, "/api/v1/parties/p1/suite2/movies", "Suite2"},
		{"suite 3 candidates", http.MethodGet, "/api/v1/parties/p1/suite3/movies", "Suite3"},
		{"streaming selection", http.MethodPost, "/api/v1/parties/p1/selections", "Streaming"},
		{"stored selection", http.MethodGet, "/api/v1/parties/p1/selections", "Selected"},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t provider.T) {
			r := initResources(t)
			r.validator.On("IsParticipant", mock.Anything, "p1", "u1").Return(true, nil).Once()
			r.uc.On(tc.call, mock.Anything, "p1").Return(shortlist(), nil).Once()

			w := r.do(tc.method, tc.path)

			require.Equal(t, http.StatusOK, w.Code)
			var resp SelectionResponseDTO
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			require.Len(t, resp.SelectedMovies, 1)
			assert.Equal(t, "m1", resp.SelectedMovies[0].ID)
			assert.Equal(t, "A heist goes wrong.", resp.SelectedMovies[0].BlindSummary)
			assert.Equal(t, "gateway", resp.Source)
		})
	}
}

func (s *SelectionControllerSuite) TestErrors(t provider.T) {
	t.Parallel()

	tt := []struct {
		name         string
		err          error
		expectedCode int
		expectedBody string
	}{
		{
			name:         "too few candidates",
			err:          usecase_selection.ErrInsufficientCandidates,
			expectedCode: http.StatusUnprocessableEntity,
			expectedBody: usecase_selection.ErrInsufficientCandidates.Error(),
		},
		{
			name:         "nothing selected yet",
			err:          fmt.Errorf("%w: no movies selected yet", usecase_selection.ErrResourceNotFound),
			expectedCode: http.StatusNotFound,
			expectedBody: "not found",
		},
		{
			name:         "store failure",
			err:          errors.Join(usecase_selection.ErrInternal, errors.New("redis: connection refused")),
			expectedCode: http.StatusInternalServerError,
			expectedBody: "internal error",
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t provider.T) {
			r := initResources(t)
			r.validator.On("IsParticipant", mock.Anything, "p1", "u1").Return(true, nil).Once()
			r.uc.On("Selected", mock.Anything, "p1").Return(model.Selection{}, tc.err).Once()

			w := r.do(http.MethodGet, "/api/v1/parties/p1/selections")

			assert.Equal(t, tc.expectedCode, w.Code)
			var resp http_common.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tc.expectedBody, resp.Message)
		})
	}
}

func (s *SelectionControllerSuite) TestEmptySelectionIsArray(t provider.T) {
	t.Parallel()

	r := initResources(t)
	r.validator.On("IsParticipant", mock.Anything, "p1", "u1").Return(true, nil).Once()
	r.uc.On("Streaming", mock.Anything, "p1").Return(model.Selection{PartyID: "p1", Source: model.SourceRanker}, nil).Once()

	w := r.do(http.MethodPost, "/api/v1/parties/p1/selections")

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"selectedMovies":[],"source":"ranker"}`, w.Body.String())
}

func (s *SelectionControllerSuite) TestStrangerIsRejected(t provider.T) {
	t.Parallel()

	r := initResources(t)
	r.validator.On("IsParticipant", mock.Anything, "p1", "u1").Return(false, nil).Once()

	w := r.do(http.MethodGet, "/api/v1/parties/p1/suite3/movies")

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestSelectionControllerSuite(t *testing.T) {
	suite.RunSuite(t, new(SelectionControllerSuite))
}
