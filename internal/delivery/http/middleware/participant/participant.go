package http_participant_middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	http_common "github.com/humanbelnik/popcorn/core/internal/delivery/http/common"
)

const userIDKey = "user_id"

//go:generate mockery --name=ParticipantValidator --output=./mocks/participant --filename=participant.go
type ParticipantValidator interface {
	IsParticipant(ctx context.Context, partyID string, userID string) (bool, error)
}

type Middleware struct {
	validator ParticipantValidator
	logger    *slog.Logger
}

type Option func(*Middleware)

func WithLogger(logger *slog.Logger) Option {
	return func(m *Middleware) {
		m.logger = logger
	}
}

func New(
	validator ParticipantValidator,
	opts ...Option,
) *Middleware {
	m := &Middleware{
		validator: validator,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Required admits only members of the :party_id party, identified by the
// user token header.
func (m *Middleware) Required() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		partyID := ctx.Param("party_id")
		userID := ctx.GetHeader(http_common.UserTokenHeader)
		if userID == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, http_common.ErrorResponse{
				Message: http_common.UserTokenHeader + " header required",
			})
			return
		}

		ok, err := m.validator.IsParticipant(ctx, partyID, userID)
		if err != nil {
			http_common.Fail(ctx, m.logger, "failed to validate participant", err,
				slog.String("party_id", partyID),
			)
			return
		}
		if !ok {
			m.logger.Warn("rejected non-participant",
				slog.String("party_id", partyID),
				slog.String("user_id", userID),
			)
			ctx.AbortWithStatusJSON(http.StatusForbidden, http_common.ErrorResponse{
				Message: "user is not a participant of this party",
			})
			return
		}

		ctx.Set(userIDKey, userID)
		ctx.Next()
	}
}

// UserID returns the participant admitted by Required.
func UserID(ctx *gin.Context) string {
	return ctx.GetString(userIDKey)
}
