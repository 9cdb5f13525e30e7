package http_vote

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	http_common "github.com/humanbelnik/popcorn/core/internal/delivery/http/common"
	http_participant_middleware "github.com/humanbelnik/popcorn/core/internal/delivery/http/middleware/participant"
	"github.com/humanbelnik/popcorn/core/internal/model"
)

//go:generate mockery --name=Usecase --output=./mocks/vote/usecase --filename=usecase.go
type Usecase interface {
	Vote(ctx context.Context, partyID string, userID string, movieID string, choice model.VoteChoice) (model.VoteStatus, error)
	Status(ctx context.Context, partyID string, movieID string) (model.VoteStatus, error)
}

type Controller struct {
	uc    Usecase
	guard gin.HandlerFunc

	logger *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(
	uc Usecase,
	guard gin.HandlerFunc,
	opts ...ControllerOption,
) *Controller {
	c := &Controller{
		uc:     uc,
		guard:  guard,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	party := router.Group("/parties/:party_id", c.guard)
	party.POST("/votes", c.vote)
	party.GET("/movies/:movie_id/votes", c.status)
}

type VoteRequestDTO struct {
	MovieID string `json:"movie_id" binding:"required"`
	Vote    string `json:"vote" binding:"required"`
}

// @Summary Cast or change a vote on a shortlisted movie
// @Tags Voting
// @Accept json
// @Param party_id path string true "Party id"
// @Param request body VoteRequestDTO true "Vote"
// @Success 200 {object} model.VoteStatus
// @Failure 400 {object} http_common.ErrorResponse
// @Failure 403 {object} http_common.ErrorResponse "Not a participant"
// @Security UserToken
// @Router /parties/{party_id}/votes [post]
func (c *Controller) vote(ctx *gin.Context) {
	partyID := ctx.Param("party_id")
	userID := http_participant_middleware.UserID(ctx)

	var req VoteRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn("invalid request format",
			slog.String("party_id", partyID),
			slog.String("user_id", userID),
			slog.String("error", err.Error()))
		http_common.BadRequest(ctx, "invalid request format")
		return
	}

	status, err := c.uc.Vote(ctx, partyID, userID, req.MovieID, model.VoteChoice(req.Vote))
	if err != nil {
		http_common.Fail(ctx, c.logger, "failed to vote", err,
			slog.String("party_id", partyID),
			slog.String("movie_id", req.MovieID),
		)
		return
	}

	ctx.JSON(http.StatusOK, status)
}

func (c *Controller) status(ctx *gin.Context) {
	partyID := ctx.Param("party_id")
	movieID := ctx.Param("movie_id")

	status, err := c.uc.Status(ctx, partyID, movieID)
	if err != nil {
		http_common.Fail(ctx, c.logger, "failed to get votes", err,
			slog.String("party_id", partyID),
			slog.String("movie_id", movieID),
		)
		return
	}

	ctx.JSON(http.StatusOK, status)
}
