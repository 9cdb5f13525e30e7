package http_preference

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	http_common "github.com/humanbelnik/popcorn/core/internal/delivery/http/common"
	http_participant_middleware "github.com/humanbelnik/popcorn/core/internal/delivery/http/middleware/participant"
	"github.com/humanbelnik/popcorn/core/internal/model"
)

//go:generate mockery --name=Usecase --output=./mocks/preference/usecase --filename=usecase.go
type Usecase interface {
	SubmitPreferences(ctx context.Context, partyID string, userID string, payload model.Suite1Payload) (model.PreferenceRecord, error)
	PartySummary(ctx context.Context, partyID string) (model.PartyPreferenceSummary, error)
	SubmitRating(ctx context.Context, partyID string, userID string, movieID string, rating int) (model.PreferenceRecord, error)
	MovieRating(ctx context.Context, partyID string, movieID string) (model.RatingStats, error)
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
	party.POST("/preferences", c.submitPreferences)
	party.GET("/preferences", c.summary)
	party.POST("/movies/:movie_id/ratings", c.submitRating)
	party.GET("/movies/:movie_id/ratings", c.rating)
}

type SubmitResponseDTO struct {
	PreferenceID string `json:"preference_id"`
	Suite        int    `json:"suite_number"`
}

func (c *Controller) submitPreferences(ctx *gin.Context) {
	partyID := ctx.Param("party_id")
	userID := http_participant_middleware.UserID(ctx)

	var payload model.Suite1Payload
	if err := ctx.ShouldBindJSON(&payload); err != nil {
		http_common.BadRequest(ctx, "invalid request format")
		return
	}

	rec, err := c.uc.SubmitPreferences(ctx, partyID, userID, payload)
	if err != nil {
		http_common.Fail(ctx, c.logger, "failed to submit preferences", err,
			slog.String("party_id", partyID),
			slog.String("user_id", userID),
		)
		return
	}

	ctx.JSON(http.StatusCreated, SubmitResponseDTO{
		PreferenceID: rec.ID(),
		Suite:        int(rec.Suite()),
	})
}

func (c *Controller) summary(ctx *gin.Context) {
	partyID := ctx.Param("party_id")

	summary, err := c.uc.PartySummary(ctx, partyID)
	if err != nil {
		http_common.Fail(ctx, c.logger, "failed to summarize preferences", err, slog.String("party_id", partyID))
		return
	}

	ctx.JSON(http.StatusOK, summary)
}

type RatingRequestDTO struct {
	Rating *int `json:"rating" binding:"required"`
}

// @Summary Rate a known movie
// @Tags Ratings
// @Param party_id path string true "Party id"
// @Param movie_id path string true "Movie id"
// @Param request body RatingRequestDTO true "Rating from 1 to 10"
// @Success 201 {object} SubmitResponseDTO
// @Failure 400 {object} http_common.ErrorResponse
// @Security UserToken
// @Router /parties/{party_id}/movies/{movie_id}/ratings [post]
func (c *Controller) submitRating(ctx *gin.Context) {
	partyID := ctx.Param("party_id")
	movieID := ctx.Param("movie_id")
	userID := http_participant_middleware.UserID(ctx)

	var req RatingRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		http_common.BadRequest(ctx, "invalid request format")
		return
	}

	rec, err := c.uc.SubmitRating(ctx, partyID, userID, movieID, *req.Rating)
	if err != nil {
		http_common.Fail(ctx, c.logger, "failed to submit rating", err,
			slog.String("party_id", partyID),
			slog.String("movie_id", movieID),
		)
		return
	}

	ctx.JSON(http.StatusCreated, SubmitResponseDTO{
		PreferenceID: rec.ID(),
		Suite:        int(rec.Suite()),
	})
}

func (c *Controller) rating(ctx *gin.Context) {
	partyID := ctx.Param("party_id")
	movieID := ctx.Param("movie_id")

	stats, err := c.uc.MovieRating(ctx, partyID, movieID)
	if err != nil {
		http_common.Fail(ctx, c.logger, "failed to get rating", err,
			slog.String("party_id", partyID),
			slog.String("movie_id", movieID),
		)
		return
	}

	ctx.JSON(http.StatusOK, stats)
}
