package http_party

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	http_common "github.com/humanbelnik/popcorn/core/internal/delivery/http/common"
	"github.com/humanbelnik/popcorn/core/internal/model"
)

//go:generate mockery --name=Usecase --output=./mocks/party/usecase --filename=usecase.go
type Usecase interface {
	Create(ctx context.Context, hostName string, streamingServices []string) (model.Party, error)
	Join(ctx context.Context, partyID string, userName string) (string, error)
	Status(ctx context.Context, partyID string) (model.Party, model.PartyState, error)
	UpdateStatus(ctx context.Context, partyID string, status model.PartyStatus, suite model.SuiteNumber) error
}

type Controller struct {
	usecase Usecase
	guard   gin.HandlerFunc
	logger  *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

// New wires the party routes. guard admits party members only and protects
// the status update.
func New(usecase Usecase, guard gin.HandlerFunc, opts ...ControllerOption) *Controller {
	c := &Controller{
		usecase: usecase,
		guard:   guard,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	parties := router.Group("/parties")
	{
		parties.POST("", c.create)
		parties.GET("/:party_id", c.status)
		parties.POST("/:party_id/participants", c.join)
		parties.PATCH("/:party_id/status", c.guard, c.updateStatus)
	}
}

type CreateRequestDTO struct {
	HostName          string   `json:"host_name" binding:"required"`
	StreamingServices []string `json:"streaming_services"`
}

type CreateResponseDTO struct {
	PartyID string `json:"party_id"`
	HostID  string `json:"host_id"`
}

// @Summary Create a party
// @Tags Parties
// @Accept json
// @Produce json
// @Success 201 {object} CreateResponseDTO
// @Header 201 {string} X-user-token "Host user id"
// @Router /parties [post]
func (c *Controller) create(ctx *gin.Context) {
	var req CreateRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		http_common.BadRequest(ctx, "invalid request format")
		return
	}

	party, err := c.usecase.Create(ctx, req.HostName, req.StreamingServices)
	if err != nil {
		http_common.Fail(ctx, c.logger, "failed to create party", err)
		return
	}

	ctx.Header(http_common.UserTokenHeader, party.HostID)
	ctx.JSON(http.StatusCreated, CreateResponseDTO{
		PartyID: party.ID,
		HostID:  party.HostID,
	})
}

type JoinRequestDTO struct {
	Name string `json:"name" binding:"required"`
}

type JoinResponseDTO struct {
	UserID string `json:"user_id"`
}

// @Summary Join a party in the lobby
// @Tags Parties
// @Param party_id path string true "Party id"
// @Success 201 {object} JoinResponseDTO
// @Failure 400 {object} http_common.ErrorResponse "Party is closed"
// @Failure 404 {object} http_common.ErrorResponse
// @Router /parties/{party_id}/participants [post]
func (c *Controller) join(ctx *gin.Context) {
	partyID := ctx.Param("party_id")

	var req JoinRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		http_common.BadRequest(ctx, "invalid request format")
		return
	}

	userID, err := c.usecase.Join(ctx, partyID, req.Name)
	if err != nil {
		http_common.Fail(ctx, c.logger, "failed to join party", err, slog.String("party_id", partyID))
		return
	}

	ctx.Header(http_common.UserTokenHeader, userID)
	ctx.JSON(http.StatusCreated, JoinResponseDTO{UserID: userID})
}

type StatusResponseDTO struct {
	model.Party
	State model.PartyState `json:"state,omitempty"`
}

func (c *Controller) status(ctx *gin.Context) {
	partyID := ctx.Param("party_id")

	party, state, err := c.usecase.Status(ctx, partyID)
	if err != nil {
		http_common.Fail(ctx, c.logger, "failed to get party", err, slog.String("party_id", partyID))
		return
	}

	ctx.JSON(http.StatusOK, StatusResponseDTO{
		Party: party,
		State: state,
	})
}

type UpdateStatusRequestDTO struct {
	Status       string `json:"status" binding:"required"`
	CurrentSuite int    `json:"current_suite" binding:"required"`
}

func (c *Controller) updateStatus(ctx *gin.Context) {
	partyID := ctx.Param("party_id")

	var req UpdateStatusRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		http_common.BadRequest(ctx, "invalid request format")
		return
	}

	err := c.usecase.UpdateStatus(ctx, partyID, req.Status, model.SuiteNumber(req.CurrentSuite))
	if err != nil {
		http_common.Fail(ctx, c.logger, "failed to update party", err, slog.String("party_id", partyID))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"party_id":      partyID,
		"status":        req.Status,
		"current_suite": req.CurrentSuite,
	})
}
