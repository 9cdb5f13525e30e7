package http_selection

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	http_common "github.com/humanbelnik/popcorn/core/internal/delivery/http/common"
	"github.com/humanbelnik/popcorn/core/internal/model"
)

//go:generate mockery --name=Usecase --output=./mocks/selection/usecase --filename=usecase.go
type Usecase interface {
	Suite2(ctx context.Context, partyID string) (model.Selection, error)
	Suite3(ctx context.Context, partyID string) (model.Selection, error)
	Streaming(ctx context.Context, partyID string) (model.Selection, error)
	Selected(ctx context.Context, partyID string) (model.Selection, error)
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
	party.GET("/suite2/movies", c.handle("suite2", c.uc.Suite2))
	party.GET("/suite3/movies", c.handle("suite3", c.uc.Suite3))
	party.POST("/selections", c.handle("streaming", c.uc.Streaming))
	party.GET("/selections", c.handle("selected", c.uc.Selected))
}

type SelectionResponseDTO struct {
	SelectedMovies []model.SelectedMovie `json:"selectedMovies"`
	Source         string                `json:"source,omitempty"`
}

func (c *Controller) handle(name string, run func(context.Context, string) (model.Selection, error)) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		partyID := ctx.Param("party_id")

		sel, err := run(ctx, partyID)
		if err != nil {
			http_common.Fail(ctx, c.logger, "selection failed", err,
				slog.String("party_id", partyID),
				slog.String("selection", name),
			)
			return
		}

		movies := sel.Movies
		if movies == nil {
			movies = []model.SelectedMovie{}
		}
		ctx.JSON(http.StatusOK, SelectionResponseDTO{
			SelectedMovies: movies,
			Source:         string(sel.Source),
		})
	}
}
