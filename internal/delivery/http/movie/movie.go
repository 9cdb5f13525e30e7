package http_movie

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	http_common "github.com/humanbelnik/popcorn/core/internal/delivery/http/common"
	"github.com/humanbelnik/popcorn/core/internal/model"
)

const defaultPageSize = 20

//go:generate mockery --name=Usecase --output=./mocks/movie/usecase --filename=usecase.go
type Usecase interface {
	Get(ctx context.Context, ID string) (model.Movie, error)
	List(ctx context.Context, limit int, offset int) ([]model.Movie, error)
	Lookup(ctx context.Context, IDs []string) ([]model.Movie, error)
}

type MoviesListResponseDTO struct {
	Movies []model.Movie `json:"movies"`
	Total  int           `json:"total"`
}

type ListRequestDTO struct {
	Limit  int    `form:"limit"`
	Offset int    `form:"offset"`
	IDs    string `form:"ids"`
}

type Controller struct {
	uc Usecase

	logger *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(uc Usecase,
	opts ...ControllerOption) *Controller {
	c := &Controller{
		uc:     uc,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	movies := router.Group("/movies")
	movies.GET("", c.getMovies)
	movies.GET("/:movie_id", c.getMovie)
}

// @Summary Catalog page, or the movies named by ?ids=a,b
// @Tags Movies
// @Produce json
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Param ids query string false "Comma separated movie ids"
// @Success 200 {object} MoviesListResponseDTO
// @Failure 400 {object} http_common.ErrorResponse
// @Router /movies [get]
func (c *Controller) getMovies(ctx *gin.Context) {
	req := ListRequestDTO{Limit: defaultPageSize}
	if err := ctx.ShouldBindQuery(&req); err != nil {
		c.logger.Warn("invalid query", slog.String("error", err.Error()))
		http_common.BadRequest(ctx, "invalid query parameters")
		return
	}

	var (
		movies []model.Movie
		err    error
	)
	if ids := splitIDs(req.IDs); len(ids) > 0 {
		movies, err = c.uc.Lookup(ctx, ids)
	} else {
		movies, err = c.uc.List(ctx, req.Limit, req.Offset)
	}
	if err != nil {
		http_common.Fail(ctx, c.logger, "failed to load movies", err)
		return
	}

	ctx.JSON(http.StatusOK, MoviesListResponseDTO{
		Movies: movies,
		Total:  len(movies),
	})
}

func (c *Controller) getMovie(ctx *gin.Context) {
	id := ctx.Param("movie_id")

	movie, err := c.uc.Get(ctx, id)
	if err != nil {
		http_common.Fail(ctx, c.logger, "failed to load movie", err, slog.String("movie_id", id))
		return
	}

	ctx.JSON(http.StatusOK, movie)
}

func splitIDs(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	ids := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			ids = append(ids, p)
		}
	}
	return ids
}
