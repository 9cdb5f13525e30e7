package usecase_catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/humanbelnik/popcorn/core/internal/model"
)

var (
	ErrInvalidPage = fmt.Errorf("%w: limit must be within 1..%d and offset non-negative", model.ErrInvalidInput, MaxPageSize)

	ErrInternal         = model.ErrInternal
	ErrResourceNotFound = model.ErrResourceNotFound
)

const MaxPageSize = 100

//go:generate mockery --name=Repository --output=./mocks/catalog/repository --filename=repository.go
type Repository interface {
	Load(ctx context.Context) ([]model.Movie, error)
	LoadPage(ctx context.Context, limit int, offset int) ([]model.Movie, error)
	LoadByID(ctx context.Context, ID string) (model.Movie, error)
	LoadByIDs(ctx context.Context, IDs []string) ([]model.Movie, error)
}

type Usecase struct {
	repository Repository
}

func New(
	repository Repository,
) *Usecase {
	return &Usecase{
		repository: repository,
	}
}

func (u *Usecase) Get(ctx context.Context, ID string) (model.Movie, error) {
	movie, err := u.repository.LoadByID(ctx, ID)
	if err != nil {
		if errors.Is(err, ErrResourceNotFound) {
			return model.Movie{}, ErrResourceNotFound
		}
		return model.Movie{}, errors.Join(ErrInternal, err)
	}
	return movie, nil
}

func (u *Usecase) List(ctx context.Context, limit int, offset int) ([]model.Movie, error) {
	if limit <= 0 || limit > MaxPageSize || offset < 0 {
		return nil, ErrInvalidPage
	}

	movies, err := u.repository.LoadPage(ctx, limit, offset)
	if err != nil {
		return nil, errors.Join(ErrInternal, err)
	}
	return movies, nil
}

// Catalog returns every movie. Selection filters it in memory.
func (u *Usecase) Catalog(ctx context.Context) ([]model.Movie, error) {
	movies, err := u.repository.Load(ctx)
	if err != nil {
		return nil, errors.Join(ErrInternal, err)
	}
	return movies, nil
}

// Lookup loads the given movies keeping the order of IDs. Unknown IDs are skipped.
func (u *Usecase) Lookup(ctx context.Context, IDs []string) ([]model.Movie, error) {
	if len(IDs) == 0 {
		return []model.Movie{}, nil
	}

	movies, err := u.repository.LoadByIDs(ctx, IDs)
	if err != nil {
		return nil, errors.Join(ErrInternal, err)
	}

	byID := make(map[string]model.Movie, len(movies))
	for _, m := range movies {
		byID[m.ID] = m
	}
	out := make([]model.Movie, 0, len(IDs))
	for _, id := range IDs {
		if m, ok := byID[id]; ok {
			out = append(out, m)
		}
	}
	return out, nil
}
