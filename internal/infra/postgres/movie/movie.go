package infra_postgres_movie

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/humanbelnik/popcorn/core/internal/model"
	usecase_catalog "github.com/humanbelnik/popcorn/core/internal/usecase/catalog"
	"github.com/jmoiron/sqlx"
)

const selectMovies = `
		SELECT id, title, year, genres, streaming_platforms, ratings, summary
		FROM movies`

type Repository struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

// Store inserts the movie or replaces the stored copy.
func (r *Repository) Store(ctx context.Context, m model.Movie) error {
	movieDB, err := FromDomain(m)
	if err != nil {
		return fmt.Errorf("failed to encode movie: %w", err)
	}

	query := `
		INSERT INTO movies (id, title, year, genres, streaming_platforms, ratings, summary)
		VALUES (:id, :title, :year, :genres, :streaming_platforms, :ratings, :summary)
		ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title,
			year = EXCLUDED.year,
			genres = EXCLUDED.genres,
			streaming_platforms = EXCLUDED.streaming_platforms,
			ratings = EXCLUDED.ratings,
			summary = EXCLUDED.summary
	`

	if _, err := r.db.NamedExecContext(ctx, query, movieDB); err != nil {
		return fmt.Errorf("failed to store movie: %w", err)
	}
	return nil
}

func (r *Repository) Load(ctx context.Context) ([]model.Movie, error) {
	var moviesDB []MovieDB
	if err := r.db.SelectContext(ctx, &moviesDB, selectMovies+" ORDER BY id"); err != nil {
		return nil, fmt.Errorf("failed to query movies: %w", err)
	}
	return toDomain(moviesDB)
}

func (r *Repository) LoadPage(ctx context.Context, limit int, offset int) ([]model.Movie, error) {
	var moviesDB []MovieDB
	if err := r.db.SelectContext(ctx, &moviesDB, selectMovies+" ORDER BY id LIMIT $1 OFFSET $2", limit, offset); err != nil {
		return nil, fmt.Errorf("failed to query movie page: %w", err)
	}
	return toDomain(moviesDB)
}

func (r *Repository) LoadByID(ctx context.Context, ID string) (model.Movie, error) {
	var movieDB MovieDB
	err := r.db.GetContext(ctx, &movieDB, selectMovies+" WHERE id = $1", ID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Movie{}, usecase_catalog.ErrResourceNotFound
		}
		return model.Movie{}, fmt.Errorf("failed to load movie by id: %w", err)
	}
	return movieDB.ToDomain()
}

// LoadByIDs returns the known movies among IDs in no particular order.
func (r *Repository) LoadByIDs(ctx context.Context, IDs []string) ([]model.Movie, error) {
	if len(IDs) == 0 {
		return []model.Movie{}, nil
	}

	query, args, err := sqlx.In(selectMovies+" WHERE id IN (?)", IDs)
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	query = r.db.Rebind(query)
	var moviesDB []MovieDB
	if err := r.db.SelectContext(ctx, &moviesDB, query, args...); err != nil {
		return nil, fmt.Errorf("failed to query movies by ids: %w", err)
	}
	return toDomain(moviesDB)
}
