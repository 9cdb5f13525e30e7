package main

import (
	"context"
	"fmt"
	"io"

	"github.com/goccy/go-json"
	"github.com/humanbelnik/popcorn/core/internal/model"
)

type movieStore interface {
	Store(ctx context.Context, m model.Movie) error
}

// seed upserts every movie of a JSON array into the catalog and returns how
// many were written.
func seed(ctx context.Context, r io.Reader, store movieStore) (int, error) {
	var movies []model.Movie
	if err := json.NewDecoder(r).Decode(&movies); err != nil {
		return 0, fmt.Errorf("decode catalog: %w", err)
	}

	for i, m := range movies {
		if m.ID == "" || m.Title == "" {
			return i, fmt.Errorf("movie #%d: movie_id and title are required", i)
		}
		if err := store.Store(ctx, m); err != nil {
			return i, fmt.Errorf("store %s: %w", m.ID, err)
		}
	}
	return len(movies), nil
}
