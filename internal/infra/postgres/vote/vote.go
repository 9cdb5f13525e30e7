package infra_postgres_vote

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/humanbelnik/popcorn/core/internal/model"
	"github.com/jmoiron/sqlx"
)

type Driver struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Driver {
	return &Driver{db: db}
}

type countsDTO struct {
	Yes   int `db:"yes"`
	No    int `db:"no"`
	Seen  int `db:"seen"`
	Total int `db:"total"`
}

// Upsert stores the vote and returns the choice it replaced, empty for a
// first vote. The row is locked so concurrent re-votes see each other.
func (d *Driver) Upsert(ctx context.Context, v model.Vote) (model.VoteChoice, error) {
	tx, err := d.db.BeginTxx(ctx, nil)
	if err != nil {
		return "", err
	}
	defer func() { _ = tx.Rollback() }()

	var previous string
	selectQuery := `SELECT vote FROM votes WHERE id = $1 FOR UPDATE`

	err = tx.GetContext(ctx, &previous, selectQuery, v.ID())
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return "", err
	}

	upsertQuery := `
		INSERT INTO votes (id, party_id, user_id, movie_id, vote, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id)
		DO UPDATE SET vote = EXCLUDED.vote, created_at = EXCLUDED.created_at
	`

	_, err = tx.ExecContext(ctx, upsertQuery, v.ID(), v.PartyID, v.UserID, v.MovieID, string(v.Choice), v.Timestamp)
	if err != nil {
		return "", err
	}

	if err := tx.Commit(); err != nil {
		return "", err
	}
	return model.VoteChoice(previous), nil
}

func (d *Driver) Counts(ctx context.Context, partyID string, movieID string) (model.VoteCounts, error) {
	var c countsDTO

	query := `
		SELECT
			COUNT(*) FILTER (WHERE vote = 'yes') AS yes,
			COUNT(*) FILTER (WHERE vote = 'no') AS no,
			COUNT(*) FILTER (WHERE vote = 'seen') AS seen,
			COUNT(*) AS total
		FROM votes
		WHERE party_id = $1 AND movie_id = $2
	`

	if err := d.db.GetContext(ctx, &c, query, partyID, movieID); err != nil {
		return model.VoteCounts{}, fmt.Errorf("failed to count votes: %w", err)
	}
	return model.VoteCounts{Yes: c.Yes, No: c.No, Seen: c.Seen, Total: c.Total}, nil
}
