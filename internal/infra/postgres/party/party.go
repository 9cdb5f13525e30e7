package infra_postgres_party

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"github.com/humanbelnik/popcorn/core/internal/model"
	usecase_party "github.com/humanbelnik/popcorn/core/internal/usecase/party"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type Driver struct {
	db *sqlx.DB
}

func New(
	db *sqlx.DB,
) *Driver {
	return &Driver{db: db}
}

type partyDTO struct {
	ID                string         `db:"id"`
	HostID            string         `db:"host_id"`
	HostName          string         `db:"host_name"`
	Status            string         `db:"status"`
	CurrentSuite      int            `db:"current_suite"`
	StreamingServices pq.StringArray `db:"streaming_services"`
	SelectedMovies    []byte         `db:"selected_movies"`
	CreatedAt         time.Time      `db:"created_at"`
	ExpiresAt         time.Time      `db:"expires_at"`
}

type participantDTO struct {
	PartyID string `db:"party_id"`
	UserID  string `db:"user_id"`
	Name    string `db:"name"`
	Status  string `db:"status"`
}

func (d *Driver) Create(ctx context.Context, party model.Party) error {
	tx, err := d.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	dto := partyDTO{
		ID:                party.ID,
		HostID:            party.HostID,
		HostName:          party.HostName,
		Status:            party.Status,
		CurrentSuite:      int(party.CurrentSuite),
		StreamingServices: pq.StringArray(party.StreamingServices),
		CreatedAt:         party.CreatedAt,
		ExpiresAt:         party.ExpiresAt,
	}
	if dto.StreamingServices == nil {
		dto.StreamingServices = pq.StringArray{}
	}

	query := `
		INSERT INTO parties (id, host_id, host_name, status, current_suite, streaming_services, created_at, expires_at)
		VALUES (:id, :host_id, :host_name, :status, :current_suite, :streaming_services, :created_at, :expires_at)
	`
	if _, err := tx.NamedExecContext(ctx, query, dto); err != nil {
		return err
	}

	for _, p := range party.Participants {
		if err := insertParticipant(ctx, tx, party.ID, p); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func insertParticipant(ctx context.Context, tx *sqlx.Tx, partyID string, p model.Participant) error {
	query := `
		INSERT INTO participants (party_id, user_id, name, status)
		VALUES (:party_id, :user_id, :name, :status)
		ON CONFLICT (party_id, user_id) DO NOTHING
	`
	_, err := tx.NamedExecContext(ctx, query, participantDTO{
		PartyID: partyID,
		UserID:  p.UserID,
		Name:    p.Name,
		Status:  p.Status,
	})
	return err
}

func (d *Driver) Load(ctx context.Context, partyID string) (model.Party, error) {
	var dto partyDTO

	query := `
		SELECT id, host_id, host_name, status, current_suite, streaming_services, selected_movies, created_at, expires_at
		FROM parties
		WHERE id = $1
	`

	err := d.db.GetContext(ctx, &dto, query, partyID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Party{}, usecase_party.ErrResourceNotFound
		}
		return model.Party{}, err
	}

	var participants []participantDTO
	participantsQuery := `
		SELECT party_id, user_id, name, status
		FROM participants
		WHERE party_id = $1
		ORDER BY joined_at
	`
	if err := d.db.SelectContext(ctx, &participants, participantsQuery, partyID); err != nil {
		return model.Party{}, err
	}

	party := model.Party{
		ID:                dto.ID,
		HostID:            dto.HostID,
		HostName:          dto.HostName,
		Status:            dto.Status,
		CurrentSuite:      model.SuiteNumber(dto.CurrentSuite),
		StreamingServices: []string(dto.StreamingServices),
		Participants:      make([]model.Participant, 0, len(participants)),
		CreatedAt:         dto.CreatedAt,
		ExpiresAt:         dto.ExpiresAt,
	}
	for _, p := range participants {
		party.Participants = append(party.Participants, model.Participant{
			UserID: p.UserID,
			Name:   p.Name,
			Status: p.Status,
		})
	}
	if len(dto.SelectedMovies) > 0 {
		if err := json.Unmarshal(dto.SelectedMovies, &party.SelectedMovies); err != nil {
			return model.Party{}, fmt.Errorf("failed to decode selected movies: %w", err)
		}
	}
	return party, nil
}

func (d *Driver) AddParticipant(ctx context.Context, partyID string, p model.Participant) error {
	query := `
		INSERT INTO participants (party_id, user_id, name, status)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (party_id, user_id) DO NOTHING
	`

	_, err := d.db.ExecContext(ctx, query, partyID, p.UserID, p.Name, p.Status)
	if err != nil {
		if strings.Contains(err.Error(), "foreign key") {
			return usecase_party.ErrResourceNotFound
		}
		return err
	}
	return nil
}

func (d *Driver) UpdateStatus(ctx context.Context, partyID string, status model.PartyStatus, suite model.SuiteNumber) error {
	query := `
		UPDATE parties
		SET status = $1, current_suite = $2
		WHERE id = $3
	`

	result, err := d.db.ExecContext(ctx, query, status, int(suite), partyID)
	if err != nil {
		return err
	}
	return requireRow(result)
}

func (d *Driver) IsParticipant(ctx context.Context, partyID string, userID string) (bool, error) {
	var row struct {
		Party  bool `db:"party"`
		Member bool `db:"member"`
	}

	query := `
		SELECT
			EXISTS (SELECT 1 FROM parties WHERE id = $1) AS party,
			EXISTS (SELECT 1 FROM participants WHERE party_id = $1 AND user_id = $2) AS member
	`

	if err := d.db.GetContext(ctx, &row, query, partyID, userID); err != nil {
		return false, err
	}
	if !row.Party {
		return false, usecase_party.ErrResourceNotFound
	}
	return row.Member, nil
}

// SaveSelection replaces the stored shortlist of the party.
func (d *Driver) SaveSelection(ctx context.Context, partyID string, movies []model.SelectedMovie) error {
	raw, err := json.Marshal(movies)
	if err != nil {
		return err
	}

	query := `
		UPDATE parties
		SET selected_movies = $1
		WHERE id = $2
	`

	result, err := d.db.ExecContext(ctx, query, raw, partyID)
	if err != nil {
		return err
	}
	return requireRow(result)
}

// DeleteExpired drops parties past their expiry together with everything
// that references them.
func (d *Driver) DeleteExpired(ctx context.Context, now time.Time) error {
	query := `DELETE FROM parties WHERE expires_at < $1`

	_, err := d.db.ExecContext(ctx, query, now)
	return err
}

func requireRow(result sql.Result) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return usecase_party.ErrResourceNotFound
	}
	return nil
}
