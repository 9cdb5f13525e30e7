package infra_postgres_preference

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	json "github.com/goccy/go-json"
	"github.com/humanbelnik/popcorn/core/internal/model"
	usecase_preference "github.com/humanbelnik/popcorn/core/internal/usecase/preference"
	"github.com/jmoiron/sqlx"
)

var ErrUnknownSuite = errors.New("unknown suite number")

type Driver struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Driver {
	return &Driver{db: db}
}

type preferenceDTO struct {
	ID          string    `db:"id"`
	PartyID     string    `db:"party_id"`
	UserID      string    `db:"user_id"`
	SuiteNumber int       `db:"suite_number"`
	Payload     []byte    `db:"payload"`
	Version     int       `db:"version"`
	CreatedAt   time.Time `db:"created_at"`
	ExpiresAt   time.Time `db:"expires_at"`
}

func fromDomain(rec model.PreferenceRecord) (preferenceDTO, error) {
	payload, err := json.Marshal(rec.Payload)
	if err != nil {
		return preferenceDTO{}, err
	}
	return preferenceDTO{
		ID:          rec.ID(),
		PartyID:     rec.PartyID,
		UserID:      rec.UserID,
		SuiteNumber: int(rec.Suite()),
		Payload:     payload,
		Version:     rec.Version,
		CreatedAt:   rec.Timestamp,
		ExpiresAt:   rec.ExpiresAt,
	}, nil
}

func (p preferenceDTO) toDomain() (model.PreferenceRecord, error) {
	payload, err := decodePayload(model.SuiteNumber(p.SuiteNumber), p.Payload)
	if err != nil {
		return model.PreferenceRecord{}, fmt.Errorf("record %s: %w", p.ID, err)
	}
	return model.PreferenceRecord{
		PartyID:   p.PartyID,
		UserID:    p.UserID,
		Payload:   payload,
		Timestamp: p.CreatedAt,
		ExpiresAt: p.ExpiresAt,
		Version:   p.Version,
	}, nil
}

func decodePayload(suite model.SuiteNumber, raw []byte) (model.Payload, error) {
	switch suite {
	case model.SuitePreferences:
		var p model.Suite1Payload
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, err
		}
		return p, nil
	case model.SuiteRatings:
		var p model.Suite2Payload
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, err
		}
		return p, nil
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownSuite, suite)
}

// Upsert replaces the record unconditionally and bumps its version.
func (d *Driver) Upsert(ctx context.Context, rec model.PreferenceRecord) error {
	dto, err := fromDomain(rec)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO preferences (id, party_id, user_id, suite_number, payload, version, created_at, expires_at)
		VALUES (:id, :party_id, :user_id, :suite_number, :payload, 1, :created_at, :expires_at)
		ON CONFLICT (id) DO UPDATE SET
			payload = EXCLUDED.payload,
			version = preferences.version + 1,
			created_at = EXCLUDED.created_at,
			expires_at = EXCLUDED.expires_at
	`

	_, err = d.db.NamedExecContext(ctx, query, dto)
	return err
}

// Load returns the live record of one member and suite. Expired records read
// as not found.
func (d *Driver) Load(ctx context.Context, partyID string, userID string, suite model.SuiteNumber) (model.PreferenceRecord, error) {
	var dto preferenceDTO

	query := `
		SELECT id, party_id, user_id, suite_number, payload, version, created_at, expires_at
		FROM preferences
		WHERE id = $1 AND expires_at > now()
	`

	err := d.db.GetContext(ctx, &dto, query, model.PreferenceID(partyID, userID, suite))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.PreferenceRecord{}, usecase_preference.ErrResourceNotFound
		}
		return model.PreferenceRecord{}, err
	}
	return dto.toDomain()
}

/*
CompareAndSwap writes rec only when the stored version still equals
rec.Version. Version 0 inserts, taking over an expired record with the same
id, and fails if a live one exists.
A lost race returns usecase_preference.ErrVersionConflict.
*/
func (d *Driver) CompareAndSwap(ctx context.Context, rec model.PreferenceRecord) error {
	dto, err := fromDomain(rec)
	if err != nil {
		return err
	}

	var result sql.Result
	if rec.Version == 0 {
		query := `
			INSERT INTO preferences (id, party_id, user_id, suite_number, payload, version, created_at, expires_at)
			VALUES (:id, :party_id, :user_id, :suite_number, :payload, 1, :created_at, :expires_at)
			ON CONFLICT (id) DO UPDATE SET
				payload = EXCLUDED.payload,
				version = 1,
				created_at = EXCLUDED.created_at,
				expires_at = EXCLUDED.expires_at
			WHERE preferences.expires_at <= now()
		`
		result, err = d.db.NamedExecContext(ctx, query, dto)
	} else {
		query := `
			UPDATE preferences
			SET payload = :payload, version = version + 1, created_at = :created_at, expires_at = :expires_at
			WHERE id = :id AND version = :version
		`
		result, err = d.db.NamedExecContext(ctx, query, dto)
	}
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return usecase_preference.ErrVersionConflict
	}
	return nil
}

// ListByParty returns the live records of one suite.
func (d *Driver) ListByParty(ctx context.Context, partyID string, suite model.SuiteNumber) ([]model.PreferenceRecord, error) {
	var dtos []preferenceDTO

	query := `
		SELECT id, party_id, user_id, suite_number, payload, version, created_at, expires_at
		FROM preferences
		WHERE party_id = $1 AND suite_number = $2 AND expires_at > now()
		ORDER BY created_at
	`

	if err := d.db.SelectContext(ctx, &dtos, query, partyID, int(suite)); err != nil {
		return nil, err
	}

	records := make([]model.PreferenceRecord, 0, len(dtos))
	for _, dto := range dtos {
		rec, err := dto.toDomain()
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}
