package reading

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lunarium/arcana/internal/contracts"
)

// pgUniqueViolation is the Postgres error code for unique constraint
// violations.
const pgUniqueViolation = "23505"

// Repository implements contracts.ReadingRepository on Postgres.
//
// The readings table carries a partial unique index:
//
//	CREATE UNIQUE INDEX readings_daily_unique
//	ON readings (user_id, reading_date) WHERE type = 'daily';
//
// That index, not application logic, is what guarantees at-most-one
// daily reading per user per calendar day under concurrency.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a new reading repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// Create inserts a reading. A unique-index conflict on the daily index
// maps to ErrDuplicateDaily so the service can discard the loser write
// and return the winner's record.
func (r *Repository) Create(ctx context.Context, reading *contracts.Reading) error {
	cardsJSON, err := json.Marshal(reading.Cards)
	if err != nil {
		return fmt.Errorf("encode cards: %w", err)
	}
	interpJSON, err := json.Marshal(reading.Interpretation)
	if err != nil {
		return fmt.Errorf("encode interpretation: %w", err)
	}
	contextJSON, err := json.Marshal(reading.Context)
	if err != nil {
		return fmt.Errorf("encode context: %w", err)
	}

	query := `
		INSERT INTO readings (id, user_id, type, reading_date, cards, interpretation, context, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err = r.pool.Exec(ctx, query,
		reading.ID, reading.UserID, reading.Type,
		truncateToDay(reading.CreatedAt),
		cardsJSON, interpJSON, contextJSON, reading.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return contracts.ErrDuplicateDaily
		}
		return fmt.Errorf("insert reading: %w", err)
	}
	return nil
}

// FindDailyByDate returns the daily reading for a calendar day, or nil.
func (r *Repository) FindDailyByDate(ctx context.Context, userID string, day time.Time) (*contracts.Reading, error) {
	query := `
		SELECT id, user_id, type, cards, interpretation, context, created_at
		FROM readings
		WHERE user_id = $1 AND type = $2 AND reading_date = $3
	`

	reading, err := r.scanOne(r.pool.QueryRow(ctx, query, userID, contracts.ReadingDaily, truncateToDay(day)))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find daily reading: %w", err)
	}
	return reading, nil
}

// FindByUser returns the user's readings, newest first.
func (r *Repository) FindByUser(ctx context.Context, userID string, limit int) ([]*contracts.Reading, error) {
	query := `
		SELECT id, user_id, type, cards, interpretation, context, created_at
		FROM readings
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	rows, err := r.pool.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("find readings: %w", err)
	}
	defer rows.Close()

	var readings []*contracts.Reading
	for rows.Next() {
		reading, err := r.scanOne(rows)
		if err != nil {
			return nil, fmt.Errorf("scan reading: %w", err)
		}
		readings = append(readings, reading)
	}
	return readings, rows.Err()
}

// rowScanner covers pgx.Row and pgx.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func (r *Repository) scanOne(row rowScanner) (*contracts.Reading, error) {
	var (
		reading     contracts.Reading
		cardsJSON   []byte
		interpJSON  []byte
		contextJSON []byte
	)
	if err := row.Scan(
		&reading.ID, &reading.UserID, &reading.Type,
		&cardsJSON, &interpJSON, &contextJSON, &reading.CreatedAt,
	); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(cardsJSON, &reading.Cards); err != nil {
		return nil, fmt.Errorf("decode cards: %w", err)
	}
	if err := json.Unmarshal(interpJSON, &reading.Interpretation); err != nil {
		return nil, fmt.Errorf("decode interpretation: %w", err)
	}
	if err := json.Unmarshal(contextJSON, &reading.Context); err != nil {
		return nil, fmt.Errorf("decode context: %w", err)
	}
	return &reading, nil
}

// truncateToDay drops the time-of-day component, keeping the location.
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
