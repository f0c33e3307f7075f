// Package users persists user records: identity, the attached natal
// profile and the reading-streak counters.
package users

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lunarium/arcana/internal/contracts"
)

// Repository implements contracts.UserRepository on Postgres.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a new user repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// Create inserts a fresh user record and returns it.
func (r *Repository) Create(ctx context.Context) (*contracts.User, error) {
	user := &contracts.User{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
	}

	_, err := r.pool.Exec(ctx,
		`INSERT INTO users (id, created_at, reading_streak) VALUES ($1, $2, 0)`,
		user.ID, user.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// GetByID loads a user with profile and streak state.
func (r *Repository) GetByID(ctx context.Context, userID string) (*contracts.User, error) {
	query := `
		SELECT id, astrology_profile, reading_streak, last_reading_date, created_at
		FROM users
		WHERE id = $1
	`

	var (
		user        contracts.User
		profileJSON []byte
	)
	err := r.pool.QueryRow(ctx, query, userID).Scan(
		&user.ID, &profileJSON, &user.ReadingStreak, &user.LastReadingDate, &user.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, contracts.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	if len(profileJSON) > 0 {
		var profile contracts.NatalProfile
		if err := json.Unmarshal(profileJSON, &profile); err != nil {
			return nil, fmt.Errorf("decode profile for %s: %w", userID, err)
		}
		user.Profile = &profile
	}
	return &user, nil
}

// SaveProfile attaches a freshly computed natal profile to a user. The
// profile is a sub-document of the user row, not separately versioned.
func (r *Repository) SaveProfile(ctx context.Context, userID string, profile *contracts.NatalProfile) error {
	profileJSON, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}

	tag, err := r.pool.Exec(ctx,
		`UPDATE users SET astrology_profile = $2, profile_calculated = TRUE WHERE id = $1`,
		userID, profileJSON,
	)
	if err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return contracts.ErrUserNotFound
	}
	return nil
}

// UpdateStreak stores the new streak value and last reading date.
func (r *Repository) UpdateStreak(ctx context.Context, userID string, streak int, lastReading time.Time) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE users SET reading_streak = $2, last_reading_date = $3 WHERE id = $1`,
		userID, streak, lastReading,
	)
	if err != nil {
		return fmt.Errorf("update streak: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return contracts.ErrUserNotFound
	}
	return nil
}

// ExpireStreaks zeroes streaks whose last reading is more than one
// calendar day in the past. Run nightly by the scheduler.
func (r *Repository) ExpireStreaks(ctx context.Context, now time.Time) (int64, error) {
	cutoff := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, -1)

	tag, err := r.pool.Exec(ctx,
		`UPDATE users SET reading_streak = 0 WHERE reading_streak > 0 AND last_reading_date < $1`,
		cutoff,
	)
	if err != nil {
		return 0, fmt.Errorf("expire streaks: %w", err)
	}
	return tag.RowsAffected(), nil
}
