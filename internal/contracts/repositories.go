package contracts

import (
	"context"
	"time"
)

// Repository interfaces are defined here; concrete implementations live
// in their domain packages.

// CardRepository provides read access to the 78-card catalog.
type CardRepository interface {
	ListAll(ctx context.Context) ([]Card, error)
	Count(ctx context.Context) (int, error)
	SaveBatch(ctx context.Context, cards []Card) error
}

// ReadingRepository persists readings and enforces the daily-uniqueness
// constraint at the store level.
type ReadingRepository interface {
	// Create inserts a reading. For daily readings the store carries a
	// unique index on (user_id, reading_date); on conflict it returns
	// ErrDuplicateDaily and writes nothing.
	Create(ctx context.Context, reading *Reading) error

	// FindDailyByDate returns the daily reading for the given calendar
	// day, or nil when none exists.
	FindDailyByDate(ctx context.Context, userID string, day time.Time) (*Reading, error)

	FindByUser(ctx context.Context, userID string, limit int) ([]*Reading, error)
}

// UserRepository provides access to user records, profiles and streaks.
type UserRepository interface {
	GetByID(ctx context.Context, userID string) (*User, error)
	SaveProfile(ctx context.Context, userID string, profile *NatalProfile) error
	UpdateStreak(ctx context.Context, userID string, streak int, lastReading time.Time) error

	// ExpireStreaks zeroes streaks whose last reading is older than one
	// calendar day relative to now. Returns the number of users touched.
	ExpireStreaks(ctx context.Context, now time.Time) (int64, error)
}

// RNG abstracts random number generation so draws and composition can be
// driven by a deterministic sequence in tests.
type RNG interface {
	// Intn returns a non-negative random int in [0, n).
	Intn(n int) int
	// Float64 returns a random float in [0.0, 1.0).
	Float64() float64
}

// Clock abstracts time for TTL caches and calendar-day truncation.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to the Clock interface.
type ClockFunc func() time.Time

// Now implements Clock.
func (f ClockFunc) Now() time.Time { return f() }

// SystemClock returns a Clock backed by time.Now.
func SystemClock() Clock { return ClockFunc(time.Now) }
