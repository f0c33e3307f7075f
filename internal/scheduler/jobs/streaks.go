package jobs

import (
	"context"

	"github.com/lunarium/arcana/internal/contracts"
	"github.com/lunarium/arcana/pkg/logger"
)

// StreakExpiryJob zeroes reading streaks for users who skipped a day.
// Runs shortly after midnight so the streak shown during the day already
// reflects the missed reading.
type StreakExpiryJob struct {
	users  contracts.UserRepository
	clock  contracts.Clock
	logger *logger.Logger
}

// NewStreakExpiryJob creates a new streak expiry job.
func NewStreakExpiryJob(users contracts.UserRepository, clock contracts.Clock, log *logger.Logger) *StreakExpiryJob {
	return &StreakExpiryJob{
		users:  users,
		clock:  clock,
		logger: log,
	}
}

// Name returns the job name.
func (j *StreakExpiryJob) Name() string {
	return "streak_expiry"
}

// Schedule returns the cron schedule (daily at 00:05).
func (j *StreakExpiryJob) Schedule() string {
	return "0 5 0 * * *"
}

// Run expires stale streaks.
func (j *StreakExpiryJob) Run(ctx context.Context) error {
	expired, err := j.users.ExpireStreaks(ctx, j.clock.Now())
	if err != nil {
		return err
	}

	if expired > 0 {
		j.logger.WithField("expired", expired).Info("Reading streaks expired")
	}
	return nil
}
