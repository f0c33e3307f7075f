package reading

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lunarium/arcana/internal/contracts"
	"github.com/lunarium/arcana/internal/tarot"
	"github.com/lunarium/arcana/pkg/logger"
	"github.com/lunarium/arcana/pkg/redis"
)

// Service orchestrates reading generation: catalog access, weighting,
// drawing, composition, persistence and streak upkeep.
//
// The service is stateless per call. Calendar days are truncated in the
// configured location, so "today" follows the service timezone, not the
// database's.
type Service struct {
	catalog  *tarot.Catalog
	drawer   *tarot.Drawer
	composer *Composer
	readings contracts.ReadingRepository
	users    contracts.UserRepository
	clock    contracts.Clock
	loc      *time.Location
	cache    *redis.Cache
	logger   *logger.Logger
}

// NewService wires a reading service. cache may be nil.
func NewService(
	catalog *tarot.Catalog,
	drawer *tarot.Drawer,
	composer *Composer,
	readings contracts.ReadingRepository,
	users contracts.UserRepository,
	clock contracts.Clock,
	loc *time.Location,
	cache *redis.Cache,
	log *logger.Logger,
) *Service {
	return &Service{
		catalog:  catalog,
		drawer:   drawer,
		composer: composer,
		readings: readings,
		users:    users,
		clock:    clock,
		loc:      loc,
		cache:    cache,
		logger:   log,
	}
}

// GenerateDaily implements get-or-create semantics for the daily
// reading: at most one per user per calendar day.
//
// The fast path is a read; the slow path generates, composes and
// inserts. The insert can lose a race against a concurrent request for
// the same user, in which case the store's unique index rejects it and
// the winner's record is re-read and returned with IsNew=false. The
// race never surfaces to the caller.
func (s *Service) GenerateDaily(ctx context.Context, userID string, mood contracts.Mood) (*contracts.ReadingResult, error) {
	today := s.today()

	if cached := s.cachedDaily(ctx, userID, today); cached != nil {
		return &contracts.ReadingResult{Reading: cached, IsNew: false}, nil
	}

	existing, err := s.readings.FindDailyByDate(ctx, userID, today)
	if err != nil {
		return nil, fmt.Errorf("check existing daily reading: %w", err)
	}
	if existing != nil {
		s.cacheDaily(ctx, userID, today, existing)
		return &contracts.ReadingResult{Reading: existing, IsNew: false}, nil
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load user: %w", err)
	}

	cards, err := s.catalog.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	weights := tarot.BuildWeights(cards, user.Profile)
	drawn, err := s.drawer.DrawWeighted(cards, weights, 1)
	if err != nil {
		return nil, err
	}

	card := cardByID(cards, drawn[0].CardID)
	interpretation := s.composer.ComposeDaily(card, drawn[0], user.Profile, mood)

	now := s.clock.Now().In(s.loc)
	newReading := &contracts.Reading{
		ID:             uuid.NewString(),
		UserID:         userID,
		Type:           contracts.ReadingDaily,
		Cards:          drawn,
		Interpretation: interpretation,
		Context: contracts.ReadingContext{
			Type:      contracts.ReadingDaily,
			Mood:      mood,
			Horoscope: s.horoscope(user.Profile),
		},
		CreatedAt: now,
	}

	if err := s.readings.Create(ctx, newReading); err != nil {
		if errors.Is(err, contracts.ErrDuplicateDaily) {
			// Lost the race: discard our write, return the winner.
			winner, findErr := s.readings.FindDailyByDate(ctx, userID, today)
			if findErr != nil {
				return nil, fmt.Errorf("re-read daily reading after conflict: %w", findErr)
			}
			if winner == nil {
				return nil, fmt.Errorf("daily conflict reported but winner not found: %w", err)
			}
			s.logger.WithField("user_id", userID).Debug("Daily reading race lost, returning winner")
			return &contracts.ReadingResult{Reading: winner, IsNew: false}, nil
		}
		return nil, err
	}

	if err := s.updateStreak(ctx, user, today); err != nil {
		// The reading exists; a streak failure should not undo it.
		s.logger.WithError(err).WithField("user_id", userID).Warn("Failed to update reading streak")
	}

	s.cacheDaily(ctx, userID, today, newReading)
	return &contracts.ReadingResult{Reading: newReading, IsNew: true}, nil
}

// GenerateDecision creates a three-card past/present/future reading.
// The draw is uniform: decision spreads bypass personalization
// weighting. Any number of decision readings may exist per day.
func (s *Service) GenerateDecision(ctx context.Context, userID, question string, mood contracts.Mood) (*contracts.Reading, error) {
	cards, err := s.catalog.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	drawn, err := s.drawer.DrawUniform(cards, DecisionSpreadSize)
	if err != nil {
		return nil, err
	}

	interpretation, recommendation := s.composer.ComposeDecision(cards, drawn, question)

	newReading := &contracts.Reading{
		ID:             uuid.NewString(),
		UserID:         userID,
		Type:           contracts.ReadingDecision,
		Cards:          drawn,
		Interpretation: interpretation,
		Context: contracts.ReadingContext{
			Type:           contracts.ReadingDecision,
			Question:       question,
			Mood:           mood,
			Recommendation: recommendation,
		},
		CreatedAt: s.clock.Now().In(s.loc),
	}

	if err := s.readings.Create(ctx, newReading); err != nil {
		return nil, err
	}
	return newReading, nil
}

// History returns the user's most recent readings.
func (s *Service) History(ctx context.Context, userID string, limit int) ([]*contracts.Reading, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.readings.FindByUser(ctx, userID, limit)
}

// updateStreak applies the streak rule: increment on an exactly-one-day
// gap, reset to 1 on a longer gap, initialize to 1 with no prior
// reading.
func (s *Service) updateStreak(ctx context.Context, user *contracts.User, today time.Time) error {
	streak := 1
	if user.LastReadingDate != nil {
		gap := daysBetween(*user.LastReadingDate, today)
		switch {
		case gap == 0:
			streak = user.ReadingStreak
		case gap == 1:
			streak = user.ReadingStreak + 1
		}
	}
	return s.users.UpdateStreak(ctx, user.ID, streak, today)
}

// today returns the current calendar day at local midnight.
func (s *Service) today() time.Time {
	now := s.clock.Now().In(s.loc)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.loc)
}

func daysBetween(a, b time.Time) int {
	a = time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	b = time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}

// horoscope builds the short context line stored alongside a daily
// reading when a profile exists.
func (s *Service) horoscope(p *contracts.NatalProfile) string {
	if p == nil || !p.Calculated {
		return ""
	}
	return fmt.Sprintf("Sun in %s; dominant element %s.", p.SunSign, p.Balance.Dominant)
}

func cardByID(cards []contracts.Card, id string) contracts.Card {
	for _, c := range cards {
		if c.ID == id {
			return c
		}
	}
	return contracts.Card{}
}

// cachedDaily checks Redis for today's reading. Nil cache or miss both
// return nil.
func (s *Service) cachedDaily(ctx context.Context, userID string, day time.Time) *contracts.Reading {
	if s.cache == nil {
		return nil
	}
	var cached contracts.Reading
	found, err := s.cache.Get(ctx, redis.DailyReadingKey(userID, day.Format("2006-01-02")), &cached)
	if err != nil || !found {
		return nil
	}
	return &cached
}

func (s *Service) cacheDaily(ctx context.Context, userID string, day time.Time, reading *contracts.Reading) {
	if s.cache == nil {
		return
	}
	key := redis.DailyReadingKey(userID, day.Format("2006-01-02"))
	if err := s.cache.Set(ctx, key, reading, redis.TTLDaily); err != nil {
		s.logger.WithError(err).Debug("Failed to cache daily reading")
	}
}
