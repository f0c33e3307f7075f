package reading

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lunarium/arcana/internal/contracts"
	"github.com/lunarium/arcana/internal/tarot"
	"github.com/lunarium/arcana/pkg/config"
	"github.com/lunarium/arcana/pkg/logger"
)

type memCardRepo struct {
	cards []contracts.Card
}

func (m *memCardRepo) ListAll(ctx context.Context) ([]contracts.Card, error) { return m.cards, nil }
func (m *memCardRepo) Count(ctx context.Context) (int, error)                { return len(m.cards), nil }
func (m *memCardRepo) SaveBatch(ctx context.Context, cards []contracts.Card) error {
	m.cards = cards
	return nil
}

// memReadingRepo mimics the store-level daily uniqueness constraint. The
// optional onCreate hook lets tests inject insert conflicts.
type memReadingRepo struct {
	mu       sync.Mutex
	readings []*contracts.Reading
	onCreate func(*contracts.Reading) error

	lastLimit int
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

func (m *memReadingRepo) Create(ctx context.Context, reading *contracts.Reading) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.onCreate != nil {
		if err := m.onCreate(reading); err != nil {
			return err
		}
	}
	if reading.Type == contracts.ReadingDaily {
		for _, r := range m.readings {
			if r.Type == contracts.ReadingDaily && r.UserID == reading.UserID && sameDay(r.CreatedAt, reading.CreatedAt) {
				return contracts.ErrDuplicateDaily
			}
		}
	}
	m.readings = append(m.readings, reading)
	return nil
}

func (m *memReadingRepo) FindDailyByDate(ctx context.Context, userID string, day time.Time) (*contracts.Reading, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.readings {
		if r.Type == contracts.ReadingDaily && r.UserID == userID && sameDay(r.CreatedAt, day) {
			return r, nil
		}
	}
	return nil, nil
}

func (m *memReadingRepo) FindByUser(ctx context.Context, userID string, limit int) ([]*contracts.Reading, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastLimit = limit

	var out []*contracts.Reading
	for i := len(m.readings) - 1; i >= 0 && len(out) < limit; i-- {
		if m.readings[i].UserID == userID {
			out = append(out, m.readings[i])
		}
	}
	return out, nil
}

type streakCall struct {
	userID string
	streak int
	day    time.Time
}

type memUserRepo struct {
	users        map[string]*contracts.User
	streakCalls  []streakCall
	expiredCalls int
}

func (m *memUserRepo) GetByID(ctx context.Context, userID string) (*contracts.User, error) {
	user, ok := m.users[userID]
	if !ok {
		return nil, contracts.ErrUserNotFound
	}
	return user, nil
}

func (m *memUserRepo) SaveProfile(ctx context.Context, userID string, profile *contracts.NatalProfile) error {
	user, ok := m.users[userID]
	if !ok {
		return contracts.ErrUserNotFound
	}
	user.Profile = profile
	return nil
}

func (m *memUserRepo) UpdateStreak(ctx context.Context, userID string, streak int, lastReading time.Time) error {
	m.streakCalls = append(m.streakCalls, streakCall{userID, streak, lastReading})
	if user, ok := m.users[userID]; ok {
		user.ReadingStreak = streak
		user.LastReadingDate = &lastReading
	}
	return nil
}

func (m *memUserRepo) ExpireStreaks(ctx context.Context, now time.Time) (int64, error) {
	m.expiredCalls++
	return 0, nil
}

type serviceFixture struct {
	service  *Service
	readings *memReadingRepo
	users    *memUserRepo
	now      time.Time
}

func newFixture(t *testing.T, users map[string]*contracts.User) *serviceFixture {
	t.Helper()

	now := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)
	cardRepo := &memCardRepo{cards: tarot.BuildDeck()}
	clock := contracts.ClockFunc(func() time.Time { return now })
	rng := tarot.NewRNG(11, 12)

	readings := &memReadingRepo{}
	userRepo := &memUserRepo{users: users}

	log := logger.New(&config.Config{Env: "development", LogLevel: "error", LogFormat: "json"})
	service := NewService(
		tarot.NewCatalog(cardRepo, clock, time.Hour, rng),
		tarot.NewDrawer(rng),
		NewComposer(rng),
		readings,
		userRepo,
		clock,
		time.UTC,
		nil,
		log,
	)

	return &serviceFixture{service: service, readings: readings, users: userRepo, now: now}
}

func plainUser(id string) map[string]*contracts.User {
	return map[string]*contracts.User{
		id: {ID: id, CreatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)},
	}
}

func TestGenerateDailyCreatesOnce(t *testing.T) {
	f := newFixture(t, plainUser("user-1"))
	ctx := context.Background()

	first, err := f.service.GenerateDaily(ctx, "user-1", contracts.MoodHappy)
	require.NoError(t, err)
	assert.True(t, first.IsNew)
	require.Len(t, first.Reading.Cards, 1)
	assert.Equal(t, 1, first.Reading.Cards[0].Position)
	assert.Equal(t, contracts.ReadingDaily, first.Reading.Type)
	assert.Equal(t, contracts.MoodHappy, first.Reading.Context.Mood)
	assert.NotEmpty(t, first.Reading.Interpretation.Text)
	assert.NotEmpty(t, first.Reading.Interpretation.Summary)

	// Same day again: the stored reading comes back unchanged.
	second, err := f.service.GenerateDaily(ctx, "user-1", contracts.MoodSad)
	require.NoError(t, err)
	assert.False(t, second.IsNew)
	assert.Equal(t, first.Reading.ID, second.Reading.ID)
	assert.Equal(t, first.Reading.Interpretation, second.Reading.Interpretation)

	// Only the creating call touched the streak.
	require.Len(t, f.users.streakCalls, 1)
	assert.Equal(t, 1, f.users.streakCalls[0].streak)
}

func TestGenerateDailyUnknownUser(t *testing.T) {
	f := newFixture(t, map[string]*contracts.User{})

	_, err := f.service.GenerateDaily(context.Background(), "nobody", "")
	assert.ErrorIs(t, err, contracts.ErrUserNotFound)
}

func TestGenerateDailyEmptyCatalog(t *testing.T) {
	f := newFixture(t, plainUser("user-1"))
	f.service.catalog = tarot.NewCatalog(&memCardRepo{}, contracts.ClockFunc(time.Now), time.Hour, tarot.NewRNG(1, 2))

	_, err := f.service.GenerateDaily(context.Background(), "user-1", "")
	assert.ErrorIs(t, err, contracts.ErrEmptyCatalog)
}

func TestGenerateDailyLostRace(t *testing.T) {
	f := newFixture(t, plainUser("user-1"))
	ctx := context.Background()

	winner := &contracts.Reading{
		ID:        "winner-id",
		UserID:    "user-1",
		Type:      contracts.ReadingDaily,
		CreatedAt: f.now,
	}

	// A concurrent request lands its insert between our existence check
	// and our insert.
	f.readings.onCreate = func(r *contracts.Reading) error {
		f.readings.readings = append(f.readings.readings, winner)
		f.readings.onCreate = nil
		return contracts.ErrDuplicateDaily
	}

	result, err := f.service.GenerateDaily(ctx, "user-1", "")
	require.NoError(t, err)
	assert.False(t, result.IsNew)
	assert.Equal(t, "winner-id", result.Reading.ID)

	// The loser must not update the streak.
	assert.Empty(t, f.users.streakCalls)
}

func TestGenerateDailyUsesProfileWeights(t *testing.T) {
	users := map[string]*contracts.User{
		"user-1": {
			ID: "user-1",
			Profile: &contracts.NatalProfile{
				SunSign:    "Gemini",
				Calculated: true,
				Balance:    contracts.ElementBalance{Dominant: contracts.ElementAir, Lacking: contracts.ElementEarth},
			},
		},
	}
	f := newFixture(t, users)

	result, err := f.service.GenerateDaily(context.Background(), "user-1", "")
	require.NoError(t, err)
	assert.True(t, result.IsNew)
	assert.Contains(t, result.Reading.Context.Horoscope, "Sun in Gemini")
	assert.Contains(t, result.Reading.Interpretation.Text, "For your chart")
}

func TestStreakTransitions(t *testing.T) {
	today := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
	yesterday := today.AddDate(0, 0, -1)
	lastWeek := today.AddDate(0, 0, -7)

	tests := []struct {
		name string
		user *contracts.User
		want int
	}{
		{"first reading", &contracts.User{ID: "u"}, 1},
		{"same day", &contracts.User{ID: "u", ReadingStreak: 4, LastReadingDate: &today}, 4},
		{"consecutive day", &contracts.User{ID: "u", ReadingStreak: 4, LastReadingDate: &yesterday}, 5},
		{"gap resets", &contracts.User{ID: "u", ReadingStreak: 9, LastReadingDate: &lastWeek}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, map[string]*contracts.User{"u": tt.user})
			require.NoError(t, f.service.updateStreak(context.Background(), tt.user, today))
			require.Len(t, f.users.streakCalls, 1)
			assert.Equal(t, tt.want, f.users.streakCalls[0].streak)
			assert.True(t, f.users.streakCalls[0].day.Equal(today))
		})
	}
}

func TestGenerateDecision(t *testing.T) {
	f := newFixture(t, plainUser("user-1"))
	ctx := context.Background()

	reading, err := f.service.GenerateDecision(ctx, "user-1", "Should I move abroad?", contracts.MoodConfused)
	require.NoError(t, err)

	assert.Equal(t, contracts.ReadingDecision, reading.Type)
	require.Len(t, reading.Cards, DecisionSpreadSize)
	seen := map[string]bool{}
	for i, card := range reading.Cards {
		assert.Equal(t, i+1, card.Position)
		assert.False(t, seen[card.CardID], "card %s repeated", card.CardID)
		seen[card.CardID] = true
	}

	assert.Equal(t, "Should I move abroad?", reading.Context.Question)
	assert.Equal(t, Recommend(reading.Cards), reading.Context.Recommendation)
	assert.Contains(t, reading.Interpretation.Text, "Should I move abroad?")

	// Decision readings are unconstrained: a second one the same day
	// succeeds.
	_, err = f.service.GenerateDecision(ctx, "user-1", "", "")
	require.NoError(t, err)
}

func TestHistoryDefaultLimit(t *testing.T) {
	f := newFixture(t, plainUser("user-1"))
	ctx := context.Background()

	_, err := f.service.History(ctx, "user-1", 0)
	require.NoError(t, err)
	assert.Equal(t, 20, f.readings.lastLimit)

	_, err = f.service.History(ctx, "user-1", 5)
	require.NoError(t, err)
	assert.Equal(t, 5, f.readings.lastLimit)
}

func TestHistoryOrder(t *testing.T) {
	f := newFixture(t, plainUser("user-1"))
	ctx := context.Background()

	first, err := f.service.GenerateDecision(ctx, "user-1", "one", "")
	require.NoError(t, err)
	second, err := f.service.GenerateDecision(ctx, "user-1", "two", "")
	require.NoError(t, err)

	history, err := f.service.History(ctx, "user-1", 10)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, second.ID, history[0].ID)
	assert.Equal(t, first.ID, history[1].ID)
}

func TestDaysBetween(t *testing.T) {
	a := time.Date(2026, 8, 27, 23, 59, 0, 0, time.UTC)
	b := time.Date(2026, 8, 28, 0, 1, 0, 0, time.UTC)
	assert.Equal(t, 1, daysBetween(a, b))
	assert.Equal(t, 0, daysBetween(b, b))
	assert.Equal(t, 7, daysBetween(b.AddDate(0, 0, -7), b))
}
