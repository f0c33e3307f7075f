package tarot

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lunarium/arcana/internal/contracts"
)

// fakeCardRepo counts loads so tests can observe cache behavior.
type fakeCardRepo struct {
	cards []contracts.Card
	err   error
	loads int
}

func (f *fakeCardRepo) ListAll(ctx context.Context) ([]contracts.Card, error) {
	f.loads++
	if f.err != nil {
		return nil, f.err
	}
	return f.cards, nil
}

func (f *fakeCardRepo) Count(ctx context.Context) (int, error) {
	return len(f.cards), nil
}

func (f *fakeCardRepo) SaveBatch(ctx context.Context, cards []contracts.Card) error {
	f.cards = cards
	return nil
}

func testCatalog(repo *fakeCardRepo, now *time.Time, ttl time.Duration) *Catalog {
	clock := contracts.ClockFunc(func() time.Time { return *now })
	return NewCatalog(repo, clock, ttl, NewRNG(1, 2))
}

func TestCatalogCachesWithinTTL(t *testing.T) {
	repo := &fakeCardRepo{cards: BuildDeck()}
	now := time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)
	catalog := testCatalog(repo, &now, time.Hour)

	ctx := context.Background()
	first, err := catalog.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, first, 78)
	assert.Equal(t, 1, repo.loads)

	// Repeated reads inside the TTL never touch the repository.
	now = now.Add(30 * time.Minute)
	for i := 0; i < 5; i++ {
		_, err := catalog.ListAll(ctx)
		require.NoError(t, err)
	}
	assert.Equal(t, 1, repo.loads)
}

func TestCatalogReloadsAfterExpiry(t *testing.T) {
	repo := &fakeCardRepo{cards: BuildDeck()}
	now := time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)
	catalog := testCatalog(repo, &now, time.Hour)

	ctx := context.Background()
	_, err := catalog.ListAll(ctx)
	require.NoError(t, err)

	now = now.Add(time.Hour)
	_, err = catalog.ListAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, repo.loads)
}

func TestCatalogEmptyStore(t *testing.T) {
	catalog := testCatalog(&fakeCardRepo{}, &time.Time{}, time.Hour)

	_, err := catalog.ListAll(context.Background())
	assert.ErrorIs(t, err, contracts.ErrEmptyCatalog)
}

func TestCatalogRepositoryError(t *testing.T) {
	repoErr := errors.New("connection refused")
	catalog := testCatalog(&fakeCardRepo{err: repoErr}, &time.Time{}, time.Hour)

	_, err := catalog.ListAll(context.Background())
	assert.ErrorIs(t, err, repoErr)
}

func TestCatalogRefreshBypassesCache(t *testing.T) {
	repo := &fakeCardRepo{cards: BuildDeck()}
	now := time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)
	catalog := testCatalog(repo, &now, time.Hour)

	ctx := context.Background()
	_, err := catalog.ListAll(ctx)
	require.NoError(t, err)
	_, err = catalog.Refresh(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, repo.loads)
}

func TestGetRandom(t *testing.T) {
	repo := &fakeCardRepo{cards: BuildDeck()}
	now := time.Now()
	catalog := testCatalog(repo, &now, time.Hour)

	card, err := catalog.GetRandom(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, card.ID)
}

func TestGetRandomManyDistinct(t *testing.T) {
	repo := &fakeCardRepo{cards: BuildDeck()}
	now := time.Now()
	catalog := testCatalog(repo, &now, time.Hour)

	cards, err := catalog.GetRandomMany(context.Background(), 78, false)
	require.NoError(t, err)
	require.Len(t, cards, 78)

	seen := make(map[string]bool, len(cards))
	for _, card := range cards {
		assert.False(t, seen[card.ID], "card %s returned twice", card.ID)
		seen[card.ID] = true
	}
}

func TestGetRandomManyExceedsCatalog(t *testing.T) {
	repo := &fakeCardRepo{cards: BuildDeck()}
	now := time.Now()
	catalog := testCatalog(repo, &now, time.Hour)

	_, err := catalog.GetRandomMany(context.Background(), 79, false)
	assert.ErrorIs(t, err, contracts.ErrDrawExceedsCatalog)

	// With duplicates the request may exceed the catalog size.
	cards, err := catalog.GetRandomMany(context.Background(), 100, true)
	require.NoError(t, err)
	assert.Len(t, cards, 100)
}
