package tarot

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/lunarium/arcana/internal/contracts"
)

// Catalog serves the card catalog through an explicit TTL cache. The
// cache is owned here, not module-global, and takes an injected clock
// so expiry is testable.
type Catalog struct {
	repo  contracts.CardRepository
	clock contracts.Clock
	ttl   time.Duration
	rng   contracts.RNG

	mu       sync.RWMutex
	cards    []contracts.Card
	loadedAt time.Time
}

// NewCatalog creates a catalog provider over the given repository.
func NewCatalog(repo contracts.CardRepository, clock contracts.Clock, ttl time.Duration, rng contracts.RNG) *Catalog {
	return &Catalog{
		repo:  repo,
		clock: clock,
		ttl:   ttl,
		rng:   rng,
	}
}

// ListAll returns the full catalog, loading from the repository when
// the cache is cold or expired. An empty store is a fatal condition for
// draw operations, surfaced as ErrEmptyCatalog.
func (c *Catalog) ListAll(ctx context.Context) ([]contracts.Card, error) {
	c.mu.RLock()
	if c.fresh() {
		cards := c.cards
		c.mu.RUnlock()
		return cards, nil
	}
	c.mu.RUnlock()

	return c.Refresh(ctx)
}

// Refresh forces a reload from the repository.
func (c *Catalog) Refresh(ctx context.Context) ([]contracts.Card, error) {
	cards, err := c.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	if len(cards) == 0 {
		return nil, contracts.ErrEmptyCatalog
	}

	c.mu.Lock()
	c.cards = cards
	c.loadedAt = c.clock.Now()
	c.mu.Unlock()

	return cards, nil
}

// fresh reports whether the cached copy is within its TTL. Caller holds
// at least a read lock.
func (c *Catalog) fresh() bool {
	return c.cards != nil && c.clock.Now().Sub(c.loadedAt) < c.ttl
}

// GetRandom returns one uniformly random card.
func (c *Catalog) GetRandom(ctx context.Context) (contracts.Card, error) {
	cards, err := c.ListAll(ctx)
	if err != nil {
		return contracts.Card{}, err
	}
	return cards[c.rng.Intn(len(cards))], nil
}

// GetRandomMany returns n random cards. Without duplicates the request
// must fit in the catalog, checked before any partial draw.
func (c *Catalog) GetRandomMany(ctx context.Context, n int, allowDuplicates bool) ([]contracts.Card, error) {
	cards, err := c.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	if allowDuplicates {
		out := make([]contracts.Card, n)
		for i := range out {
			out[i] = cards[c.rng.Intn(len(cards))]
		}
		return out, nil
	}

	if n > len(cards) {
		return nil, contracts.ErrDrawExceedsCatalog
	}

	// Partial Fisher-Yates: only the first n positions matter.
	indices := make([]int, len(cards))
	for i := range indices {
		indices[i] = i
	}
	for i := 0; i < n; i++ {
		j := i + c.rng.Intn(len(indices)-i)
		indices[i], indices[j] = indices[j], indices[i]
	}

	out := make([]contracts.Card, n)
	for i := 0; i < n; i++ {
		out[i] = cards[indices[i]]
	}
	return out, nil
}
