package tarot

import (
	"sort"

	"github.com/lunarium/arcana/internal/contracts"
)

// reversalProbability is the independent chance that a drawn card lands
// reversed. Decided after the card identity is fixed; weighting never
// influences orientation.
const reversalProbability = 0.3

// Drawer performs weighted and uniform draws without replacement over
// a card slice. All methods are pure computations over the injected RNG.
type Drawer struct {
	rng contracts.RNG
}

// NewDrawer returns a Drawer using the given random source.
func NewDrawer(rng contracts.RNG) *Drawer {
	return &Drawer{rng: rng}
}

// DrawWeighted draws n distinct cards biased by the weight table, using
// cumulative-weight binary search. A nil table degrades to a uniform
// draw. Cards are removed from consideration once drawn.
func (d *Drawer) DrawWeighted(cards []contracts.Card, weights WeightTable, n int) ([]contracts.DrawnCard, error) {
	if len(cards) == 0 {
		return nil, contracts.ErrEmptyCatalog
	}
	if n > len(cards) {
		return nil, contracts.ErrDrawExceedsCatalog
	}

	pool := make([]contracts.Card, len(cards))
	copy(pool, cards)

	drawn := make([]contracts.DrawnCard, 0, n)
	for position := 1; position <= n; position++ {
		idx := d.sampleIndex(pool, weights)
		card := pool[idx]
		// Remove the card, not just one notional copy.
		pool = append(pool[:idx], pool[idx+1:]...)

		drawn = append(drawn, d.orient(card, position))
	}

	return drawn, nil
}

// DrawUniform draws n distinct cards with no personalization bias. The
// three-card decision spread uses this path by design.
func (d *Drawer) DrawUniform(cards []contracts.Card, n int) ([]contracts.DrawnCard, error) {
	return d.DrawWeighted(cards, nil, n)
}

// sampleIndex picks one pool index. With weights it builds a cumulative
// sum and binary-searches a uniform variate into it; without, a plain
// uniform index.
func (d *Drawer) sampleIndex(pool []contracts.Card, weights WeightTable) int {
	if weights == nil {
		return d.rng.Intn(len(pool))
	}

	cumulative := make([]float64, len(pool))
	sum := 0.0
	for i, card := range pool {
		sum += weights.Weight(card.ID)
		cumulative[i] = sum
	}

	target := d.rng.Float64() * sum
	return sort.SearchFloat64s(cumulative, target)
}

// orient fixes the drawn card's position and flips the reversal coin.
func (d *Drawer) orient(card contracts.Card, position int) contracts.DrawnCard {
	return contracts.DrawnCard{
		CardID:   card.ID,
		Name:     card.Name,
		Position: position,
		Reversed: d.rng.Float64() < reversalProbability,
		Arcana:   card.Arcana,
		Suit:     card.Suit,
	}
}
