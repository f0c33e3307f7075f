package tarot

import (
	"github.com/lunarium/arcana/internal/astro"
	"github.com/lunarium/arcana/internal/contracts"
)

// Multipliers applied when a natal profile is available. They compound:
// a correspondence card in the favored suit gets 2.0 × 1.3.
const (
	weightBase           = 1.0
	weightCorrespondence = 2.0
	weightSunElementSuit = 1.3
	weightWaterMoonCups  = 1.5
)

// WeightTable maps card IDs to draw multipliers. Built fresh per
// generation call; never persisted.
type WeightTable map[string]float64

// BuildWeights computes the per-card multipliers for a profile. A nil
// profile yields a nil table, which the sampler treats as uniform.
func BuildWeights(cards []contracts.Card, profile *contracts.NatalProfile) WeightTable {
	if profile == nil {
		return nil
	}

	sun, ok := astro.SignByName(profile.SunSign)
	if !ok {
		return nil
	}

	correspondence := make(map[string]bool, len(sun.Correspondences))
	for _, name := range sun.Correspondences {
		correspondence[name] = true
	}

	favoredSuit := contracts.SuitForElement[sun.Element]

	moonIsWater := false
	if profile.MoonSign != "" {
		if moon, ok := astro.SignByName(profile.MoonSign); ok {
			moonIsWater = moon.Element == contracts.ElementWater
		}
	}

	table := make(WeightTable, len(cards))
	for _, card := range cards {
		w := weightBase
		if correspondence[card.Name] {
			w *= weightCorrespondence
		}
		if card.Suit != "" && card.Suit == favoredSuit {
			w *= weightSunElementSuit
		}
		if moonIsWater && card.Suit == contracts.SuitCups {
			w *= weightWaterMoonCups
		}
		table[card.ID] = w
	}

	return table
}

// Weight returns the multiplier for a card, defaulting to 1.0.
func (t WeightTable) Weight(cardID string) float64 {
	if t == nil {
		return weightBase
	}
	if w, ok := t[cardID]; ok {
		return w
	}
	return weightBase
}
