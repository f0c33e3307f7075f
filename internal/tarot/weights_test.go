package tarot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lunarium/arcana/internal/contracts"
)

func TestBuildWeightsNilProfile(t *testing.T) {
	assert.Nil(t, BuildWeights(BuildDeck(), nil))
	assert.Nil(t, BuildWeights(BuildDeck(), &contracts.NatalProfile{SunSign: "Ophiuchus"}))
}

func TestBuildWeightsGeminiSun(t *testing.T) {
	deck := BuildDeck()
	table := BuildWeights(deck, &contracts.NatalProfile{SunSign: "Gemini"})
	require.NotNil(t, table)
	require.Len(t, table, len(deck))

	// Gemini corresponds to The Lovers and The Magician.
	assert.InDelta(t, 2.0, table.Weight("major-06"), 1e-9)
	assert.InDelta(t, 2.0, table.Weight("major-01"), 1e-9)

	// Air sun favors swords.
	assert.InDelta(t, 1.3, table.Weight("swords-05"), 1e-9)

	// Everything else stays at base.
	assert.InDelta(t, 1.0, table.Weight("major-00"), 1e-9)
	assert.InDelta(t, 1.0, table.Weight("cups-03"), 1e-9)
}

func TestBuildWeightsWaterMoonBoostsCups(t *testing.T) {
	table := BuildWeights(BuildDeck(), &contracts.NatalProfile{
		SunSign:  "Gemini",
		MoonSign: "Cancer",
	})
	require.NotNil(t, table)

	assert.InDelta(t, 1.5, table.Weight("cups-03"), 1e-9)
	assert.InDelta(t, 1.3, table.Weight("swords-05"), 1e-9)
	assert.InDelta(t, 1.0, table.Weight("wands-07"), 1e-9)
}

func TestBuildWeightsCompound(t *testing.T) {
	// Water sun favors cups, water moon boosts cups again: the
	// multipliers compound.
	table := BuildWeights(BuildDeck(), &contracts.NatalProfile{
		SunSign:  "Cancer",
		MoonSign: "Pisces",
	})
	require.NotNil(t, table)

	assert.InDelta(t, 1.3*1.5, table.Weight("cups-09"), 1e-9)
	// Cancer corresponds to The Chariot.
	assert.InDelta(t, 2.0, table.Weight("major-07"), 1e-9)
}

func TestWeightDefaults(t *testing.T) {
	var nilTable WeightTable
	assert.InDelta(t, 1.0, nilTable.Weight("major-00"), 1e-9)

	table := WeightTable{"major-00": 2.0}
	assert.InDelta(t, 2.0, table.Weight("major-00"), 1e-9)
	assert.InDelta(t, 1.0, table.Weight("unknown-card"), 1e-9)
}
