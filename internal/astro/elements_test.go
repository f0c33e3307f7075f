package astro

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lunarium/arcana/internal/contracts"
)

// profileWith builds a minimal profile with explicit signs and no
// bodies, so the weighted tally is easy to reason about.
func profileWith(sun, moon, rising string) *contracts.NatalProfile {
	return &contracts.NatalProfile{
		SunSign:    sun,
		MoonSign:   moon,
		RisingSign: rising,
		Calculated: true,
	}
}

func TestBalanceWeights(t *testing.T) {
	// Gemini sun (air, x3), Cancer moon (water, x2), Aries rising
	// (fire, x2). No bodies.
	balance := Balance(profileWith("Gemini", "Cancer", "Aries"))

	assert.Equal(t, 3, balance.Counts[contracts.ElementAir].Count)
	assert.Equal(t, 2, balance.Counts[contracts.ElementWater].Count)
	assert.Equal(t, 2, balance.Counts[contracts.ElementFire].Count)
	assert.Equal(t, 0, balance.Counts[contracts.ElementEarth].Count)

	assert.Equal(t, contracts.ElementAir, balance.Dominant)
	assert.Equal(t, contracts.ElementEarth, balance.Lacking)
}

func TestBalanceBodyWeights(t *testing.T) {
	p := profileWith("Gemini", "", "")
	p.Bodies = map[contracts.Body]contracts.BodyPosition{
		contracts.BodyMars:    {Body: contracts.BodyMars, Sign: "Leo"},     // fire
		contracts.BodyJupiter: {Body: contracts.BodyJupiter, Sign: "Leo"},  // fire
		contracts.BodySaturn:  {Body: contracts.BodySaturn, Sign: "Libra"}, // air
	}

	balance := Balance(p)
	assert.Equal(t, 4, balance.Counts[contracts.ElementAir].Count)  // sun x3 + saturn
	assert.Equal(t, 2, balance.Counts[contracts.ElementFire].Count) // two bodies
}

func TestBalancePercentagesSum(t *testing.T) {
	profiles := []*contracts.NatalProfile{
		profileWith("Gemini", "Cancer", "Aries"),
		profileWith("Leo", "", ""),
		mustProfile(t, "1990-06-15", "14:30"),
		mustProfile(t, "2000-01-01", ""),
	}

	for _, p := range profiles {
		balance := Balance(p)
		sum := 0
		for _, e := range contracts.Elements {
			sum += balance.Counts[e].Percentage
		}
		// Independent rounding per element keeps the sum near 100, not
		// exactly on it.
		assert.InDelta(t, 100, sum, 2)
	}
}

func mustProfile(t *testing.T, date, birthTime string) *contracts.NatalProfile {
	t.Helper()
	p, err := BuildProfile(contracts.BirthData{BirthDate: date, BirthTime: birthTime})
	require.NoError(t, err)
	return p
}

func TestBalanceTieBreakOrder(t *testing.T) {
	// All four elements at zero: dominant and lacking both resolve to
	// fire, the first element in the pinned order.
	balance := Balance(&contracts.NatalProfile{SunSign: "Unknown"})
	assert.Equal(t, contracts.ElementFire, balance.Dominant)
	assert.Equal(t, contracts.ElementFire, balance.Lacking)

	// Air and water tied at the top: air wins because it comes first
	// in the pinned order. Leo sun is fire x3.
	p := profileWith("Leo", "", "")
	p.Bodies = map[contracts.Body]contracts.BodyPosition{
		contracts.BodyMercury: {Body: contracts.BodyMercury, Sign: "Gemini"}, // air
		contracts.BodyVenus:   {Body: contracts.BodyVenus, Sign: "Libra"},    // air
		contracts.BodyMars:    {Body: contracts.BodyMars, Sign: "Cancer"},    // water
		contracts.BodyNeptune: {Body: contracts.BodyNeptune, Sign: "Pisces"}, // water
	}
	balance = Balance(p)
	// fire 3, air 2, water 2, earth 0.
	assert.Equal(t, contracts.ElementFire, balance.Dominant)
	assert.Equal(t, contracts.ElementEarth, balance.Lacking)

	// Tie between air and water for dominance when fire is absent.
	p2 := profileWith("Gemini", "Cancer", "")
	p2.Bodies = map[contracts.Body]contracts.BodyPosition{
		contracts.BodyMars: {Body: contracts.BodyMars, Sign: "Scorpio"}, // water
	}
	// air 3, water 3, fire 0, earth 0: air precedes water in the
	// pinned order.
	balance = Balance(p2)
	assert.Equal(t, contracts.ElementAir, balance.Dominant)
	assert.Equal(t, contracts.ElementFire, balance.Lacking)
}
