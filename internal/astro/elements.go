package astro

import (
	"math"

	"github.com/lunarium/arcana/internal/contracts"
)

// Tally weights: the sun dominates, moon and rising matter, each body
// counts once.
const (
	weightSun    = 3
	weightMoon   = 2
	weightRising = 2
	weightBody   = 1
)

// Balance computes the weighted element distribution of a profile.
//
// Dominant is the element with the maximal count and lacking the one
// with the minimal count. Ties break by the pinned order in
// contracts.Elements (fire > earth > air > water) so output is
// reproducible regardless of map iteration.
func Balance(p *contracts.NatalProfile) contracts.ElementBalance {
	counts := map[contracts.Element]int{
		contracts.ElementFire:  0,
		contracts.ElementEarth: 0,
		contracts.ElementAir:   0,
		contracts.ElementWater: 0,
	}

	addSign := func(name string, weight int) {
		if s, ok := SignByName(name); ok {
			counts[s.Element] += weight
		}
	}

	addSign(p.SunSign, weightSun)
	if p.MoonSign != "" {
		addSign(p.MoonSign, weightMoon)
	}
	if p.RisingSign != "" {
		addSign(p.RisingSign, weightRising)
	}
	// Walk bodies in fixed order, not map order.
	for _, body := range contracts.Bodies {
		if pos, ok := p.Bodies[body]; ok {
			addSign(pos.Sign, weightBody)
		}
	}

	total := 0
	for _, c := range counts {
		total += c
	}

	balance := contracts.ElementBalance{
		Counts: make(map[contracts.Element]contracts.ElementCount, 4),
	}

	dominant, lacking := contracts.Elements[0], contracts.Elements[0]
	for _, e := range contracts.Elements {
		pct := 0
		if total > 0 {
			pct = int(math.Round(float64(counts[e]) / float64(total) * 100))
		}
		balance.Counts[e] = contracts.ElementCount{Count: counts[e], Percentage: pct}

		if counts[e] > counts[dominant] {
			dominant = e
		}
		if counts[e] < counts[lacking] {
			lacking = e
		}
	}

	balance.Dominant = dominant
	balance.Lacking = lacking
	return balance
}
