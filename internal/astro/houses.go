package astro

import "github.com/lunarium/arcana/internal/contracts"

// houseThemes is the static per-house semantic lookup, independent of
// which sign lands in the house.
var houseThemes = [12]string{
	"identity and self-image",
	"possessions and material security",
	"communication and learning",
	"home and family roots",
	"creativity and pleasure",
	"routine and health",
	"partnerships and commitments",
	"transformation and shared resources",
	"philosophy and long journeys",
	"career and public standing",
	"community and aspirations",
	"solitude and the subconscious",
}

// HouseWheel assigns signs to the twelve houses starting from the
// rising sign: house n carries the sign at risingIndex + n - 1.
func HouseWheel(risingSign string) []contracts.HousePlacement {
	start := SignIndex(risingSign)
	if start < 0 {
		return nil
	}

	wheel := make([]contracts.HousePlacement, 12)
	for n := 0; n < 12; n++ {
		wheel[n] = contracts.HousePlacement{
			House: n + 1,
			Sign:  SignAt(start + n),
			Theme: houseThemes[n],
		}
	}
	return wheel
}
