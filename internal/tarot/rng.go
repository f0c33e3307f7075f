package tarot

import (
	"math/rand/v2"

	"github.com/lunarium/arcana/internal/contracts"
)

// mathRNG adapts math/rand/v2 to the contracts.RNG interface.
type mathRNG struct {
	r *rand.Rand
}

// NewRNG returns an RNG backed by a PCG source seeded with the given
// values. Production callers seed from the clock; tests pass fixed
// seeds for reproducible draws.
func NewRNG(seed1, seed2 uint64) contracts.RNG {
	return &mathRNG{r: rand.New(rand.NewPCG(seed1, seed2))}
}

func (m *mathRNG) Intn(n int) int   { return m.r.IntN(n) }
func (m *mathRNG) Float64() float64 { return m.r.Float64() }
