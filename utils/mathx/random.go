// File: random.go
// Title: Random Ranges
// Description: Uniformly distributed integers between two inclusive bounds.
// Author: msto63
// Version: v0.3.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.3.0: Initial implementation

package mathx

import (
	"math"
	"math/rand/v2"

	"github.com/msto63/utilkit/utils/lazy"
)

// Generator draws random ranges from its own source
type Generator struct {
	rnd *rand.Rand
}

// NewGenerator returns a generator seeded with seed
func NewGenerator(seed uint64) *Generator {
	return &Generator{rnd: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// RandomInRange returns floor(r*(max-min+1)+min) for r uniform in [0,1).
// Zero bounds yield 0.
func (g *Generator) RandomInRange(min, max lazy.Value[float64]) float64 {
	return inRange(g.rnd.Float64(), min.Resolve(), max.Resolve())
}

// RandomUpTo returns an integer in [0, max]
func (g *Generator) RandomUpTo(max lazy.Value[float64]) float64 {
	return inRange(g.rnd.Float64(), 0, max.Resolve())
}

// RandomInRange is Generator.RandomInRange on the global source
func RandomInRange(min, max lazy.Value[float64]) float64 {
	return inRange(rand.Float64(), min.Resolve(), max.Resolve())
}

// RandomUpTo is Generator.RandomUpTo on the global source
func RandomUpTo(max lazy.Value[float64]) float64 {
	return inRange(rand.Float64(), 0, max.Resolve())
}

func inRange(r, min, max float64) float64 {
	return math.Floor(r*(max-min+1) + min)
}
