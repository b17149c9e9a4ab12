package rng

import (
	"context"
	"math/rand/v2"
)

// pcgIncrement is the second PCG state word for seeded streams. Fixing it
// keeps a seed's sequence stable across releases.
const pcgIncrement = 0x9e3779b97f4a7c15

// Adapter implements ports.RNGPort with PCG sources.
type Adapter struct {
	entropy func() uint64
}

// NewAdapter creates an RNG adapter whose unseeded sources draw from the
// runtime's randomly seeded generator.
func NewAdapter() *Adapter {
	return &Adapter{entropy: rand.Uint64}
}

// Source returns a new PCG source. The same seed always gives the same stream.
func (a *Adapter) Source(ctx context.Context, seed *int64) (rand.Source, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if seed != nil {
		return rand.NewPCG(uint64(*seed), pcgIncrement), nil
	}
	return rand.NewPCG(a.entropy(), a.entropy()), nil
}
