package ports

import (
	"context"
	"math/rand/v2"
)

// RNGPort provides explicitly constructed random sources, so no run shares
// hidden generator state with another.
type RNGPort interface {
	// Source returns a fresh generator. A non-nil seed yields the same
	// sequence on every call; a nil seed draws its state from entropy.
	Source(ctx context.Context, seed *int64) (rand.Source, error)
}
