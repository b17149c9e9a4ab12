package rng

import (
	"context"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func draw(t *testing.T, src rand.Source, n int) []uint64 {
	t.Helper()
	out := make([]uint64, n)
	for i := range out {
		out[i] = src.Uint64()
	}
	return out
}

func TestSource_SeededIsDeterministic(t *testing.T) {
	ctx := context.Background()
	adapter := NewAdapter()
	seed := int64(42)

	s1, err := adapter.Source(ctx, &seed)
	require.NoError(t, err)
	s2, err := adapter.Source(ctx, &seed)
	require.NoError(t, err)

	assert.Equal(t, draw(t, s1, 16), draw(t, s2, 16))
}

func TestSource_DifferentSeedsDiffer(t *testing.T) {
	ctx := context.Background()
	adapter := NewAdapter()
	a, b := int64(1), int64(2)

	s1, err := adapter.Source(ctx, &a)
	require.NoError(t, err)
	s2, err := adapter.Source(ctx, &b)
	require.NoError(t, err)

	assert.NotEqual(t, draw(t, s1, 4), draw(t, s2, 4))
}

func TestSource_NegativeSeed(t *testing.T) {
	ctx := context.Background()
	seed := int64(-1)

	s1, err := NewAdapter().Source(ctx, &seed)
	require.NoError(t, err)
	s2, err := NewAdapter().Source(ctx, &seed)
	require.NoError(t, err)

	assert.Equal(t, draw(t, s1, 4), draw(t, s2, 4))
}

func TestSource_UnseededUsesEntropy(t *testing.T) {
	ctx := context.Background()
	calls := uint64(0)
	adapter := &Adapter{entropy: func() uint64 { calls++; return calls }}

	s1, err := adapter.Source(ctx, nil)
	require.NoError(t, err)
	s2, err := adapter.Source(ctx, nil)
	require.NoError(t, err)

	assert.Equal(t, uint64(4), calls)
	assert.NotEqual(t, draw(t, s1, 4), draw(t, s2, 4))
}

func TestSource_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewAdapter().Source(ctx, nil)
	assert.ErrorIs(t, err, context.Canceled)
}
