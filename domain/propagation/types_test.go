package propagation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModeForVariables(t *testing.T) {
	tests := []struct {
		name    string
		n       int
		want    Mode
		wantErr bool
	}{
		{name: "one variable squares", n: 1, want: ModeSquare},
		{name: "two variables multiply", n: 2, want: ModeProduct},
		{name: "zero rejected", n: 0, wantErr: true},
		{name: "three rejected", n: 3, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ModeForVariables(tt.n)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.n, got.VariableCount())
		})
	}
}

func TestRunConfigSeed(t *testing.T) {
	unseeded := RunConfig{SampleCount: 10}
	assert.False(t, unseeded.Seeded())
	assert.Equal(t, "none", unseeded.SeedString())

	seeded := RunConfig{SampleCount: 10, Seed: SeedPtr(-7)}
	assert.True(t, seeded.Seeded())
	assert.Equal(t, "-7", seeded.SeedString())
}

func TestNewRunManifest(t *testing.T) {
	samples := &SampleSet{
		LengthsA: []float64{1, 2},
		LengthsB: []float64{3, 4},
		Derived:  []float64{3, 8},
	}
	cfg := RunConfig{SampleCount: 2, Seed: SeedPtr(1), Mode: ModeProduct}

	m1 := NewRunManifest(DistributionParameters{MeanA: 1}, cfg, samples)
	m2 := NewRunManifest(DistributionParameters{MeanA: 1}, cfg, samples)

	assert.NotEqual(t, m1.RunID, m2.RunID)
	assert.Equal(t, m1.Fingerprint, m2.Fingerprint)
	assert.Equal(t, "product", m1.Mode)
	assert.False(t, m1.CreatedAt.IsZero())
}
