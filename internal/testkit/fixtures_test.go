package testkit

import (
	"testing"

	"areaprop/domain/propagation"

	"github.com/stretchr/testify/assert"
)

func TestConstantResult(t *testing.T) {
	r := ConstantResult(10, 5, 3, propagation.ModeProduct, propagation.SeedPtr(42))

	assert.Equal(t, 10, r.Samples.Len())
	assert.Equal(t, 15.0, r.Summary.Areas.Mean)
	assert.Equal(t, 0.0, r.Summary.Areas.Std)
	assert.Equal(t, "42", r.Manifest.Config.SeedString())
	assert.Equal(t, r.Samples.Fingerprint(), r.Manifest.Fingerprint)
}

func TestConstantResult_SquareMirrorsSideA(t *testing.T) {
	r := ConstantResult(4, 3, 100, propagation.ModeSquare, nil)

	assert.Equal(t, r.Samples.LengthsA, r.Samples.LengthsB)
	assert.Equal(t, 9.0, r.Summary.Areas.Median)
	assert.Equal(t, "square", r.Manifest.Mode)
}

func TestSpreadResult_IsRepeatable(t *testing.T) {
	first, second := SpreadResult(50), SpreadResult(50)

	assert.Equal(t, first.Manifest.Fingerprint, second.Manifest.Fingerprint)
	assert.Greater(t, first.Summary.Areas.Std, 0.0)
	assert.Less(t, first.Summary.LengthsA.Min, first.Summary.LengthsA.Max)
}
