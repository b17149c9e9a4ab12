package core

import (
	"testing"
)

func TestHashFloatSeries_Stable(t *testing.T) {
	a := []float64{1.5, 2.25, -3}
	b := []float64{0, 4}

	h1 := HashFloatSeries(a, b)
	h2 := HashFloatSeries([]float64{1.5, 2.25, -3}, []float64{0, 4})

	if !h1.Equals(h2) {
		t.Errorf("Expected identical series to hash equally: %s vs %s", h1, h2)
	}
	if len(h1) != 64 {
		t.Errorf("Expected 64 hex characters, got %d", len(h1))
	}
	if len(h1.Short()) != 12 {
		t.Errorf("Expected short hash of 12 characters, got %q", h1.Short())
	}
}

func TestHashFloatSeries_BoundariesMatter(t *testing.T) {
	h1 := HashFloatSeries([]float64{1, 2}, []float64{3})
	h2 := HashFloatSeries([]float64{1}, []float64{2, 3})

	if h1.Equals(h2) {
		t.Error("Expected different series boundaries to produce different hashes")
	}
}

func TestHashFloatSeries_ValuesMatter(t *testing.T) {
	h1 := HashFloatSeries([]float64{0})
	h2 := HashFloatSeries([]float64{1})
	if h1.Equals(h2) {
		t.Error("Expected different values to produce different hashes")
	}
}
