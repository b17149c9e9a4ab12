package summary

import (
	"math"
	"sort"

	"areaprop/internal/errors"

	"gonum.org/v1/gonum/stat"
)

// Bin is one histogram bar. Density is normalized so the bar areas sum to 1.
type Bin struct {
	Lower   float64 `json:"lower"`
	Upper   float64 `json:"upper"`
	Count   int     `json:"count"`
	Density float64 `json:"density"`
}

// Width returns the bin width.
func (b Bin) Width() float64 {
	return b.Upper - b.Lower
}

// Histogram splits data into n equal-width bins over [min, max]. The last bin
// is closed on the right. A sequence whose spread is below float resolution
// at its magnitude is binned over [v-d, v+d] with d = max(0.5, |v|*1e-9).
func Histogram(data []float64, n int) ([]Bin, error) {
	if n <= 0 {
		return nil, errors.InvalidParameter("bin count must be positive")
	}
	if len(data) == 0 {
		return nil, errors.InvalidParameter("cannot bin an empty sequence")
	}
	for _, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, errors.InvalidParameter("cannot bin non-finite values")
		}
	}

	sorted := make([]float64, len(data))
	copy(sorted, data)
	sort.Float64s(sorted)

	lo, hi := binRange(sorted[0], sorted[len(sorted)-1])

	// Interpolating keeps every divider finite where hi-lo would overflow.
	dividers := make([]float64, n+1)
	dividers[0] = lo
	for i := 1; i < n; i++ {
		t := float64(i) / float64(n)
		dividers[i] = math.Max(lo*(1-t)+hi*t, dividers[i-1])
	}
	// stat.Histogram treats the final divider as exclusive.
	dividers[n] = math.Nextafter(hi, math.Inf(1))

	counts := stat.Histogram(nil, dividers, sorted, nil)

	total := float64(len(data))
	bins := make([]Bin, n)
	for i := range bins {
		upper := dividers[i+1]
		if i == n-1 {
			upper = hi
		}
		bins[i] = Bin{
			Lower: dividers[i],
			Upper: upper,
			Count: int(counts[i]),
		}
		if w := bins[i].Width(); w > 0 {
			bins[i].Density = counts[i] / total / w
		}
	}
	return bins, nil
}

// binRange widens a degenerate [lo, hi] so every bin has positive width.
func binRange(lo, hi float64) (float64, float64) {
	scale := math.Max(math.Abs(lo), math.Abs(hi))
	if hi-lo > scale*1e-9 {
		return lo, hi
	}
	mid := lo/2 + hi/2
	d := math.Max(0.5, scale*1e-9)
	return math.Max(mid-d, -math.MaxFloat64), math.Min(mid+d, math.MaxFloat64)
}
