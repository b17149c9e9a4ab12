// Package testkit provides fixtures shared by the adapter and handler tests.
package testkit

import (
	"areaprop/domain/propagation"
	"areaprop/internal/summary"
)

// ConstantResult builds an n-sample result whose sides never vary. In square
// mode meanB is ignored and side B mirrors side A.
func ConstantResult(n int, meanA, meanB float64, mode propagation.Mode, seed *int64) *propagation.Result {
	if mode == propagation.ModeSquare {
		meanB = meanA
	}
	a, b, d := make([]float64, n), make([]float64, n), make([]float64, n)
	for i := range d {
		a[i], b[i], d[i] = meanA, meanB, meanA*meanB
	}
	params := propagation.DistributionParameters{MeanA: meanA, MeanB: meanB}
	return build(params, propagation.RunConfig{SampleCount: n, Seed: seed, Mode: mode}, a, b, d)
}

// SpreadResult builds a product-mode result with a repeatable, non-degenerate
// spread on both sides.
func SpreadResult(n int) *propagation.Result {
	a, b, d := make([]float64, n), make([]float64, n), make([]float64, n)
	for i := range d {
		a[i] = 4 + float64(i%17)*0.1
		b[i] = 2 + float64(i%13)*0.1
		d[i] = a[i] * b[i]
	}
	params := propagation.DistributionParameters{MeanA: 4.8, StdA: 0.5, MeanB: 2.6, StdB: 0.4}
	return build(params, propagation.RunConfig{SampleCount: n, Mode: propagation.ModeProduct}, a, b, d)
}

func build(params propagation.DistributionParameters, cfg propagation.RunConfig, a, b, d []float64) *propagation.Result {
	samples := &propagation.SampleSet{LengthsA: a, LengthsB: b, Derived: d}
	stats, err := summary.Summarize(samples)
	if err != nil {
		panic("testkit: " + err.Error())
	}
	return &propagation.Result{
		Manifest: propagation.NewRunManifest(params, cfg, samples),
		Samples:  samples,
		Summary:  stats,
	}
}
