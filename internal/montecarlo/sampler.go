// Package montecarlo draws the side-length samples and forms the derived area.
package montecarlo

import (
	"fmt"
	"math"
	"math/rand/v2"

	"areaprop/domain/propagation"
	"areaprop/internal/errors"

	"gonum.org/v1/gonum/stat/distuv"
)

// Validate checks the parameters in a fixed order and returns the first
// violation. Standard deviations are checked before the sample count.
func Validate(params propagation.DistributionParameters, cfg propagation.RunConfig) error {
	if !(params.StdA >= 0) || (cfg.Mode == propagation.ModeProduct && !(params.StdB >= 0)) {
		return errors.InvalidParameter("standard deviations must be non-negative")
	}
	if cfg.SampleCount <= 0 {
		return errors.InvalidParameter("number of samples must be positive")
	}
	if !finite(params.MeanA) || !finite(params.StdA) {
		return errors.InvalidParameter("side A parameters must be finite")
	}
	if cfg.Mode == propagation.ModeProduct && (!finite(params.MeanB) || !finite(params.StdB)) {
		return errors.InvalidParameter("side B parameters must be finite")
	}
	if cfg.Mode != propagation.ModeProduct && cfg.Mode != propagation.ModeSquare {
		return errors.InvalidParameter("unknown sampling mode")
	}
	return nil
}

// Generate draws cfg.SampleCount values per side from src.
//
// In product mode every A draw happens before any B draw, so a given seed
// always maps to the same pair of sequences. In square mode only A is drawn
// and B carries the same values. A draw or product outside the float64 range
// is reported as INVALID_PARAMETER.
func Generate(src rand.Source, params propagation.DistributionParameters, cfg propagation.RunConfig) (*propagation.SampleSet, error) {
	if err := Validate(params, cfg); err != nil {
		return nil, err
	}
	if src == nil {
		return nil, errors.InternalError("random source is required")
	}

	n := cfg.SampleCount
	lengthsA := drawNormal(src, params.MeanA, params.StdA, n)

	var lengthsB []float64
	if cfg.Mode == propagation.ModeSquare {
		lengthsB = make([]float64, n)
		copy(lengthsB, lengthsA)
	} else {
		lengthsB = drawNormal(src, params.MeanB, params.StdB, n)
	}

	derived := make([]float64, n)
	for i := 0; i < n; i++ {
		derived[i] = lengthsA[i] * lengthsB[i]
		if !finite(lengthsA[i]) || !finite(lengthsB[i]) || !finite(derived[i]) {
			return nil, errors.InvalidParameter(fmt.Sprintf(
				"sample %d overflows the float64 range; reduce the means or standard deviations", i+1))
		}
	}

	return &propagation.SampleSet{
		LengthsA: lengthsA,
		LengthsB: lengthsB,
		Derived:  derived,
	}, nil
}

// drawNormal returns n draws of N(mean, std). A zero std returns mean exactly.
func drawNormal(src rand.Source, mean, std float64, n int) []float64 {
	dist := distuv.Normal{Mu: mean, Sigma: std, Src: src}
	out := make([]float64, n)
	for i := range out {
		out[i] = dist.Rand()
	}
	return out
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
