// Package summary computes descriptive statistics and histogram bins for the
// sampled sequences.
package summary

import (
	"math"

	"areaprop/domain/propagation"
	"areaprop/internal/errors"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/floats"
)

// largeMagnitude is where sums over a sequence may start to overflow; larger
// sequences are described in units of their largest absolute value.
const largeMagnitude = 1e300

// Describe returns mean, population standard deviation, median, min and max.
// The median averages the two middle values for an even count.
func Describe(data []float64) (propagation.SummaryStats, error) {
	out := propagation.SummaryStats{}
	if len(data) == 0 {
		return out, errors.InvalidParameter("cannot summarize an empty sequence")
	}
	for _, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return out, errors.InvalidParameter("cannot summarize non-finite values")
		}
	}

	min, max := floats.Min(data), floats.Max(data)
	scale := 1.0
	scaled := data
	if m := math.Max(math.Abs(min), math.Abs(max)); m > largeMagnitude {
		scale = m
		scaled = make([]float64, len(data))
		for i, v := range data {
			scaled[i] = v / m
		}
	}

	mean, err := stats.Mean(scaled)
	if err != nil {
		return out, errors.Wrap(err, "mean")
	}

	stdDev, err := stats.StandardDeviationPopulation(scaled)
	if err != nil {
		return out, errors.Wrap(err, "standard deviation")
	}

	median, err := stats.Median(scaled)
	if err != nil {
		return out, errors.Wrap(err, "median")
	}

	out.Mean = mean * scale
	out.Std = stdDev * scale
	out.Median = median * scale
	out.Min = min
	out.Max = max
	return out, nil
}

// Summarize describes each sequence of a sample set independently.
func Summarize(samples *propagation.SampleSet) (propagation.Summary, error) {
	var s propagation.Summary
	var err error

	if s.LengthsA, err = Describe(samples.LengthsA); err != nil {
		return s, errors.Wrap(err, "summarizing lengths1")
	}
	if s.LengthsB, err = Describe(samples.LengthsB); err != nil {
		return s, errors.Wrap(err, "summarizing lengths2")
	}
	if s.Areas, err = Describe(samples.Derived); err != nil {
		return s, errors.Wrap(err, "summarizing areas")
	}
	return s, nil
}
