package app

import (
	"fmt"
	"io"

	"areaprop/domain/propagation"
)

// Banner is printed before any parameter is resolved.
const Banner = "Statistical Uncertainty Modeling: 1D Calculation"

// PrintResults writes the statistics block. Product mode prints one line per
// sequence; square mode prints the reduced area-only form.
func PrintResults(w io.Writer, result *propagation.Result) {
	fmt.Fprintf(w, "\nResults based on %d samples:\n", result.Manifest.Config.SampleCount)

	if result.Manifest.Config.Mode == propagation.ModeSquare {
		fmt.Fprintf(w, "Mean area: %.4f\n", result.Summary.Areas.Mean)
		fmt.Fprintf(w, "Standard deviation of area: %.4f\n", result.Summary.Areas.Std)
		return
	}

	for _, s := range result.Series() {
		fmt.Fprintf(w, "%s: mean=%.4f, std=%.4f, median=%.4f\n", s.Name, s.Summary.Mean, s.Summary.Std, s.Summary.Median)
	}
}
