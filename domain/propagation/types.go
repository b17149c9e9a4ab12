package propagation

import (
	"fmt"
	"strconv"

	"areaprop/domain/core"
)

// Mode selects how the derived quantity is built from the side lengths.
type Mode int

const (
	// ModeProduct draws two independent sides and multiplies them.
	ModeProduct Mode = iota
	// ModeSquare draws one side and squares it.
	ModeSquare
)

// VariableCount returns the number of independent inputs the mode samples.
func (m Mode) VariableCount() int {
	if m == ModeSquare {
		return 1
	}
	return 2
}

func (m Mode) String() string {
	switch m {
	case ModeProduct:
		return "product"
	case ModeSquare:
		return "square"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// ModeForVariables maps the --variables setting onto a Mode.
func ModeForVariables(n int) (Mode, error) {
	switch n {
	case 1:
		return ModeSquare, nil
	case 2:
		return ModeProduct, nil
	default:
		return 0, fmt.Errorf("variables must be 1 or 2, got %d", n)
	}
}

// DistributionParameters holds the location and scale of both sides.
// In ModeSquare only the A pair is meaningful.
type DistributionParameters struct {
	MeanA float64 `json:"meanA"`
	StdA  float64 `json:"stdA"`
	MeanB float64 `json:"meanB"`
	StdB  float64 `json:"stdB"`
}

// RunConfig controls sample count, seeding and mode for one run.
type RunConfig struct {
	SampleCount int    `json:"samples"`
	Seed        *int64 `json:"seed,omitempty"`
	Mode        Mode   `json:"-"`
}

// Seeded reports whether generation is fully deterministic.
func (c RunConfig) Seeded() bool {
	return c.Seed != nil
}

// SeedString renders the seed for reports, "none" when absent.
func (c RunConfig) SeedString() string {
	if c.Seed == nil {
		return "none"
	}
	return strconv.FormatInt(*c.Seed, 10)
}

// SeedPtr is a convenience for building configs with a literal seed.
func SeedPtr(seed int64) *int64 {
	return &seed
}

// SampleSet holds the three equal-length sequences produced by one run.
type SampleSet struct {
	LengthsA []float64
	LengthsB []float64
	Derived  []float64
}

// Len returns the number of samples in each sequence.
func (s *SampleSet) Len() int {
	return len(s.Derived)
}

// Fingerprint hashes all three sequences; identical sets hash identically.
func (s *SampleSet) Fingerprint() core.Hash {
	return core.HashFloatSeries(s.LengthsA, s.LengthsB, s.Derived)
}

// SummaryStats describes a single sequence.
type SummaryStats struct {
	Mean   float64 `json:"mean"`
	Std    float64 `json:"std"`
	Median float64 `json:"median"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

// SeriesName identifies one of the three sequences in output.
type SeriesName string

const (
	SeriesLengthsA SeriesName = "lengths1"
	SeriesLengthsB SeriesName = "lengths2"
	SeriesAreas    SeriesName = "areas"
)

// Series pairs a sequence with its name and its summary.
type Series struct {
	Name    SeriesName
	Values  []float64
	Summary SummaryStats
}

// Summary holds the per-sequence statistics of a SampleSet.
type Summary struct {
	LengthsA SummaryStats `json:"lengths1"`
	LengthsB SummaryStats `json:"lengths2"`
	Areas    SummaryStats `json:"areas"`
}

// RunManifest identifies a run and the inputs that produced it.
type RunManifest struct {
	RunID       core.RunID             `json:"run_id"`
	Params      DistributionParameters `json:"params"`
	Config      RunConfig              `json:"config"`
	Mode        string                 `json:"mode"`
	Fingerprint core.Hash              `json:"fingerprint"`
	CreatedAt   core.Timestamp         `json:"created_at"`
}

// NewRunManifest creates a manifest for a generated sample set.
func NewRunManifest(params DistributionParameters, cfg RunConfig, samples *SampleSet) RunManifest {
	return RunManifest{
		RunID:       core.NewRunID(),
		Params:      params,
		Config:      cfg,
		Mode:        cfg.Mode.String(),
		Fingerprint: samples.Fingerprint(),
		CreatedAt:   core.Now(),
	}
}

// Result is the complete in-memory output of one run.
type Result struct {
	Manifest RunManifest
	Samples  *SampleSet
	Summary  Summary
}

// Series returns the three sequences in display order.
func (r *Result) Series() []Series {
	return []Series{
		{Name: SeriesLengthsA, Values: r.Samples.LengthsA, Summary: r.Summary.LengthsA},
		{Name: SeriesLengthsB, Values: r.Samples.LengthsB, Summary: r.Summary.LengthsB},
		{Name: SeriesAreas, Values: r.Samples.Derived, Summary: r.Summary.Areas},
	}
}
