package app

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"areaprop/domain/propagation"
	"areaprop/internal/errors"
	"areaprop/internal/montecarlo"
)

const invalidNumberMessage = "Please enter valid numbers for mean and standard deviation."

// ParameterResolver turns raw values from an ordered list of sources into
// validated parameters. For each key the first source with a value wins.
type ParameterResolver struct {
	sources        []ValueSource
	mode           propagation.Mode
	defaultSamples int
}

// NewParameterResolver creates a resolver consulting sources in the given order.
func NewParameterResolver(mode propagation.Mode, defaultSamples int, sources ...ValueSource) *ParameterResolver {
	return &ParameterResolver{
		sources:        sources,
		mode:           mode,
		defaultSamples: defaultSamples,
	}
}

// distributionKeys lists the keys to resolve in the order they are asked for.
func (r *ParameterResolver) distributionKeys() []ParamKey {
	if r.mode == propagation.ModeSquare {
		return []ParamKey{KeyMeanA, KeyStdA}
	}
	return []ParamKey{KeyMeanA, KeyMeanB, KeyStdA, KeyStdB}
}

// Resolve gathers and validates the run parameters. Sample count and seed are
// resolved first so a malformed value fails before anyone is prompted.
// Parse failures are INVALID_INPUT; out-of-domain numbers are INVALID_PARAMETER.
func (r *ParameterResolver) Resolve(ctx context.Context) (propagation.DistributionParameters, propagation.RunConfig, error) {
	var params propagation.DistributionParameters
	cfg := propagation.RunConfig{SampleCount: r.defaultSamples, Mode: r.mode}

	if raw, ok, err := r.lookup(ctx, KeySamples); err != nil {
		return params, cfg, err
	} else if ok {
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return params, cfg, errors.InvalidInputf(err, "number of samples must be an integer")
		}
		cfg.SampleCount = n
	}

	if raw, ok, err := r.lookup(ctx, KeySeed); err != nil {
		return params, cfg, err
	} else if ok {
		seed, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
		if err != nil {
			return params, cfg, errors.InvalidInputf(err, "seed must be an integer")
		}
		cfg.Seed = &seed
	}

	for _, key := range r.distributionKeys() {
		raw, ok, err := r.lookup(ctx, key)
		if err != nil {
			return params, cfg, err
		}
		if !ok {
			return params, cfg, errors.InvalidInput(fmt.Sprintf("missing value for %s", key))
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return params, cfg, errors.InvalidInputf(err, invalidNumberMessage)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return params, cfg, errors.InvalidInput(invalidNumberMessage)
		}
		setParam(&params, key, v)
	}

	if r.mode == propagation.ModeSquare {
		params.MeanB, params.StdB = params.MeanA, params.StdA
	}

	if err := montecarlo.Validate(params, cfg); err != nil {
		return params, cfg, err
	}
	return params, cfg, nil
}

func (r *ParameterResolver) lookup(ctx context.Context, key ParamKey) (string, bool, error) {
	for _, src := range r.sources {
		raw, ok, err := src.Lookup(ctx, key)
		if err != nil {
			return "", false, errors.Wrapf(err, "%s: %s", src.Name(), key)
		}
		if ok {
			return raw, true, nil
		}
	}
	return "", false, nil
}

func setParam(p *propagation.DistributionParameters, key ParamKey, v float64) {
	switch key {
	case KeyMeanA:
		p.MeanA = v
	case KeyMeanB:
		p.MeanB = v
	case KeyStdA:
		p.StdA = v
	case KeyStdB:
		p.StdB = v
	}
}
