package app

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"areaprop/domain/propagation"
	"areaprop/internal/config"
	"areaprop/internal/errors"

	"github.com/spf13/pflag"
)

// ParamKey names one resolvable run parameter. The values double as flag names.
type ParamKey string

const (
	KeyMeanA   ParamKey = "meanA"
	KeyMeanB   ParamKey = "meanB"
	KeyStdA    ParamKey = "stdA"
	KeyStdB    ParamKey = "stdB"
	KeySamples ParamKey = "samples"
	KeySeed    ParamKey = "seed"
)

// ValueSource is one tier of the resolution order. Lookup reports ok=false
// when the source has nothing for key, letting the next tier answer.
type ValueSource interface {
	Name() string
	Lookup(ctx context.Context, key ParamKey) (raw string, ok bool, err error)
}

// MapSource answers from a fixed set of raw values.
type MapSource struct {
	name   string
	values map[ParamKey]string
}

// NewMapSource creates a source over values; empty strings count as unset.
func NewMapSource(name string, values map[ParamKey]string) *MapSource {
	clean := make(map[ParamKey]string, len(values))
	for k, v := range values {
		if strings.TrimSpace(v) != "" {
			clean[k] = v
		}
	}
	return &MapSource{name: name, values: clean}
}

func (s *MapSource) Name() string { return s.name }

func (s *MapSource) Lookup(_ context.Context, key ParamKey) (string, bool, error) {
	v, ok := s.values[key]
	return v, ok, nil
}

// NewFlagSource collects the flags the user set explicitly. Defaults are not
// included, so an unset --meanA falls through to the environment or a prompt.
func NewFlagSource(fs *pflag.FlagSet) *MapSource {
	values := make(map[ParamKey]string)
	fs.Visit(func(f *pflag.Flag) {
		switch key := ParamKey(f.Name); key {
		case KeyMeanA, KeyMeanB, KeyStdA, KeyStdB, KeySamples, KeySeed:
			values[key] = f.Value.String()
		}
	})
	return NewMapSource("flags", values)
}

// EnvSource reads AREAPROP_* variables.
type EnvSource struct {
	lookup func(string) (string, bool)
}

// NewEnvSource creates an environment source; pass os.LookupEnv in production.
func NewEnvSource(lookup func(string) (string, bool)) *EnvSource {
	return &EnvSource{lookup: lookup}
}

var envNames = map[ParamKey]string{
	KeyMeanA:   config.EnvMeanA,
	KeyStdA:    config.EnvStdA,
	KeyMeanB:   config.EnvMeanB,
	KeyStdB:    config.EnvStdB,
	KeySamples: config.EnvSamples,
	KeySeed:    config.EnvSeed,
}

func (s *EnvSource) Name() string { return "environment" }

func (s *EnvSource) Lookup(_ context.Context, key ParamKey) (string, bool, error) {
	name, known := envNames[key]
	if !known || s.lookup == nil {
		return "", false, nil
	}
	v, ok := s.lookup(name)
	if !ok || strings.TrimSpace(v) == "" {
		return "", false, nil
	}
	return v, true, nil
}

// PromptSource asks for the distribution parameters on a line-oriented
// stream. It never answers for the sample count or the seed.
type PromptSource struct {
	in   *bufio.Reader
	out  io.Writer
	mode propagation.Mode
}

// NewPromptSource creates a prompt source reading answers from in and
// writing questions to out.
func NewPromptSource(in io.Reader, out io.Writer, mode propagation.Mode) *PromptSource {
	return &PromptSource{in: bufio.NewReader(in), out: out, mode: mode}
}

func (s *PromptSource) Name() string { return "prompt" }

func (s *PromptSource) Lookup(ctx context.Context, key ParamKey) (string, bool, error) {
	question, ok := s.question(key)
	if !ok {
		return "", false, nil
	}
	if err := ctx.Err(); err != nil {
		return "", false, err
	}

	fmt.Fprint(s.out, question)
	line, err := s.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		if err == io.EOF {
			return "", false, errors.InvalidInput(fmt.Sprintf("no value entered for %s", key))
		}
		return "", false, errors.Wrapf(err, "reading %s", key)
	}
	return strings.TrimSpace(line), true, nil
}

func (s *PromptSource) question(key ParamKey) (string, bool) {
	if s.mode == propagation.ModeSquare {
		switch key {
		case KeyMeanA:
			return "Enter the mean length of the side: ", true
		case KeyStdA:
			return "Enter the standard deviation of the side: ", true
		}
		return "", false
	}

	switch key {
	case KeyMeanA:
		return "Enter the mean length of the side A: ", true
	case KeyMeanB:
		return "Enter the mean length of the side B: ", true
	case KeyStdA:
		return "Enter the standard deviation of the side A: ", true
	case KeyStdB:
		return "Enter the standard deviation of the side B: ", true
	}
	return "", false
}
