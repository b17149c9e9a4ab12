package main

import (
	"fmt"
	"os"

	"areaprop/app"
	"areaprop/domain/propagation"
	"areaprop/internal/config"
	"areaprop/internal/container"
	"areaprop/internal/errors"

	"github.com/spf13/cobra"
)

type runOptions struct {
	out       string
	show      bool
	variables int
	bins      int
	report    string
}

func runPropagation(cmd *cobra.Command, cfg *config.Config, opts runOptions, s streams) error {
	mode, err := propagation.ModeForVariables(opts.variables)
	if err != nil {
		return errors.InvalidParameter(err.Error())
	}
	if opts.bins <= 0 {
		return errors.InvalidParameter("number of bins must be positive")
	}

	runCfg := *cfg
	runCfg.Output.Bins = opts.bins

	fmt.Fprintln(s.out, app.Banner)
	fmt.Fprintln(s.out)

	resolver := app.NewParameterResolver(mode, cfg.Sampling.Samples,
		app.NewFlagSource(cmd.Flags()),
		app.NewEnvSource(os.LookupEnv),
		app.NewPromptSource(s.in, s.out, mode),
	)
	params, sampling, err := resolver.Resolve(cmd.Context())
	if err != nil {
		return err
	}

	c, err := container.New(&runCfg, newLogger(cfg, s.err))
	if err != nil {
		return errors.Wrap(err, "initializing")
	}

	_, err = c.Propagation.Run(cmd.Context(), app.RunRequest{
		Params:     params,
		Config:     sampling,
		FigurePath: opts.out,
		ReportPath: opts.report,
		Show:       opts.show,
	}, s.out)
	return err
}
