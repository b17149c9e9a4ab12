package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"areaprop/internal"
	"areaprop/internal/config"
	"areaprop/internal/errors"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// streams carries the process's standard streams so commands can be exercised in tests.
type streams struct {
	in  io.Reader
	out io.Writer
	err io.Writer
}

func main() {
	// A missing .env is normal; the real environment still applies.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, errors.UserMessage(err))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := newRootCmd(cfg, streams{in: os.Stdin, out: os.Stdout, err: os.Stderr})
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, errors.UserMessage(err))
		stop()
		os.Exit(1)
	}
}

func newRootCmd(cfg *config.Config, s streams) *cobra.Command {
	opts := runOptions{}

	rootCmd := &cobra.Command{
		Use:   "areaprop",
		Short: "Monte Carlo propagation of side-length uncertainty to an area",
		Long: `areaprop samples two side lengths from normal distributions, multiplies
them into an area and reports the three resulting distributions.

Values not given as flags are read from AREAPROP_MEAN_A, AREAPROP_STD_A,
AREAPROP_MEAN_B, AREAPROP_STD_B, AREAPROP_SAMPLES and AREAPROP_SEED, and
otherwise asked for on standard input.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPropagation(cmd, cfg, opts, s)
		},
	}
	rootCmd.SetIn(s.in)
	rootCmd.SetOut(s.out)
	rootCmd.SetErr(s.err)

	flags := rootCmd.Flags()
	flags.Float64("meanA", 0, "mean length of side A")
	flags.Float64("meanB", 0, "mean length of side B")
	flags.Float64("stdA", 0, "standard deviation of side A")
	flags.Float64("stdB", 0, "standard deviation of side B")
	flags.Int("samples", cfg.Sampling.Samples, "number of Monte Carlo samples")
	flags.Int64("seed", 0, "random seed; runs without one draw fresh entropy")
	flags.StringVar(&opts.out, "out", cfg.Output.FigurePath, "path of the saved figure")
	flags.BoolVar(&opts.show, "show", cfg.Output.Show, "open the saved figure in the platform viewer")
	flags.IntVar(&opts.variables, "variables", cfg.Sampling.Variables, "number of independent variables (1 squares side A, 2 multiplies A and B)")
	flags.IntVar(&opts.bins, "bins", cfg.Output.Bins, "histogram bin count")
	flags.StringVar(&opts.report, "report", cfg.Output.ReportPath, "optional summary report (.xlsx, .csv, .md or .html)")

	rootCmd.AddCommand(newServeCmd(cfg, s))
	return rootCmd
}

func newLogger(cfg *config.Config, w io.Writer) *internal.Logger {
	return internal.NewLogger(internal.ParseLogLevel(cfg.LogLevel, internal.LogLevelWarn), w)
}
