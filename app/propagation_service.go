package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"areaprop/domain/propagation"
	"areaprop/internal"
	"areaprop/internal/errors"
	"areaprop/internal/montecarlo"
	"areaprop/internal/summary"
	"areaprop/ports"
)

// PropagationService runs one Monte Carlo propagation and hands the result
// to the rendering and reporting sinks.
type PropagationService struct {
	rngPort     ports.RNGPort
	renderPort  ports.RenderPort
	displayPort ports.DisplayPort
	reportPort  ports.ReportPort
	logger      *internal.Logger
}

// NewPropagationService creates a propagation service. displayPort and
// reportPort may be nil when those outputs are never requested.
func NewPropagationService(
	rngPort ports.RNGPort,
	renderPort ports.RenderPort,
	displayPort ports.DisplayPort,
	reportPort ports.ReportPort,
	logger *internal.Logger,
) *PropagationService {
	return &PropagationService{
		rngPort:     rngPort,
		renderPort:  renderPort,
		displayPort: displayPort,
		reportPort:  reportPort,
		logger:      logger,
	}
}

// Propagate draws the samples and summarizes them. It performs no I/O.
func (s *PropagationService) Propagate(ctx context.Context, params propagation.DistributionParameters, cfg propagation.RunConfig) (*propagation.Result, error) {
	if err := montecarlo.Validate(params, cfg); err != nil {
		return nil, err
	}

	src, err := s.rngPort.Source(ctx, cfg.Seed)
	if err != nil {
		return nil, errors.Wrap(err, "creating random source")
	}

	samples, err := montecarlo.Generate(src, params, cfg)
	if err != nil {
		return nil, err
	}

	stats, err := summary.Summarize(samples)
	if err != nil {
		return nil, err
	}

	result := &propagation.Result{
		Manifest: propagation.NewRunManifest(params, cfg, samples),
		Samples:  samples,
		Summary:  stats,
	}
	s.logger.Debug("run %s: %d samples, mode=%s, seed=%s, fingerprint=%s",
		result.Manifest.RunID, cfg.SampleCount, cfg.Mode, cfg.SeedString(), result.Manifest.Fingerprint.Short())
	s.logger.Trace("run %s: fingerprint %s", result.Manifest.RunID, result.Manifest.Fingerprint)
	return result, nil
}

// RunRequest describes one command-line run.
type RunRequest struct {
	Params     propagation.DistributionParameters
	Config     propagation.RunConfig
	FigurePath string
	ReportPath string
	Show       bool
}

// Run propagates, prints the statistics to out, saves the figure and the
// optional report, then optionally displays the figure. A display failure is
// only logged; the figure is already on disk by then.
func (s *PropagationService) Run(ctx context.Context, req RunRequest, out io.Writer) (*propagation.Result, error) {
	if req.ReportPath != "" && (s.reportPort == nil || !s.reportPort.Supports(req.ReportPath)) {
		return nil, errors.InvalidInput(fmt.Sprintf("unsupported report format: %s", req.ReportPath))
	}

	result, err := s.Propagate(ctx, req.Params, req.Config)
	if err != nil {
		return nil, err
	}

	PrintResults(out, result)

	figure, err := s.SaveFigure(ctx, req.FigurePath, result)
	if err != nil {
		return result, err
	}
	fmt.Fprintf(out, "Saved distribution figure to: %s\n", figure)

	if req.ReportPath != "" {
		if err := s.reportPort.WriteReport(ctx, req.ReportPath, result); err != nil {
			return result, errors.Wrapf(err, "writing report %s", req.ReportPath)
		}
		fmt.Fprintf(out, "Saved summary report to: %s\n", absPath(req.ReportPath))
	}

	if req.Show {
		s.show(ctx, figure)
	}
	return result, nil
}

// SaveFigure renders the histograms to path and returns its absolute form.
func (s *PropagationService) SaveFigure(ctx context.Context, path string, result *propagation.Result) (string, error) {
	abs := absPath(path)
	if dir := filepath.Dir(abs); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", errors.Wrapf(err, "creating %s", dir)
		}
	}

	f, err := os.Create(abs)
	if err != nil {
		return "", errors.Wrapf(err, "creating %s", abs)
	}
	if err := s.renderPort.WriteFigure(ctx, f, result); err != nil {
		f.Close()
		os.Remove(abs)
		return "", errors.Wrap(err, "rendering figure")
	}
	if err := f.Close(); err != nil {
		return "", errors.Wrapf(err, "closing %s", abs)
	}
	return abs, nil
}

func (s *PropagationService) show(ctx context.Context, path string) {
	if s.displayPort == nil {
		s.logger.Warn("Could not show figure interactively: no display configured")
		return
	}
	defer func() {
		if r := recover(); r != nil {
			s.logger.Warn("Could not show figure interactively: %v", r)
		}
	}()
	if err := s.displayPort.Show(ctx, path); err != nil {
		s.logger.Warn("Could not show figure interactively: %v", err)
	}
}

func absPath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}
