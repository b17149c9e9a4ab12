package container

import (
	"fmt"

	"areaprop/adapters/display"
	"areaprop/adapters/plot"
	"areaprop/adapters/report"
	"areaprop/adapters/rng"
	"areaprop/app"
	"areaprop/internal"
	"areaprop/internal/config"
	"areaprop/ports"
)

// Container holds all application dependencies
type Container struct {
	Config *config.Config
	Logger *internal.Logger

	// Adapters
	RNG      ports.RNGPort
	Renderer ports.RenderPort
	Display  ports.DisplayPort
	Reporter ports.ReportPort

	// Services
	Propagation *app.PropagationService
}

// New creates a new dependency injection container
func New(cfg *config.Config, logger *internal.Logger) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if logger == nil {
		logger = internal.NewDefaultLogger()
	}

	c := &Container{
		Config: cfg,
		Logger: logger,
	}
	c.initAdapters()
	c.initServices()

	logger.Debug("container initialized")
	return c, nil
}

// initAdapters wires the concrete ports
func (c *Container) initAdapters() {
	c.RNG = rng.NewAdapter()

	renderer := plot.NewRenderer(plot.Config{
		Bins:     c.Config.Output.Bins,
		WidthIn:  c.Config.Output.WidthIn,
		HeightIn: c.Config.Output.HeightIn,
		DPI:      c.Config.Output.DPI,
	})
	c.Logger.Debug("figure layout: %s", renderer.Describe())
	c.Renderer = renderer

	c.Display = display.NewViewer()
	c.Reporter = report.NewWriter(c.Config.Output.Bins)
}

// initServices builds the application services on top of the adapters
func (c *Container) initServices() {
	c.Propagation = app.NewPropagationService(c.RNG, c.Renderer, c.Display, c.Reporter, c.Logger)
}
