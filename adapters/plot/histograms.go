// Package plot renders the three sample distributions as density histograms.
package plot

import (
	"context"
	"fmt"
	"image/color"
	"io"
	"math"

	"areaprop/domain/propagation"
	"areaprop/internal/errors"
	"areaprop/internal/summary"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// FigureTitle heads the rendered figure.
const FigureTitle = "Sample Distributions"

// titleHeight is the strip reserved above the panels for FigureTitle.
const titleHeight = vg.Length(24)

// Config controls figure geometry.
type Config struct {
	Bins     int
	WidthIn  float64
	HeightIn float64
	DPI      int
}

// DefaultConfig matches the classic 15x4 inch, 150 dpi, 40 bin layout.
func DefaultConfig() Config {
	return Config{Bins: 40, WidthIn: 15, HeightIn: 4, DPI: 150}
}

// Renderer implements ports.RenderPort with gonum/plot.
type Renderer struct {
	cfg Config
}

// NewRenderer creates a histogram renderer
func NewRenderer(cfg Config) *Renderer {
	if cfg.Bins <= 0 {
		cfg.Bins = DefaultConfig().Bins
	}
	if cfg.WidthIn <= 0 || cfg.HeightIn <= 0 {
		cfg.WidthIn, cfg.HeightIn = DefaultConfig().WidthIn, DefaultConfig().HeightIn
	}
	if cfg.DPI <= 0 {
		cfg.DPI = DefaultConfig().DPI
	}
	return &Renderer{cfg: cfg}
}

type panel struct {
	title  string
	xLabel string
	yLabel string
	fill   color.Color
	values []float64
}

var (
	blue  = color.RGBA{R: 0x4C, G: 0x72, B: 0xB0, A: 0xCC}
	green = color.RGBA{R: 0x55, G: 0xA8, B: 0x68, A: 0xCC}
	red   = color.RGBA{R: 0xC4, G: 0x4E, B: 0x52, A: 0xCC}
)

func panels(result *propagation.Result) []panel {
	areaTitle := "Distribution of areas (A * B)"
	if result.Manifest.Config.Mode == propagation.ModeSquare {
		areaTitle = "Distribution of areas (A^2)"
	}
	return []panel{
		{title: "Distribution of lengths1 (side A)", xLabel: "Length", yLabel: "Density", fill: blue, values: result.Samples.LengthsA},
		{title: "Distribution of lengths2 (side B)", xLabel: "Length", fill: green, values: result.Samples.LengthsB},
		{title: areaTitle, xLabel: "Area", fill: red, values: result.Samples.Derived},
	}
}

// WriteFigure draws three side-by-side density histograms and encodes them as PNG.
func (r *Renderer) WriteFigure(ctx context.Context, w io.Writer, result *propagation.Result) error {
	if result == nil || result.Samples == nil {
		return errors.InternalError("nothing to render")
	}

	row := make([]*plot.Plot, 0, 3)
	for _, pn := range panels(result) {
		if err := ctx.Err(); err != nil {
			return err
		}
		p, err := r.histogram(pn)
		if err != nil {
			return errors.Wrapf(err, "building %q", pn.title)
		}
		row = append(row, p)
	}

	img := vgimg.NewWith(
		vgimg.UseWH(vg.Length(r.cfg.WidthIn)*vg.Inch, vg.Length(r.cfg.HeightIn)*vg.Inch),
		vgimg.UseDPI(r.cfg.DPI),
	)
	dc := draw.New(img)
	r.drawTitle(dc)
	body := draw.Crop(dc, 0, 0, 0, -titleHeight)

	tiles := draw.Tiles{
		Rows:      1,
		Cols:      len(row),
		PadX:      vg.Millimeter * 4,
		PadTop:    vg.Millimeter * 3,
		PadBottom: vg.Millimeter * 2,
		PadLeft:   vg.Millimeter * 2,
		PadRight:  vg.Millimeter * 2,
	}
	canvases := plot.Align([][]*plot.Plot{row}, tiles, body)
	for i, p := range row {
		p.Draw(canvases[0][i])
	}

	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(w); err != nil {
		return errors.Wrap(err, "encoding png")
	}
	return nil
}

func (r *Renderer) histogram(pn panel) (*plot.Plot, error) {
	bins, err := summary.Histogram(pn.values, r.cfg.Bins)
	if err != nil {
		return nil, err
	}
	if span := bins[len(bins)-1].Upper - bins[0].Lower; math.IsInf(span, 0) {
		return nil, errors.InvalidParameter("sample range is too wide to plot")
	}

	hbins := make([]plotter.HistogramBin, len(bins))
	for i, b := range bins {
		hbins[i] = plotter.HistogramBin{Min: b.Lower, Max: b.Upper, Weight: b.Density}
	}

	h := &plotter.Histogram{
		Bins:      hbins,
		Width:     bins[0].Width(),
		FillColor: pn.fill,
		LineStyle: plotter.DefaultLineStyle,
	}
	h.LineStyle.Width = vg.Points(0.5)

	p := plot.New()
	p.Title.Text = pn.title
	p.X.Label.Text = pn.xLabel
	p.Y.Label.Text = pn.yLabel
	p.Add(plotter.NewGrid(), h)
	return p, nil
}

// drawTitle writes the figure title centred in the strip above the panels.
func (r *Renderer) drawTitle(dc draw.Canvas) {
	sty := plot.New().Title.TextStyle
	sty.Font.Size = vg.Points(14)
	sty.XAlign = text.XCenter
	sty.YAlign = text.YTop
	pt := vg.Point{X: (dc.Min.X + dc.Max.X) / 2, Y: dc.Max.Y - vg.Points(4)}
	dc.FillText(sty, pt, FigureTitle)
}

// Describe returns a short human description of the figure layout.
func (r *Renderer) Describe() string {
	return fmt.Sprintf("%d bins, %.0fx%.0f in @ %d dpi", r.cfg.Bins, r.cfg.WidthIn, r.cfg.HeightIn, r.cfg.DPI)
}
