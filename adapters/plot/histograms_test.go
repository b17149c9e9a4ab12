package plot

import (
	"bytes"
	"context"
	"image/png"
	"testing"

	"areaprop/domain/propagation"
	"areaprop/internal/errors"
	"areaprop/internal/testkit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func constantResult(mode propagation.Mode) *propagation.Result {
	return testkit.ConstantResult(10, 5, 3, mode, nil)
}

func spreadResult() *propagation.Result {
	return testkit.SpreadResult(200)
}

func TestWriteFigure_EncodesPNG(t *testing.T) {
	r := NewRenderer(Config{Bins: 20, WidthIn: 9, HeightIn: 3, DPI: 50})

	var buf bytes.Buffer
	require.NoError(t, r.WriteFigure(context.Background(), &buf, spreadResult()))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 450, img.Bounds().Dx())
	assert.Equal(t, 150, img.Bounds().Dy())
}

func TestWriteFigure_ConstantSamples(t *testing.T) {
	r := NewRenderer(Config{Bins: 40, WidthIn: 6, HeightIn: 2, DPI: 40})

	for _, mode := range []propagation.Mode{propagation.ModeProduct, propagation.ModeSquare} {
		var buf bytes.Buffer
		require.NoError(t, r.WriteFigure(context.Background(), &buf, constantResult(mode)))
		_, err := png.Decode(&buf)
		assert.NoError(t, err)
	}
}

func TestWriteFigure_NilResult(t *testing.T) {
	r := NewRenderer(DefaultConfig())
	assert.Error(t, r.WriteFigure(context.Background(), &bytes.Buffer{}, nil))
}

func TestPanels_TitleFollowsMode(t *testing.T) {
	assert.Equal(t, "Distribution of areas (A * B)", panels(constantResult(propagation.ModeProduct))[2].title)
	assert.Equal(t, "Distribution of areas (A^2)", panels(constantResult(propagation.ModeSquare))[2].title)
}

func TestNewRenderer_FillsDefaults(t *testing.T) {
	r := NewRenderer(Config{})
	assert.Equal(t, DefaultConfig(), r.cfg)
	assert.Equal(t, "40 bins, 15x4 in @ 150 dpi", r.Describe())
}

func TestWriteFigure_DrawsTitleAbovePanels(t *testing.T) {
	r := NewRenderer(Config{Bins: 10, WidthIn: 9, HeightIn: 3, DPI: 50})

	var buf bytes.Buffer
	require.NoError(t, r.WriteFigure(context.Background(), &buf, spreadResult()))
	img, err := png.Decode(&buf)
	require.NoError(t, err)

	// titleHeight is 24pt, about 16 px at 50 dpi; only the title is drawn there.
	dark := 0
	b := img.Bounds()
	for y := b.Min.Y; y < b.Min.Y+14; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			cr, cg, cb, _ := img.At(x, y).RGBA()
			if cr+cg+cb < 3*0x8000 {
				dark++
			}
		}
	}
	assert.Greater(t, dark, 0)
}

func TestWriteFigure_RangeTooWideToPlot(t *testing.T) {
	result := testkit.ConstantResult(2, 1, 1, propagation.ModeProduct, nil)
	result.Samples.LengthsA = []float64{-1e308, 1e308}

	var err error
	require.NotPanics(t, func() {
		err = NewRenderer(Config{Bins: 10, WidthIn: 6, HeightIn: 2, DPI: 30}).WriteFigure(context.Background(), &bytes.Buffer{}, result)
	})
	assert.Equal(t, errors.CodeInvalidParameter, errors.GetCode(err))
}

func TestWriteFigure_LargeConstant(t *testing.T) {
	r := NewRenderer(Config{Bins: 40, WidthIn: 6, HeightIn: 2, DPI: 30})

	var buf bytes.Buffer
	require.NotPanics(t, func() {
		require.NoError(t, r.WriteFigure(context.Background(), &buf, testkit.ConstantResult(5, 1e17, 1, propagation.ModeProduct, nil)))
	})
	_, err := png.Decode(&buf)
	assert.NoError(t, err)
}
