package ports

import (
	"context"
	"io"

	"areaprop/domain/propagation"
)

// RenderPort draws the histogram figure of a run.
type RenderPort interface {
	// WriteFigure encodes the figure as PNG to w.
	WriteFigure(ctx context.Context, w io.Writer, result *propagation.Result) error
}

// DisplayPort shows a saved figure to the user.
type DisplayPort interface {
	Show(ctx context.Context, path string) error
}
