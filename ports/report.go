package ports

import (
	"context"

	"areaprop/domain/propagation"
)

// ReportPort writes a summary report of a run. Raw samples are never written.
type ReportPort interface {
	// WriteReport picks the format from the file extension of path.
	WriteReport(ctx context.Context, path string, result *propagation.Result) error
	// Supports reports whether the extension of path has a writer.
	Supports(path string) bool
}
