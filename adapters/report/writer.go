// Package report writes run summaries as xlsx, csv, markdown or html.
// Only statistics and histogram bins are written, never the raw samples.
package report

import (
	"context"
	"path/filepath"
	"strconv"
	"strings"

	"areaprop/domain/propagation"
	"areaprop/internal/errors"
	"areaprop/internal/summary"
)

// Format identifies an output encoding.
type Format string

const (
	FormatXLSX     Format = "xlsx"
	FormatCSV      Format = "csv"
	FormatMarkdown Format = "md"
	FormatHTML     Format = "html"
)

// FormatFor infers the format from the file extension.
func FormatFor(path string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return FormatXLSX, true
	case ".csv":
		return FormatCSV, true
	case ".md", ".markdown":
		return FormatMarkdown, true
	case ".html", ".htm":
		return FormatHTML, true
	default:
		return "", false
	}
}

// Writer implements ports.ReportPort.
type Writer struct {
	bins int
}

// NewWriter creates a report writer using the given histogram bin count.
func NewWriter(bins int) *Writer {
	if bins <= 0 {
		bins = 40
	}
	return &Writer{bins: bins}
}

// Supports reports whether path has a known report extension.
func (w *Writer) Supports(path string) bool {
	_, ok := FormatFor(path)
	return ok
}

// WriteReport writes the report for result to path.
func (w *Writer) WriteReport(ctx context.Context, path string, result *propagation.Result) error {
	format, ok := FormatFor(path)
	if !ok {
		return errors.InvalidInput("report path must end in .xlsx, .csv, .md or .html: " + path)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	doc, err := w.build(result)
	if err != nil {
		return err
	}

	switch format {
	case FormatXLSX:
		err = writeXLSX(path, doc)
	case FormatCSV:
		err = writeCSV(path, doc)
	case FormatMarkdown:
		err = writeMarkdown(path, doc)
	case FormatHTML:
		err = writeHTML(path, doc)
	}
	if err != nil {
		return errors.Wrapf(err, "writing %s report", format)
	}
	return nil
}

// document is the format-neutral content of a report.
type document struct {
	manifest   [][2]string
	summary    table
	histograms []namedTable
}

type table struct {
	headers []string
	rows    [][]string
}

type namedTable struct {
	name string
	table
}

var summaryHeaders = []string{"series", "mean", "std", "median", "min", "max"}

func (w *Writer) build(result *propagation.Result) (*document, error) {
	if result == nil || result.Samples == nil {
		return nil, errors.InternalError("nothing to report")
	}
	m := result.Manifest

	doc := &document{
		manifest: [][2]string{
			{"run_id", m.RunID.String()},
			{"created_at", m.CreatedAt.String()},
			{"mode", m.Mode},
			{"samples", strconv.Itoa(m.Config.SampleCount)},
			{"seed", m.Config.SeedString()},
			{"meanA", fToStr(m.Params.MeanA, 4)},
			{"stdA", fToStr(m.Params.StdA, 4)},
			{"meanB", fToStr(m.Params.MeanB, 4)},
			{"stdB", fToStr(m.Params.StdB, 4)},
			{"fingerprint", m.Fingerprint.String()},
		},
		summary: table{headers: summaryHeaders},
	}

	for _, s := range result.Series() {
		st := s.Summary
		doc.summary.rows = append(doc.summary.rows, []string{
			string(s.Name),
			fToStr(st.Mean, 4),
			fToStr(st.Std, 4),
			fToStr(st.Median, 4),
			fToStr(st.Min, 4),
			fToStr(st.Max, 4),
		})

		bins, err := summary.Histogram(s.Values, w.bins)
		if err != nil {
			return nil, errors.Wrapf(err, "binning %s", s.Name)
		}
		ht := namedTable{name: string(s.Name), table: table{headers: []string{"bin", "lower", "upper", "count", "density"}}}
		for i, b := range bins {
			ht.rows = append(ht.rows, []string{
				strconv.Itoa(i + 1),
				fToStr(b.Lower, 4),
				fToStr(b.Upper, 4),
				strconv.Itoa(b.Count),
				fToStr(b.Density, 6),
			})
		}
		doc.histograms = append(doc.histograms, ht)
	}
	return doc, nil
}

func fToStr(x float64, decimals int) string {
	return strconv.FormatFloat(x, 'f', decimals, 64)
}
