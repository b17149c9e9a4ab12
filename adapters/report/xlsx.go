package report

import (
	"github.com/xuri/excelize/v2"
)

const (
	sheetSummary   = "Summary"
	sheetHistogram = "Histogram"
)

func writeXLSX(path string, doc *document) error {
	f := excelize.NewFile()
	defer f.Close()

	// The default sheet becomes the summary sheet.
	if err := f.SetSheetName("Sheet1", sheetSummary); err != nil {
		return err
	}
	if _, err := f.NewSheet(sheetHistogram); err != nil {
		return err
	}

	row := 1
	for _, kv := range doc.manifest {
		if err := setRow(f, sheetSummary, row, []string{kv[0], kv[1]}); err != nil {
			return err
		}
		row++
	}
	row++

	if err := setRow(f, sheetSummary, row, doc.summary.headers); err != nil {
		return err
	}
	row++
	for _, r := range doc.summary.rows {
		if err := setRow(f, sheetSummary, row, r); err != nil {
			return err
		}
		row++
	}

	row = 1
	for _, h := range doc.histograms {
		headers := append([]string{"series"}, h.headers...)
		if err := setRow(f, sheetHistogram, row, headers); err != nil {
			return err
		}
		row++
		for _, r := range h.rows {
			if err := setRow(f, sheetHistogram, row, append([]string{h.name}, r...)); err != nil {
				return err
			}
			row++
		}
		row++
	}

	if sumIdx, err := f.GetSheetIndex(sheetSummary); err == nil && sumIdx >= 0 {
		f.SetActiveSheet(sumIdx)
	}

	return f.SaveAs(path)
}

func setRow(f *excelize.File, sheet string, row int, values []string) error {
	for c, v := range values {
		cell, err := excelize.CoordinatesToCellName(c+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return err
		}
	}
	return nil
}
