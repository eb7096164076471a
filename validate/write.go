package validate

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Appended column names.
const (
	ColumnPredicted = "Predicted"
	ColumnError     = "Error (%)"
)

// failureMarkerPrefix starts the error cell of a row that could not be scored.
const failureMarkerPrefix = "error: "

// AugmentedHeader is the input header with the two result columns appended.
func (r *Result) AugmentedHeader() []string {
	header := make([]string, 0, len(r.Dataset.Header)+2)
	header = append(header, r.Dataset.Header...)
	return append(header, ColumnPredicted, ColumnError)
}

// AugmentedRows returns each input row with the predicted value and error appended.
// Undefined errors render as NaN; failed rows leave Predicted empty and put
// "error: <message>" in the error column.
func (r *Result) AugmentedRows() [][]string {
	rows := make([][]string, len(r.Dataset.Rows))
	for i, row := range r.Dataset.Rows {
		out := make([]string, 0, len(row)+2)
		out = append(out, row...)
		rr := r.Rows[i]
		if rr.Failed() {
			out = append(out, "", failureMarkerPrefix+strings.ReplaceAll(rr.Err.Error(), "\n", " "))
		} else {
			out = append(out, formatFloat(rr.Predicted), formatFloat(rr.Error))
		}
		rows[i] = out
	}
	return rows
}

func formatFloat(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// WriteCSV writes the augmented dataset to dir under the input file name and
// returns the output path. dir is created if missing.
func WriteCSV(dir string, r *Result) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}
	path := filepath.Join(dir, r.Dataset.Name())
	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating %s: %w", path, err)
	}

	w := csv.NewWriter(file)
	if err := w.Write(r.AugmentedHeader()); err != nil {
		_ = file.Close()
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	if err := w.WriteAll(r.AugmentedRows()); err != nil {
		_ = file.Close()
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	if err := file.Close(); err != nil {
		return "", fmt.Errorf("closing %s: %w", path, err)
	}
	return path, nil
}

// XLSXSheet is the sheet WriteXLSX fills.
const XLSXSheet = "Sheet1"

// WriteXLSX writes the augmented dataset as a workbook next to the CSV output,
// replacing the extension with .xlsx. Numeric cells are stored as numbers.
func WriteXLSX(dir string, r *Result) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}
	name := strings.TrimSuffix(r.Dataset.Name(), filepath.Ext(r.Dataset.Name())) + ".xlsx"
	path := filepath.Join(dir, name)

	f := excelize.NewFile()
	defer f.Close() //nolint:errcheck // in-memory workbook

	for c, h := range r.AugmentedHeader() {
		cell, _ := excelize.CoordinatesToCellName(c+1, 1)
		if err := f.SetCellValue(XLSXSheet, cell, h); err != nil {
			return "", fmt.Errorf("writing %s: %w", path, err)
		}
	}
	for i, row := range r.AugmentedRows() {
		for c, v := range row {
			cell, _ := excelize.CoordinatesToCellName(c+1, i+2)
			var value any = v
			if n, err := strconv.ParseFloat(v, 64); err == nil && !math.IsNaN(n) && !math.IsInf(n, 0) {
				value = n
			}
			if err := f.SetCellValue(XLSXSheet, cell, value); err != nil {
				return "", fmt.Errorf("writing %s: %w", path, err)
			}
		}
	}
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("saving %s: %w", path, err)
	}
	return path, nil
}
