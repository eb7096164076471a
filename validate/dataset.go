// Package validate compares model predictions against reference datasets.
//
// A run is split into stages connected by an in-memory Dataset:
//
//	LoadDataset → Evaluate → WriteCSV / WriteXLSX → Summarize
//
// Evaluate is pure with respect to the file system. Rows are independent and
// may be evaluated in parallel; output row order always matches input order.
package validate

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
)

// Dataset is a CSV table held in memory.
type Dataset struct {
	Source string // path the dataset was read from
	Header []string
	Rows   [][]string
}

// Name is the base file name, preserved for the output dataset.
func (d *Dataset) Name() string {
	return filepath.Base(d.Source)
}

// ColumnIndex returns the position of the named header column.
func (d *Dataset) ColumnIndex(name string) (int, error) {
	for i, h := range d.Header {
		if h == name {
			return i, nil
		}
	}
	return -1, fmt.Errorf("column %q not found in %s (have %v)", name, d.Name(), d.Header)
}

// LoadDataset reads a CSV file with a header row. A missing file yields an
// error satisfying errors.Is(err, fs.ErrNotExist).
func LoadDataset(path string) (*Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening dataset: %w", err)
	}
	defer file.Close() //nolint:errcheck // read-only file

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // short rows fail individually in Evaluate
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading dataset %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("reading dataset %s: missing header row", path)
	}
	return &Dataset{Source: path, Header: records[0], Rows: records[1:]}, nil
}
