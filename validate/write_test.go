package validate

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func evaluatedCrew(t *testing.T) *Result {
	t.Helper()
	ds := &Dataset{
		Source: filepath.Join("input", "crew_time.csv"),
		Header: []string{"complexity", "automation", "minutes"},
		Rows: [][]string{
			{"5", "0.5", "20"},
			{"2", "0.5", "0"},
			{"1", "1.5", "3"},
		},
	}
	res, err := Evaluate(context.Background(), ds, crewTask(t), 2)
	require.NoError(t, err)
	return res
}

func TestWriteCSV_AppendsTwoColumnsPreservingRows(t *testing.T) {
	// GIVEN an evaluated dataset
	res := evaluatedCrew(t)
	dir := filepath.Join(t.TempDir(), "val")

	// WHEN written
	path, err := WriteCSV(dir, res)
	require.NoError(t, err)

	// THEN the file name is preserved from the input
	assert.Equal(t, filepath.Join(dir, "crew_time.csv"), path)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)

	// THEN the header gains exactly Predicted and Error (%)
	assert.Equal(t, []string{"complexity", "automation", "minutes", ColumnPredicted, ColumnError}, records[0])

	// THEN row count and order are unchanged and original cells untouched
	require.Len(t, records, 1+len(res.Dataset.Rows))
	for i, row := range res.Dataset.Rows {
		assert.Equal(t, row, records[i+1][:3])
		assert.Len(t, records[i+1], 5)
	}
	assert.Equal(t, []string{"25", "25"}, records[1][3:])
	assert.Equal(t, "NaN", records[2][4])
	assert.Equal(t, "", records[3][3])
	assert.True(t, strings.HasPrefix(records[3][4], "error: "), records[3][4])
}

func TestWriteXLSX_WritesHeaderAndRows(t *testing.T) {
	res := evaluatedCrew(t)
	dir := t.TempDir()

	path, err := WriteXLSX(dir, res)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "crew_time.xlsx"), path)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(XLSXSheet)
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, res.AugmentedHeader(), rows[0])
	assert.Equal(t, "25", rows[1][3])
	assert.Equal(t, "NaN", rows[2][4])
}
