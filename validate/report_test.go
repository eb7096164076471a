package validate

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarize_IgnoresUndefinedAndFailedRows(t *testing.T) {
	// GIVEN errors 10 and 30, one undefined and one failed row
	res := &Result{
		Dataset: &Dataset{Source: "input/x.csv"},
		Task:    Task{Model: "crew_time"},
		Rows: []RowResult{
			{Predicted: 1, Error: 10},
			{Predicted: 1, Error: math.NaN()},
			{Err: errors.New("bad")},
			{Predicted: 1, Error: 30},
		},
	}

	rep := Summarize(res)

	// THEN only defined errors contribute to the mean
	assert.Equal(t, 4, rep.Rows)
	assert.Equal(t, 2, rep.Scored)
	assert.Equal(t, 1, rep.Undefined)
	assert.Equal(t, 1, rep.Failed)
	assert.InDelta(t, 20.0, rep.MeanError, 1e-12)
	assert.InDelta(t, 20.0, rep.MedianError, 1e-12)
	assert.InDelta(t, 30.0, rep.MaxError, 1e-12)
	assert.Equal(t, "Mean Error for input/x.csv: 20.00%", rep.String())
}

func TestSummarize_NothingScored(t *testing.T) {
	res := &Result{
		Dataset: &Dataset{Source: "x.csv"},
		Rows:    []RowResult{{Predicted: 1, Error: math.NaN()}},
	}
	rep := Summarize(res)
	assert.Zero(t, rep.Scored)
	assert.True(t, math.IsNaN(rep.MeanError))
	assert.Contains(t, rep.Detail(), "undefined=1")
}
