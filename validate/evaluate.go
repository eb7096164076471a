package validate

import (
	"context"
	"fmt"
	"math"
	"runtime"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// PredictFunc maps ordered model inputs to one prediction.
type PredictFunc func(inputs []float64) (float64, error)

// Task names the columns a predictor reads and the reference column it is scored against.
type Task struct {
	Model        string
	InputColumns []string
	OutputColumn string
	Predict      PredictFunc
}

// RowResult is the outcome for one dataset row. When Err is set the row
// failed and Predicted/Error are meaningless.
type RowResult struct {
	Predicted float64
	Error     float64 // percentage error; NaN when the reference value is 0
	Err       error
}

// Failed reports whether the row could not be scored.
func (r RowResult) Failed() bool { return r.Err != nil }

// Undefined reports whether the row was predicted but its error is undefined.
func (r RowResult) Undefined() bool { return r.Err == nil && math.IsNaN(r.Error) }

// Result couples a dataset with its per-row outcomes, index-aligned with Rows.
type Result struct {
	Dataset *Dataset
	Task    Task
	Rows    []RowResult
}

// PercentageError returns |predicted - actual| / |actual| * 100, or NaN when
// actual is 0.
func PercentageError(predicted, actual float64) float64 {
	if actual == 0 {
		return math.NaN()
	}
	return math.Abs(predicted-actual) / math.Abs(actual) * 100
}

// Evaluate runs task.Predict over every row of ds. Per-row failures are
// recorded in the result and never abort the batch; a missing column does.
// workers <= 0 uses GOMAXPROCS.
func Evaluate(ctx context.Context, ds *Dataset, task Task, workers int) (*Result, error) {
	if task.Predict == nil {
		return nil, fmt.Errorf("task %q has no prediction function", task.Model)
	}
	inputIdx := make([]int, len(task.InputColumns))
	for i, col := range task.InputColumns {
		idx, err := ds.ColumnIndex(col)
		if err != nil {
			return nil, err
		}
		inputIdx[i] = idx
	}
	outputIdx, err := ds.ColumnIndex(task.OutputColumn)
	if err != nil {
		return nil, err
	}

	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	res := &Result{Dataset: ds, Task: task, Rows: make([]RowResult, len(ds.Rows))}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, row := range ds.Rows {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res.Rows[i] = evaluateRow(row, inputIdx, outputIdx, task.Predict)
			if res.Rows[i].Failed() {
				logrus.WithFields(logrus.Fields{
					"dataset": ds.Name(),
					"row":     i + 1,
				}).Warnf("row not scored: %v", res.Rows[i].Err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}

func evaluateRow(row []string, inputIdx []int, outputIdx int, predict PredictFunc) RowResult {
	inputs := make([]float64, len(inputIdx))
	for i, idx := range inputIdx {
		v, err := parseCell(row, idx)
		if err != nil {
			return RowResult{Err: err}
		}
		inputs[i] = v
	}
	actual, err := parseCell(row, outputIdx)
	if err != nil {
		return RowResult{Err: err}
	}
	predicted, err := predict(inputs)
	if err != nil {
		return RowResult{Err: err}
	}
	return RowResult{Predicted: predicted, Error: PercentageError(predicted, actual)}
}

func parseCell(row []string, idx int) (float64, error) {
	if idx >= len(row) {
		return 0, fmt.Errorf("column %d missing from row", idx+1)
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(row[idx]), 64)
	if err != nil {
		return 0, fmt.Errorf("parsing column %d: %w", idx+1, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("column %d: value %q is not finite", idx+1, row[idx])
	}
	return v, nil
}
