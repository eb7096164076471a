package validate

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Options controls where and how a validation run persists its output.
type Options struct {
	OutputDir string
	XLSX      bool // also write a workbook copy
	Workers   int  // <= 0 uses GOMAXPROCS
	RunID     string
}

// Run validates one dataset file end to end: load, evaluate, persist, summarize.
// Per-row failures are reported in the Report; load and write errors are returned.
func Run(ctx context.Context, path string, task Task, opts Options) (Report, error) {
	if opts.RunID == "" {
		opts.RunID = uuid.NewString()
	}
	log := logrus.WithFields(logrus.Fields{
		"run_id":  opts.RunID,
		"model":   task.Model,
		"dataset": path,
	})

	ds, err := LoadDataset(path)
	if err != nil {
		return Report{}, err
	}
	log.Debugf("loaded %d rows", len(ds.Rows))

	res, err := Evaluate(ctx, ds, task, opts.Workers)
	if err != nil {
		return Report{}, fmt.Errorf("evaluating %s: %w", path, err)
	}

	out, err := WriteCSV(opts.OutputDir, res)
	if err != nil {
		return Report{}, err
	}
	log.Infof("Validation results saved to %s", out)

	if opts.XLSX {
		xlsx, err := WriteXLSX(opts.OutputDir, res)
		if err != nil {
			return Report{}, err
		}
		log.Infof("Validation workbook saved to %s", xlsx)
	}

	rep := Summarize(res)
	rep.RunID = opts.RunID
	rep.Output = out
	if rep.Failed > 0 {
		log.Warnf("%d of %d rows could not be scored", rep.Failed, rep.Rows)
	}
	return rep, nil
}
