package validate

import (
	"fmt"
	"math"

	"github.com/montanaflynn/stats"
)

// Report summarizes one validation run.
type Report struct {
	RunID     string
	Model     string
	Source    string
	Output    string
	Rows      int
	Scored    int // rows with a defined percentage error
	Undefined int // rows whose reference value was 0
	Failed    int // rows rejected by the model, unparsable or non-finite
	MeanError float64
	// MedianError and MaxError are NaN when no row was scored.
	MedianError float64
	MaxError    float64
}

// Summarize aggregates a Result. Undefined and failed rows are excluded from
// the error statistics; with no scored rows every statistic is NaN.
func Summarize(r *Result) Report {
	rep := Report{
		Model:       r.Task.Model,
		Source:      r.Dataset.Source,
		Rows:        len(r.Rows),
		MeanError:   math.NaN(),
		MedianError: math.NaN(),
		MaxError:    math.NaN(),
	}
	errs := make(stats.Float64Data, 0, len(r.Rows))
	for _, rr := range r.Rows {
		switch {
		case rr.Failed():
			rep.Failed++
		case rr.Undefined():
			rep.Undefined++
		default:
			errs = append(errs, rr.Error)
		}
	}
	rep.Scored = len(errs)
	if rep.Scored == 0 {
		return rep
	}
	// errs is non-empty, so these cannot fail.
	rep.MeanError, _ = stats.Mean(errs)
	rep.MedianError, _ = stats.Median(errs)
	rep.MaxError, _ = stats.Max(errs)
	return rep
}

// String is the human-readable summary line printed per dataset.
func (r Report) String() string {
	return fmt.Sprintf("Mean Error for %s: %.2f%%", r.Source, r.MeanError)
}

// Detail describes row accounting and the spread of errors.
func (r Report) Detail() string {
	return fmt.Sprintf("rows=%d scored=%d undefined=%d failed=%d median=%.2f%% max=%.2f%%",
		r.Rows, r.Scored, r.Undefined, r.Failed, r.MedianError, r.MaxError)
}
