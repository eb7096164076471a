package sim

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/lunarlogistics/lunarsim/sim/trace"
)

// PowerState is a state of the two-state power availability chain.
type PowerState string

const (
	PowerOperational PowerState = trace.StateOperational
	PowerRepair      PowerState = trace.StateRepair
)

// PowerResult summarizes one power availability run.
type PowerResult struct {
	Availability    float64 // fraction of the horizon spent operational
	OperationalTime float64 // hours
	Failures        int
}

// SimulatePowerAvailability runs the operational/repair Markov chain.
//
// The chain starts operational at t=0. Operational sojourns are exponential
// with mean MTBF, repair sojourns exponential with mean MTTR. The clock
// advances until it reaches SimulationTime; an operational interval crossing
// the horizon is truncated there. pt may be nil.
func SimulatePowerAvailability(cfg PowerConfig, rng *rand.Rand, pt *trace.PowerTrace) (PowerResult, error) {
	if err := cfg.Validate(); err != nil {
		return PowerResult{}, err
	}

	failure := distuv.Exponential{Rate: 1 / cfg.MTBF, Src: rng}
	repair := distuv.Exponential{Rate: 1 / cfg.MTTR, Src: rng}

	var res PowerResult
	state := PowerOperational
	t := 0.0
	for t < cfg.SimulationTime {
		switch state {
		case PowerOperational:
			sojourn := failure.Rand()
			if t+sojourn > cfg.SimulationTime {
				res.OperationalTime += cfg.SimulationTime - t
				t = cfg.SimulationTime
				continue
			}
			res.OperationalTime += sojourn
			t += sojourn
			res.Failures++
			state = transition(pt, t, state, PowerRepair)
		case PowerRepair:
			t += repair.Rand()
			if t < cfg.SimulationTime {
				state = transition(pt, t, state, PowerOperational)
			}
		}
	}
	res.Availability = res.OperationalTime / cfg.SimulationTime
	return res, nil
}

func transition(pt *trace.PowerTrace, t float64, from, to PowerState) PowerState {
	pt.Record(trace.Transition{Time: t, From: string(from), To: string(to)})
	return to
}

// AnalyticAvailability is the steady-state availability MTBF / (MTBF + MTTR).
func AnalyticAvailability(mtbf, mttr float64) (float64, error) {
	if err := requirePositive(named{"mtbf", mtbf}, named{"mttr", mttr}); err != nil {
		return 0, err
	}
	return mtbf / (mtbf + mttr), nil
}
