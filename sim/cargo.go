package sim

import (
	"math"
	"math/rand/v2"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/lunarlogistics/lunarsim/model"
)

// CargoFlowResult summarizes one cargo-flow run.
type CargoFlowResult struct {
	Arrived   int     // shipments drawn for the window
	Processed int     // shipments finished within the window
	Delayed   int     // processed shipments whose processing time doubled
	BusyTime  float64 // hours spent processing
}

// SimulateCargoFlow runs the cargo-flow discrete-event simulation.
//
// The shipment count for the window is Poisson with mean
// ArrivalRate/24 * SimulationTime. Shipments are processed in arrival order;
// each takes ProcessingTime hours, doubled with probability DelayProbability.
// Processing stops at the first shipment that would overrun the window.
func SimulateCargoFlow(cfg CargoFlowConfig, rng *rand.Rand) (CargoFlowResult, error) {
	if err := cfg.Validate(); err != nil {
		return CargoFlowResult{}, err
	}

	lambda := cfg.ArrivalRate / 24.0 * cfg.SimulationTime
	if math.IsInf(lambda, 0) || lambda >= math.MaxInt {
		return CargoFlowResult{}, model.Invalidf("expected shipments %v (arrival_rate %v over %v h) exceeds the countable range",
			lambda, cfg.ArrivalRate, cfg.SimulationTime)
	}
	arrivals := distuv.Poisson{Lambda: lambda, Src: rng}
	delay := distuv.Bernoulli{P: cfg.DelayProbability, Src: rng}

	res := CargoFlowResult{Arrived: int(arrivals.Rand())}
	for i := 0; i < res.Arrived; i++ {
		processing := cfg.ProcessingTime
		delayed := delay.Rand() == 1
		if delayed {
			processing *= 2
		}
		if res.BusyTime+processing > cfg.SimulationTime {
			logrus.WithFields(logrus.Fields{
				"shipment": i,
				"arrived":  res.Arrived,
				"busy":     res.BusyTime,
			}).Debug("cargo window exhausted")
			break
		}
		res.Processed++
		res.BusyTime += processing
		if delayed {
			res.Delayed++
		}
	}
	return res, nil
}
