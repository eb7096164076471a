package sim

import "github.com/lunarlogistics/lunarsim/model"

// DefaultRiskThreshold is the operational factor below which a mission is flagged.
const DefaultRiskThreshold = 0.8

// CargoFlowConfig groups cargo-flow DES parameters.
type CargoFlowConfig struct {
	ArrivalRate      float64 `yaml:"arrival_rate"`      // shipments per day (must be > 0)
	ProcessingTime   float64 `yaml:"processing_time"`   // base hours per shipment (must be > 0)
	DelayProbability float64 `yaml:"delay_probability"` // chance a shipment takes twice as long, in [0, 1]
	SimulationTime   float64 `yaml:"simulation_time"`   // window in hours (must be > 0)
}

// RoverTaskConfig groups rover task ABM parameters.
type RoverTaskConfig struct {
	NumRovers      int     `yaml:"num_rovers"`      // independent agents (must be >= 0)
	RoverSpeed     float64 `yaml:"rover_speed"`     // m/s (must be > 0)
	TaskDistance   float64 `yaml:"task_distance"`   // round-trip meters per task (must be > 0)
	SimulationTime float64 `yaml:"simulation_time"` // window in seconds (must be > 0)
}

// PowerConfig groups power availability Markov chain parameters.
type PowerConfig struct {
	MTBF           float64 `yaml:"mtbf"`            // mean hours between failures (must be > 0)
	MTTR           float64 `yaml:"mttr"`            // mean hours to repair (must be > 0)
	SimulationTime float64 `yaml:"simulation_time"` // horizon in hours (must be > 0)
}

// NewCargoFlowConfig creates a CargoFlowConfig with all fields explicitly set.
func NewCargoFlowConfig(arrivalRate, processingTime, delayProbability, simulationTime float64) CargoFlowConfig {
	return CargoFlowConfig{
		ArrivalRate:      arrivalRate,
		ProcessingTime:   processingTime,
		DelayProbability: delayProbability,
		SimulationTime:   simulationTime,
	}
}

// NewRoverTaskConfig creates a RoverTaskConfig with all fields explicitly set.
func NewRoverTaskConfig(numRovers int, roverSpeed, taskDistance, simulationTime float64) RoverTaskConfig {
	return RoverTaskConfig{
		NumRovers:      numRovers,
		RoverSpeed:     roverSpeed,
		TaskDistance:   taskDistance,
		SimulationTime: simulationTime,
	}
}

// NewPowerConfig creates a PowerConfig with all fields explicitly set.
func NewPowerConfig(mtbf, mttr, simulationTime float64) PowerConfig {
	return PowerConfig{MTBF: mtbf, MTTR: mttr, SimulationTime: simulationTime}
}

// Validate checks the cargo-flow parameter domains.
func (c CargoFlowConfig) Validate() error {
	if err := requirePositive(
		named{"arrival_rate", c.ArrivalRate},
		named{"processing_time", c.ProcessingTime},
		named{"simulation_time", c.SimulationTime},
	); err != nil {
		return err
	}
	return requireFraction("delay_probability", c.DelayProbability)
}

// Validate checks the rover parameter domains.
func (c RoverTaskConfig) Validate() error {
	if c.NumRovers < 0 {
		return model.Invalidf("num_rovers must be non-negative, got %d", c.NumRovers)
	}
	return requirePositive(
		named{"rover_speed", c.RoverSpeed},
		named{"task_distance", c.TaskDistance},
		named{"simulation_time", c.SimulationTime},
	)
}

// Validate checks the power chain parameter domains.
func (c PowerConfig) Validate() error {
	return requirePositive(
		named{"mtbf", c.MTBF},
		named{"mttr", c.MTTR},
		named{"simulation_time", c.SimulationTime},
	)
}

type named struct {
	name  string
	value float64
}

func requirePositive(params ...named) error {
	for _, p := range params {
		if err := model.RequireFinite(p.name, p.value); err != nil {
			return err
		}
		if p.value <= 0 {
			return model.Invalidf("%s must be positive, got %v", p.name, p.value)
		}
	}
	return nil
}

func requireFraction(name string, v float64) error {
	if err := model.RequireFinite(name, v); err != nil {
		return err
	}
	if v < 0 || v > 1 {
		return model.Invalidf("%s must be in [0, 1], got %v", name, v)
	}
	return nil
}
