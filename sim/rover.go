package sim

import (
	"math"

	"github.com/lunarlogistics/lunarsim/model"
)

// RoverTaskResult summarizes one rover task run.
type RoverTaskResult struct {
	TaskDuration  float64 // seconds per round-trip task
	TasksPerRover []int
	TotalTasks    int
}

// SimulateRoverTasks counts round-trip tasks completed by independent rovers.
// Each rover finishes floor(SimulationTime / (TaskDistance/RoverSpeed)) tasks;
// agents do not interact, so the result is deterministic.
func SimulateRoverTasks(cfg RoverTaskConfig) (RoverTaskResult, error) {
	if err := cfg.Validate(); err != nil {
		return RoverTaskResult{}, err
	}
	duration := cfg.TaskDistance / cfg.RoverSpeed
	if duration <= 0 || math.IsInf(duration, 0) {
		return RoverTaskResult{}, model.Invalidf("task duration %v s (task_distance %v / rover_speed %v) must be positive and finite",
			duration, cfg.TaskDistance, cfg.RoverSpeed)
	}
	perRover := math.Floor(cfg.SimulationTime / duration)
	if perRover*float64(max(cfg.NumRovers, 1)) >= math.MaxInt {
		return RoverTaskResult{}, model.Invalidf("simulation_time %v s allows more tasks than can be counted at %v s per task",
			cfg.SimulationTime, duration)
	}

	res := RoverTaskResult{
		TaskDuration:  duration,
		TasksPerRover: make([]int, cfg.NumRovers),
	}
	for i := range res.TasksPerRover {
		res.TasksPerRover[i] = int(perRover)
		res.TotalTasks += res.TasksPerRover[i]
	}
	return res, nil
}
