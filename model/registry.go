package model

import (
	"fmt"
	"sort"
)

// Registered model names.
const (
	NamePayloadManeuverability = "payload_maneuverability"
	NameCrewTime               = "crew_time"
	NamePositionAccuracy       = "position_accuracy"
)

// Predictor describes a model addressable by name.
type Predictor struct {
	Name   string
	Inputs []string // parameter names, in call order
	Unit   string
	eval   func(c Calibration, in []float64) (float64, error)
}

// Predict evaluates the model on inputs ordered as p.Inputs.
func (p Predictor) Predict(c Calibration, inputs []float64) (float64, error) {
	if len(inputs) != len(p.Inputs) {
		return 0, fmt.Errorf("%s expects %d inputs %v, got %d", p.Name, len(p.Inputs), p.Inputs, len(inputs))
	}
	return p.eval(c, inputs)
}

// Bind fixes the calibration, returning a plain prediction function.
func (p Predictor) Bind(c Calibration) func([]float64) (float64, error) {
	return func(inputs []float64) (float64, error) {
		return p.Predict(c, inputs)
	}
}

var predictors = map[string]Predictor{
	NamePayloadManeuverability: {
		Name:   NamePayloadManeuverability,
		Inputs: []string{"payload_mass", "robot_power", "terrain_complexity"},
		Unit:   "m/s",
		eval: func(c Calibration, in []float64) (float64, error) {
			return c.PayloadManeuverability(in[0], in[1], in[2])
		},
	},
	NameCrewTime: {
		Name:   NameCrewTime,
		Inputs: []string{"payload_complexity", "automation_level"},
		Unit:   "min",
		eval: func(c Calibration, in []float64) (float64, error) {
			return c.CrewTime(in[0], in[1])
		},
	},
	NamePositionAccuracy: {
		Name:   NamePositionAccuracy,
		Inputs: []string{"power_usage", "environmental_noise", "path_variability"},
		Unit:   "",
		eval: func(c Calibration, in []float64) (float64, error) {
			return c.PositionAccuracy(in[0], in[1], in[2])
		},
	},
}

// Lookup returns the named predictor.
func Lookup(name string) (Predictor, error) {
	p, ok := predictors[name]
	if !ok {
		return Predictor{}, fmt.Errorf("unknown model %q (valid: %v)", name, Names())
	}
	return p, nil
}

// Names lists registered model names in sorted order.
func Names() []string {
	names := make([]string, 0, len(predictors))
	for n := range predictors {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
