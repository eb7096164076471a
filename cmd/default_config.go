package cmd

import (
	"bytes"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/lunarlogistics/lunarsim/model"
	"github.com/lunarlogistics/lunarsim/sim"
)

// Config represents the full defaults.yaml structure.
// All top-level sections must be listed to satisfy KnownFields(true) strict parsing.
type Config struct {
	Version     string             `yaml:"version"`
	Calibration model.Calibration  `yaml:"calibration"`
	Simulation  SimulationDefaults `yaml:"simulation"`
	Validation  ValidationConfig   `yaml:"validation"`
}

// SimulationDefaults holds the parameters used when a simulate flag is not set.
type SimulationDefaults struct {
	Seed          int64               `yaml:"seed"`
	RiskThreshold float64             `yaml:"risk_threshold"`
	Throughput    ThroughputDefaults  `yaml:"throughput"`
	Cargo         sim.CargoFlowConfig `yaml:"cargo"`
	Rover         sim.RoverTaskConfig `yaml:"rover"`
	Power         sim.PowerConfig     `yaml:"power"`
}

// ThroughputDefaults parameterizes the effective throughput model.
type ThroughputDefaults struct {
	ArrivalRate       float64 `yaml:"arrival_rate"`
	PowerAvailability float64 `yaml:"power_availability"`
	SensorAccuracy    float64 `yaml:"sensor_accuracy"`
}

// ValidationConfig lists the reference datasets checked by `lunarsim validate`.
type ValidationConfig struct {
	OutputDir string           `yaml:"output_dir"`
	Tasks     []ValidationTask `yaml:"tasks"`
}

// ValidationTask binds one reference CSV to a registered model.
type ValidationTask struct {
	Model  string   `yaml:"model"`
	File   string   `yaml:"file"`
	Inputs []string `yaml:"inputs"` // CSV columns, in model input order
	Output string   `yaml:"output"` // reference column
}

// DefaultConfig returns the built-in configuration used when no defaults.yaml is found.
func DefaultConfig() Config {
	return Config{
		Version:     "1",
		Calibration: model.DefaultCalibration(),
		Simulation: SimulationDefaults{
			Seed:          42,
			RiskThreshold: sim.DefaultRiskThreshold,
			Throughput:    ThroughputDefaults{ArrivalRate: 5, PowerAvailability: 0.9, SensorAccuracy: 0.95},
			Cargo:         sim.NewCargoFlowConfig(5, 1.5, 0.1, 24),
			Rover:         sim.NewRoverTaskConfig(2, 1.0, 100, 3600),
			Power:         sim.NewPowerConfig(100, 1, 720),
		},
		Validation: ValidationConfig{
			OutputDir: "val",
			Tasks: []ValidationTask{
				{
					Model:  model.NamePayloadManeuverability,
					File:   "input/payload_maneuverability.csv",
					Inputs: []string{"payload_mass", "robot_power", "terrain_complexity"},
					Output: "travel_speed",
				},
				{
					Model:  model.NameCrewTime,
					File:   "input/crew_time.csv",
					Inputs: []string{"task_complexity", "automation_level"},
					Output: "crew_time_minutes",
				},
				{
					Model:  model.NamePositionAccuracy,
					File:   "input/position_accuracy.csv",
					Inputs: []string{"power_usage", "environmental_noise", "path_variability"},
					Output: "positional_error",
				},
			},
		},
	}
}

// loadDefaultsConfig parses defaults.yaml over DefaultConfig, so omitted keys
// keep their built-in values. Uses strict field checking: typos must cause errors.
func loadDefaultsConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading defaults file: %w", err)
	}
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing defaults YAML %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid defaults %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks calibration constants and every validation task.
func (c Config) Validate() error {
	if err := c.Calibration.Validate(); err != nil {
		return err
	}
	for i, task := range c.Validation.Tasks {
		p, err := model.Lookup(task.Model)
		if err != nil {
			return fmt.Errorf("validation task %d: %w", i, err)
		}
		if len(task.Inputs) != len(p.Inputs) {
			return fmt.Errorf("validation task %d (%s): expected %d input columns, got %d",
				i, task.Model, len(p.Inputs), len(task.Inputs))
		}
		if task.File == "" || task.Output == "" {
			return fmt.Errorf("validation task %d (%s): file and output are required", i, task.Model)
		}
	}
	return nil
}

// loadConfig resolves and loads the active configuration.
func loadConfig() (Config, error) {
	path := resolveDefaultsPath()
	if path == "" {
		logrus.Debug("no defaults.yaml found; using built-in defaults")
		return DefaultConfig(), nil
	}
	logrus.Debugf("loading defaults from %s", path)
	return loadDefaultsConfig(path)
}
