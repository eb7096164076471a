package model

import "fmt"

// Canonical calibration constants.
const (
	DefaultPayloadScale             = 1.0  // dimensionless multiplier on power/(mass*(1+terrain))
	DefaultCrewMinutesPerComplexity = 10.0 // minutes per unit of payload complexity
	DefaultPositionNoiseWeight      = 50.0 // W-equivalent weight of the disturbance term
)

// Calibration holds the tunable constants shared by all models.
// Loadable from the calibration section of defaults.yaml.
type Calibration struct {
	PayloadScale             float64 `yaml:"payload_scale"`
	CrewMinutesPerComplexity float64 `yaml:"crew_minutes_per_complexity"`
	PositionNoiseWeight      float64 `yaml:"position_noise_weight"`
}

// DefaultCalibration returns the canonical constants.
func DefaultCalibration() Calibration {
	return Calibration{
		PayloadScale:             DefaultPayloadScale,
		CrewMinutesPerComplexity: DefaultCrewMinutesPerComplexity,
		PositionNoiseWeight:      DefaultPositionNoiseWeight,
	}
}

// Validate checks that every constant is strictly positive.
func (c Calibration) Validate() error {
	if c.PayloadScale <= 0 {
		return fmt.Errorf("payload_scale must be positive, got %v", c.PayloadScale)
	}
	if c.CrewMinutesPerComplexity <= 0 {
		return fmt.Errorf("crew_minutes_per_complexity must be positive, got %v", c.CrewMinutesPerComplexity)
	}
	if c.PositionNoiseWeight <= 0 {
		return fmt.Errorf("position_noise_weight must be positive, got %v", c.PositionNoiseWeight)
	}
	return nil
}
