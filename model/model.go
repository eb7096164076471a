// Package model implements the closed-form lunar logistics models: payload
// maneuverability, crew time and position accuracy.
//
// Each model is a pure function of its inputs and a Calibration. Inputs outside
// the documented domain are rejected with an error wrapping ErrInvalidInput;
// they are never clamped. Exactly one formula exists per concept:
//
//   - PayloadManeuverability: PayloadScale * power / (mass * (1 + terrain)),
//     unclamped, in m/s.
//   - CrewTime: CrewMinutesPerComplexity * complexity * (1 - automation),
//     floored at zero, in minutes.
//   - PositionAccuracy: power / (power + PositionNoiseWeight * (1 + noise + variability)),
//     clamped to [0, 1], dimensionless.
package model

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidInput is wrapped by every domain-constraint violation raised by a
// model or simulation routine. Test with errors.Is.
var ErrInvalidInput = errors.New("invalid input")

// Invalidf returns an error wrapping ErrInvalidInput.
func Invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

// RequireFinite rejects NaN and ±Inf for the named parameter.
func RequireFinite(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Invalidf("%s must be finite, got %v", name, v)
	}
	return nil
}

// PayloadManeuverability uses the default calibration.
func PayloadManeuverability(payloadMass, robotPower, terrainComplexity float64) (float64, error) {
	return DefaultCalibration().PayloadManeuverability(payloadMass, robotPower, terrainComplexity)
}

// CrewTime uses the default calibration.
func CrewTime(payloadComplexity, automationLevel float64) (float64, error) {
	return DefaultCalibration().CrewTime(payloadComplexity, automationLevel)
}

// PositionAccuracy uses the default calibration.
func PositionAccuracy(powerUsage, environmentalNoise, pathVariability float64) (float64, error) {
	return DefaultCalibration().PositionAccuracy(powerUsage, environmentalNoise, pathVariability)
}

// PayloadManeuverability estimates travel speed in m/s for a payload-handling
// robot. The result is not clamped.
func (c Calibration) PayloadManeuverability(payloadMass, robotPower, terrainComplexity float64) (float64, error) {
	for _, p := range []struct {
		name string
		v    float64
	}{{"payload_mass", payloadMass}, {"robot_power", robotPower}, {"terrain_complexity", terrainComplexity}} {
		if err := RequireFinite(p.name, p.v); err != nil {
			return 0, err
		}
	}
	if payloadMass <= 0 {
		return 0, Invalidf("payload_mass must be positive, got %v", payloadMass)
	}
	if robotPower <= 0 {
		return 0, Invalidf("robot_power must be positive, got %v", robotPower)
	}
	if terrainComplexity < 0 {
		return 0, Invalidf("terrain_complexity must be non-negative, got %v", terrainComplexity)
	}
	return c.PayloadScale * robotPower / (payloadMass * (1 + terrainComplexity)), nil
}

// CrewTime estimates crew minutes needed to handle a payload. Automation
// reduces the base time linearly; a fully autonomous system needs no crew time.
func (c Calibration) CrewTime(payloadComplexity, automationLevel float64) (float64, error) {
	if err := RequireFinite("payload_complexity", payloadComplexity); err != nil {
		return 0, err
	}
	if err := RequireFinite("automation_level", automationLevel); err != nil {
		return 0, err
	}
	if payloadComplexity < 0 {
		return 0, Invalidf("payload_complexity must be non-negative, got %v", payloadComplexity)
	}
	if automationLevel < 0 || automationLevel > 1 {
		return 0, Invalidf("automation_level must be in [0, 1], got %v", automationLevel)
	}
	base := c.CrewMinutesPerComplexity * payloadComplexity
	return math.Max(0, base*(1-automationLevel)), nil
}

// PositionAccuracy returns a normalized positional accuracy, 1 being perfect.
func (c Calibration) PositionAccuracy(powerUsage, environmentalNoise, pathVariability float64) (float64, error) {
	for _, p := range []struct {
		name string
		v    float64
	}{{"power_usage", powerUsage}, {"environmental_noise", environmentalNoise}, {"path_variability", pathVariability}} {
		if err := RequireFinite(p.name, p.v); err != nil {
			return 0, err
		}
	}
	if powerUsage <= 0 {
		return 0, Invalidf("power_usage must be positive, got %v", powerUsage)
	}
	if environmentalNoise < 0 {
		return 0, Invalidf("environmental_noise must be non-negative, got %v", environmentalNoise)
	}
	if pathVariability < 0 {
		return 0, Invalidf("path_variability must be non-negative, got %v", pathVariability)
	}
	accuracy := powerUsage / (powerUsage + c.PositionNoiseWeight*(1+environmentalNoise+pathVariability))
	return math.Max(0, math.Min(1, accuracy)), nil
}
