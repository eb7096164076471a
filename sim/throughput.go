package sim

import "github.com/lunarlogistics/lunarsim/model"

// EffectiveThroughput returns items successfully processed per day:
// arrivalRate * powerAvailability * sensorAccuracy.
func EffectiveThroughput(arrivalRate, powerAvailability, sensorAccuracy float64) (float64, error) {
	if err := checkOperationalFactors(powerAvailability, sensorAccuracy); err != nil {
		return 0, err
	}
	if err := model.RequireFinite("arrival_rate", arrivalRate); err != nil {
		return 0, err
	}
	if arrivalRate < 0 {
		return 0, model.Invalidf("arrival_rate must be non-negative, got %v", arrivalRate)
	}
	return arrivalRate * powerAvailability * sensorAccuracy, nil
}

// MissionRisk reports whether the operational factor
// powerAvailability * sensorAccuracy falls below threshold.
func MissionRisk(powerAvailability, sensorAccuracy, threshold float64) (bool, error) {
	if err := checkOperationalFactors(powerAvailability, sensorAccuracy); err != nil {
		return false, err
	}
	if err := requireFraction("threshold", threshold); err != nil {
		return false, err
	}
	return powerAvailability*sensorAccuracy < threshold, nil
}

func checkOperationalFactors(powerAvailability, sensorAccuracy float64) error {
	if err := requireFraction("power_availability", powerAvailability); err != nil {
		return err
	}
	return requireFraction("sensor_accuracy", sensorAccuracy)
}
