package infiltration

import "math"

// Antoine-equation constants for water over the residential temperature
// range, yielding saturation pressure in mmHg for temperature in °C.
const (
	antoineA = 8.07131
	antoineB = 1730.63
	antoineC = 233.426
)

// atmosphericPressureMmHg is standard sea-level pressure.
const atmosphericPressureMmHg = 760.0

// humidityRatioConstant is the molecular-weight ratio of water to dry air.
const humidityRatioConstant = 0.622

// SaturationPressureMmHg returns the water-vapor saturation pressure at the
// given dry-bulb temperature (°F), via the Antoine equation.
func SaturationPressureMmHg(dryBulbF float64) float64 {
	tC := (dryBulbF - 32.0) / 1.8
	return math.Pow(10, antoineA-antoineB/(antoineC+tC))
}

// HumidityRatio returns the humidity ratio (lb water / lb dry air) of moist
// air at the given dry-bulb temperature (°F) and relative humidity (0-1).
func HumidityRatio(dryBulbF, relativeHumidity float64) float64 {
	if relativeHumidity < 0 {
		relativeHumidity = 0
	}
	if relativeHumidity > 1 {
		relativeHumidity = 1
	}

	pw := relativeHumidity * SaturationPressureMmHg(dryBulbF)
	if pw >= atmosphericPressureMmHg {
		// Non-physical input; clamp below total pressure.
		pw = atmosphericPressureMmHg * 0.99
	}
	return humidityRatioConstant * pw / (atmosphericPressureMmHg - pw)
}

// GrainsPerLb converts a humidity ratio to grains of moisture per pound of
// dry air (7000 grains per pound).
func GrainsPerLb(humidityRatio float64) float64 {
	return humidityRatio * 7000.0
}
