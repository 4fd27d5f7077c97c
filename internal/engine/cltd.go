package engine

import (
	"github.com/hvackit/loadcalc/internal/model"
	"github.com/hvackit/loadcalc/internal/thermalmass"
)

// Tables holds the immutable CLTD/CLF/SHGF lookup data. Constructed once via
// DefaultTables and injected into the Engine, so tests can substitute
// synthetic tables.
type Tables struct {
	// WallCLTD is the base wall cooling-load temperature difference (°F)
	// by mass class and solar hour. The base tables assume 95°F outdoor
	// and 75°F indoor design; Correction adjusts for other conditions.
	WallCLTD map[thermalmass.Class][24]float64

	// RoofCLTD is the roof CLTD by mass class and solar hour. Roofs run
	// hotter than walls by a wide margin at midday.
	RoofCLTD map[thermalmass.Class][24]float64

	// WallOrientationOffset shifts the wall CLTD by facade orientation.
	WallOrientationOffset map[model.Orientation]float64

	// SHGF is the peak solar heat gain factor (BTU/hr per ft² of glass)
	// by orientation and month (index 0 = January).
	SHGF map[model.Orientation][12]float64

	// CLF is the cooling load factor (0-1) by orientation and solar hour,
	// capturing the delay between solar gain and cooling load.
	CLF map[model.Orientation][24]float64

	// SolarDeclination is the monthly solar declination (degrees,
	// index 0 = January) for the overhang shading model.
	SolarDeclination [12]float64
}

// Base design conditions the CLTD tables are normalized to.
const (
	cltdBaseOutdoorF = 95.0
	cltdBaseIndoorF  = 75.0
)

// DesignHour is the solar hour used for the design cooling calculation.
// Residential loads peak in the late afternoon.
const DesignHour = 16

// DesignMonth is the design month index (July) for SHGF and sun-angle
// lookups.
const DesignMonth = 6

// WallCLTDAt returns the corrected wall CLTD for the given mass class,
// orientation, hour, and actual design temperatures. Floored at 0.
func (t *Tables) WallCLTDAt(
	class thermalmass.Class,
	orientation model.Orientation,
	hour int,
	outdoorF, indoorF float64,
) float64 {
	curve, ok := t.WallCLTD[class]
	if !ok {
		curve = t.WallCLTD[thermalmass.ClassLight]
	}

	cltd := curve[clampHour(hour)]
	cltd += t.WallOrientationOffset[orientation]
	cltd += temperatureCorrection(outdoorF, indoorF)

	if cltd < 0 {
		return 0
	}
	return cltd
}

// RoofCLTDAt returns the corrected roof CLTD. Floored at 0.
func (t *Tables) RoofCLTDAt(class thermalmass.Class, hour int, outdoorF, indoorF float64) float64 {
	curve, ok := t.RoofCLTD[class]
	if !ok {
		curve = t.RoofCLTD[thermalmass.ClassLight]
	}

	cltd := curve[clampHour(hour)] + temperatureCorrection(outdoorF, indoorF)
	if cltd < 0 {
		return 0
	}
	return cltd
}

// temperatureCorrection shifts a base-condition CLTD to the actual design
// temperatures. Hotter outdoors raises the corrected CLTD; keeping the
// indoors warmer than the 75°F base lowers it.
func temperatureCorrection(outdoorF, indoorF float64) float64 {
	return (outdoorF - cltdBaseOutdoorF) + (cltdBaseIndoorF - indoorF)
}

func clampHour(hour int) int {
	if hour < 0 {
		return 0
	}
	if hour > 23 {
		return 23
	}
	return hour
}

// DefaultTables returns the built-in lookup data. Curves follow the shape of
// the ASHRAE/Manual J CLTD and CLF tables for residential construction:
// light walls track the sun closely, heavy walls lag and flatten.
//
//nolint:funlen // Data tables.
func DefaultTables() *Tables {
	return &Tables{
		WallCLTD: map[thermalmass.Class][24]float64{
			// Light frame walls: fast response, sharp afternoon peak.
			thermalmass.ClassLight: {
				3, 2, 2, 1, 1, 1, 2, 4, 7, 10, 13, 16,
				19, 22, 24, 26, 27, 26, 24, 20, 16, 12, 8, 5,
			},
			// Medium mass: damped peak arriving about two hours later.
			thermalmass.ClassMedium: {
				7, 6, 5, 4, 4, 3, 3, 4, 6, 8, 10, 13,
				15, 17, 19, 21, 22, 23, 23, 21, 18, 15, 12, 9,
			},
			// Heavy masonry: flat curve, peak pushed into the evening.
			thermalmass.ClassHeavy: {
				11, 10, 9, 8, 7, 7, 6, 6, 7, 8, 9, 10,
				12, 13, 14, 15, 16, 17, 18, 18, 17, 15, 14, 12,
			},
		},
		RoofCLTD: map[thermalmass.Class][24]float64{
			thermalmass.ClassLight: {
				6, 4, 2, 1, 0, 0, 3, 9, 17, 26, 35, 43,
				50, 55, 58, 59, 57, 52, 44, 34, 25, 18, 12, 8,
			},
			thermalmass.ClassMedium: {
				14, 11, 9, 7, 5, 4, 4, 7, 12, 18, 25, 32,
				38, 43, 47, 49, 50, 48, 44, 38, 32, 26, 21, 17,
			},
			thermalmass.ClassHeavy: {
				22, 20, 18, 16, 14, 12, 11, 11, 13, 16, 19, 23,
				27, 30, 33, 36, 38, 39, 39, 37, 34, 31, 28, 25,
			},
		},
		WallOrientationOffset: map[model.Orientation]float64{
			model.OrientationN:  -5,
			model.OrientationNE: -2,
			model.OrientationE:  1,
			model.OrientationSE: 1,
			model.OrientationS:  2,
			model.OrientationSW: 5,
			model.OrientationW:  5,
			model.OrientationNW: 1,
			// Unknown orientation gets the cardinal average, near zero.
			model.OrientationUnknown: 1,
		},
		SHGF: map[model.Orientation][12]float64{
			// North glass sees only diffuse radiation; summer sky is
			// brighter, so the curve peaks mid-year.
			model.OrientationN: {
				20, 24, 29, 34, 38, 40, 38, 36, 31, 26, 21, 18,
			},
			// East and west mirror each other: high and nearly flat
			// through the cooling season.
			model.OrientationE: {
				154, 186, 205, 216, 216, 212, 216, 216, 203, 180, 151, 135,
			},
			model.OrientationW: {
				154, 186, 205, 216, 216, 212, 216, 216, 203, 180, 151, 135,
			},
			// South peaks in winter when the sun rides low.
			model.OrientationS: {
				254, 241, 206, 154, 113, 95, 109, 149, 200, 234, 250, 253,
			},
			model.OrientationNE: {
				36, 60, 96, 132, 150, 158, 151, 135, 101, 63, 39, 29,
			},
			model.OrientationNW: {
				36, 60, 96, 132, 150, 158, 151, 135, 101, 63, 39, 29,
			},
			model.OrientationSE: {
				220, 224, 214, 183, 156, 144, 151, 174, 200, 217, 218, 217,
			},
			model.OrientationSW: {
				220, 224, 214, 183, 156, 144, 151, 174, 200, 217, 218, 217,
			},
		},
		CLF: map[model.Orientation][24]float64{
			// East glass peaks mid-morning, decays through the day.
			model.OrientationE: {
				0.05, 0.04, 0.04, 0.03, 0.03, 0.17, 0.45, 0.63, 0.72, 0.73, 0.65, 0.52,
				0.40, 0.33, 0.29, 0.26, 0.23, 0.20, 0.17, 0.14, 0.11, 0.09, 0.07, 0.06,
			},
			model.OrientationNE: {
				0.04, 0.04, 0.03, 0.03, 0.02, 0.20, 0.48, 0.62, 0.65, 0.58, 0.47, 0.39,
				0.34, 0.31, 0.28, 0.25, 0.23, 0.20, 0.16, 0.13, 0.10, 0.08, 0.06, 0.05,
			},
			model.OrientationSE: {
				0.05, 0.04, 0.04, 0.03, 0.03, 0.10, 0.28, 0.47, 0.62, 0.70, 0.71, 0.65,
				0.55, 0.45, 0.38, 0.33, 0.29, 0.25, 0.20, 0.16, 0.13, 0.10, 0.08, 0.06,
			},
			// South glass peaks early afternoon.
			model.OrientationS: {
				0.06, 0.05, 0.04, 0.04, 0.03, 0.05, 0.10, 0.19, 0.33, 0.48, 0.61, 0.70,
				0.73, 0.71, 0.63, 0.52, 0.42, 0.34, 0.27, 0.21, 0.17, 0.13, 0.10, 0.08,
			},
			// West and southwest drive the late-afternoon residential peak.
			model.OrientationSW: {
				0.07, 0.06, 0.05, 0.04, 0.04, 0.04, 0.06, 0.09, 0.13, 0.17, 0.24, 0.36,
				0.50, 0.63, 0.72, 0.76, 0.74, 0.64, 0.48, 0.33, 0.24, 0.17, 0.13, 0.10,
			},
			model.OrientationW: {
				0.06, 0.05, 0.05, 0.04, 0.03, 0.03, 0.05, 0.07, 0.10, 0.13, 0.17, 0.23,
				0.34, 0.49, 0.64, 0.74, 0.77, 0.70, 0.51, 0.33, 0.23, 0.17, 0.12, 0.09,
			},
			model.OrientationNW: {
				0.05, 0.05, 0.04, 0.03, 0.03, 0.03, 0.05, 0.07, 0.09, 0.12, 0.15, 0.19,
				0.26, 0.37, 0.51, 0.64, 0.71, 0.66, 0.47, 0.30, 0.21, 0.15, 0.11, 0.08,
			},
			// North is diffuse-only, nearly flat through daylight.
			model.OrientationN: {
				0.08, 0.07, 0.06, 0.05, 0.05, 0.16, 0.32, 0.42, 0.49, 0.55, 0.60, 0.64,
				0.67, 0.69, 0.70, 0.69, 0.66, 0.58, 0.43, 0.29, 0.21, 0.16, 0.12, 0.10,
			},
		},
		SolarDeclination: [12]float64{
			-20.9, -13.0, -2.4, 9.4, 18.8, 23.1, 21.2, 13.5, 2.2, -9.6, -18.9, -23.0,
		},
	}
}
