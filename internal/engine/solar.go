package engine

import (
	"math"

	"github.com/hvackit/loadcalc/internal/model"
)

// Assumed fenestration geometry when the extraction supplies only a window
// count. Sized for a typical double-hung residential unit.
const (
	assumedWindowAreaSqFt  = 15.0
	assumedWindowHeightFt  = 4.0
	assumedOverhangDepthFt = 1.5
	// overhangOffsetFt is the vertical gap between the overhang and the
	// window head; shadow must cross it before shading begins.
	overhangOffsetFt = 0.5

	// diffuseFloor is the minimum shading factor: even a fully shaded
	// window still admits diffuse sky radiation.
	diffuseFloor = 0.2
)

// cardinalOrientations is the equal-weight set used when orientation is
// unknown or below the confidence threshold. Averaging beats assuming
// worst-case for whole-building accuracy.
//
//nolint:gochecknoglobals // Constant lookup table
var cardinalOrientations = [4]model.Orientation{
	model.OrientationN,
	model.OrientationE,
	model.OrientationS,
	model.OrientationW,
}

// SolarGain returns the window solar cooling gain (BTU/hr) for glassArea ft²
// at the given orientation, month, and hour. Unknown or low-confidence
// orientation averages the four cardinal directions with equal weight.
func (t *Tables) SolarGain(
	orientation model.Orientation,
	orientationUsable bool,
	glassArea, shgc, latitudeDeg float64,
	month, hour int,
) float64 {
	if glassArea <= 0 || shgc <= 0 {
		return 0
	}

	if !orientationUsable || orientation == model.OrientationUnknown {
		var sum float64
		for _, o := range cardinalOrientations {
			sum += t.orientedGain(o, glassArea, shgc, latitudeDeg, month, hour)
		}
		return sum / float64(len(cardinalOrientations))
	}

	return t.orientedGain(orientation, glassArea, shgc, latitudeDeg, month, hour)
}

func (t *Tables) orientedGain(
	orientation model.Orientation,
	glassArea, shgc, latitudeDeg float64,
	month, hour int,
) float64 {
	shgf := t.SHGF[orientation][clampMonth(month)]
	clf := t.CLF[orientation][clampHour(hour)]
	shading := t.shadingFactor(orientation, latitudeDeg, month)

	return glassArea * shgc * shgf * clf * shading
}

// shadingFactor models a fixed eave overhang with a simplified sun-angle
// geometry: solar altitude from latitude and monthly declination, shadow
// depth down the facade from the overhang, shaded fraction of the assumed
// window height. East/west facades see the sun at lower effective altitudes,
// so the overhang shades them less.
func (t *Tables) shadingFactor(orientation model.Orientation, latitudeDeg float64, month int) float64 {
	altitude := 90.0 - latitudeDeg + t.SolarDeclination[clampMonth(month)]
	if altitude <= 0 {
		return 1.0
	}
	if altitude > 89 {
		altitude = 89
	}

	// Azimuth correction: east/west exposure is governed by morning and
	// afternoon sun well below the noon altitude.
	switch orientation {
	case model.OrientationE, model.OrientationW:
		altitude *= 0.5
	case model.OrientationNE, model.OrientationNW, model.OrientationSE, model.OrientationSW:
		altitude *= 0.7
	case model.OrientationN:
		// North facades see no direct beam at design latitudes; the
		// overhang does nothing to diffuse gain.
		return 1.0
	case model.OrientationS, model.OrientationUnknown:
		// Full noon altitude.
	}

	shadowFt := assumedOverhangDepthFt*math.Tan(altitude*math.Pi/180.0) - overhangOffsetFt
	if shadowFt <= 0 {
		return 1.0
	}

	shadedFraction := shadowFt / assumedWindowHeightFt
	if shadedFraction > 1 {
		shadedFraction = 1
	}

	factor := 1.0 - shadedFraction
	if factor < diffuseFloor {
		factor = diffuseFloor
	}
	return factor
}

func clampMonth(month int) int {
	if month < 0 {
		return 0
	}
	if month > 11 {
		return 11
	}
	return month
}
