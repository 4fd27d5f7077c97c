package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hvackit/loadcalc/internal/model"
)

func TestSolarGain(t *testing.T) {
	tables := DefaultTables()
	const (
		glass = 30.0
		shgc  = 0.40
		lat   = 40.0
	)

	t.Run("WestDominatesAtDesignHour", func(t *testing.T) {
		west := tables.SolarGain(model.OrientationW, true, glass, shgc, lat, DesignMonth, DesignHour)
		north := tables.SolarGain(model.OrientationN, true, glass, shgc, lat, DesignMonth, DesignHour)
		assert.Greater(t, west, north)
		assert.Positive(t, north)
	})

	t.Run("UnknownAveragesCardinals", func(t *testing.T) {
		var sum float64
		for _, o := range cardinalOrientations {
			sum += tables.SolarGain(o, true, glass, shgc, lat, DesignMonth, DesignHour)
		}
		want := sum / 4

		got := tables.SolarGain(model.OrientationUnknown, false, glass, shgc, lat, DesignMonth, DesignHour)
		assert.InDelta(t, want, got, 1e-9)
	})

	t.Run("LowConfidenceAlsoAverages", func(t *testing.T) {
		averaged := tables.SolarGain(model.OrientationW, false, glass, shgc, lat, DesignMonth, DesignHour)
		trusted := tables.SolarGain(model.OrientationW, true, glass, shgc, lat, DesignMonth, DesignHour)
		assert.Greater(t, math.Abs(trusted-averaged), 1.0)
	})

	t.Run("ZeroGlassZeroGain", func(t *testing.T) {
		assert.Zero(t, tables.SolarGain(model.OrientationW, true, 0, shgc, lat, DesignMonth, DesignHour))
		assert.Zero(t, tables.SolarGain(model.OrientationW, true, glass, 0, lat, DesignMonth, DesignHour))
	})

	t.Run("GainScalesWithGlass", func(t *testing.T) {
		single := tables.SolarGain(model.OrientationS, true, 15, shgc, lat, DesignMonth, DesignHour)
		double := tables.SolarGain(model.OrientationS, true, 30, shgc, lat, DesignMonth, DesignHour)
		assert.InDelta(t, 2*single, double, 1e-9)
	})
}

func TestShadingFactor(t *testing.T) {
	tables := DefaultTables()

	t.Run("NorthUnshaded", func(t *testing.T) {
		assert.InDelta(t, 1.0, tables.shadingFactor(model.OrientationN, 40, DesignMonth), 1e-9)
	})

	t.Run("SouthShadedInSummer", func(t *testing.T) {
		// High summer sun drives a deep overhang shadow on south glass.
		south := tables.shadingFactor(model.OrientationS, 40, DesignMonth)
		assert.Less(t, south, 1.0)
		assert.GreaterOrEqual(t, south, diffuseFloor)
	})

	t.Run("WestLessShadedThanSouth", func(t *testing.T) {
		south := tables.shadingFactor(model.OrientationS, 40, DesignMonth)
		west := tables.shadingFactor(model.OrientationW, 40, DesignMonth)
		assert.GreaterOrEqual(t, west, south)
	})

	t.Run("WinterSunClearsOverhang", func(t *testing.T) {
		// December sun at 40°N sits low enough that the south overhang
		// shades little or nothing.
		winter := tables.shadingFactor(model.OrientationS, 40, 11)
		summer := tables.shadingFactor(model.OrientationS, 40, DesignMonth)
		assert.Greater(t, winter, summer)
	})

	t.Run("FlooredAtDiffuse", func(t *testing.T) {
		// Tropical latitude, near-vertical sun: factor bottoms out at the
		// diffuse floor, never zero.
		got := tables.shadingFactor(model.OrientationS, 5, DesignMonth)
		assert.InDelta(t, diffuseFloor, got, 1e-9)
	})
}
