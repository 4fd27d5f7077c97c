package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hvackit/loadcalc/internal/model"
	"github.com/hvackit/loadcalc/internal/thermalmass"
)

func TestWallCLTDAt(t *testing.T) {
	tables := DefaultTables()

	t.Run("BaseConditions", func(t *testing.T) {
		// At the table base (95/75) the correction is zero: light wall at
		// hour 16 is 27, west offset +5.
		got := tables.WallCLTDAt(thermalmass.ClassLight, model.OrientationW, 16, 95, 75)
		assert.InDelta(t, 32.0, got, 1e-9)
	})

	t.Run("TemperatureCorrection", func(t *testing.T) {
		base := tables.WallCLTDAt(thermalmass.ClassLight, model.OrientationS, 16, 95, 75)

		// Cooler outdoor design shifts the CLTD down degree for degree.
		cooler := tables.WallCLTDAt(thermalmass.ClassLight, model.OrientationS, 16, 90, 75)
		assert.InDelta(t, base-5, cooler, 1e-9)

		// Warmer indoor setpoint also reduces it.
		warmer := tables.WallCLTDAt(thermalmass.ClassLight, model.OrientationS, 16, 95, 78)
		assert.InDelta(t, base-3, warmer, 1e-9)
	})

	t.Run("FlooredAtZero", func(t *testing.T) {
		// Pre-dawn north wall in a mild climate cannot go negative.
		got := tables.WallCLTDAt(thermalmass.ClassLight, model.OrientationN, 4, 78, 75)
		assert.Zero(t, got)
	})

	t.Run("MassDampsPeak", func(t *testing.T) {
		light := tables.WallCLTDAt(thermalmass.ClassLight, model.OrientationS, 16, 95, 75)
		heavy := tables.WallCLTDAt(thermalmass.ClassHeavy, model.OrientationS, 16, 95, 75)
		assert.Greater(t, light, heavy)
	})

	t.Run("HourClamped", func(t *testing.T) {
		early := tables.WallCLTDAt(thermalmass.ClassLight, model.OrientationS, -3, 95, 75)
		hourZero := tables.WallCLTDAt(thermalmass.ClassLight, model.OrientationS, 0, 95, 75)
		assert.InDelta(t, hourZero, early, 1e-9)
	})
}

func TestRoofCLTDAt(t *testing.T) {
	tables := DefaultTables()

	t.Run("RoofExceedsWall", func(t *testing.T) {
		roof := tables.RoofCLTDAt(thermalmass.ClassLight, 16, 95, 75)
		wall := tables.WallCLTDAt(thermalmass.ClassLight, model.OrientationS, 16, 95, 75)
		assert.Greater(t, roof, wall)
	})

	t.Run("FlooredAtZero", func(t *testing.T) {
		assert.Zero(t, tables.RoofCLTDAt(thermalmass.ClassLight, 4, 70, 75))
	})
}

func TestOrientationOffsets(t *testing.T) {
	tables := DefaultTables()

	// West and southwest walls carry the largest afternoon penalty; north
	// the largest credit.
	north := tables.WallCLTDAt(thermalmass.ClassMedium, model.OrientationN, 16, 95, 75)
	west := tables.WallCLTDAt(thermalmass.ClassMedium, model.OrientationW, 16, 95, 75)
	assert.InDelta(t, 10.0, west-north, 1e-9)
}
