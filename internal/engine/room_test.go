package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hvackit/loadcalc/internal/climate"
	"github.com/hvackit/loadcalc/internal/envelope"
	"github.com/hvackit/loadcalc/internal/model"
	"github.com/hvackit/loadcalc/internal/thermalmass"
)

// testRoomContext builds a representative zone-4A context for room tests.
func testRoomContext() *roomContext {
	return &roomContext{
		climate: climate.Record{
			Zone:               "4A",
			HeatingDesignTempF: 17,
			CoolingDesignTempF: 91,
			GrainDifference:    34,
			SummerRH:           0.50,
			LatitudeDeg:        40,
		},
		env: envelope.Properties{
			WallR:           15,
			RoofR:           30,
			FloorR:          19,
			WindowU:         0.40,
			WindowSHGC:      0.40,
			CeilingHeightFt: 9,
		},
		tables:   DefaultTables(),
		mass:     thermalmass.ClassLight,
		bridging: bridgingByConstruction["wood"],

		indoorHeatingF: 70,
		indoorCoolingF: 75,

		achNatural: 0.35,
		outdoorW:   0.0155,
		indoorW:    0.0093,

		topFloor: 2,

		cornerHeating:       1.15,
		cornerCooling:       1.20,
		lowConfidencePad:    1.10,
		interiorHeatingCut:  0.70,
		heatingInfiltration: 0.85,
	}
}

func testRoom() model.Room {
	return model.Room{
		Name:        "bedroom 2",
		Type:        model.RoomBedroom,
		AreaSqFt:    180,
		WidthFt:     12,
		LengthFt:    15,
		Floor:       2,
		WindowCount: 2,
		Orientation: model.OrientationW,
		Confidence:  0.9,
	}
}

func TestCalculateRoomComponents(t *testing.T) {
	rc := testRoomContext()
	room := testRoom()

	result := calculateRoom(&room, rc)

	assert.Positive(t, result.HeatingBTU)
	assert.Positive(t, result.CoolingBTU)
	assert.InDelta(t, result.CoolingBTU, result.CoolingSensibleBTU+result.CoolingLatentBTU, 1e-6)

	// Every component is non-negative.
	for key, v := range result.HeatingComponents {
		assert.GreaterOrEqual(t, v, 0.0, "heating %s", key)
	}
	for key, v := range result.CoolingComponents {
		assert.GreaterOrEqual(t, v, 0.0, "cooling %s", key)
	}

	// Top-floor room carries roof conduction; floor 2 carries no foundation.
	assert.Contains(t, result.CoolingComponents, ComponentRoofConduction)
	assert.NotContains(t, result.HeatingComponents, ComponentFoundation)

	assert.Contains(t, result.CoolingComponents, ComponentWindowSolar)
	assert.Positive(t, result.CoolingComponents[ComponentWindowSolar])

	assert.Positive(t, result.CFMRequired)
	assert.GreaterOrEqual(t, result.DuctSizeIn, minDuctIn)
	assert.Zero(t, result.DuctSizeIn%2)
}

func TestCalculateRoomNoVentilationByDefault(t *testing.T) {
	rc := testRoomContext()
	room := testRoom()

	result := calculateRoom(&room, rc)
	assert.NotContains(t, result.CoolingComponents, ComponentVentilation)

	rc.includeVentilation = true
	withVent := calculateRoom(&room, rc)
	assert.Positive(t, withVent.CoolingComponents[ComponentVentilation])
	assert.Greater(t, withVent.CoolingBTU, result.CoolingBTU)
}

func TestCalculateRoomFirstFloorFoundation(t *testing.T) {
	rc := testRoomContext()
	rc.foundationHeatingPerSqFt = 3.5
	rc.foundationCoolingPerSqFt = 0.0

	room := testRoom()
	room.Floor = 1

	result := calculateRoom(&room, rc)
	assert.InDelta(t, 3.5*180, result.HeatingComponents[ComponentFoundation], 1e-9)
	assert.NotContains(t, result.HeatingComponents, ComponentRoofConduction)
}

func TestCalculateRoomAboveGradeFloor(t *testing.T) {
	rc := testRoomContext()
	rc.aboveGradeFloor = true

	room := testRoom()
	room.Floor = 1

	result := calculateRoom(&room, rc)

	// Floor conduction replaces the ground-coupled allocation:
	// U x A x ΔT x bridging.
	want := (1.0 / 19.0) * 180 * (70 - 17) * rc.bridging.floor
	assert.InDelta(t, want, result.HeatingComponents[ComponentFoundation], 1e-6)
}

func TestPostFactors(t *testing.T) {
	t.Run("CornerRoom", func(t *testing.T) {
		rc := testRoomContext()
		corner := true
		room := testRoom()
		room.Hints.CornerRoom = &corner

		result := calculateRoom(&room, rc)

		pair, ok := result.AppliedFactors[FactorCorner]
		require.True(t, ok)
		assert.InDelta(t, 1.15, pair.Heating, 1e-9)
		assert.InDelta(t, 1.20, pair.Cooling, 1e-9)
	})

	t.Run("LowConfidencePad", func(t *testing.T) {
		rc := testRoomContext()
		room := testRoom()
		room.Confidence = 0.4

		result := calculateRoom(&room, rc)

		_, ok := result.AppliedFactors[FactorLowConfidence]
		assert.True(t, ok)
		assert.Contains(t, result.DataQuality, "low_detection_confidence")
	})

	t.Run("InteriorRoomHeatingCut", func(t *testing.T) {
		rc := testRoomContext()
		zero := 0
		room := testRoom()
		room.Hints.ExteriorWalls = &zero
		room.WindowCount = 0
		room.Floor = 2

		interior := calculateRoom(&room, rc)

		pair, ok := interior.AppliedFactors[FactorInterior]
		require.True(t, ok)
		assert.InDelta(t, 0.70, pair.Heating, 1e-9)
		assert.InDelta(t, 1.0, pair.Cooling, 1e-9)

		// No exterior wall: no wall conduction at all.
		assert.NotContains(t, interior.CoolingComponents, ComponentWallConduction)
	})

	t.Run("ExposureHint", func(t *testing.T) {
		rc := testRoomContext()
		high := model.ExposureHigh
		room := testRoom()
		room.Hints.ThermalExposure = &high

		result := calculateRoom(&room, rc)

		pair, ok := result.AppliedFactors[FactorExposure]
		require.True(t, ok)
		assert.InDelta(t, 1.2, pair.Heating, 1e-9)
		assert.InDelta(t, 1.25, pair.Cooling, 1e-9)
	})

	t.Run("FactorsReproduceTotals", func(t *testing.T) {
		rc := testRoomContext()
		corner := true
		room := testRoom()
		room.Hints.CornerRoom = &corner

		result := calculateRoom(&room, rc)

		heatFactor, coolFactor := 1.0, 1.0
		for _, pair := range result.AppliedFactors {
			heatFactor *= pair.Heating
			coolFactor *= pair.Cooling
		}

		assert.InDelta(t, result.HeatingComponents.Total()*heatFactor, result.HeatingBTU, 1e-6)

		latent := result.CoolingComponents[ComponentPeopleLat] +
			result.CoolingComponents[ComponentInfiltrationLat] +
			result.CoolingComponents[ComponentVentilationLat]
		sensible := result.CoolingComponents.Total() - latent
		assert.InDelta(t, sensible*coolFactor, result.CoolingSensibleBTU, 1e-6)
	})
}

func TestRoomGeometryWallExposure(t *testing.T) {
	rc := testRoomContext()

	tests := []struct {
		name     string
		walls    int
		wantFeet float64
	}{
		{name: "one wall longest side", walls: 1, wantFeet: 15},
		{name: "corner pair", walls: 2, wantFeet: 27},
		{name: "three walls", walls: 3, wantFeet: 0.75 * 54},
		{name: "fully detached", walls: 4, wantFeet: 54},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			room := testRoom()
			room.Hints.ExteriorWalls = &tt.walls

			g := roomGeometry(&room, rc)
			assert.InDelta(t, tt.wantFeet, g.exteriorWallFt, 1e-9)
		})
	}

	t.Run("NetAreaSubtractsGlazing", func(t *testing.T) {
		room := testRoom()
		g := roomGeometry(&room, rc)

		// One wall (longest side 15ft x 9ft) minus two assumed windows.
		assert.InDelta(t, 15*9-2*assumedWindowAreaSqFt, g.netWallArea, 1e-9)
	})

	t.Run("GroundFloorLivingLosesDoorArea", func(t *testing.T) {
		room := testRoom()
		room.Type = model.RoomLiving
		room.Floor = 1

		g := roomGeometry(&room, rc)
		assert.InDelta(t, 15*9-2*assumedWindowAreaSqFt-assumedDoorAreaSqFt, g.netWallArea, 1e-9)
	})

	t.Run("NetAreaFloorsAtZero", func(t *testing.T) {
		room := testRoom()
		room.WindowCount = 20

		g := roomGeometry(&room, rc)
		assert.Zero(t, g.netWallArea)
	})
}

func TestBridgingFor(t *testing.T) {
	assert.Equal(t, bridgingByConstruction["wood"], bridgingFor("wood_frame"))
	assert.Equal(t, bridgingByConstruction["steel"], bridgingFor("Steel stud"))
	assert.Equal(t, bridgingByConstruction["icf"], bridgingFor("icf"))
	assert.Equal(t, bridgingByConstruction["wood"], bridgingFor("unknown system"))
}

func TestDuctDiameterIn(t *testing.T) {
	assert.Equal(t, minDuctIn, ductDiameterIn(0))
	assert.Equal(t, minDuctIn, ductDiameterIn(-10))

	// 100 CFM at 600 FPM needs ~5.5in, rounded up to 6.
	assert.Equal(t, 6, ductDiameterIn(100))

	// Sizes never shrink with airflow and stay even.
	prev := 0
	for cfm := 25.0; cfm <= 1000; cfm += 25 {
		size := ductDiameterIn(cfm)
		assert.GreaterOrEqual(t, size, prev)
		assert.Zero(t, size%2)
		prev = size
	}
}

func TestSafeU(t *testing.T) {
	assert.InDelta(t, 1.0/19.0, safeU(19), 1e-9)
	assert.InDelta(t, 1.0, safeU(0), 1e-9)
	assert.InDelta(t, 1.0, safeU(-5), 1e-9)
}
