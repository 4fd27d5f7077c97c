package foundation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hvackit/loadcalc/internal/model"
)

func TestSlabLoads(t *testing.T) {
	in := Input{
		Type:           model.FoundationSlab,
		Zone:           "4A",
		PerimeterFt:    160,
		AreaSqFt:       1600,
		HeatingDeltaTF: 50,
		CoolingDeltaTF: 16,
	}

	loads := Calculate(in)

	// F-factor 0.73 in zone 4: 0.73 * 160 * 50.
	assert.InDelta(t, 5840.0, loads.HeatingBTU, 1e-6)
	assert.Zero(t, loads.CoolingSensibleBTU)

	// Edge insulation is code-mandated in cold zones, so the per-degree
	// coefficient shrinks even as the ΔT grows.
	t.Run("ColderZoneLowerFFactor", func(t *testing.T) {
		cold := in
		cold.Zone = "7"
		assert.Less(t, Calculate(cold).HeatingBTU, loads.HeatingBTU)
	})

	t.Run("UnknownZoneDefaults", func(t *testing.T) {
		odd := in
		odd.Zone = "nonsense"
		assert.InDelta(t, loads.HeatingBTU, Calculate(odd).HeatingBTU, 1e-6)
	})
}

func TestCrawlspaceLoads(t *testing.T) {
	in := Input{
		Type:           model.FoundationCrawlspace,
		Zone:           "5A",
		AreaSqFt:       1200,
		FloorR:         19,
		HeatingDeltaTF: 60,
		CoolingDeltaTF: 15,
	}

	loads := Calculate(in)

	// UA = 1200/19; crawlspace floats at half the ΔT.
	wantHeating := 1200.0 / 19.0 * 60.0 * 0.5
	assert.InDelta(t, wantHeating, loads.HeatingBTU, 1e-6)

	// Cooling gain is 30% of the equivalent conductance.
	wantCooling := 1200.0 / 19.0 * 15.0 * 0.5 * 0.3
	assert.InDelta(t, wantCooling, loads.CoolingSensibleBTU, 1e-6)

	t.Run("MissingFloorRGuarded", func(t *testing.T) {
		bare := in
		bare.FloorR = 0
		assert.Positive(t, Calculate(bare).HeatingBTU)
	})
}

func TestBasementLoads(t *testing.T) {
	in := Input{
		Type:           model.FoundationBasement,
		Zone:           "6A",
		PerimeterFt:    140,
		AreaSqFt:       1100,
		HeatingDeltaTF: 65,
		CoolingDeltaTF: 15,
	}

	loads := Calculate(in)

	conductance := 140.0*7.0*0.10 + 1100.0*0.02
	assert.InDelta(t, conductance*65.0, loads.HeatingBTU, 1e-6)
	assert.InDelta(t, conductance*15.0*0.1, loads.CoolingSensibleBTU, 1e-6)
}

func TestAboveGradeAndEdgeCases(t *testing.T) {
	assert.Zero(t, Calculate(Input{Type: model.FoundationAboveGrade, HeatingDeltaTF: 60}).HeatingBTU)

	t.Run("NegativeInputsClamped", func(t *testing.T) {
		loads := Calculate(Input{
			Type:           model.FoundationSlab,
			Zone:           "4A",
			PerimeterFt:    -10,
			HeatingDeltaTF: 50,
		})
		assert.Zero(t, loads.HeatingBTU)
	})
}
