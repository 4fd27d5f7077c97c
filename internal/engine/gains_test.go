package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hvackit/loadcalc/internal/model"
)

func TestPeopleGains(t *testing.T) {
	// 2.5 occupants x 230 BTU x 0.75 CLF.
	assert.InDelta(t, 431.25, PeopleSensibleGain(model.RoomLiving), 1e-9)
	assert.InDelta(t, 375.0, PeopleLatentGain(model.RoomLiving), 1e-9)

	assert.Zero(t, PeopleSensibleGain(model.RoomCloset))
	assert.Zero(t, PeopleLatentGain(model.RoomGarage))

	// Unmapped types fall to the generic occupancy.
	assert.InDelta(t, PeopleSensibleGain(model.RoomOther), PeopleSensibleGain(model.RoomType(99)), 1e-9)
}

func TestLightingGain(t *testing.T) {
	assert.InDelta(t, 200*1.0*3.41, LightingGain(200), 1e-9)
	assert.Zero(t, LightingGain(0))
	assert.Zero(t, LightingGain(-50))
}

func TestEquipmentGain(t *testing.T) {
	kitchen := EquipmentGain(model.RoomKitchen, 150)
	bedroom := EquipmentGain(model.RoomBedroom, 150)

	assert.InDelta(t, 150*3.0*3.41, kitchen, 1e-9)
	assert.Greater(t, kitchen, bedroom)
	assert.Zero(t, EquipmentGain(model.RoomKitchen, 0))
}

func TestVentilationCFM(t *testing.T) {
	t.Run("PeoplePlusArea", func(t *testing.T) {
		// Bedroom: 1.5 x 7.5 + 150 x 0.03 = 15.75.
		assert.InDelta(t, 15.75, VentilationCFM(model.RoomBedroom, 150), 1e-9)
	})

	t.Run("BathroomFloor", func(t *testing.T) {
		// Small bath computes under the exhaust minimum and is floored.
		assert.InDelta(t, 50.0, VentilationCFM(model.RoomBathroom, 40), 1e-9)
	})

	t.Run("KitchenFloor", func(t *testing.T) {
		assert.GreaterOrEqual(t, VentilationCFM(model.RoomKitchen, 10), 25.0)
	})

	t.Run("NegativeAreaClamped", func(t *testing.T) {
		assert.InDelta(t, 1.5*7.5, VentilationCFM(model.RoomBedroom, -100), 1e-9)
	})
}

func TestVentilationLoads(t *testing.T) {
	assert.InDelta(t, 1.08*50*16, VentilationSensibleBTU(50, 16), 1e-9)
	assert.Zero(t, VentilationSensibleBTU(50, -2))
	assert.Zero(t, VentilationSensibleBTU(0, 16))

	assert.InDelta(t, 0.68*50*34, VentilationLatentBTU(50, 34), 1e-9)

	// Dry climates carry a negative grain difference: no latent load.
	assert.Zero(t, VentilationLatentBTU(50, -6))
}
