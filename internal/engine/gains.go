package engine

import (
	"github.com/hvackit/loadcalc/internal/model"
)

// Internal-gain constants.
const (
	// wattsToBTU converts electrical watts to BTU/hr.
	wattsToBTU = 3.41

	// personSensibleBTU is the sensible gain per seated occupant.
	personSensibleBTU = 230.0

	// personLatentBTU is the latent gain per seated occupant.
	personLatentBTU = 200.0

	// occupancyCLF discounts people gain for partial occupancy at the
	// design hour.
	occupancyCLF = 0.75

	// lightingWattsPerSqFt is the residential lighting power density.
	lightingWattsPerSqFt = 1.0
)

// occupantsByRoomType estimates design occupancy per room type.
//
//nolint:gochecknoglobals // Constant lookup table
var occupantsByRoomType = map[model.RoomType]float64{
	model.RoomLiving:   2.5,
	model.RoomDining:   2.0,
	model.RoomBedroom:  1.5,
	model.RoomKitchen:  1.5,
	model.RoomOffice:   1.0,
	model.RoomBathroom: 0.3,
	model.RoomUtility:  0.3,
	model.RoomHallway:  0.2,
	model.RoomCloset:   0.0,
	model.RoomGarage:   0.0,
	model.RoomOther:    0.5,
}

// equipmentWattsByRoomType estimates plug and appliance power density
// (W/sqft) per room type. Kitchens dominate with refrigeration and cooking.
//
//nolint:gochecknoglobals // Constant lookup table
var equipmentWattsByRoomType = map[model.RoomType]float64{
	model.RoomKitchen:  3.0,
	model.RoomUtility:  2.0,
	model.RoomOffice:   1.5,
	model.RoomLiving:   0.8,
	model.RoomBedroom:  0.5,
	model.RoomBathroom: 0.5,
	model.RoomDining:   0.4,
	model.RoomHallway:  0.1,
	model.RoomCloset:   0.0,
	model.RoomGarage:   0.2,
	model.RoomOther:    0.3,
}

// Occupants returns the design occupancy for a room type.
func Occupants(rt model.RoomType) float64 {
	if n, ok := occupantsByRoomType[rt]; ok {
		return n
	}
	return occupantsByRoomType[model.RoomOther]
}

// PeopleSensibleGain returns the sensible people gain for a room type.
func PeopleSensibleGain(rt model.RoomType) float64 {
	return Occupants(rt) * personSensibleBTU * occupancyCLF
}

// PeopleLatentGain returns the latent people gain for a room type.
func PeopleLatentGain(rt model.RoomType) float64 {
	return Occupants(rt) * personLatentBTU * occupancyCLF
}

// LightingGain returns the lighting gain for a floor area. Lighting CLF is
// taken as 1: lights run through the design hour.
func LightingGain(areaSqFt float64) float64 {
	if areaSqFt <= 0 {
		return 0
	}
	return areaSqFt * lightingWattsPerSqFt * wattsToBTU
}

// EquipmentGain returns the plug/appliance gain for a room type and area.
func EquipmentGain(rt model.RoomType, areaSqFt float64) float64 {
	if areaSqFt <= 0 {
		return 0
	}
	watts, ok := equipmentWattsByRoomType[rt]
	if !ok {
		watts = equipmentWattsByRoomType[model.RoomOther]
	}
	return areaSqFt * watts * wattsToBTU
}
